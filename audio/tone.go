package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope constants shared by every tone.
const (
	// GainFloor is the silent end of the exponential envelope. Exponential
	// ramps cannot start or end at zero.
	GainFloor = 0.0001

	// AttackTime is how long a tone takes to reach its peak volume.
	AttackTime = 10 * time.Millisecond

	// ReleaseTail keeps the oscillator running after the envelope has decayed
	// so the tone ends at the floor instead of cutting off mid-cycle.
	ReleaseTail = 20 * time.Millisecond

	// MinSweepFrequency bounds the target of a downward sweep.
	MinSweepFrequency = 20.0
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

// String returns the Web Audio oscillator type name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// sample evaluates the waveform at a phase in [0, 1).
func (w Waveform) sample(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone describes one synthesized blip.
type Tone struct {
	Wave      Waveform
	Frequency float64       // Base frequency in Hz
	Duration  time.Duration // Envelope length, excluding ReleaseTail
	Volume    float64       // Peak gain
	Sweep     float64       // Hz added to Frequency by the end of Duration; 0 disables
}

// SampleCount returns how many samples the tone spans at sr, tail included.
func (t Tone) SampleCount(sr beep.SampleRate) int {
	return sr.N(t.Duration + ReleaseTail)
}

// FrequencyAt returns the oscillator frequency at elapsed seconds. With a
// sweep the frequency moves exponentially from Frequency to
// max(20, Frequency+Sweep) over Duration, then holds.
func (t Tone) FrequencyAt(elapsed float64) float64 {
	if t.Sweep == 0 || elapsed <= 0 {
		return t.Frequency
	}
	target := math.Max(MinSweepFrequency, t.Frequency+t.Sweep)
	dur := t.Duration.Seconds()
	if dur <= 0 || elapsed >= dur {
		return target
	}
	return t.Frequency * math.Pow(target/t.Frequency, elapsed/dur)
}

// GainAt returns the envelope gain at elapsed seconds: an exponential rise
// from GainFloor to Volume over AttackTime, then an exponential fall back to
// GainFloor at Duration.
func (t Tone) GainAt(elapsed float64) float64 {
	if t.Volume <= 0 {
		return 0
	}
	attack := AttackTime.Seconds()
	dur := t.Duration.Seconds()
	switch {
	case elapsed <= 0:
		return GainFloor
	case elapsed < attack:
		return GainFloor * math.Pow(t.Volume/GainFloor, elapsed/attack)
	case elapsed < dur && dur > attack:
		return t.Volume * math.Pow(GainFloor/t.Volume, (elapsed-attack)/(dur-attack))
	default:
		return GainFloor
	}
}

// toneStreamer renders a Tone as a finite mono signal on both channels.
type toneStreamer struct {
	tone  Tone
	rate  float64
	pos   int
	total int
	phase float64
}

// NewToneStreamer creates a streamer that plays t once at sample rate sr.
func NewToneStreamer(sr beep.SampleRate, t Tone) beep.Streamer {
	return &toneStreamer{
		tone:  t,
		rate:  float64(sr),
		total: t.SampleCount(sr),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		elapsed := float64(s.pos) / s.rate
		val := s.tone.GainAt(elapsed) * s.tone.Wave.sample(s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.tone.FrequencyAt(elapsed) / s.rate
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// Drain pulls up to n samples from s and returns the left channel. Backends
// without a streaming sink use it to fill a fixed buffer.
func Drain(s beep.Streamer, n int) []float64 {
	out := make([]float64, 0, n)
	chunk := make([][2]float64, 512)
	for len(out) < n {
		want := n - len(out)
		if want > len(chunk) {
			want = len(chunk)
		}
		got, ok := s.Stream(chunk[:want])
		for i := 0; i < got; i++ {
			out = append(out, chunk[i][0])
		}
		if !ok || got == 0 {
			break
		}
	}
	return out
}
