package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

// ErrUnavailable is returned by backends when no audio output exists.
var ErrUnavailable = errors.New("audio: no output device available")

// State is the lifecycle of a System.
type State int

const (
	Uninitialized State = iota
	Ready
	Unavailable
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Backend is an audio output the System renders tones into.
type Backend interface {
	// Open acquires the output and reports its sample rate.
	Open() (beep.SampleRate, error)
	// Resume wakes an output the host suspended.
	Resume()
	// Play starts n samples of s. It must not block on playback.
	Play(s beep.Streamer, n int)
}

// System turns game events into tones. Output is acquired lazily on the
// first TryInit call, which hosts make from a user gesture so browser
// autoplay policies are satisfied. Every method is safe for concurrent use.
type System struct {
	mu         sync.Mutex
	backend    Backend
	state      State
	sampleRate beep.SampleRate
	Muted      bool
}

// NewSystem creates a System over backend. A nil backend makes the system
// permanently silent.
func NewSystem(backend Backend) *System {
	return &System{backend: backend}
}

// State returns the current lifecycle state.
func (s *System) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TryInit acquires the backend once. Later calls return the settled state.
func (s *System) TryInit() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Uninitialized {
		return s.state
	}
	if s.backend == nil {
		s.state = Unavailable
		return s.state
	}

	sr, err := s.backend.Open()
	if err != nil || sr <= 0 {
		s.state = Unavailable
		return s.state
	}
	s.sampleRate = sr
	s.state = Ready
	return s.state
}

// Resume initializes the system if needed and wakes a suspended backend.
func (s *System) Resume() {
	if s.TryInit() != Ready {
		return
	}
	s.backend.Resume()
}

// Play mixes the tones for e and hands them to the backend. Without a
// ready backend it does nothing.
func (s *System) Play(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Ready || s.Muted {
		return
	}
	tones := e.Tones()
	if len(tones) == 0 {
		return
	}

	streamers := make([]beep.Streamer, len(tones))
	n := 0
	for i, t := range tones {
		streamers[i] = NewToneStreamer(s.sampleRate, t)
		if c := t.SampleCount(s.sampleRate); c > n {
			n = c
		}
	}
	s.backend.Play(beep.Mix(streamers...), n)
}
