package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// fakeBackend records what the System asks of it.
type fakeBackend struct {
	openErr  error
	opens    int
	resumes  int
	played   []int
	lastPeak float64
}

func (f *fakeBackend) Open() (beep.SampleRate, error) {
	f.opens++
	if f.openErr != nil {
		return 0, f.openErr
	}
	return testRate, nil
}

func (f *fakeBackend) Resume() { f.resumes++ }

func (f *fakeBackend) Play(s beep.Streamer, n int) {
	f.played = append(f.played, n)
	f.lastPeak = 0
	for _, v := range Drain(s, n) {
		if v > f.lastPeak {
			f.lastPeak = v
		}
	}
}

func TestSystem_StartsUninitialized(t *testing.T) {
	s := NewSystem(&fakeBackend{})
	if s.State() != Uninitialized {
		t.Errorf("Expected Uninitialized, got %s", s.State())
	}
}

func TestSystem_TryInitIsIdempotent(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)

	for i := 0; i < 3; i++ {
		if got := s.TryInit(); got != Ready {
			t.Fatalf("TryInit #%d = %s, expected ready", i, got)
		}
	}
	if b.opens != 1 {
		t.Errorf("Expected backend opened once, got %d", b.opens)
	}
}

func TestSystem_OpenFailureIsUnavailable(t *testing.T) {
	b := &fakeBackend{openErr: ErrUnavailable}
	s := NewSystem(b)

	if got := s.TryInit(); got != Unavailable {
		t.Fatalf("Expected Unavailable, got %s", got)
	}
	s.TryInit()
	if b.opens != 1 {
		t.Errorf("Unavailable should be sticky, backend opened %d times", b.opens)
	}

	s.Play(Shoot)
	if len(b.played) != 0 {
		t.Error("Unavailable system should not play")
	}
}

func TestSystem_NilBackend(t *testing.T) {
	s := NewSystem(nil)
	if got := s.TryInit(); got != Unavailable {
		t.Errorf("Expected Unavailable for nil backend, got %s", got)
	}
	s.Play(GameOver) // must not panic
	s.Resume()
}

func TestSystem_PlayBeforeInitIsSilent(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)

	s.Play(Shoot)
	if len(b.played) != 0 {
		t.Error("Expected no playback before TryInit")
	}
}

func TestSystem_PlayMixesEventTones(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)
	s.TryInit()

	s.Play(LevelStart)
	if len(b.played) != 1 {
		t.Fatalf("Expected one backend play per event, got %d", len(b.played))
	}

	longest := 0
	for _, tone := range LevelStart.Tones() {
		if n := tone.SampleCount(testRate); n > longest {
			longest = n
		}
	}
	if b.played[0] != longest {
		t.Errorf("Expected %d samples, got %d", longest, b.played[0])
	}
	if b.lastPeak <= 0.08 {
		t.Errorf("Expected mixed peak above a single tone's volume, got %f", b.lastPeak)
	}
}

func TestSystem_Muted(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)
	s.TryInit()
	s.Muted = true

	s.Play(InvaderHit)
	if len(b.played) != 0 {
		t.Error("Muted system should not play")
	}
}

func TestSystem_ResumeInitializesAndResumes(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)

	s.Resume()
	s.Resume()
	if s.State() != Ready {
		t.Errorf("Expected Ready after Resume, got %s", s.State())
	}
	if b.opens != 1 || b.resumes != 2 {
		t.Errorf("Expected 1 open and 2 resumes, got %d and %d", b.opens, b.resumes)
	}
}

func TestSystem_UnknownEventIgnored(t *testing.T) {
	b := &fakeBackend{}
	s := NewSystem(b)
	s.TryInit()

	s.Play(Event(77))
	if len(b.played) != 0 {
		t.Error("Unknown event should not reach the backend")
	}
}

func TestState_String(t *testing.T) {
	if Ready.String() != "ready" || Unavailable.String() != "unavailable" || Uninitialized.String() != "uninitialized" {
		t.Error("unexpected State names")
	}
}
