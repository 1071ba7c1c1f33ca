//go:build !js
// +build !js

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/simukka/pixel-invaders/audio"
)

// SpeakerSampleRate is the output rate used for native playback.
const SpeakerSampleRate = beep.SampleRate(44100)

// SpeakerBackend plays tones on the host's default audio device. It
// satisfies audio.Backend.
type SpeakerBackend struct {
	rate   beep.SampleRate
	opened bool
}

var _ audio.Backend = (*SpeakerBackend)(nil)

// NewSpeakerBackend creates a backend for the native speaker.
func NewSpeakerBackend() *SpeakerBackend {
	return &SpeakerBackend{rate: SpeakerSampleRate}
}

// Open initializes the speaker with a 50ms buffer.
func (b *SpeakerBackend) Open() (beep.SampleRate, error) {
	if err := speaker.Init(b.rate, b.rate.N(50*time.Millisecond)); err != nil {
		return 0, err
	}
	b.opened = true
	return b.rate, nil
}

// Close releases the device if Open succeeded.
func (b *SpeakerBackend) Close() {
	if b.opened {
		speaker.Close()
		b.opened = false
	}
}

// Resume is a no-op; the native speaker never suspends on its own.
func (b *SpeakerBackend) Resume() {}

// Play queues n samples of s on the speaker mixer.
func (b *SpeakerBackend) Play(s beep.Streamer, n int) {
	speaker.Play(beep.Take(n, s))
}
