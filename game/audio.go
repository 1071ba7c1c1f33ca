package game

import "github.com/simukka/pixel-invaders/audio"

// Sounds receives semantic sound events from the simulation. Calls are
// fire-and-forget; implementations without output stay silent.
type Sounds interface {
	Play(e audio.Event)
}

var _ Sounds = (*audio.System)(nil)

// silent is used when no audio output is configured.
type silent struct{}

func (silent) Play(audio.Event) {}
