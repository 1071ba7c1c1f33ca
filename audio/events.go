package audio

import "time"

// Event is a semantic game sound.
type Event int

const (
	Shoot Event = iota
	InvaderHit
	PlayerHit
	LevelStart
	GameOver
)

func (e Event) String() string {
	switch e {
	case Shoot:
		return "shoot"
	case InvaderHit:
		return "invader-hit"
	case PlayerHit:
		return "player-hit"
	case LevelStart:
		return "level-start"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// eventTones maps each event to the tones played together for it.
var eventTones = map[Event][]Tone{
	Shoot: {
		{Wave: Square, Frequency: 520, Duration: 60 * time.Millisecond, Volume: 0.09, Sweep: -160},
	},
	InvaderHit: {
		{Wave: Square, Frequency: 220, Duration: 80 * time.Millisecond, Volume: 0.1, Sweep: -80},
	},
	PlayerHit: {
		{Wave: Sawtooth, Frequency: 140, Duration: 180 * time.Millisecond, Volume: 0.12, Sweep: -90},
	},
	LevelStart: {
		{Wave: Square, Frequency: 480, Duration: 70 * time.Millisecond, Volume: 0.08, Sweep: 120},
		{Wave: Square, Frequency: 640, Duration: 70 * time.Millisecond, Volume: 0.07, Sweep: 160},
	},
	GameOver: {
		{Wave: Sawtooth, Frequency: 220, Duration: 220 * time.Millisecond, Volume: 0.12, Sweep: -140},
		{Wave: Square, Frequency: 160, Duration: 180 * time.Millisecond, Volume: 0.1, Sweep: -80},
	},
}

// Tones returns the tone set for e, or nil for an unknown event.
func (e Event) Tones() []Tone {
	return eventTones[e]
}
