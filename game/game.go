package game

import (
	"github.com/simukka/pixel-invaders/common"
)

// Random is the source of probability for invader fire and star placement.
// *common.SeededRNG satisfies it.
type Random interface {
	Float64() float64
	Range(min, max float64) float64
}

// Game holds the complete game state. One host goroutine owns it; other
// goroutines talk to it only through Events.
type Game struct {
	// Session
	Levels     []Level // nil until the catalog load settles
	LevelIndex int
	Score      int
	Lives      int
	Running    bool
	Paused     bool
	Status     string
	phase      Phase

	// Entities
	Player         *Player
	Invaders       []*Invader
	Bullets        []*Bullet
	InvaderBullets []*Bullet
	Formation      Formation
	Stars          []Star

	// Input
	Keys   map[Key]bool
	Events *EventQueue

	// Collaborators
	Sounds Sounds
	RNG    Random

	StatsOverlay *StatsOverlay
}

// NewGame creates a game waiting for its level catalog. A nil sounds
// plays nothing; a nil rng is seeded from the clock.
func NewGame(sounds Sounds, rng Random) *Game {
	if sounds == nil {
		sounds = silent{}
	}
	if rng == nil {
		rng = common.NewSeededRNG(common.TimeSeed())
	}
	g := &Game{
		Lives:        StartingLives,
		Status:       StatusLoading,
		phase:        NotStarted,
		Keys:         make(map[Key]bool),
		Events:       NewEventQueue(),
		Sounds:       sounds,
		RNG:          rng,
		StatsOverlay: NewStatsOverlay(),
	}
	g.Stars = NewStarfield(StarCount, rng)
	return g
}

// CurrentLevel returns the active level definition.
func (g *Game) CurrentLevel() (Level, bool) {
	if g.LevelIndex < 0 || g.LevelIndex >= len(g.Levels) {
		return Level{}, false
	}
	return g.Levels[g.LevelIndex], true
}

// LevelID is the level number shown on the HUD. It reports 1 when no
// level is active.
func (g *Game) LevelID() int {
	if l, ok := g.CurrentLevel(); ok {
		return l.ID
	}
	return 1
}

// Update advances the simulation by dt seconds. It does nothing unless a
// run is active and unpaused. dt is used as given, without a ceiling.
func (g *Game) Update(dt float64) {
	if !g.Running || g.Paused {
		return
	}
	if g.phase == LevelIntro {
		g.phase = InProgress
	}

	if g.Player != nil {
		g.Player.Cooldown -= dt * 1000
	}

	g.handleInput(dt)
	g.updateBullets(dt)
	if !g.updateInvaders(dt) {
		return
	}
	g.checkCollisions()
	UpdateStars(g.Stars, dt, g.RNG)
}

func (g *Game) setStatus(status string) {
	if g.Status != status {
		Debug("status:", status)
	}
	g.Status = status
}
