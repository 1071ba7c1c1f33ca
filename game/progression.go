package game

import (
	"strconv"

	"github.com/simukka/pixel-invaders/audio"
)

// Phase is the externally visible state of a session.
type Phase int

const (
	NotStarted Phase = iota
	LevelIntro
	InProgress
	Paused
	WaveCleared
	Victory
	GameOver
)

var phaseNames = [...]string{
	NotStarted:  "not-started",
	LevelIntro:  "level-intro",
	InProgress:  "in-progress",
	Paused:      "paused",
	WaveCleared: "wave-cleared",
	Victory:     "victory",
	GameOver:    "game-over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Session status messages.
const (
	StatusLoading      = "Loading levels…"
	StatusWaveCleared  = "Wave cleared. Preparing next level…"
	StatusHit          = "Hit! Brace for the next volley."
	StatusGameOver     = "Game over. Press Enter to restart."
	StatusBreakthrough = "The invaders broke through. Press Enter to retry."
	StatusVictory      = "Victory! All levels cleared."
	StatusPaused       = "Paused"
)

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	if g.Running && g.Paused {
		return Paused
	}
	return g.phase
}

// ResetGame starts a fresh session from the first level.
func (g *Game) ResetGame() {
	g.Score = 0
	g.Lives = StartingLives
	g.LevelIndex = 0
	g.Running = true
	g.Paused = false
	g.StartLevel()
}

// StartLevel builds the entities for the current level. Past the last
// level it ends the run with a victory.
func (g *Game) StartLevel() {
	level, ok := g.CurrentLevel()
	if !ok {
		g.endRun(Victory, StatusVictory)
		return
	}

	g.Player = NewPlayer()
	g.Invaders = NewInvaders(level)
	g.Bullets = make([]*Bullet, 0, 16)
	g.InvaderBullets = make([]*Bullet, 0, 16)
	g.Formation = NewFormation(level)
	g.phase = LevelIntro
	Debugf("level %d: %dx%d invaders at %.1f u/s", level.ID, level.Rows, level.Cols, g.Formation.InvaderSpeed)

	g.setStatus(level.Title())
	g.Sounds.Play(audio.LevelStart)
}

// NextLevel advances to the following level.
func (g *Game) NextLevel() {
	g.LevelIndex++
	g.StartLevel()
}

// waveCleared runs when the last invader of the level is gone.
func (g *Game) waveCleared() {
	g.phase = WaveCleared
	g.setStatus(StatusWaveCleared)
	g.NextLevel()
}

// TogglePause flips the pause flag without touching entity state.
func (g *Game) TogglePause() {
	g.Paused = !g.Paused
	if g.Paused {
		g.setStatus(StatusPaused)
		return
	}
	g.setStatus("Level " + strconv.Itoa(g.LevelID()))
}

// RequestStart starts a new session. It is ignored while a run is active
// or before the level catalog has settled, and reports whether it started.
func (g *Game) RequestStart() bool {
	if g.Running || g.Levels == nil {
		return false
	}
	g.ResetGame()
	return true
}

// SetCatalog installs a settled catalog load. An empty catalog is
// replaced by the fallback levels.
func (g *Game) SetCatalog(c Catalog) {
	if len(c.Levels) == 0 {
		c = FallbackCatalog(ErrEmptyCatalog)
	}
	g.Levels = c.Levels
	if !g.Running {
		g.setStatus(c.Status())
	}
}

// endRun stops the session in a terminal phase.
func (g *Game) endRun(phase Phase, status string) {
	g.Running = false
	g.phase = phase
	g.setStatus(status)
	Debug("run ended:", phase.String(), "score:", g.Score)
}
