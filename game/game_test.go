package game

import (
	"reflect"
	"testing"

	"github.com/simukka/pixel-invaders/audio"
	"github.com/simukka/pixel-invaders/common"
)

func TestNewGame_Defaults(t *testing.T) {
	g := NewGame(nil, common.NewSeededRNG(1))

	if g.Lives != StartingLives {
		t.Errorf("Expected Lives to be %d, got %d", StartingLives, g.Lives)
	}
	if g.Score != 0 {
		t.Errorf("Expected Score to be 0, got %d", g.Score)
	}
	if g.Running {
		t.Error("Expected a new game not to be running")
	}
	if g.Phase() != NotStarted {
		t.Errorf("Expected phase %s, got %s", NotStarted, g.Phase())
	}
	if g.Levels != nil {
		t.Error("Expected no levels before the catalog loads")
	}
	if g.Status != StatusLoading {
		t.Errorf("Expected status %q, got %q", StatusLoading, g.Status)
	}
	if len(g.Stars) != StarCount {
		t.Errorf("Expected %d stars, got %d", StarCount, len(g.Stars))
	}
	if g.LevelID() != 1 {
		t.Errorf("Expected LevelID 1 before start, got %d", g.LevelID())
	}
}

func TestNewGame_NilCollaborators(t *testing.T) {
	g := NewGame(nil, nil)
	g.SetCatalog(Catalog{Levels: DefaultLevels()})
	g.ResetGame()

	// Must not panic without sounds or an explicit RNG.
	for i := 0; i < 10; i++ {
		g.Update(0.016)
	}
}

// snapshot captures everything Update may change.
type snapshot struct {
	Player         Player
	Invaders       []Invader
	Bullets        []Bullet
	InvaderBullets []Bullet
	Formation      Formation
	Stars          []Star
	Score, Lives   int
	LevelIndex     int
}

func takeSnapshot(g *Game) snapshot {
	s := snapshot{
		Player:     *g.Player,
		Formation:  g.Formation,
		Score:      g.Score,
		Lives:      g.Lives,
		LevelIndex: g.LevelIndex,
		Stars:      append([]Star(nil), g.Stars...),
	}
	for _, inv := range g.Invaders {
		s.Invaders = append(s.Invaders, *inv)
	}
	for _, b := range g.Bullets {
		s.Bullets = append(s.Bullets, *b)
	}
	for _, b := range g.InvaderBullets {
		s.InvaderBullets = append(s.InvaderBullets, *b)
	}
	return s
}

func TestUpdate_NoOpWhenInactive(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{"not running", func(g *Game) { g.Running = false }},
		{"paused", func(g *Game) { g.TogglePause() }},
	}

	for _, tt := range tests {
		for _, dt := range []float64{0, 0.016, 1, 250} {
			g, _ := startedGame(t)
			g.RNG = common.Fixed(0) // would fire on every trial
			g.Keys[KeyLeft] = true
			g.Keys[KeyFire] = true
			g.Bullets = append(g.Bullets, newPlayerBullet(g.Player))
			g.InvaderBullets = append(g.InvaderBullets, newInvaderBullet(g.Invaders[0]))
			tt.setup(g)

			before := takeSnapshot(g)
			g.Update(dt)
			after := takeSnapshot(g)

			if !reflect.DeepEqual(before, after) {
				t.Errorf("%s, dt=%v: state changed\nbefore %+v\nafter  %+v", tt.name, dt, before, after)
			}
		}
	}
}

func TestUpdate_FireSetsCooldown(t *testing.T) {
	g, sounds := startedGame(t)
	g.Keys[KeyFire] = true

	g.Update(0.016)
	if len(g.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(g.Bullets))
	}
	b := g.Bullets[0]
	if b.X != g.Player.X+g.Player.Width/2-2 {
		t.Errorf("Expected bullet centred on player at %f, got %f", g.Player.X+g.Player.Width/2-2, b.X)
	}
	if expected := g.Player.Y - 10 - PlayerBulletSpeed*0.016; !almostEqual(b.Y, expected) {
		t.Errorf("Expected bullet y %f, got %f", expected, b.Y)
	}
	if g.Player.Cooldown != 550 {
		t.Errorf("Expected cooldown 550, got %f", g.Player.Cooldown)
	}

	g.Update(0.1)
	if len(g.Bullets) != 1 {
		t.Errorf("Expected cooldown to block a second shot, got %d bullets", len(g.Bullets))
	}
	if !almostEqual(g.Player.Cooldown, 450) {
		t.Errorf("Expected cooldown 450, got %f", g.Player.Cooldown)
	}

	g.Update(0.5)
	if len(g.Bullets) != 2 {
		t.Errorf("Expected a second shot once cooldown elapsed, got %d bullets", len(g.Bullets))
	}
	if n := sounds.count(audio.Shoot); n != 2 {
		t.Errorf("Expected 2 shoot sounds, got %d", n)
	}
}

func TestUpdate_BulletsCulledOffscreen(t *testing.T) {
	g, _ := startedGame(t)
	g.Bullets = append(g.Bullets, &Bullet{X: 5, Y: 5, Width: 4, Height: 10, Speed: PlayerBulletSpeed})
	g.InvaderBullets = append(g.InvaderBullets, &Bullet{X: 5, Y: HEIGHT + 10, Width: 4, Height: 10, Speed: InvaderBulletSpeed})

	g.Update(0.05)

	if len(g.Bullets) != 0 {
		t.Errorf("Expected player bullet culled once above the top, got %d", len(g.Bullets))
	}
	if len(g.InvaderBullets) != 0 {
		t.Errorf("Expected invader bullet culled past the bottom, got %d", len(g.InvaderBullets))
	}
}

func TestUpdate_LargeDtIsNotClamped(t *testing.T) {
	g, _ := startedGame(t)
	x0 := g.Invaders[0].X

	g.Update(0.5)

	// Level 1 moves at 32 * 0.75 = 24 units/s.
	if expected := x0 + 12; !almostEqual(g.Invaders[0].X, expected) {
		t.Errorf("Expected invader x %f, got %f", expected, g.Invaders[0].X)
	}
}

func TestUpdate_LevelIntroBecomesInProgress(t *testing.T) {
	g, _ := startedGame(t)
	if g.Phase() != LevelIntro {
		t.Fatalf("Expected %s after start, got %s", LevelIntro, g.Phase())
	}

	g.Update(0.016)
	if g.Phase() != InProgress {
		t.Errorf("Expected %s after first step, got %s", InProgress, g.Phase())
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
