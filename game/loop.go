package game

// HUD receives the values the page shows outside the canvas.
type HUD interface {
	SetScore(score int)
	SetLives(lives int)
	SetLevel(level int)
	SetStatus(status string)
}

// Driver runs one frame per display refresh: drain input, step, paint,
// publish. It owns the Game it drives.
type Driver struct {
	Game   *Game
	Canvas Canvas
	HUD    HUD // Optional

	LastFrameTime float64 // Milliseconds
}

// NewDriver creates a driver. hud may be nil.
func NewDriver(g *Game, c Canvas, hud HUD) *Driver {
	return &Driver{Game: g, Canvas: c, HUD: hud}
}

// Frame advances the game to timestamp, in milliseconds on the host's
// monotonic clock. The first frame measures from zero.
func (d *Driver) Frame(timestamp float64) {
	dt := (timestamp - d.LastFrameTime) / 1000
	d.LastFrameTime = timestamp

	g := d.Game
	g.StatsOverlay.UpdateFPS(timestamp)

	g.Drain()
	g.Update(dt)
	Render(d.Canvas, g)

	if d.HUD != nil {
		d.HUD.SetScore(g.Score)
		d.HUD.SetLives(g.Lives)
		d.HUD.SetLevel(g.LevelID())
		d.HUD.SetStatus(g.Status)
	}
}
