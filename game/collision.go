package game

import "github.com/simukka/pixel-invaders/audio"

// Rect is an axis-aligned rectangle in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether a and b overlap. Touching edges do not count.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// checkCollisions resolves, in order: player bullets against invaders,
// invader bullets against the player, then invaders reaching the player.
func (g *Game) checkCollisions() {
	for _, b := range g.Bullets {
		for _, inv := range g.Invaders {
			if !inv.Alive || !Intersects(b.Rect(), inv.Rect()) {
				continue
			}
			inv.Alive = false
			b.Y = PlayerBulletHitY
			g.Score += InvaderPoints
			g.Sounds.Play(audio.InvaderHit)
			break
		}
	}

	if g.Player == nil {
		return
	}

	for _, b := range g.InvaderBullets {
		if !g.Running {
			return
		}
		if !Intersects(b.Rect(), g.Player.Rect()) {
			continue
		}
		b.Y = HEIGHT + InvaderBulletHitOffset
		g.playerHit()
	}

	if !g.Running {
		return
	}
	for _, inv := range g.Invaders {
		if inv.Alive && inv.Y+inv.Height >= g.Player.Y {
			g.endRun(GameOver, StatusBreakthrough)
			g.Sounds.Play(audio.GameOver)
			return
		}
	}
}

// playerHit costs one life and ends the run when none remain.
func (g *Game) playerHit() {
	g.Lives--
	if g.Lives <= 0 {
		g.Lives = 0
		g.endRun(GameOver, StatusGameOver)
		g.Sounds.Play(audio.GameOver)
		return
	}
	g.setStatus(StatusHit)
	g.Sounds.Play(audio.PlayerHit)
}
