package game

import "github.com/simukka/pixel-invaders/audio"

// Player holds the player ship state. Exactly one exists per running level;
// it is recreated by StartLevel.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Units per second
	Cooldown      float64 // Milliseconds until the next shot is allowed
}

// NewPlayer creates a player centred horizontally near the bottom edge.
func NewPlayer() *Player {
	return &Player{
		X:      WIDTH/2 - PlayerWidth/2,
		Y:      HEIGHT - PlayerBottomOffset,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
	}
}

// Rect returns the player's hitbox.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Move shifts the player by dx and clamps it inside the side margins.
func (p *Player) Move(dx float64) {
	p.X += dx
	p.Clamp()
}

// Clamp keeps the player within [Margin, WIDTH-Width-Margin].
func (p *Player) Clamp() {
	p.X = max(Margin, min(WIDTH-p.Width-Margin, p.X))
}

// CanFire reports whether the shot cooldown has elapsed.
func (p *Player) CanFire() bool {
	return p.Cooldown <= 0
}

// handleInput applies held movement keys and fires when allowed.
func (g *Game) handleInput(dt float64) {
	p := g.Player
	if p == nil {
		return
	}

	if g.Keys[KeyLeft] {
		p.X -= p.Speed * dt
	}
	if g.Keys[KeyRight] {
		p.X += p.Speed * dt
	}
	p.Clamp()

	if g.Keys[KeyFire] && p.CanFire() {
		g.Bullets = append(g.Bullets, newPlayerBullet(p))
		p.Cooldown = g.Formation.ShotCooldown
		g.Sounds.Play(audio.Shoot)
	}
}
