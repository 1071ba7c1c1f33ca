package game

// Invader is one cell of the formation grid.
type Invader struct {
	X, Y          float64
	Width, Height float64
	Row           int // Colour bucket
	Alive         bool
}

// Rect returns the invader's hitbox.
func (inv *Invader) Rect() Rect {
	return Rect{X: inv.X, Y: inv.Y, W: inv.Width, H: inv.Height}
}

// NewInvaders lays out level.Rows x level.Cols invaders in row-major order,
// centred horizontally. It is deterministic.
func NewInvaders(level Level) []*Invader {
	if !level.Valid() {
		return nil
	}

	invaders := make([]*Invader, 0, level.Rows*level.Cols)
	startX := (WIDTH - float64(level.Cols-1)*InvaderSpacingX) / 2

	for row := 0; row < level.Rows; row++ {
		for col := 0; col < level.Cols; col++ {
			invaders = append(invaders, &Invader{
				X:      startX + float64(col)*InvaderSpacingX,
				Y:      InvaderStartY + float64(row)*InvaderSpacingY,
				Width:  InvaderWidth,
				Height: InvaderHeight,
				Row:    row,
				Alive:  true,
			})
		}
	}
	return invaders
}

// Formation holds the per-level scalars shared by every invader.
type Formation struct {
	Direction       float64 // +1 right, -1 left
	InvaderSpeed    float64 // Units per second, multiplier applied
	InvaderDrop     float64
	InvaderFireRate float64
	ShotCooldown    float64 // Player shot cooldown in milliseconds
}

// NewFormation derives the formation scalars from a level.
func NewFormation(level Level) Formation {
	return Formation{
		Direction:       1,
		InvaderSpeed:    level.EffectiveSpeed(),
		InvaderDrop:     level.InvaderDrop,
		InvaderFireRate: level.InvaderFireRate,
		ShotCooldown:    level.ShotCooldown,
	}
}

// AliveInvaders returns the invaders still in play, in creation order.
func (g *Game) AliveInvaders() []*Invader {
	alive := make([]*Invader, 0, len(g.Invaders))
	for _, inv := range g.Invaders {
		if inv.Alive {
			alive = append(alive, inv)
		}
	}
	return alive
}

// updateInvaders advances the formation for one step. It returns false
// when the wave was already cleared, in which case the level has advanced
// and the rest of the step must be skipped.
func (g *Game) updateInvaders(dt float64) bool {
	alive := g.AliveInvaders()
	if len(alive) == 0 {
		g.waveCleared()
		return false
	}

	moveX := g.Formation.Direction * g.Formation.InvaderSpeed * dt
	hitEdge := false
	for _, inv := range alive {
		inv.X += moveX
		if inv.X < Margin || inv.X+inv.Width > WIDTH-Margin {
			hitEdge = true
		}
	}

	// One bounce for the whole formation, however many invaders crossed.
	if hitEdge {
		g.Formation.Direction = -g.Formation.Direction
		for _, inv := range alive {
			inv.Y += g.Formation.InvaderDrop
		}
	}

	// Independent Bernoulli trial per invader; the rate scales with dt.
	chance := g.Formation.InvaderFireRate * dt
	for _, inv := range alive {
		if g.RNG.Float64() < chance {
			g.InvaderBullets = append(g.InvaderBullets, newInvaderBullet(inv))
		}
	}
	return true
}
