package game

// Bullet is a projectile. Player and invader bullets share the shape; which
// slice holds a bullet decides its direction and target.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Units per second along the travel axis
}

// Rect returns the bullet's hitbox.
func (b *Bullet) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// newPlayerBullet spawns a bullet centred just above the player.
func newPlayerBullet(p *Player) *Bullet {
	return &Bullet{
		X:      p.X + p.Width/2 - BulletWidth/2,
		Y:      p.Y - BulletHeight,
		Width:  BulletWidth,
		Height: BulletHeight,
		Speed:  PlayerBulletSpeed,
	}
}

// newInvaderBullet spawns a bullet centred under an invader.
func newInvaderBullet(inv *Invader) *Bullet {
	return &Bullet{
		X:      inv.X + inv.Width/2 - BulletWidth/2,
		Y:      inv.Y + inv.Height,
		Width:  BulletWidth,
		Height: BulletHeight,
		Speed:  InvaderBulletSpeed,
	}
}

// updateBullets advances both streams and culls bullets that left the
// playfield. Filtering reuses the backing arrays.
func (g *Game) updateBullets(dt float64) {
	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		b.Y -= b.Speed * dt
		if b.Y+b.Height > 0 {
			kept = append(kept, b)
		}
	}
	clearTail(g.Bullets, len(kept))
	g.Bullets = kept

	kept = g.InvaderBullets[:0]
	for _, b := range g.InvaderBullets {
		b.Y += b.Speed * dt
		if b.Y < HEIGHT+InvaderBulletCullOffset {
			kept = append(kept, b)
		}
	}
	clearTail(g.InvaderBullets, len(kept))
	g.InvaderBullets = kept
}

// clearTail drops references past n so culled bullets can be collected.
func clearTail(bullets []*Bullet, n int) {
	for i := n; i < len(bullets); i++ {
		bullets[i] = nil
	}
}
