package game

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how FillText paints.
type TextStyle struct {
	Font  string
	Color string
	Align Align
}

// Canvas is the drawing surface the renderer paints in logical units.
// Hosts adapt it to a 2D context or a terminal grid.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, color string)
	StrokeRect(x, y, w, h float64, color string)
	FillText(text string, x, y float64, style TextStyle)
}

// Render paints the current state. While no run is active it shows the
// attract-mode preview instead of the live entities.
func Render(c Canvas, g *Game) {
	c.Clear()
	c.FillRect(0, 0, WIDTH, HEIGHT, Theme.BackgroundColor)

	for _, s := range g.Stars {
		c.FillRect(s.X, s.Y, s.Size, s.Size, Theme.StarColor)
	}

	c.StrokeRect(BorderInset, BorderInset, WIDTH-2*BorderInset, HEIGHT-2*BorderInset, Theme.BorderColor)

	if !g.Running {
		renderPreview(c, g)
	} else {
		if g.Player != nil {
			renderPlayer(c, g.Player)
		}
		renderInvaders(c, g.Invaders)
		renderBullets(c, g)
	}

	g.StatsOverlay.Render(c, g)
}

// renderPreview draws the idle screen, materialising a placeholder player
// and formation the first time so the screen is never empty.
func renderPreview(c Canvas, g *Game) {
	g.ensurePreview()

	renderInvaders(c, g.Invaders)
	renderPlayer(c, g.Player)

	c.FillText(PromptText, WIDTH/2, HEIGHT-PromptOffset, TextStyle{
		Font:  Theme.PromptFont,
		Color: Theme.PromptColor,
		Align: AlignCenter,
	})
}

func (g *Game) ensurePreview() {
	if g.Player == nil {
		g.Player = NewPlayer()
	}
	if len(g.Invaders) == 0 {
		preview := Level{Rows: PreviewRows, Cols: PreviewCols}
		if len(g.Levels) > 0 {
			preview = g.Levels[0]
		}
		g.Invaders = NewInvaders(preview)
	}
}

func renderPlayer(c Canvas, p *Player) {
	PlayerSprite.Draw(c, p.X, p.Y, func(row int) string {
		if row == Theme.CockpitRow {
			return Theme.CockpitColor
		}
		return Theme.HullColor
	})
}

func renderInvaders(c Canvas, invaders []*Invader) {
	for _, inv := range invaders {
		if !inv.Alive {
			continue
		}
		color := InvaderColor(inv.Row)
		InvaderSprite.Draw(c, inv.X, inv.Y, func(int) string { return color })
	}
}

func renderBullets(c Canvas, g *Game) {
	for _, b := range g.Bullets {
		c.FillRect(b.X, b.Y, b.Width, b.Height, Theme.PlayerBulletColor)
	}
	for _, b := range g.InvaderBullets {
		c.FillRect(b.X, b.Y, b.Width, b.Height, Theme.InvaderBulletColor)
	}
}
