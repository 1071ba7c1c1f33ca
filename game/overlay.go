package game

import (
	"strconv"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      WIDTH - 196,
		PanelY:      16,
		LineHeight:  16,
		PanelWidth:  180,
		PanelHeight: 212,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	if s == nil {
		return
	}
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	if s == nil {
		return
	}
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(c Canvas, g *Game) {
	if s == nil || !s.Visible {
		return
	}

	// Hitboxes
	if g.Player != nil {
		p := g.Player.Rect()
		c.StrokeRect(p.X, p.Y, p.W, p.H, "#00ff00")
	}
	for _, inv := range g.Invaders {
		if inv.Alive {
			c.StrokeRect(inv.X, inv.Y, inv.Width, inv.Height, "#ff0066")
		}
	}

	c.FillRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight, Theme.OverlayBackground)
	c.StrokeRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight, Theme.OverlayBorder)

	c.FillText("GAME STATS [F10]", s.PanelX+10, s.PanelY+20, TextStyle{
		Font:  Theme.OverlayTitleFont,
		Color: Theme.OverlayTitleColor,
	})

	y := s.PanelY + 44
	s.drawStatLine(c, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight

	y += 5
	c.FillText("── Session ──", s.PanelX+10, y, TextStyle{Font: Theme.OverlayFont, Color: Theme.OverlayMutedColor})
	y += s.LineHeight

	s.drawStatLine(c, "Phase", g.Phase().String(), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(c, "Level", strconv.Itoa(g.LevelID()), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(c, "Score", strconv.Itoa(g.Score), "#ffff00", y)
	y += s.LineHeight
	s.drawStatLine(c, "Lives", strconv.Itoa(g.Lives), s.livesColor(g.Lives), y)
	y += s.LineHeight

	y += 5
	c.FillText("── Formation ──", s.PanelX+10, y, TextStyle{Font: Theme.OverlayFont, Color: Theme.OverlayMutedColor})
	y += s.LineHeight

	alive := strconv.Itoa(len(g.AliveInvaders())) + "/" + strconv.Itoa(len(g.Invaders))
	s.drawStatLine(c, "Invaders", alive, "#ff0066", y)
	y += s.LineHeight
	s.drawStatLine(c, "Speed", strconv.FormatFloat(g.Formation.InvaderSpeed, 'f', 1, 64), "#aaaaaa", y)
	y += s.LineHeight
	s.drawStatLine(c, "Bullets", strconv.Itoa(len(g.Bullets)), "#ff8800", y)
	y += s.LineHeight
	s.drawStatLine(c, "Incoming", strconv.Itoa(len(g.InvaderBullets)), "#ff4400", y)
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(c Canvas, label, value, valueColor string, y float64) {
	c.FillText(label+":", s.PanelX+15, y, TextStyle{Font: Theme.OverlayFont, Color: Theme.OverlayLabelColor})
	c.FillText(value, s.PanelX+s.PanelWidth-15, y, TextStyle{Font: Theme.OverlayFont, Color: valueColor, Align: AlignRight})
}

// livesColor returns a color based on remaining lives
func (s *StatsOverlay) livesColor(lives int) string {
	if lives >= StartingLives {
		return "#00ff00"
	} else if lives > 1 {
		return "#ffff00"
	} else {
		return "#ff0000"
	}
}
