//go:build !js
// +build !js

package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/simukka/pixel-invaders/game"
)

// cell is one terminal character of the rasterised playfield.
type cell struct {
	r      rune
	fg, bg tcell.Color
}

// Screen rasterises the logical 480x640 playfield onto a tcell screen. The
// bottom terminal row is left free for the HUD.
type Screen struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell
	background tcell.Color
}

var _ game.Canvas = (*Screen)(nil)

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	sc := &Screen{
		screen:     s,
		background: parseColor(game.Theme.BackgroundColor, tcell.ColorBlack),
	}
	sc.Resize()
	return sc
}

// Resize re-reads the terminal size. Call it after a resize event.
func (s *Screen) Resize() {
	w, h := s.screen.Size()
	s.cols = max(w, 1)
	s.rows = max(h-1, 1)
	s.cells = make([]cell, s.cols*s.rows)
}

// Size returns the playfield size in cells.
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Screen) scaleX(x float64) float64 { return x * float64(s.cols) / game.WIDTH }
func (s *Screen) scaleY(y float64) float64 { return y * float64(s.rows) / game.HEIGHT }

// span maps a logical extent to a half-open cell range of at least one cell.
func span(start, length float64, scale func(float64) float64) (int, int) {
	a := int(math.Floor(scale(start)))
	b := int(math.Ceil(scale(start + length)))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (s *Screen) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', fg: tcell.ColorWhite, bg: s.background}
	}
}

// FillRect paints the covered cells. Rectangles smaller than half a cell
// in both directions, such as stars, become a dot glyph instead.
func (s *Screen) FillRect(x, y, w, h float64, color string) {
	c := parseColor(color, s.background)
	if s.scaleX(w) < 0.5 && s.scaleY(h) < 0.5 {
		if p := s.at(int(s.scaleX(x)), int(s.scaleY(y))); p != nil {
			p.r = '.'
			p.fg = c
		}
		return
	}

	c0, c1 := span(x, w, s.scaleX)
	r0, r1 := span(y, h, s.scaleY)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if p := s.at(col, row); p != nil {
				p.r = ' '
				p.bg = c
			}
		}
	}
}

// StrokeRect outlines the covered cells with box-drawing runes.
func (s *Screen) StrokeRect(x, y, w, h float64, color string) {
	c := parseColor(color, s.background)
	c0, c1 := span(x, w, s.scaleX)
	r0, r1 := span(y, h, s.scaleY)
	c1--
	r1--

	put := func(col, row int, r rune) {
		if p := s.at(col, row); p != nil {
			p.r = r
			p.fg = c
		}
	}
	for col := c0 + 1; col < c1; col++ {
		put(col, r0, tcell.RuneHLine)
		put(col, r1, tcell.RuneHLine)
	}
	for row := r0 + 1; row < r1; row++ {
		put(c0, row, tcell.RuneVLine)
		put(c1, row, tcell.RuneVLine)
	}
	put(c0, r0, tcell.RuneULCorner)
	put(c1, r0, tcell.RuneURCorner)
	put(c0, r1, tcell.RuneLLCorner)
	put(c1, r1, tcell.RuneLRCorner)
}

// FillText writes text on the row holding baseline y, keeping each cell's
// background. Fonts are ignored.
func (s *Screen) FillText(text string, x, y float64, style game.TextStyle) {
	fg := parseColor(style.Color, s.background)
	// Terminal text has no alpha; keep faint canvas text readable.
	fg = brighten(fg, s.background)

	width := runewidth.StringWidth(text)
	col := int(math.Round(s.scaleX(x)))
	switch style.Align {
	case game.AlignCenter:
		col -= width / 2
	case game.AlignRight:
		col -= width
	}
	row := int(s.scaleY(y))

	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if p := s.at(col, row); p != nil {
			p.r = r
			p.fg = fg
		}
		col += rw
	}
}

// Show copies the rasterised cells to the terminal.
func (s *Screen) Show(hud *HUD) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			st := tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
			s.screen.SetContent(col, row, c.r, nil, st)
		}
	}
	if hud != nil {
		hud.Draw(s.screen, s.rows, s.cols)
	}
	s.screen.Show()
}

// parseColor understands the CSS forms the theme uses: #rgb, #rrggbb,
// rgb() and rgba(). Alpha is blended over bg. Unknown values are white.
func parseColor(css string, bg tcell.Color) tcell.Color {
	css = strings.TrimSpace(strings.ToLower(css))

	open, end := strings.IndexByte(css, '('), strings.LastIndexByte(css, ')')
	if open < 0 || end < open {
		if len(css) == 4 && css[0] == '#' {
			css = string([]byte{'#', css[1], css[1], css[2], css[2], css[3], css[3]})
		}
		if c := tcell.GetColor(css); c != tcell.ColorDefault {
			return c
		}
		return tcell.ColorWhite
	}

	parts := strings.Split(css[open+1:end], ",")
	if len(parts) < 3 {
		return tcell.ColorWhite
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, _ := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		ch[i] = math.Max(0, math.Min(255, v)) / 255
	}
	alpha := 1.0
	if len(parts) >= 4 {
		if a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
			alpha = math.Max(0, math.Min(1, a))
		}
	}

	br, bgc, bb := bg.RGB()
	under := colorful.Color{R: float64(br) / 255, G: float64(bgc) / 255, B: float64(bb) / 255}
	over := colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	r, g, b := over.BlendRgb(under, 1-alpha).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// brighten lifts a colour that is too close to the background to read.
func brighten(c, bg tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	br, bgc, bb := bg.RGB()
	if absDiff(r, br)+absDiff(g, bgc)+absDiff(b, bb) >= 180 {
		return c
	}
	return tcell.NewRGBColor(min(255, r*2+40), min(255, g*2+40), min(255, b*2+40))
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}
