//go:build !js
// +build !js

package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/pixel-invaders/game"
)

// newTestScreen returns a 48x32 playfield, one cell per 10x20 units.
func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(48, 33)

	s := NewScreen(sim)
	s.Clear()
	return s
}

func TestScreen_Size(t *testing.T) {
	s := newTestScreen(t)

	cols, rows := s.Size()
	if cols != 48 || rows != 32 {
		t.Errorf("Expected 48x32 with a HUD row spare, got %dx%d", cols, rows)
	}
}

func TestScreen_FillRect(t *testing.T) {
	s := newTestScreen(t)
	red := tcell.NewRGBColor(255, 0, 0)

	s.FillRect(100, 200, 40, 40, "#ff0000")

	for row := 0; row < 32; row++ {
		for col := 0; col < 48; col++ {
			inside := col >= 10 && col < 14 && row >= 10 && row < 12
			if got := s.at(col, row).bg == red; got != inside {
				t.Errorf("Cell (%d, %d): expected filled %v, got %v", col, row, inside, got)
			}
		}
	}
}

func TestScreen_FillRectClipped(t *testing.T) {
	s := newTestScreen(t)

	// Must not panic when partly off screen.
	s.FillRect(-50, -50, 100, 100, "#fff")
	s.FillRect(470, 630, 100, 100, "#fff")

	if s.at(0, 0).bg != tcell.NewRGBColor(255, 255, 255) {
		t.Error("Expected the visible part to be filled")
	}
}

func TestScreen_StarBecomesDot(t *testing.T) {
	s := newTestScreen(t)

	s.FillRect(50, 100, 1.5, 1.5, "#8bffb1")

	c := s.at(5, 5)
	if c.r != '.' {
		t.Errorf("Expected a dot, got %q", c.r)
	}
	if c.bg != s.background {
		t.Error("Expected the background to be kept")
	}
}

func TestScreen_StrokeRect(t *testing.T) {
	s := newTestScreen(t)

	s.StrokeRect(100, 200, 100, 200, "#00aaff")

	tests := []struct {
		col, row int
		expected rune
	}{
		{10, 10, tcell.RuneULCorner},
		{19, 10, tcell.RuneURCorner},
		{10, 19, tcell.RuneLLCorner},
		{19, 19, tcell.RuneLRCorner},
		{15, 10, tcell.RuneHLine},
		{15, 19, tcell.RuneHLine},
		{10, 15, tcell.RuneVLine},
		{19, 15, tcell.RuneVLine},
		{15, 15, ' '},
	}
	for _, tt := range tests {
		if got := s.at(tt.col, tt.row).r; got != tt.expected {
			t.Errorf("Cell (%d, %d): expected %q, got %q", tt.col, tt.row, tt.expected, got)
		}
	}
}

func TestScreen_FillTextAlignment(t *testing.T) {
	tests := []struct {
		name     string
		align    game.Align
		startCol int
	}{
		{"left", game.AlignLeft, 24},
		{"center", game.AlignCenter, 22},
		{"right", game.AlignRight, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScreen(t)

			s.FillText("ABCD", 240, 560, game.TextStyle{Color: "#ffffff", Align: tt.align})

			for i, r := range "ABCD" {
				if got := s.at(tt.startCol+i, 28).r; got != r {
					t.Errorf("Expected %q at column %d, got %q", r, tt.startCol+i, got)
				}
			}
		})
	}
}

func TestScreen_RendersGame(t *testing.T) {
	s := newTestScreen(t)
	g := game.NewGame(nil, nil)
	g.SetCatalog(game.Catalog{Levels: game.DefaultLevels()})

	game.Render(s, g)
	s.Show(&HUD{Score: 0, Lives: 3, Level: 1, Status: g.Status})

	if s.at(1, 0).r != tcell.RuneULCorner {
		t.Errorf("Expected the playfield border corner, got %q", s.at(1, 0).r)
	}
}

func TestParseColor(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)

	tests := []struct {
		css      string
		expected tcell.Color
	}{
		{"#fff", tcell.NewRGBColor(255, 255, 255)},
		{"#68c7ff", tcell.NewRGBColor(0x68, 0xc7, 0xff)},
		{"#FF6B88", tcell.NewRGBColor(0xff, 0x6b, 0x88)},
		{"rgb(1, 2, 3)", tcell.NewRGBColor(1, 2, 3)},
		{"rgba(200, 100, 50, 0.5)", tcell.NewRGBColor(100, 50, 25)},
		{"rgba(200, 100, 50, 0)", black},
		{"#ABC", tcell.NewRGBColor(0xaa, 0xbb, 0xcc)},
		{"red", tcell.ColorRed},
		{"rgba(300, 0, 0, 1)", tcell.NewRGBColor(255, 0, 0)},
		{"#zzz", tcell.ColorWhite},
		{"nonsense", tcell.ColorWhite},
		{"#12345", tcell.ColorWhite},
		{"rgb(1, 2)", tcell.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			if got := parseColor(tt.css, black); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBrighten(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)

	faint := tcell.NewRGBColor(20, 40, 60)
	if got := brighten(faint, black); got != tcell.NewRGBColor(80, 120, 160) {
		t.Errorf("Expected a lifted colour, got %v", got)
	}

	bright := tcell.NewRGBColor(200, 200, 200)
	if got := brighten(bright, black); got != bright {
		t.Errorf("Expected %v unchanged, got %v", bright, got)
	}
}
