//go:build !js
// +build !js

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/simukka/pixel-invaders/game"
)

// HUD collects the values the browser shows beside the canvas and draws
// them on the terminal's bottom row.
type HUD struct {
	Score, Lives, Level int
	Status              string
}

var _ game.HUD = (*HUD)(nil)

func (h *HUD) SetScore(score int)      { h.Score = score }
func (h *HUD) SetLives(lives int)      { h.Lives = lives }
func (h *HUD) SetLevel(level int)      { h.Level = level }
func (h *HUD) SetStatus(status string) { h.Status = status }

// Line formats the HUD to fit width cells.
func (h *HUD) Line(width int) string {
	line := fmt.Sprintf(" SCORE %d  LIVES %d  LEVEL %d  %s", h.Score, h.Lives, h.Level, h.Status)
	return runewidth.Truncate(line, width, "…")
}

// Draw writes the HUD line on row.
func (h *HUD) Draw(s tcell.Screen, row, width int) {
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x8b, 0xff, 0xb1)).Background(tcell.ColorBlack)
	line := runewidth.FillRight(h.Line(width), width)
	col := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		s.SetContent(col, row, r, nil, st)
		col += rw
	}
}
