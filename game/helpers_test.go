package game

import (
	"testing"

	"github.com/simukka/pixel-invaders/audio"
	"github.com/simukka/pixel-invaders/common"
)

// recordingSounds remembers every event the game plays.
type recordingSounds struct {
	events []audio.Event
}

func (r *recordingSounds) Play(e audio.Event) {
	r.events = append(r.events, e)
}

func (r *recordingSounds) count(e audio.Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

// quietRNG never wins a fire trial at realistic frame times.
const quietRNG = common.Fixed(0.99)

// newTestGame returns a game with levels installed (defaults when none are
// given) and no random invader fire.
func newTestGame(t *testing.T, levels ...Level) (*Game, *recordingSounds) {
	t.Helper()
	if len(levels) == 0 {
		levels = DefaultLevels()
	}
	sounds := &recordingSounds{}
	g := NewGame(sounds, quietRNG)
	g.SetCatalog(Catalog{Levels: levels})
	return g, sounds
}

// startedGame returns a game already running its first level.
func startedGame(t *testing.T, levels ...Level) (*Game, *recordingSounds) {
	t.Helper()
	g, sounds := newTestGame(t, levels...)
	if !g.RequestStart() {
		t.Fatal("Expected RequestStart to start the game")
	}
	return g, sounds
}

// drawOp is one recorded Canvas call.
type drawOp struct {
	kind       string
	x, y, w, h float64
	color      string
	text       string
	style      TextStyle
}

// recordingCanvas records every draw call in order.
type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) Clear() {
	c.ops = append(c.ops, drawOp{kind: "clear"})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, color string) {
	c.ops = append(c.ops, drawOp{kind: "fill", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordingCanvas) StrokeRect(x, y, w, h float64, color string) {
	c.ops = append(c.ops, drawOp{kind: "stroke", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordingCanvas) FillText(text string, x, y float64, style TextStyle) {
	c.ops = append(c.ops, drawOp{kind: "text", x: x, y: y, text: text, color: style.Color, style: style})
}

func (c *recordingCanvas) count(kind, color string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind && op.color == color {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) findText(text string) (drawOp, bool) {
	for _, op := range c.ops {
		if op.kind == "text" && op.text == text {
			return op, true
		}
	}
	return drawOp{}, false
}

// testLevel is a one-row level small enough to reason about by hand.
var testLevel = Level{
	ID: 1, Name: "Test Range", Rows: 1, Cols: 2,
	InvaderSpeed: 10, SpeedMultiplier: 1, InvaderDrop: 5,
	InvaderFireRate: 0.001, ShotCooldown: 100,
}
