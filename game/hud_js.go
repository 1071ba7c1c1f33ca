//go:build js
// +build js

package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// DOMHUD writes HUD values into page elements, touching the DOM only when
// a value changes.
type DOMHUD struct {
	score, lives, level, status *js.Object

	lastScore, lastLives, lastLevel int
	lastStatus                      string
}

// NewDOMHUD binds to the ui-score, ui-lives, ui-level and ui-status
// elements of doc. Missing elements are skipped.
func NewDOMHUD(doc *js.Object) *DOMHUD {
	find := func(id string) *js.Object {
		el := doc.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			DebugWarn("HUD element missing:", id)
			return nil
		}
		return el
	}
	return &DOMHUD{
		score:     find("ui-score"),
		lives:     find("ui-lives"),
		level:     find("ui-level"),
		status:    find("ui-status"),
		lastScore: -1,
		lastLives: -1,
		lastLevel: -1,
	}
}

func (h *DOMHUD) SetScore(score int) {
	if score != h.lastScore {
		h.lastScore = score
		setText(h.score, strconv.Itoa(score))
	}
}

func (h *DOMHUD) SetLives(lives int) {
	if lives != h.lastLives {
		h.lastLives = lives
		setText(h.lives, strconv.Itoa(lives))
	}
}

func (h *DOMHUD) SetLevel(level int) {
	if level != h.lastLevel {
		h.lastLevel = level
		setText(h.level, strconv.Itoa(level))
	}
}

func (h *DOMHUD) SetStatus(status string) {
	if status != h.lastStatus {
		h.lastStatus = status
		setText(h.status, status)
	}
}

func setText(el *js.Object, text string) {
	if el != nil {
		el.Set("textContent", text)
	}
}
