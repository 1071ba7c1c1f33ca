//go:build !js
// +build !js

package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/pixel-invaders/game"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// It must exceed the terminal's initial autorepeat delay, commonly 500 to
// 660ms, or a held key is released before its first repeat arrives.
const DefaultHoldWindow = 700 * time.Millisecond

// DefaultRepeatGrace is how long after a synthesised release a new press of
// the same key is still treated as autorepeat.
const DefaultRepeatGrace = 500 * time.Millisecond

// HoldTracker turns terminal key presses into key-down/key-up pairs.
// Terminals never report a release, so a key counts as held until no press
// for it arrived within the hold window. Presses that land while a key is
// held, or within the grace period after its release, are forwarded as
// repeats so edge-triggered actions fire once per physical press.
type HoldTracker struct {
	mu       sync.Mutex
	queue    *game.EventQueue
	window   time.Duration
	grace    time.Duration
	held     map[game.Key]time.Time
	released map[game.Key]time.Time
}

// NewHoldTracker creates a tracker feeding q. Non-positive durations pick
// the defaults.
func NewHoldTracker(q *game.EventQueue, window, grace time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if grace <= 0 {
		grace = DefaultRepeatGrace
	}
	return &HoldTracker{
		queue:    q,
		window:   window,
		grace:    grace,
		held:     make(map[game.Key]time.Time),
		released: make(map[game.Key]time.Time),
	}
}

// Press records a press of k at now.
func (h *HoldTracker) Press(k game.Key, now time.Time) {
	h.mu.Lock()
	_, repeat := h.held[k]
	if at, ok := h.released[k]; ok {
		repeat = repeat || now.Sub(at) < h.grace
		delete(h.released, k)
	}
	h.held[k] = now
	h.mu.Unlock()

	h.queue.Push(game.Event{Type: game.KeyDown, Key: k, Repeat: repeat})
}

// Expire releases every key not pressed within the window before now and
// forgets releases older than the grace period.
func (h *HoldTracker) Expire(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, last := range h.held {
		if now.Sub(last) >= h.window {
			delete(h.held, k)
			h.released[k] = now
			h.queue.Push(game.Event{Type: game.KeyUp, Key: k})
		}
	}
	for k, at := range h.released {
		if now.Sub(at) >= h.grace {
			delete(h.released, k)
		}
	}
}

// translateKey maps a terminal key event to a logical key.
func translateKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEnter:
		return game.KeyStart
	case tcell.KeyF10:
		return game.KeyStats
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyLeft
		case 'd', 'D':
			return game.KeyRight
		case ' ', 'k', 'K':
			return game.KeyFire
		case 'p', 'P':
			return game.KeyPause
		}
	}
	return game.KeyNone
}

// isQuit reports whether ev asks to leave the game.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
