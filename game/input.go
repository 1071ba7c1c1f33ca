package game

import "sync"

// Key is a logical control. Hosts translate their raw key identifiers into
// these before queueing events.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyStart
	KeyStats
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyFire:  "fire",
	KeyPause: "pause",
	KeyStart: "start",
	KeyStats: "stats",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// KeyMap maps DOM KeyboardEvent.code values to logical keys. Each action has
// an arrow-style and a letter binding.
var KeyMap = map[string]Key{
	"ArrowLeft":  KeyLeft,
	"KeyA":       KeyLeft,
	"ArrowRight": KeyRight,
	"KeyD":       KeyRight,
	"Space":      KeyFire,
	"KeyK":       KeyFire,
	"KeyP":       KeyPause,
	"Enter":      KeyStart,
	"F10":        KeyStats,
}

// TranslateCode converts a KeyboardEvent.code to a logical key, or KeyNone.
func TranslateCode(code string) Key {
	return KeyMap[code]
}

// PreventsDefault reports whether the browser's default action for code
// should be suppressed so the page does not scroll while playing.
func PreventsDefault(code string) bool {
	switch code {
	case "ArrowLeft", "ArrowRight", "Space", "KeyA", "KeyD", "KeyK":
		return true
	}
	return false
}

// EventType identifies what an Event carries.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	LevelsLoaded
)

// Event is a message from a host to the frame loop.
type Event struct {
	Type    EventType
	Key     Key
	Repeat  bool    // Auto-repeated key-down; toggles ignore it
	Catalog Catalog // Set for LevelsLoaded
}

// EventQueue is a FIFO of host events. Push is safe from any goroutine; the
// frame loop drains it once per frame.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Take removes and returns every queued event in arrival order.
func (q *EventQueue) Take() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	events := q.events
	q.events = make([]Event, 0, cap(events))
	return events
}

// Drain applies queued events to the game. Hosts call it at the top of
// every frame, before Update.
func (g *Game) Drain() {
	for _, e := range g.Events.Take() {
		g.handleEvent(e)
	}
}

func (g *Game) handleEvent(e Event) {
	switch e.Type {
	case KeyDown:
		g.Keys[e.Key] = true
		if e.Repeat {
			return
		}
		switch e.Key {
		case KeyPause:
			g.TogglePause()
		case KeyStart:
			g.RequestStart()
		case KeyStats:
			g.StatsOverlay.Toggle()
		}
	case KeyUp:
		delete(g.Keys, e.Key)
	case LevelsLoaded:
		g.SetCatalog(e.Catalog)
	}
}
