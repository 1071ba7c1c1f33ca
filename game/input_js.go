//go:build js
// +build js

package game

import "github.com/gopherjs/gopherjs/js"

// SetupInputHandlers forwards window key events into q. onKeyDown runs
// inside every key-down handler, where browsers allow audio to start.
func SetupInputHandlers(q *EventQueue, onKeyDown func()) {
	js.Global.Call("addEventListener", "keydown", func(event *js.Object) {
		if onKeyDown != nil {
			onKeyDown()
		}

		code := event.Get("code").String()
		if PreventsDefault(code) {
			event.Call("preventDefault")
		}

		key := TranslateCode(code)
		if key == KeyNone {
			return
		}
		if key == KeyStats {
			event.Call("preventDefault")
		}
		q.Push(Event{Type: KeyDown, Key: key, Repeat: event.Get("repeat").Bool()})
	})

	js.Global.Call("addEventListener", "keyup", func(event *js.Object) {
		key := TranslateCode(event.Get("code").String())
		if key == KeyNone {
			return
		}
		q.Push(Event{Type: KeyUp, Key: key})
	})
}
