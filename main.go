//go:build js
// +build js

package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/pixel-invaders/audio"
	"github.com/simukka/pixel-invaders/common"
	"github.com/simukka/pixel-invaders/game"
)

// levelsPath is resolved against the page URL so the client works when
// hosted under a sub-path.
const levelsPath = "levels.json?v=20260117"

func main() {
	game.EnableDebug = strings.Contains(js.Global.Get("location").Get("search").String(), "debug")

	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "game")
	if canvas == nil || canvas == js.Undefined {
		game.DebugError("canvas element #game not found")
		panic("canvas element not found")
	}
	ctx := canvas.Call("getContext", "2d")

	game.FitCanvas(canvas, ctx)
	js.Global.Call("addEventListener", "resize", func() {
		game.FitCanvas(canvas, ctx)
	})

	sounds := audio.NewSystem(audio.NewWebAudioBackend())
	g := game.NewGame(sounds, common.NewSeededRNG(common.TimeSeed()))

	// Audio may only start from a user gesture.
	game.SetupInputHandlers(g.Events, sounds.Resume)

	go loadLevels(g.Events)

	driver := game.NewDriver(g, game.NewContextCanvas(ctx), game.NewDOMHUD(doc))
	driver.Run()

	select {}
}

// loadLevels fetches the catalog once and hands the settled result to the
// frame loop.
func loadLevels(q *game.EventQueue) {
	url := js.Global.Get("URL").New(levelsPath, js.Global.Get("location").Get("href")).Call("toString").String()
	catalog := game.FetchLevels(context.Background(), http.DefaultClient, url)
	q.Push(game.Event{Type: game.LevelsLoaded, Catalog: catalog})
}
