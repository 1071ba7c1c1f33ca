//go:build !js
// +build !js

// Command tty plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/pixel-invaders/audio"
	"github.com/simukka/pixel-invaders/common"
	"github.com/simukka/pixel-invaders/game"
)

func main() {
	levelsURL := flag.String("levels-url", "http://localhost:3000/levels.json", "URL of the level catalog")
	fps := flag.Int("fps", 60, "Frames per second")
	mute := flag.Bool("mute", false, "Disable sound")
	hold := flag.Duration("hold", DefaultHoldWindow, "How long a key press counts as held")
	grace := flag.Duration("repeat-grace", DefaultRepeatGrace, "How soon after a release a press still counts as autorepeat")
	seed := flag.Uint("seed", 0, "RNG seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "Write debug log to this file")
	flag.Parse()

	// The terminal belongs to the game; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		game.EnableDebug = true
	}

	if err := run(*levelsURL, *fps, *mute, *hold, *grace, uint32(*seed)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(levelsURL string, fps int, mute bool, hold, grace time.Duration, seed uint32) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	backend := NewSpeakerBackend()
	defer backend.Close()
	sounds := audio.NewSystem(backend)
	sounds.Muted = mute
	if !mute {
		// No autoplay policy here; open the device up front.
		if sounds.TryInit() != audio.Ready {
			log.Printf("Audio unavailable, playing silently")
		}
	}

	if seed == 0 {
		seed = common.TimeSeed()
	}
	rng := common.NewSeededRNG(seed)
	g := game.NewGame(sounds, rng)
	log.Printf("Seed %d", rng.Seed())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		client := &http.Client{Timeout: 5 * time.Second}
		g.Events.Push(game.Event{Type: game.LevelsLoaded, Catalog: game.FetchLevels(ctx, client, levelsURL)})
	}()

	screen := NewScreen(s)
	hud := &HUD{}
	driver := game.NewDriver(g, screen, hud)
	tracker := NewHoldTracker(g.Events, hold, grace)

	quit := make(chan struct{})
	resized := make(chan struct{}, 1)
	go pollEvents(s, tracker, quit, resized)

	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-quit:
			return nil
		case <-resized:
			s.Sync()
			screen.Resize()
		case now := <-ticker.C:
			tracker.Expire(now)
			driver.Frame(float64(now.Sub(start)) / float64(time.Millisecond))
			screen.Show(hud)
		}
	}
}

// pollEvents forwards terminal input until a quit key arrives. It only
// pushes events; the frame loop owns the game.
func pollEvents(s tcell.Screen, tracker *HoldTracker, quit, resized chan<- struct{}) {
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			close(quit)
			return
		case *tcell.EventKey:
			if isQuit(ev) {
				close(quit)
				return
			}
			if k := translateKey(ev); k != game.KeyNone {
				tracker.Press(k, ev.When())
			}
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}
