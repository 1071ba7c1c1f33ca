//go:build !js
// +build !js

package main

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

//go:embed index.html
var indexHTML []byte

func main() {
	cfg, err := LoadConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewServer(cfg, indexHTML).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Pixel Invaders server running on http://localhost:%d", cfg.Port)
	log.Printf("Serving static files from: %s", cfg.StaticDir)
	log.Printf("Level catalog: %s", cfg.LevelsPath)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
