//go:build !js
// +build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when neither a flag, the environment nor .env sets a value.
const (
	DefaultPort       = 3000
	DefaultStaticDir  = "public"
	DefaultLevelsPath = "data/levels.json"
	DefaultEnvFile    = ".env"
)

// Config holds server settings.
type Config struct {
	Port       int
	StaticDir  string
	LevelsPath string
}

// LoadConfig resolves settings from args, then the environment (through
// lookup), then the optional .env file, then defaults. A missing .env file
// is not an error.
func LoadConfig(args []string, lookup func(string) (string, bool)) (Config, error) {
	fset := flag.NewFlagSet("server", flag.ContinueOnError)
	envFile := fset.String("env", DefaultEnvFile, "Optional dotenv file with PORT, STATIC_DIR and LEVELS_PATH")
	port := fset.Int("port", DefaultPort, "HTTP server port (env PORT)")
	staticDir := fset.String("static", DefaultStaticDir, "Directory to serve static files from (env STATIC_DIR)")
	levelsPath := fset.String("levels", DefaultLevelsPath, "Level catalog JSON file (env LEVELS_PATH)")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	dotenv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", *envFile, err)
	}

	explicit := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	cfg := Config{Port: *port, StaticDir: *staticDir, LevelsPath: *levelsPath}
	if v, ok := get("PORT"); ok && !explicit["port"] {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v, ok := get("STATIC_DIR"); ok && !explicit["static"] {
		cfg.StaticDir = v
	}
	if v, ok := get("LEVELS_PATH"); ok && !explicit["levels"] {
		cfg.LevelsPath = v
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	return cfg, nil
}
