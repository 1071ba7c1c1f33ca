package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrEmptyCatalog is returned when a catalog document holds no levels.
	ErrEmptyCatalog = errors.New("level catalog is empty")
	// ErrInvalidLevel is returned when a level cannot produce a formation.
	ErrInvalidLevel = errors.New("invalid level")
)

// Status strings reported after the catalog load settles.
const (
	StatusReady           = "Press Enter to start."
	StatusFallbackEmpty   = "Using fallback levels — press Enter to start."
	StatusFallbackOffline = "Using fallback levels (offline). Press Enter to start."
)

// maxCatalogSize caps how much of a response body is read.
const maxCatalogSize = 1 << 20

// Catalog is the settled result of a level load. Levels is never empty.
type Catalog struct {
	Levels   []Level
	Fallback bool
	Err      error // Why the fallback was used; nil otherwise
}

// Status returns the informational message for this load result.
func (c Catalog) Status() string {
	switch {
	case !c.Fallback:
		return StatusReady
	case errors.Is(c.Err, ErrEmptyCatalog):
		return StatusFallbackEmpty
	default:
		return StatusFallbackOffline
	}
}

// FallbackCatalog wraps the embedded levels with the reason they are used.
func FallbackCatalog(err error) Catalog {
	return Catalog{Levels: DefaultLevels(), Fallback: true, Err: err}
}

// ParseCatalog decodes either {"levels": [...]} or a bare level array.
func ParseCatalog(data []byte) ([]Level, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("parse catalog: %w", io.ErrUnexpectedEOF)
	}

	var levels []Level
	if data[0] == '[' {
		if err := json.Unmarshal(data, &levels); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	} else {
		var doc struct {
			Levels []Level `json:"levels"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		levels = doc.Levels
	}

	if len(levels) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, l := range levels {
		if !l.Valid() {
			return nil, fmt.Errorf("level %d (id %d): %w: %dx%d grid", i, l.ID, ErrInvalidLevel, l.Rows, l.Cols)
		}
	}
	return levels, nil
}

// FetchLevels loads the catalog at url. It never fails: any transport
// error, non-2xx status, malformed payload or empty result yields the
// fallback catalog with the cause recorded in Err.
func FetchLevels(ctx context.Context, client *http.Client, url string) Catalog {
	if client == nil {
		client = http.DefaultClient
	}

	levels, err := fetchLevels(ctx, client, url)
	if err != nil {
		DebugWarn("level catalog unavailable, using fallback:", err.Error())
		return FallbackCatalog(err)
	}
	Debug("loaded", len(levels), "levels from", url)
	return Catalog{Levels: levels}
}

func fetchLevels(ctx context.Context, client *http.Client, url string) ([]Level, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build levels request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch levels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch levels: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return ParseCatalog(body)
}
