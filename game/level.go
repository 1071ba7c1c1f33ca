package game

import "strconv"

// Level is one entry of the level catalog. Levels are immutable once
// loaded; their order in the catalog is the progression order.
type Level struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	InvaderSpeed    float64 `json:"invaderSpeed"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	InvaderDrop     float64 `json:"invaderDrop"`
	InvaderFireRate float64 `json:"invaderFireRate"` // Shots per invader per second
	ShotCooldown    float64 `json:"shotCooldown"`    // Milliseconds between player shots
}

// Title returns the announcement shown when the level starts.
func (l Level) Title() string {
	return "Level " + strconv.Itoa(l.ID) + ": " + l.Name
}

// EffectiveSpeed is the formation's horizontal speed in units per second.
func (l Level) EffectiveSpeed() float64 {
	return l.InvaderSpeed * l.SpeedMultiplier
}

// Valid reports whether the level can produce a formation.
func (l Level) Valid() bool {
	return l.Rows > 0 && l.Cols > 0
}

var defaultLevels = []Level{
	{ID: 1, Name: "Training Orbit", Rows: 3, Cols: 7, InvaderSpeed: 32, SpeedMultiplier: 0.75, InvaderDrop: 16, InvaderFireRate: 0.0015, ShotCooldown: 550},
	{ID: 2, Name: "Moon Skirmish", Rows: 4, Cols: 8, InvaderSpeed: 40, SpeedMultiplier: 0.9, InvaderDrop: 18, InvaderFireRate: 0.0025, ShotCooldown: 520},
	{ID: 3, Name: "Asteroid Belt", Rows: 4, Cols: 9, InvaderSpeed: 50, SpeedMultiplier: 1.05, InvaderDrop: 20, InvaderFireRate: 0.0035, ShotCooldown: 490},
	{ID: 4, Name: "Nebula Push", Rows: 5, Cols: 9, InvaderSpeed: 60, SpeedMultiplier: 1.2, InvaderDrop: 22, InvaderFireRate: 0.0045, ShotCooldown: 460},
	{ID: 5, Name: "Void Siege", Rows: 5, Cols: 10, InvaderSpeed: 72, SpeedMultiplier: 1.35, InvaderDrop: 24, InvaderFireRate: 0.0055, ShotCooldown: 430},
}

// DefaultLevels returns a fresh copy of the embedded fallback catalog.
func DefaultLevels() []Level {
	levels := make([]Level, len(defaultLevels))
	copy(levels, defaultLevels)
	return levels
}
