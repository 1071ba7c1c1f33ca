package game

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background
	BackgroundColor string
	StarColor       string
	BorderColor     string

	// Attract-mode prompt
	PromptColor string
	PromptFont  string

	// Player ship
	HullColor    string
	CockpitColor string
	CockpitRow   int

	// Invaders, coloured by row modulo the palette length
	InvaderRowColors []string

	// Bullets
	PlayerBulletColor  string
	InvaderBulletColor string

	// Stats overlay
	OverlayBackground string
	OverlayBorder     string
	OverlayTitleColor string
	OverlayLabelColor string
	OverlayMutedColor string
	OverlayTitleFont  string
	OverlayFont       string
}{
	// Background - deep space
	BackgroundColor: "#05070f",
	StarColor:       "rgba(139, 255, 177, 0.6)",
	BorderColor:     "rgba(104, 199, 255, 0.2)",

	PromptColor: "rgba(104, 199, 255, 0.3)",
	PromptFont:  "16px 'Share Tech Mono', 'Orbitron', monospace",

	// Player ship - mint hull, pale cockpit
	HullColor:    "#8bffb1",
	CockpitColor: "#b6fff0",
	CockpitRow:   1,

	InvaderRowColors: []string{"#68c7ff", "#8bffb1", "#ffb86c", "#ff6b88", "#b084ff"},

	PlayerBulletColor:  "#fff",
	InvaderBulletColor: "#ff6b88",

	OverlayBackground: "rgba(0, 0, 0, 0.75)",
	OverlayBorder:     "#00aaff",
	OverlayTitleColor: "#00aaff",
	OverlayLabelColor: "#cccccc",
	OverlayMutedColor: "#666666",
	OverlayTitleFont:  "bold 14px monospace",
	OverlayFont:       "12px monospace",
}

// InvaderColor returns the palette entry for a formation row.
func InvaderColor(row int) string {
	colors := Theme.InvaderRowColors
	if row < 0 {
		row = -row
	}
	return colors[row%len(colors)]
}
