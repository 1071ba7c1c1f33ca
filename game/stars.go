package game

// Star is a cosmetic background point.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64 // Units per second downward
}

// NewStarfield scatters n stars across the playfield.
func NewStarfield(n int, rng Random) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Range(0, WIDTH),
			Y:     rng.Range(0, HEIGHT),
			Size:  rng.Range(StarMinSize, StarMinSize+StarSizeRange),
			Speed: rng.Range(StarMinSpeed, StarMinSpeed+StarSpeedRange),
		}
	}
	return stars
}

// UpdateStars drifts stars down, wrapping them to the top at a new x once
// they pass the bottom edge.
func UpdateStars(stars []Star, dt float64, rng Random) {
	for i := range stars {
		s := &stars[i]
		s.Y += s.Speed * dt
		if s.Y > HEIGHT {
			s.Y = StarRespawnY
			s.X = rng.Range(0, WIDTH)
		}
	}
}
