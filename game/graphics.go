package game

// Sprite is a pixel-art bitmap drawn one filled square per set cell.
type Sprite struct {
	Pixel float64
	Cells [][]bool
}

// Bitmap cells.
const (
	x = true
	o = false
)

// PlayerSprite is 10x5 cells at 4 units per cell.
var PlayerSprite = Sprite{
	Pixel: 4,
	Cells: [][]bool{
		{o, o, x, x, x, x, x, x, o, o},
		{o, x, x, x, x, x, x, x, x, o},
		{x, x, x, x, x, x, x, x, x, x},
		{x, x, x, x, x, x, x, x, x, x},
		{o, o, x, x, o, o, x, x, o, o},
	},
}

// InvaderSprite is drawn at 3 units per cell. Rows are ragged.
var InvaderSprite = Sprite{
	Pixel: 3,
	Cells: [][]bool{
		{o, o, x, x, x, x, o, o},
		{x, x, x, x, x, x, x},
		{x, x, o, x, x, o, x},
		{x, x, x, x, x, x, x},
		{o, x, o, x, x, o, x, o},
		{o, x, o, o, o, o, x, o},
	},
}

// Draw paints the sprite with its top-left corner at (x, y). shade picks
// the colour for each bitmap row.
func (s Sprite) Draw(c Canvas, x, y float64, shade func(row int) string) {
	for r, cells := range s.Cells {
		color := shade(r)
		for col, on := range cells {
			if on {
				c.FillRect(x+float64(col)*s.Pixel, y+float64(r)*s.Pixel, s.Pixel, s.Pixel, color)
			}
		}
	}
}
