//go:build js
// +build js

package game

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// ContextCanvas draws on a CanvasRenderingContext2D.
type ContextCanvas struct {
	Ctx *js.Object
}

// NewContextCanvas wraps a 2D context.
func NewContextCanvas(ctx *js.Object) *ContextCanvas {
	return &ContextCanvas{Ctx: ctx}
}

func (c *ContextCanvas) Clear() {
	c.Ctx.Call("clearRect", 0, 0, WIDTH, HEIGHT)
}

func (c *ContextCanvas) FillRect(x, y, w, h float64, color string) {
	c.Ctx.Set("fillStyle", color)
	c.Ctx.Call("fillRect", x, y, w, h)
}

func (c *ContextCanvas) StrokeRect(x, y, w, h float64, color string) {
	c.Ctx.Set("strokeStyle", color)
	c.Ctx.Set("lineWidth", 1)
	c.Ctx.Call("strokeRect", x, y, w, h)
}

func (c *ContextCanvas) FillText(text string, x, y float64, style TextStyle) {
	c.Ctx.Set("font", style.Font)
	c.Ctx.Set("fillStyle", style.Color)
	switch style.Align {
	case AlignCenter:
		c.Ctx.Set("textAlign", "center")
	case AlignRight:
		c.Ctx.Set("textAlign", "right")
	default:
		c.Ctx.Set("textAlign", "left")
	}
	c.Ctx.Call("fillText", text, x, y)
	c.Ctx.Set("textAlign", "left")
}

// FitCanvas sizes canvas to its container, capped at 68% of the viewport
// height, and scales the context so drawing stays in logical units.
func FitCanvas(canvas, ctx *js.Object) {
	container := canvas.Get("parentElement")
	maxWidth := float64(WIDTH)
	if container != nil && container != js.Undefined {
		maxWidth = container.Get("clientWidth").Float()
	}
	maxHeight := math.Min(js.Global.Get("innerHeight").Float()*0.68, 720)
	scale := math.Min(maxWidth/WIDTH, maxHeight/HEIGHT)

	ratio := 1.0
	if dpr := js.Global.Get("devicePixelRatio"); dpr != nil && dpr != js.Undefined && dpr.Float() > 0 {
		ratio = dpr.Float()
	}

	canvas.Set("width", WIDTH*scale*ratio)
	canvas.Set("height", HEIGHT*scale*ratio)
	style := canvas.Get("style")
	style.Set("width", formatPx(WIDTH*scale))
	style.Set("height", formatPx(HEIGHT*scale))
	ctx.Call("setTransform", scale*ratio, 0, 0, scale*ratio, 0, 0)
	Debug("canvas scaled:", scale, "dpr:", ratio)
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
