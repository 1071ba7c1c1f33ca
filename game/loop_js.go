//go:build js
// +build js

package game

import "github.com/gopherjs/gopherjs/js"

// Run schedules Frame on every requestAnimationFrame callback for the
// lifetime of the page.
func (d *Driver) Run() {
	var tick func(timestamp float64)
	tick = func(timestamp float64) {
		d.Frame(timestamp)
		js.Global.Call("requestAnimationFrame", tick)
	}
	js.Global.Call("requestAnimationFrame", tick)
}
