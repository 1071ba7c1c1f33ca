//go:build js
// +build js

package game

import "github.com/gopherjs/gopherjs/js"

func init() {
	Console = func(level string, args ...interface{}) {
		js.Global.Get("console").Call(level, args...)
	}
}
