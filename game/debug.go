package game

import (
	"fmt"
	"log"
)

var EnableDebug = false

// Console receives debug output. level is "log", "warn" or "error". The
// browser build routes it to the developer console; elsewhere it goes to
// the standard logger.
var Console = func(level string, args ...interface{}) {
	log.Println(append([]interface{}{"[" + level + "]"}, args...)...)
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		Console("log", args...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		Console("log", fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		Console("warn", args...)
	}
}

// DebugError logs an error if debug mode is enabled.
func DebugError(args ...interface{}) {
	if EnableDebug {
		Console("error", args...)
	}
}
