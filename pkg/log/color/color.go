// Package color provides minimal ANSI coloring for operation output.
package color

import "os"

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
)

var enabled = true //nolint:gochecknoglobals

// SetupMode disables coloring when the environment asks for plain output.
func SetupMode() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		enabled = false
	}
}

// Red colors text red.
func Red(v string) string { return colorize(red, v) }

// Green colors text green.
func Green(v string) string { return colorize(green, v) }

// Yellow colors text yellow.
func Yellow(v string) string { return colorize(yellow, v) }

// Blue colors text blue.
func Blue(v string) string { return colorize(blue, v) }

func colorize(code, v string) string {
	if !enabled {
		return v
	}
	return code + v + reset
}
