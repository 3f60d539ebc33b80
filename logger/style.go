package logger

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

// Badge colours.
const (
	ColorNeutral = "#77828D"
	ColorInfo    = "#1389FD"
	ColorWarn    = "#FFDB6C"
	ColorError   = "#EE4744"
	ColorUnknown = "#000000"
	ColorWhite   = "#FFFFFF"
	ColorBlack   = "#000000"
)

// BackgroundColor returns the badge background for a level.
func BackgroundColor(l Level) string {
	switch l {
	case TraceLevel, DebugLevel:
		return ColorNeutral
	case InfoLevel:
		return ColorInfo
	case WarnLevel:
		return ColorWarn
	case ErrorLevel:
		return ColorError
	default:
		return ColorUnknown
	}
}

// TextColor returns the badge text colour for a level. Warn uses black on yellow.
func TextColor(l Level) string {
	if l == WarnLevel {
		return ColorBlack
	}
	return ColorWhite
}

// cssLabel returns the devtools style directive for a badge.
func cssLabel(bg, fg string) string {
	return fmt.Sprintf("background-color: %s; color: white; border: 4px solid %s; color: %s; ", bg, bg, fg)
}

// ansiLabel renders text as a bold badge. Empty text renders as "".
func ansiLabel(bg, fg, text string, enabled bool) string {
	if text == "" {
		return ""
	}
	c := color.New(color.Bold)
	c.AddBgRGB(hexRGB(bg))
	c.AddRGB(hexRGB(fg))
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// hexRGB parses "#RRGGBB". Malformed input yields black.
func hexRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
