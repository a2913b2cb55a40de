package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Label   *color.Color
	Value   *color.Color
	Spread  *color.Color
	Count   *color.Color
	File    *color.Color
	Error   *color.Color
	Success *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:   color.New(color.FgCyan, color.Bold),
		Value:   color.New(color.FgGreen, color.Bold),
		Spread:  color.New(color.FgYellow),
		Count:   color.New(color.FgMagenta),
		File:    color.New(color.FgWhite),
		Error:   color.New(color.FgRed),
		Success: color.New(color.FgGreen),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Spread.DisableColor()
	scheme.Count.DisableColor()
	scheme.File.DisableColor()
	scheme.Error.DisableColor()
	scheme.Success.DisableColor()

	return scheme
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
