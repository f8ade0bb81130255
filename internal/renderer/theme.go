package renderer

import (
	"github.com/dshills/braillepad/internal/input/mode"
	"github.com/dshills/braillepad/internal/renderer/core"
)

// Title is "Braille Notepad" in six-dot braille, capital signs included.
const Title = "⠠⠃⠗⠁⠊⠇⠇⠑⠀⠠⠝⠕⠞⠑⠏⠁⠙"

// Theme holds the styles used for each screen region.
type Theme struct {
	Title  core.Style
	Text   core.Style
	Status core.Style
	Info   core.Style
	Warn   core.Style
	Error  core.Style

	// Modes styles the mode label per editing mode.
	Modes map[mode.Mode]core.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title:  core.NewStyle(core.ColorCyan).Bold(),
		Text:   core.DefaultStyle(),
		Status: core.DefaultStyle().Reverse(),
		Info:   core.DefaultStyle().Reverse(),
		Warn:   core.NewStyle(core.ColorYellow).Reverse(),
		Error:  core.NewStyle(core.ColorRed).Reverse().Bold(),
		Modes: map[mode.Mode]core.Style{
			mode.Insert:    core.NewStyle(core.ColorBlack).WithBackground(core.ColorGreen).Bold(),
			mode.Overwrite: core.NewStyle(core.ColorBlack).WithBackground(core.ColorYellow).Bold(),
			mode.Delete:    core.NewStyle(core.ColorWhite).WithBackground(core.ColorRed).Bold(),
		},
	}
}

// modeStyle returns the label style for m.
func (t Theme) modeStyle(m mode.Mode) core.Style {
	if s, ok := t.Modes[m]; ok {
		return s
	}
	return t.Status
}
