// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal palette color. The zero value is the terminal's
// default color.
type Color struct {
	// Index is the palette index (0-255).
	Index uint8
	// Set is false for the default color.
	Set bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{}

// Common palette colors.
var (
	ColorBlack   = PaletteColor(0)
	ColorRed     = PaletteColor(1)
	ColorGreen   = PaletteColor(2)
	ColorYellow  = PaletteColor(3)
	ColorBlue    = PaletteColor(4)
	ColorMagenta = PaletteColor(5)
	ColorCyan    = PaletteColor(6)
	ColorWhite   = PaletteColor(7)
	ColorGray    = PaletteColor(8)
)

// PaletteColor returns the palette color with the given index.
func PaletteColor(index uint8) Color {
	return Color{Index: index, Set: true}
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return !c.Set
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("idx(%d)", c.Index)
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg}
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c == other
}

// ScreenRect is a half-open rectangle of screen cells.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}

// Width returns the number of columns.
func (r ScreenRect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the number of rows.
func (r ScreenRect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// Contains returns true if (x, y) lies inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// RuneWidth returns the display width of a rune: 0 for control
// characters, 2 for wide East Asian characters, otherwise 1.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending it with tail when
// anything was cut.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}
