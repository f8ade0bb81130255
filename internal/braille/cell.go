package braille

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by cell operations.
var (
	// ErrInvalidDot indicates a dot number outside 1..6.
	ErrInvalidDot = errors.New("invalid dot")

	// ErrNotBraille indicates a rune outside the six-dot Braille block.
	ErrNotBraille = errors.New("rune is not a six-dot braille cell")
)

const (
	// DotCount is the number of dots in a cell.
	DotCount = 6

	// Base is the code point of the blank cell and the start of the block.
	Base rune = 0x2800

	// Blank is the blank (no dots raised) cell.
	Blank rune = Base

	// Last is the highest six-dot code point.
	Last rune = Base + MaxValue

	// MaxValue is the value with all six dots raised.
	MaxValue = 1<<DotCount - 1
)

// Cell is a six-dot Braille cell. Bit n-1 is set when dot n is raised.
type Cell uint8

// ValidDot reports whether dot names one of the six dots.
func ValidDot(dot int) bool {
	return dot >= 1 && dot <= DotCount
}

// DotBit returns the bit for a dot number.
func DotBit(dot int) (Cell, error) {
	if !ValidDot(dot) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDot, dot)
	}
	return Cell(1) << (dot - 1), nil
}

// FromDots builds a cell from dot numbers. Duplicates are allowed.
func FromDots(dots ...int) (Cell, error) {
	var c Cell
	for _, d := range dots {
		bit, err := DotBit(d)
		if err != nil {
			return 0, err
		}
		c |= bit
	}
	return c, nil
}

// FromRune converts a code point in U+2800..U+283F to a cell.
func FromRune(r rune) (Cell, error) {
	if !IsCell(r) {
		return 0, fmt.Errorf("%w: %U", ErrNotBraille, r)
	}
	return Cell(r - Base), nil
}

// IsCell reports whether r lies in the six-dot Braille block.
func IsCell(r rune) bool {
	return r >= Base && r <= Last
}

// Rune returns the Unicode code point for the cell.
func (c Cell) Rune() rune {
	return Base + rune(c&MaxValue)
}

// Value returns the numeric cell value, 0..63.
func (c Cell) Value() int {
	return int(c & MaxValue)
}

// IsBlank returns true if no dot is raised.
func (c Cell) IsBlank() bool {
	return c&MaxValue == 0
}

// Has returns true if the given dot is raised.
func (c Cell) Has(dot int) bool {
	bit, err := DotBit(dot)
	if err != nil {
		return false
	}
	return c&bit != 0
}

// Dots returns the raised dot numbers in ascending order.
func (c Cell) Dots() []int {
	dots := make([]int, 0, DotCount)
	for d := 1; d <= DotCount; d++ {
		if c.Has(d) {
			dots = append(dots, d)
		}
	}
	return dots
}

// String returns the glyph followed by its dot list, e.g. "⠉(1-4)".
func (c Cell) String() string {
	dots := c.Dots()
	if len(dots) == 0 {
		return string(c.Rune()) + "(blank)"
	}
	parts := make([]string, len(dots))
	for i, d := range dots {
		parts[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("%c(%s)", c.Rune(), strings.Join(parts, "-"))
}
