package buffer

import (
	"strings"

	"github.com/dshills/braillepad/internal/braille"
)

// Document is a fixed-width, line-oriented Braille text buffer.
type Document struct {
	width   int
	lines   [][]rune
	padTail bool
}

// New creates a document holding one blank line of Width cells.
func New(opts ...Option) *Document {
	d := newDocument(opts...)
	d.lines = [][]rune{blankLine(d.width)}
	return d
}

// newDocument applies options without allocating lines.
func newDocument(opts ...Option) *Document {
	d := &Document{width: DefaultWidth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// blankLine returns n blank cells.
func blankLine(n int) []rune {
	line := make([]rune, n)
	for i := range line {
		line[i] = braille.Blank
	}
	return line
}

// Width returns the number of cells per full line.
func (d *Document) Width() int {
	return d.width
}

// PadTail reports whether the tail is re-padded after deletes.
func (d *Document) PadTail() bool {
	return d.padTail
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Len returns the total number of cells.
func (d *Document) Len() int {
	n := len(d.lines)
	return (n-1)*d.width + len(d.lines[n-1])
}

// LineLen returns the number of cells in a line, or 0 if it does not exist.
func (d *Document) LineLen(line int) int {
	if line < 0 || line >= len(d.lines) {
		return 0
	}
	return len(d.lines[line])
}

// Line returns a copy of a line's cells, or nil if it does not exist.
func (d *Document) Line(line int) []rune {
	if line < 0 || line >= len(d.lines) {
		return nil
	}
	out := make([]rune, len(d.lines[line]))
	copy(out, d.lines[line])
	return out
}

// LineText returns a line as a string.
func (d *Document) LineText(line int) string {
	return string(d.Line(line))
}

// Lines returns a deep copy of every line.
func (d *Document) Lines() [][]rune {
	out := make([][]rune, len(d.lines))
	for i := range d.lines {
		out[i] = d.Line(i)
	}
	return out
}

// CellAt returns the cell at offset.
func (d *Document) CellAt(offset int) (rune, bool) {
	if offset < 0 || offset >= d.Len() {
		return 0, false
	}
	p := d.PositionOf(offset)
	return d.lines[p.Line][p.Column], true
}

// PositionOf converts an offset to a position using the document width.
func (d *Document) PositionOf(offset int) Position {
	return PositionOf(offset, d.width)
}

// OffsetOf converts a position to an offset using the document width.
func (d *Document) OffsetOf(p Position) int {
	return OffsetOf(p, d.width)
}

// String returns every line joined by '\n'.
func (d *Document) String() string {
	var sb strings.Builder
	sb.Grow(d.Len()*3 + len(d.lines))
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	return &Document{
		width:   d.width,
		lines:   d.Lines(),
		padTail: d.padTail,
	}
}
