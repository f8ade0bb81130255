package buffer

import (
	"fmt"
	"slices"

	"github.com/dshills/braillepad/internal/braille"
)

// InsertAt inserts ch at offset, shifting every later cell right by one.
// Cells pushed past the end of a line move to the start of the next line,
// and a new tail line is created when the last line overflows.
// Offsets past the end are first filled with blank cells.
func (d *Document) InsertAt(offset int, ch rune) error {
	if offset < 0 {
		return d.rangeError(offset)
	}
	if !braille.IsCell(ch) {
		return fmt.Errorf("%w: %U", ErrInvalidCell, ch)
	}

	d.padTo(offset)

	p := d.PositionOf(offset)
	if p.Line == len(d.lines) {
		d.lines = append(d.lines, make([]rune, 0, d.width))
	}
	d.lines[p.Line] = slices.Insert(d.lines[p.Line], p.Column, ch)

	// Carry overflow down the document one cell per line.
	for i := p.Line; len(d.lines[i]) > d.width; i++ {
		overflow := d.lines[i][d.width]
		d.lines[i] = d.lines[i][:d.width]
		if i+1 == len(d.lines) {
			d.lines = append(d.lines, make([]rune, 0, d.width))
		}
		d.lines[i+1] = slices.Insert(d.lines[i+1], 0, overflow)
	}
	return nil
}

// OverwriteAt replaces the cell at offset with ch.
// Fails with ErrOffsetOutOfRange unless the offset holds a cell.
func (d *Document) OverwriteAt(offset int, ch rune) error {
	if offset < 0 || offset >= d.Len() {
		return d.rangeError(offset)
	}
	if !braille.IsCell(ch) {
		return fmt.Errorf("%w: %U", ErrInvalidCell, ch)
	}

	p := d.PositionOf(offset)
	d.lines[p.Line][p.Column] = ch
	return nil
}

// DeleteAt removes the cell at offset, shifting every later cell left by
// one across line boundaries. An emptied tail line is removed.
// Fails with ErrOffsetOutOfRange unless the offset holds a cell.
func (d *Document) DeleteAt(offset int) error {
	if offset < 0 || offset >= d.Len() {
		return d.rangeError(offset)
	}

	p := d.PositionOf(offset)
	d.lines[p.Line] = slices.Delete(d.lines[p.Line], p.Column, p.Column+1)

	// Pull the first cell of each following line up into the gap.
	for i := p.Line; i+1 < len(d.lines); i++ {
		next := d.lines[i+1]
		if len(next) == 0 {
			break
		}
		d.lines[i] = append(d.lines[i], next[0])
		d.lines[i+1] = slices.Delete(next, 0, 1)
	}

	d.trimTail()
	if d.padTail {
		d.padLine(len(d.lines) - 1)
	}
	return nil
}

// EnsureLineExists appends blank lines until line is a valid index.
// The tail is padded to full width before new lines are added.
func (d *Document) EnsureLineExists(line int) {
	if line < len(d.lines) {
		return
	}
	d.padLine(len(d.lines) - 1)
	for len(d.lines) <= line {
		d.lines = append(d.lines, blankLine(d.width))
	}
}

// padTo appends blank cells until Len() >= n.
func (d *Document) padTo(n int) {
	for d.Len() < n {
		last := len(d.lines) - 1
		if len(d.lines[last]) == d.width {
			d.lines = append(d.lines, make([]rune, 0, d.width))
			last++
		}
		need := min(n-d.Len(), d.width-len(d.lines[last]))
		for range need {
			d.lines[last] = append(d.lines[last], braille.Blank)
		}
	}
}

// padLine fills a line with blank cells up to full width.
func (d *Document) padLine(line int) {
	for len(d.lines[line]) < d.width {
		d.lines[line] = append(d.lines[line], braille.Blank)
	}
}

// trimTail removes empty trailing lines, keeping at least one.
func (d *Document) trimTail() {
	for len(d.lines) > 1 && len(d.lines[len(d.lines)-1]) == 0 {
		d.lines = d.lines[:len(d.lines)-1]
	}
}

func (d *Document) rangeError(offset int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrOffsetOutOfRange, offset, d.Len())
}
