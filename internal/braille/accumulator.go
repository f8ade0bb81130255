package braille

// Accumulator collects the dots of one chord.
// The zero value is an empty accumulator ready for use.
type Accumulator struct {
	cell Cell
}

// Press raises a dot. Pressing a raised dot again has no effect.
func (a *Accumulator) Press(dot int) error {
	bit, err := DotBit(dot)
	if err != nil {
		return err
	}
	a.cell |= bit
	return nil
}

// Release is called when a dot key goes up. Dots stay raised until Reset,
// so a chord keeps its full value while its keys come up one by one.
func (a *Accumulator) Release(dot int) error {
	_, err := DotBit(dot)
	return err
}

// Value returns the accumulated cell.
func (a *Accumulator) Value() Cell {
	return a.cell
}

// Reset lowers every dot.
func (a *Accumulator) Reset() {
	a.cell = 0
}
