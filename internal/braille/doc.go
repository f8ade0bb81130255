// Package braille provides six-dot Braille cell values and the chord
// accumulator used while dot keys are held.
//
// A Cell stores one bit per raised dot. Dot n (1..6) occupies bit n-1, so
// the cell value ranges over 0..63 and maps directly onto the Unicode
// Braille Patterns block:
//
//	rune = U+2800 + value
//
// The value 0 is the blank cell U+2800.
//
// # Accumulator
//
// An Accumulator collects dots while a chord is being held. Releasing a dot
// does not clear it; the accumulated value stays available until Reset is
// called after the whole chord has been released.
//
//	var acc braille.Accumulator
//	acc.Press(1)
//	acc.Press(4)
//	acc.Value().Rune() // '⠉' (U+2809)
//	acc.Reset()
package braille
