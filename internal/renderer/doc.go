// Package renderer draws the editing state onto a backend.
//
// The screen is split into three regions:
//
//	┌──────────────────────────────────────────┐
//	│ title (braille)              [ INSERT ]  │  row 0
//	├──────────────────────────────────────────┤
//	│ document lines, scrolled by a Viewport   │  rows 1..h-2
//	├──────────────────────────────────────────┤
//	│ status: file, position, message          │  row h-1
//	└──────────────────────────────────────────┘
//
// Column positions are measured with go-runewidth, so the cursor lands on
// the right cell even on terminals that draw some runes double width.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	r.Render(eng.Snapshot())
package renderer
