// Package key provides the logical key and key event types for chorded
// Braille input.
//
// The input collaborator resolves physical key codes to a logical Key before
// an event reaches the core:
//
//   - Dot1..Dot6: contribute a dot to the current chord
//   - Left, Right, Up, Down: cursor motion
//   - Space: commit a blank cell
//   - ModeToggle: cycle the editing mode
//   - Delete: remove the cell under the cursor
//
// An Event pairs a Key with a Phase (Press or Release).
package key
