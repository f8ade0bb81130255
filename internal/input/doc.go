// Package input turns logical key events into chord commits and commands.
//
// # Architecture
//
// The Router is the single entry point for key events. It keeps the set of
// keys currently held, accumulates dots into a braille.Accumulator, and
// hands the result of each chord to an Editor:
//
//	key.Event ──▶ Router ──▶ Editor.Commit(cell)    (any dot pressed)
//	                    └──▶ Editor.Execute(key)    (exactly one command)
//
// # Chord Completion
//
// A chord completes exactly when the held set goes from non-empty to empty
// on a release. Keys may be pressed and released in any overlapping order;
// nothing is emitted until the last one comes up. If any dot was pressed
// the chord commits a cell and command keys pressed alongside are ignored.
// Otherwise a chord holding exactly one command key executes it.
//
// Releasing a key that is not held is a ProtocolError: the chord is
// aborted and the editor is not touched.
//
// # Latch
//
// Terminals report key presses only. Latch synthesizes the missing
// releases: dots stay held until Flush, command keys typed on their own
// are pressed and released at once.
//
// # Concurrency
//
// Router is not safe for concurrent use. Serialize all key events through
// one goroutine before they reach it.
package input
