// Package engine provides the Braille editing engine.
//
// The engine owns the document buffer, the cursor and the mode controller
// and applies chord results to them. It implements the editor side of the
// input router:
//
//   - Commit(cell) writes a cell according to the current mode
//   - Execute(key) runs a command key (motion, space, mode toggle, delete)
//
// # Mode dispatch
//
//	Insert     Commit → InsertAt(cursor), cursor advances
//	Overwrite  Commit → OverwriteAt(cursor), cursor advances
//	Delete     blank Commit → DeleteAt(cursor), cursor stays;
//	           non-blank Commit is rejected with ErrRejectedInDeleteMode
//
// Space is a blank commit and goes through the same path. The Delete key
// removes the cell under the cursor in every mode.
//
// # Normalization
//
// After every operation that can move the cursor the engine makes sure the
// cursor's line exists in the document. This is the only place lines are
// created for cursor motion.
//
// # Thread Safety
//
// All Engine operations are thread-safe. A renderer running on another
// goroutine should use Snapshot to get a consistent view.
package engine
