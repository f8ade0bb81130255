// Package mode provides the editing mode state machine.
//
// Three modes decide how a committed cell is applied to the document:
//   - Insert: the cell is inserted at the cursor, shifting text right
//   - Overwrite: the cell replaces the cell under the cursor
//   - Delete: a blank commit removes the cell under the cursor
//
// The Controller starts in Insert and is advanced only by Toggle, which
// cycles Insert → Overwrite → Delete → Insert.
//
//	┌────────┐ Toggle ┌───────────┐ Toggle ┌────────┐
//	│ Insert │ ─────▶ │ Overwrite │ ─────▶ │ Delete │
//	└────────┘        └───────────┘        └────────┘
//	     ▲                  Toggle              │
//	     └──────────────────────────────────────┘
package mode
