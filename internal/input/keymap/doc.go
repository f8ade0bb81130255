// Package keymap maps physical keys to logical chord keys.
//
// A physical key is named the way the terminal backend reports it: a single
// printable character such as "f" or ";", or a named key such as "space",
// "tab" or "backspace". Names are case-insensitive.
//
// The default layout puts the six dots on the home row:
//
//	f d s | j k l    dots 1 2 3 | 4 5 6
//	a ;              left, right
//	g h              down, up
//	space            blank cell
//	tab              mode toggle
//	backspace        delete
//
// User bindings from configuration are merged over the defaults. Binding a
// physical key to "none" removes it.
package keymap
