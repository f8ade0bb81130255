// Package buffer provides the fixed-width Braille document buffer.
//
// A Document is an ordered list of lines. Every line except the last holds
// exactly Width cells; the last line (the tail) may be shorter and grows
// as content is inserted. A document always has at least one line.
//
// Cells are addressed by a linear offset into the flattened document:
//
//	line   = offset / width
//	column = offset % width
//
// Edits shift content across line boundaries:
//
//	doc := buffer.New(buffer.WithWidth(4))   // "⠀⠀⠀⠀"
//	doc.InsertAt(0, '⠁')                     // "⠁⠀⠀⠀" + tail "⠀"
//	doc.DeleteAt(0)                          // "⠀⠀⠀⠀"
//
// Serialization:
//
// Marshal writes each line's cells, lines joined by '\n', padding kept.
// Parse reads that format back, padding short lines with the blank cell
// U+2800 and handling long lines according to a LoadPolicy.
//
// Thread Safety:
//
// Document is not safe for concurrent mutation. The engine package guards
// it with a lock and hands out deep copies to readers.
package buffer
