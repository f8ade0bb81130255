package buffer

// DefaultWidth is the default number of cells per line.
const DefaultWidth = 40

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithWidth sets the number of cells per line.
func WithWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.width = width
		}
	}
}

// WithPadTail re-pads the tail line to full width after each delete.
// Without it the tail shrinks as cells are removed.
func WithPadTail(pad bool) Option {
	return func(d *Document) {
		d.padTail = pad
	}
}
