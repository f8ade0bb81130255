package renderer

import (
	"sync"

	"github.com/dshills/braillepad/internal/engine"
	"github.com/dshills/braillepad/internal/renderer/backend"
	"github.com/dshills/braillepad/internal/renderer/core"
)

// Reserved screen rows outside the document area.
const (
	titleRows  = 1
	statusRows = 1
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithScrollMargin sets how many lines are kept visible around the cursor.
func WithScrollMargin(lines int) Option {
	return func(r *Renderer) {
		if lines >= 0 {
			r.margin = lines
		}
	}
}

// Renderer draws engine snapshots onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend  backend.Backend
	theme    Theme
	margin   int
	viewport *Viewport
	status   StatusLine
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend: b,
		theme:   DefaultTheme(),
		margin:  2,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.viewport = NewViewport(1, r.margin)
	return r
}

// Status returns the status line for updating.
func (r *Renderer) Status() *StatusLine {
	return &r.status
}

// Viewport returns the document viewport.
func (r *Renderer) Viewport() *Viewport {
	return r.viewport
}

// Render draws a full frame.
func (r *Renderer) Render(snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	r.backend.Clear()
	if width <= 0 || height <= 0 {
		r.backend.Show()
		return
	}

	docTop, docRows := 0, height
	if height > titleRows+statusRows {
		docTop = titleRows
		docRows = height - titleRows - statusRows
		r.renderTitle(snap, width)
	}

	r.viewport.SetHeight(docRows)
	r.viewport.ScrollToReveal(snap.Cursor.Line)

	for row := 0; row < docRows; row++ {
		line := r.viewport.TopLine() + row
		if line >= len(snap.Lines) {
			break
		}
		drawCells(r.backend, 0, docTop+row, width, snap.Lines[line], r.theme.Text)
	}

	if height > titleRows+statusRows {
		r.status.line, r.status.col = snap.Cursor.Line, snap.Cursor.Column
		r.status.lines = len(snap.Lines)
		r.status.render(r.backend, height-1, width, r.theme)
	}

	r.placeCursor(snap, docTop, width)
	r.backend.Show()
}

// renderTitle draws the braille title and the mode label on row 0.
func (r *Renderer) renderTitle(snap engine.Snapshot, width int) {
	drawString(r.backend, 0, 0, core.Truncate(Title, width, ""), r.theme.Title)

	label := " " + snap.Mode.DisplayName() + " "
	x := width - core.StringWidth(label)
	if x > core.StringWidth(Title) {
		drawString(r.backend, x, 0, label, r.theme.modeStyle(snap.Mode))
	}
}

// placeCursor shows the terminal cursor on the cursor cell, or hides it
// when the cell is off screen.
func (r *Renderer) placeCursor(snap engine.Snapshot, docTop, width int) {
	pos := snap.Cursor
	if !r.viewport.IsVisible(pos.Line) {
		r.backend.HideCursor()
		return
	}

	var line []rune
	if pos.Line < len(snap.Lines) {
		line = snap.Lines[pos.Line]
	}
	x := columnOffset(line, pos.Column)
	if x >= width {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(x, docTop+pos.Line-r.viewport.TopLine())
}

// columnOffset returns the screen column of cell col. Cells past the end
// of line count as blank braille cells.
func columnOffset(line []rune, col int) int {
	x := 0
	for i := 0; i < col; i++ {
		if i < len(line) {
			x += max(1, core.RuneWidth(line[i]))
		} else {
			x += max(1, core.RuneWidth(0x2800))
		}
	}
	return x
}

// drawCells draws runes from x, stopping at width. Returns the next column.
func drawCells(b backend.Backend, x, y, width int, runes []rune, style core.Style) int {
	for _, ch := range runes {
		w := max(1, core.RuneWidth(ch))
		if x+w > width {
			break
		}
		b.SetCell(x, y, core.Cell{Rune: ch, Width: w, Style: style})
		x += w
	}
	return x
}

// drawString draws s starting at x and returns the next column.
func drawString(b backend.Backend, x, y int, s string, style core.Style) int {
	width, _ := b.Size()
	return drawCells(b, x, y, width, []rune(s), style)
}
