package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/braillepad/internal/braille"
	"github.com/dshills/braillepad/internal/renderer/backend"
	"github.com/dshills/braillepad/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine holds the bottom line state.
type StatusLine struct {
	filename string
	modified bool
	readOnly bool

	line, col int // 0-indexed
	lines     int
	held      []string
	pending   braille.Cell

	message     string
	messageType MessageType
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetReadOnly marks the document as not savable.
func (s *StatusLine) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// SetHeld shows the names of the keys held down in the chord in progress.
func (s *StatusLine) SetHeld(names []string) {
	s.held = names
}

// SetPending shows the dots latched for the chord in progress.
func (s *StatusLine) SetPending(c braille.Cell) {
	s.pending = c
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage removes the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current status message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Text returns the status line content without styling.
func (s *StatusLine) Text() string {
	var sb strings.Builder

	name := "[No Name]"
	if s.filename != "" {
		name = filepath.Base(s.filename)
	}
	sb.WriteString(" ")
	sb.WriteString(name)
	if s.readOnly {
		sb.WriteString(" [RO]")
	}
	if s.modified {
		sb.WriteString(" [+]")
	}

	fmt.Fprintf(&sb, "  %d:%d  lines: %d", s.line+1, s.col+1, s.lines)

	if len(s.held) > 0 {
		fmt.Fprintf(&sb, "  keys: [%s]", strings.Join(s.held, " "))
	}

	if !s.pending.IsBlank() {
		sb.WriteString("  ")
		sb.WriteString(s.pending.String())
	}

	if s.message != "" {
		sb.WriteString("  ")
		sb.WriteString(s.message)
	}
	return sb.String()
}

// render draws the status line on row y.
func (s *StatusLine) render(b backend.Backend, y, width int, theme Theme) {
	style := theme.Status
	switch s.messageType {
	case MessageInfo:
		style = theme.Info
	case MessageWarning:
		style = theme.Warn
	case MessageError:
		style = theme.Error
	}

	text := core.Truncate(s.Text(), width, "…")
	x := drawString(b, 0, y, text, style)
	for ; x < width; x++ {
		b.SetCell(x, y, core.Cell{Rune: ' ', Width: 1, Style: style})
	}
}
