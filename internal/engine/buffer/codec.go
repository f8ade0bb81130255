package buffer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dshills/braillepad/internal/braille"
)

// LoadPolicy decides what Parse does with lines wider than the document.
// Lines shorter than the width are always padded with blank cells.
type LoadPolicy uint8

const (
	// PolicyPad wraps the overflow of a long line onto continuation lines,
	// padding the last one.
	PolicyPad LoadPolicy = iota

	// PolicyTruncate drops cells past the width.
	PolicyTruncate

	// PolicyReject fails the whole load with a *ConfigurationError.
	PolicyReject
)

// String returns the policy name.
func (p LoadPolicy) String() string {
	switch p {
	case PolicyPad:
		return "pad"
	case PolicyTruncate:
		return "truncate"
	case PolicyReject:
		return "reject"
	default:
		return fmt.Sprintf("LoadPolicy(%d)", p)
	}
}

// ParseLoadPolicy parses "pad", "truncate" or "reject".
func ParseLoadPolicy(s string) (LoadPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pad", "wrap", "":
		return PolicyPad, nil
	case "truncate":
		return PolicyTruncate, nil
	case "reject":
		return PolicyReject, nil
	default:
		return PolicyPad, fmt.Errorf("unknown load policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p LoadPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LoadPolicy) UnmarshalText(text []byte) error {
	v, err := ParseLoadPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Marshal writes the document: each line's cells with padding intact,
// lines separated by '\n'. No trailing newline is written.
func (d *Document) Marshal(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, line := range d.lines {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		for _, r := range line {
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// MarshalText implements encoding.TextMarshaler.
func (d *Document) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Parse reads a document written by Marshal. A single trailing newline and
// CRLF line endings are accepted. On error no document is returned.
func Parse(r io.Reader, policy LoadPolicy, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return ParseString(string(data), policy, opts...)
}

// ParseString is Parse for in-memory text.
func ParseString(text string, policy LoadPolicy, opts ...Option) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, &ConfigurationError{Reason: "not valid UTF-8", Err: ErrInvalidEncoding}
	}

	d := newDocument(opts...)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		cells := []rune(raw)

		for col, r := range cells {
			if !braille.IsCell(r) {
				return nil, &ConfigurationError{
					Line:   lineNo,
					Column: col + 1,
					Reason: fmt.Sprintf("%U is not a six-dot braille cell", r),
					Err:    braille.ErrNotBraille,
				}
			}
		}

		if len(cells) > d.width {
			switch policy {
			case PolicyReject:
				return nil, &ConfigurationError{
					Line:   lineNo,
					Reason: fmt.Sprintf("line has %d cells, limit is %d", len(cells), d.width),
					Err:    ErrLineTooLong,
				}
			case PolicyTruncate:
				cells = cells[:d.width]
			}
		}

		// Split into full-width rows; only PolicyPad can leave more than one.
		for len(cells) > d.width {
			d.lines = append(d.lines, cells[:d.width:d.width])
			cells = cells[d.width:]
		}
		line := make([]rune, 0, d.width)
		line = append(line, cells...)
		d.lines = append(d.lines, line)
		d.padLine(len(d.lines) - 1)
	}

	return d, nil
}
