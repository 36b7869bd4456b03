package fmtby

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where padding goes.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Padded renders the data and pads it with spaces to Width terminal
// columns. East Asian wide characters count as two columns. Text already
// wider than Width is left alone.
type Padded[T any] struct {
	Width int
	Align Alignment
}

// Render writes data padded to p.Width columns.
func (p Padded[T]) Render(s Sink, data T) error {
	text, err := capture(s, data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s, alignCell(text, p.Width, p.Align))
	return err
}

// Truncated renders the data cut to at most Width terminal columns. Cut
// text ends with Tail ("..." when empty) unless Width is too small to hold
// it. A Width of zero means no limit.
type Truncated[T any] struct {
	Width int
	Tail  string
}

// Render writes data cut to t.Width columns.
func (t Truncated[T]) Render(s Sink, data T) error {
	text, err := capture(s, data)
	if err != nil {
		return err
	}
	tail := t.Tail
	if tail == "" {
		tail = "..."
	}
	_, err = io.WriteString(s, truncateCell(text, t.Width, tail))
	return err
}

func truncateCell(s string, width int, tail string) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(tail) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, tail)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
