package fmtby

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styled renders the data and applies a lipgloss style to the result.
// Colors and text attributes follow the style's renderer, which drops
// escape codes when the output is not a terminal.
type Styled[T any] struct {
	Style lipgloss.Style
}

// Render writes data with st.Style applied.
func (st Styled[T]) Render(s Sink, data T) error {
	text, err := capture(s, data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s, st.Style.Render(text))
	return err
}
