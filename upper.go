package fmtby

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Upper renders text with every character mapped to its upper-case form
// using full Unicode case mapping, so "ß" becomes "SS". Characters without
// case are unchanged. The mapping is language-neutral.
type Upper[T ~string] struct{}

// Render writes data upper-cased.
func (Upper[T]) Render(s Sink, data T) error {
	return upper(s, func(w io.Writer) error {
		_, err := io.WriteString(w, string(data))
		return err
	})
}

// UpperHolder upper-cases whatever the wrapped holder renders.
type UpperHolder[E any] struct{}

// Render writes the output of h upper-cased.
func (UpperHolder[E]) Render(s Sink, h Holder[E]) error {
	return upper(s, func(w io.Writer) error {
		return h.Render(redirect(s, w))
	})
}

// upper streams write's output through a fresh caser; cases.Caser keeps
// state between calls and cannot be shared.
func upper(s Sink, write func(w io.Writer) error) error {
	tw := transform.NewWriter(s, cases.Upper(language.Und))
	if err := write(tw); err != nil {
		return err
	}
	return tw.Close()
}
