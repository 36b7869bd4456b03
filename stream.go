package fmtby

import (
	"io"
	"iter"
)

// WriteIter renders each item from seq in form f and writes it to w on its
// own line as it arrives. Iteration stops at the first failure.
func WriteIter[R Renderer](w io.Writer, f Form, seq iter.Seq[R]) error {
	s, err := NewSink(w, f)
	if err != nil {
		return err
	}
	for item := range seq {
		if err := item.Render(s); err != nil {
			return err
		}
		if _, err := s.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteChan renders items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[R Renderer](w io.Writer, f Form, ch <-chan R) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
