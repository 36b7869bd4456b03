package fmtby

import (
	"io"
	"iter"
)

// Joined renders the elements of a slice in order with Sep between them.
// The slice is read in place.
type Joined[E any] struct {
	Sep string
}

// Render writes the elements of data separated by j.Sep.
func (j Joined[E]) Render(s Sink, data []E) error {
	for i := range data {
		if i > 0 {
			if _, err := io.WriteString(s, j.Sep); err != nil {
				return err
			}
		}
		if err := display(s, data[i]); err != nil {
			return err
		}
	}
	return nil
}

// SeqJoined is [Joined] for sequences that cannot be indexed. The sequence
// is replayed from the start on every render, so it must be reusable.
type SeqJoined[E any] struct {
	Sep string
}

// Render writes the values of seq separated by j.Sep.
func (j SeqJoined[E]) Render(s Sink, seq iter.Seq[E]) error {
	if seq == nil {
		return nil
	}
	first := true
	for v := range seq {
		if !first {
			if _, err := io.WriteString(s, j.Sep); err != nil {
				return err
			}
		}
		first = false
		if err := display(s, v); err != nil {
			return err
		}
	}
	return nil
}
