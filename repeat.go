package fmtby

// Repeat renders the display form of the data N times with nothing in
// between. N of zero or less renders nothing.
type Repeat[T any] struct {
	N int
}

// Render writes data r.N times.
func (r Repeat[T]) Render(s Sink, data T) error {
	for range r.N {
		if err := display(s, data); err != nil {
			return err
		}
	}
	return nil
}
