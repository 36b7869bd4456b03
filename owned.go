package fmtby

import (
	"fmt"
	"io"
)

// Owned is the owning holder for a plain value. Unlike [Ref] it can be
// returned, stored and chained without keeping the original variable alive.
type Owned[T any, S Strategy[T]] struct {
	data     T
	strategy S
}

// ByValue attaches strategy to an owned value.
func ByValue[T any, S Strategy[T]](data T, strategy S) Owned[T, S] {
	return Owned[T, S]{data: data, strategy: strategy}
}

// AsValue attaches the zero value of strategy type S to an owned value.
func AsValue[S Strategy[T], T any](data T) Owned[T, S] {
	var strategy S
	return ByValue(data, strategy)
}

// WithValue attaches a render function to an owned value.
func WithValue[T any](data T, fn func(s Sink, data T) error) Owned[T, StrategyFunc[T]] {
	return ByValue(data, StrategyFunc[T](fn))
}

// Render renders the value through the strategy.
func (o Owned[T, S]) Render(s Sink) error {
	return o.strategy.Render(s, o.data)
}

// Format implements [fmt.Formatter].
func (o Owned[T, S]) Format(st fmt.State, verb rune) { format(st, verb, o) }

// String renders the holder in [Display] form.
func (o Owned[T, S]) String() string { return fmt.Sprint(o) }

// WriteTo renders the holder in [Display] form into w.
func (o Owned[T, S]) WriteTo(w io.Writer) (int64, error) { return writeTo(w, o) }

// Inner returns the owned value.
func (o Owned[T, S]) Inner() T { return o.data }

// Ptr gives write access to the owned value.
func (o *Owned[T, S]) Ptr() *T { return &o.data }

// Strategy returns the attached strategy.
func (o Owned[T, S]) Strategy() S { return o.strategy }

// WithInner returns an Owned with the same strategy around data.
func (o Owned[T, S]) WithInner(data T) Owned[T, S] {
	o.data = data
	return o
}

// Rebuild implements [Holder].
func (o Owned[T, S]) Rebuild(inner T) Holder[T] {
	return o.WithInner(inner)
}

// Then copies o into a new owning holder rendered by strategy. The chain
// and o do not share the value; [Chained.Ptr] reaches the chain's copy.
func (o Owned[T, S]) Then(strategy Strategy[Holder[T]]) Chained[T] {
	return chain[T](o, strategy)
}

// ThenWith copies o into a new owning holder rendered by fn.
func (o Owned[T, S]) ThenWith(fn func(s Sink, h Holder[T]) error) Chained[T] {
	return chain[T](o, StrategyFunc[Holder[T]](fn))
}

// addressed returns a fresh copy of o behind a pointer together with a
// pointer to its data.
func (o Owned[T, S]) addressed() (Holder[T], *T) {
	p := &o
	return p, &p.data
}
