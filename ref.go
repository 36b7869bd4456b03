package fmtby

import (
	"fmt"
	"io"
)

// Ref is the borrowing holder: it pairs a pointer to data with a strategy
// and renders the data through the strategy without copying it. A Ref sees
// changes made to the data after it was created.
//
// The zero Ref has no data and panics when rendered.
type Ref[T any, S Strategy[T]] struct {
	data     *T
	strategy S
}

// By attaches strategy to the data behind the pointer.
//
//	fmt.Println(fmtby.By(&n, fmtby.Signed[int]{})) // 正42
func By[T any, S Strategy[T]](data *T, strategy S) Ref[T, S] {
	return Ref[T, S]{data: data, strategy: strategy}
}

// As attaches the zero value of strategy type S to the data.
//
//	fmtby.As[fmtby.Upper[string]](&s)
func As[S Strategy[T], T any](data *T) Ref[T, S] {
	var strategy S
	return By(data, strategy)
}

// With attaches a render function to the data.
func With[T any](data *T, fn func(s Sink, data T) error) Ref[T, StrategyFunc[T]] {
	return By(data, StrategyFunc[T](fn))
}

// Render renders the data through the strategy.
func (r Ref[T, S]) Render(s Sink) error {
	return r.strategy.Render(s, *r.data)
}

// Format implements [fmt.Formatter]. Every verb renders through the same
// strategy call; the verb is only visible through [Sink.Form].
func (r Ref[T, S]) Format(st fmt.State, verb rune) { format(st, verb, r) }

// String renders the holder in [Display] form.
func (r Ref[T, S]) String() string { return fmt.Sprint(r) }

// WriteTo renders the holder in [Display] form into w.
func (r Ref[T, S]) WriteTo(w io.Writer) (int64, error) { return writeTo(w, r) }

// Inner returns the borrowed data.
func (r Ref[T, S]) Inner() T { return *r.data }

// Ptr returns the borrowed pointer.
func (r Ref[T, S]) Ptr() *T { return r.data }

// Strategy returns the attached strategy.
func (r Ref[T, S]) Strategy() S { return r.strategy }

// WithInner returns a Ref with the same strategy borrowing data instead.
func (r Ref[T, S]) WithInner(data *T) Ref[T, S] {
	r.data = data
	return r
}

// Rebuild implements [Holder].
func (r Ref[T, S]) Rebuild(inner T) Holder[T] {
	return r.WithInner(&inner)
}

// Then wraps r in a new owning holder rendered by strategy.
func (r Ref[T, S]) Then(strategy Strategy[Holder[T]]) Chained[T] {
	return chain[T](r, strategy)
}

// ThenWith wraps r in a new owning holder rendered by fn.
func (r Ref[T, S]) ThenWith(fn func(s Sink, h Holder[T]) error) Chained[T] {
	return chain[T](r, StrategyFunc[Holder[T]](fn))
}
