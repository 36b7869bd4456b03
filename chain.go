package fmtby

import (
	"fmt"
	"io"
)

// Chained is the owning holder produced by chaining. Its data is another
// holder, and its strategy sees that holder as a Holder[E]. The last
// strategy attached is the outermost: it renders first and decides whether
// and how to render the wrapped holder.
//
//	fmtby.By(&n, fmtby.UpperHexProxy[int]{}).Then(fmtby.SignedHolder[int]{})
//
// A Chained is a value. Chaining, Rebuild and plain assignment produce
// independent holders; owned data is shared only through [Chained.Ptr],
// which pins the data of one holder in place.
type Chained[E any] struct {
	inner    Holder[E]
	strategy Strategy[Holder[E]]
}

func chain[E any](inner Holder[E], strategy Strategy[Holder[E]]) Chained[E] {
	return Chained[E]{inner: inner, strategy: strategy}
}

// ThenAs wraps h in a new owning holder rendered by the zero value of S.
//
//	fmtby.ThenAs[int, fmtby.SignedHolder[int]](ref)
func ThenAs[E any, S Strategy[Holder[E]]](h Holder[E]) Chained[E] {
	var strategy S
	return chain(h, Strategy[Holder[E]](strategy))
}

// Render renders the wrapped holder through the outer strategy.
func (c Chained[E]) Render(s Sink) error {
	return c.strategy.Render(s, c.inner)
}

// Format implements [fmt.Formatter].
func (c Chained[E]) Format(st fmt.State, verb rune) { format(st, verb, c) }

// String renders the holder in [Display] form.
func (c Chained[E]) String() string { return fmt.Sprint(c) }

// WriteTo renders the holder in [Display] form into w.
func (c Chained[E]) WriteTo(w io.Writer) (int64, error) { return writeTo(w, c) }

// Inner returns the innermost data of the chain.
func (c Chained[E]) Inner() E { return c.inner.Inner() }

// Ptr returns a pointer to the innermost data, or nil when the bottom of
// the chain does not give write access. Owned data is moved behind a
// pointer held by c on the first call, so later calls return the same
// pointer and copies of c taken afterwards share it. Copies taken before
// are not affected.
func (c *Chained[E]) Ptr() *E {
	switch in := c.inner.(type) {
	case Mutable[E]:
		return in.Ptr()
	case Chained[E]:
		c.inner = &in
		return in.Ptr()
	case addressable[E]:
		h, p := in.addressed()
		c.inner = h
		return p
	}
	return nil
}

// Wrapped returns the holder one level down.
func (c Chained[E]) Wrapped() Holder[E] { return c.inner }

// Strategy returns the outer strategy.
func (c Chained[E]) Strategy() Strategy[Holder[E]] { return c.strategy }

// WithInner rebuilds every layer of the chain around inner. The result
// owns its own copy of every layer above a borrowing [Ref].
func (c Chained[E]) WithInner(inner E) Chained[E] {
	c.inner = c.inner.Rebuild(inner)
	return c
}

// Rebuild implements [Holder].
func (c Chained[E]) Rebuild(inner E) Holder[E] {
	return c.WithInner(inner)
}

// Then wraps a copy of c in a new owning holder rendered by strategy.
func (c Chained[E]) Then(strategy Strategy[Holder[E]]) Chained[E] {
	return chain[E](c, strategy)
}

// ThenWith wraps a copy of c in a new owning holder rendered by fn.
func (c Chained[E]) ThenWith(fn func(s Sink, h Holder[E]) error) Chained[E] {
	return chain[E](c, StrategyFunc[Holder[E]](fn))
}
