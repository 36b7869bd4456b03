package fmtby

import "fmt"

// StrategyFunc adapts an ordinary function to a [Strategy], for one-off
// rendering without declaring a type.
type StrategyFunc[T any] func(s Sink, data T) error

// Render calls f(s, data).
func (f StrategyFunc[T]) Render(s Sink, data T) error {
	return f(s, data)
}

// RenderFunc is a closure that renders itself. It is useful for writing a
// one-off piece of output inline:
//
//	fmt.Printf("%v\n", fmtby.RenderFunc(func(s fmtby.Sink) error {
//		_, err := fmt.Fprintf(s, "[%d]", n)
//		return err
//	}))
type RenderFunc func(s Sink) error

// Render calls f(s).
func (f RenderFunc) Render(s Sink) error { return f(s) }

// Format implements [fmt.Formatter].
func (f RenderFunc) Format(st fmt.State, verb rune) { format(st, verb, f) }

// String renders f in [Display] form.
func (f RenderFunc) String() string { return fmt.Sprint(f) }
