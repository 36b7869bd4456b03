package fmtby

import (
	"cmp"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// FormProxy renders data in a fixed form, whatever form was requested from
// the holder. The zero FormProxy renders in [Display] form.
type FormProxy[T any] struct {
	Form Form
}

// Render writes data formatted with p.Form.
func (p FormProxy[T]) Render(s Sink, data T) error {
	f := p.Form
	if f == "" {
		f = Display
	}
	return renderIn(s, f, data)
}

// The fixed-form proxies below have no fields, so they work with [As] and
// [AsValue].

// DisplayProxy renders the data with %v.
type DisplayProxy[T any] struct{}

// Render implements [Strategy].
func (DisplayProxy[T]) Render(s Sink, data T) error { return renderIn(s, Display, data) }

// VerboseProxy renders the data with %+v.
type VerboseProxy[T any] struct{}

// Render implements [Strategy].
func (VerboseProxy[T]) Render(s Sink, data T) error { return renderIn(s, Verbose, data) }

// DebugProxy renders the data with %#v.
type DebugProxy[T any] struct{}

// Render implements [Strategy].
func (DebugProxy[T]) Render(s Sink, data T) error { return renderIn(s, Debug, data) }

// TextProxy renders the data with %s.
type TextProxy[T any] struct{}

// Render implements [Strategy].
func (TextProxy[T]) Render(s Sink, data T) error { return renderIn(s, Text, data) }

// QuotedProxy renders the data with %q.
type QuotedProxy[T any] struct{}

// Render implements [Strategy].
func (QuotedProxy[T]) Render(s Sink, data T) error { return renderIn(s, Quoted, data) }

// BinaryProxy renders the data with %b.
type BinaryProxy[T any] struct{}

// Render implements [Strategy].
func (BinaryProxy[T]) Render(s Sink, data T) error { return renderIn(s, Binary, data) }

// OctalProxy renders the data with %o.
type OctalProxy[T any] struct{}

// Render implements [Strategy].
func (OctalProxy[T]) Render(s Sink, data T) error { return renderIn(s, Octal, data) }

// HexProxy renders the data with %x.
type HexProxy[T any] struct{}

// Render implements [Strategy].
func (HexProxy[T]) Render(s Sink, data T) error { return renderIn(s, Hex, data) }

// UpperHexProxy renders the data with %X.
type UpperHexProxy[T any] struct{}

// Render implements [Strategy].
func (UpperHexProxy[T]) Render(s Sink, data T) error { return renderIn(s, UpperHex, data) }

// ExpProxy renders the data with %e.
type ExpProxy[T any] struct{}

// Render implements [Strategy].
func (ExpProxy[T]) Render(s Sink, data T) error { return renderIn(s, Exp, data) }

// UpperExpProxy renders the data with %E.
type UpperExpProxy[T any] struct{}

// Render implements [Strategy].
func (UpperExpProxy[T]) Render(s Sink, data T) error { return renderIn(s, UpperExp, data) }

// PointerProxy renders the data with %p.
type PointerProxy[T any] struct{}

// Render implements [Strategy].
func (PointerProxy[T]) Render(s Sink, data T) error { return renderIn(s, Pointer, data) }

// FuncProxy renders a [RenderFunc] held as data by calling it.
type FuncProxy struct{}

// Render calls fn.
func (FuncProxy) Render(s Sink, fn RenderFunc) error { return fn(s) }

// --- Shared leaf helpers ---

func renderIn(s Sink, f Form, data any) error {
	_, err := fmt.Fprintf(s, string(f), data)
	return err
}

// display writes v in its default textual form. Renderers render straight
// into s, so their errors and the requested form both pass through.
func display(s Sink, v any) error {
	if r, ok := v.(Renderer); ok {
		return r.Render(s)
	}
	if str, ok := v.(string); ok {
		_, err := io.WriteString(s, str)
		return err
	}
	_, err := fmt.Fprint(s, v)
	return err
}

// debug writes v the way map entries are shown. Strings are quoted, and
// slices, arrays and maps are written as [a, b] and {k: v} with their
// elements shown the same way. Renderers and everything else use their
// display form.
func debug(s Sink, v any) error {
	return debugValue(s, reflect.ValueOf(v))
}

func debugValue(s Sink, rv reflect.Value) error {
	if !rv.IsValid() {
		_, err := io.WriteString(s, "<nil>")
		return err
	}
	if r, ok := rv.Interface().(Renderer); ok {
		return r.Render(s)
	}
	switch rv.Kind() {
	case reflect.String:
		_, err := fmt.Fprintf(s, "%q", rv.String())
		return err
	case reflect.Slice, reflect.Array:
		return debugList(s, rv)
	case reflect.Map:
		return debugMapValue(s, rv)
	case reflect.Interface:
		return debugValue(s, rv.Elem())
	}
	return display(s, rv.Interface())
}

func debugList(s Sink, rv reflect.Value) error {
	if _, err := io.WriteString(s, "["); err != nil {
		return err
	}
	for i := range rv.Len() {
		if i > 0 {
			if _, err := io.WriteString(s, ", "); err != nil {
				return err
			}
		}
		if err := debugValue(s, rv.Index(i)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(s, "]")
	return err
}

// debugMapValue writes a nested map with its keys sorted by display text.
func debugMapValue(s Sink, rv reflect.Value) error {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	m := newMapWriter(s)
	for _, k := range keys {
		if !m.entry(k.Interface(), rv.MapIndex(k).Interface()) {
			break
		}
	}
	return m.close()
}

// capture renders v in display form into a string, keeping the form of s.
func capture(s Sink, v any) (string, error) {
	var b strings.Builder
	if err := display(redirect(s, &b), v); err != nil {
		return "", err
	}
	return b.String(), nil
}
