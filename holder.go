package fmtby

// Holder is the transparent-access relation shared by every holder. A
// Holder[E] stands in for an E: Inner reads the innermost data through any
// number of chained layers, and Rebuild returns the same chain of strategies
// around a different innermost value.
type Holder[E any] interface {
	Renderer
	Inner() E
	Rebuild(inner E) Holder[E]
}

// Mutable is implemented by holders that give write access to their data.
type Mutable[E any] interface {
	Ptr() *E
}

// addressable is implemented by owning holders that can hand out a private
// pointer copy of themselves when a chain needs write access.
type addressable[E any] interface {
	addressed() (Holder[E], *E)
}
