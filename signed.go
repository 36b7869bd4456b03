package fmtby

import (
	"fmt"
	"io"
)

// Integer is the set of integer types accepted by [Signed].
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const (
	negativeMark = "负"
	zeroMark     = "零"
	positiveMark = "正"
)

// Signed renders an integer with a sign word: 负<magnitude>, 零 or
// 正<value>. The output is the same for every form. The minimum value of a
// signed type has no positive counterpart and saturates to the maximum.
type Signed[N Integer] struct{}

// Render writes n with its sign word.
func (Signed[N]) Render(s Sink, n N) error {
	var err error
	switch {
	case n < 0:
		_, err = fmt.Fprintf(s, "%s%d", negativeMark, magnitude(n))
	case n == 0:
		_, err = io.WriteString(s, zeroMark)
	default:
		_, err = fmt.Fprintf(s, "%s%d", positiveMark, n)
	}
	return err
}

// SignedHolder is [Signed] for a chained integer. The magnitude is rendered
// by the wrapped holder, rebuilt around |n| when n is negative, so it keeps
// whatever form the inner chain produces:
//
//	n := -255
//	fmtby.By(&n, fmtby.UpperHexProxy[int]{}).Then(fmtby.SignedHolder[int]{}) // 负FF
type SignedHolder[N Integer] struct{}

// Render writes the sign word of h.Inner() followed by the magnitude as
// rendered by h.
func (SignedHolder[N]) Render(s Sink, h Holder[N]) error {
	n := h.Inner()
	switch {
	case n < 0:
		if _, err := io.WriteString(s, negativeMark); err != nil {
			return err
		}
		return h.Rebuild(magnitude(n)).Render(s)
	case n == 0:
		_, err := io.WriteString(s, zeroMark)
		return err
	default:
		if _, err := io.WriteString(s, positiveMark); err != nil {
			return err
		}
		return h.Render(s)
	}
}

func magnitude[N Integer](n N) N {
	if n >= 0 {
		return n
	}
	if m := -n; m >= 0 {
		return m
	}
	// -n overflowed: n is the minimum value.
	return -(n + 1)
}
