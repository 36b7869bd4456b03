// Package fmtby renders values through reusable rendering strategies that are
// independent of the value's own type, and chains strategies into pipelines
// without copying the data.
//
// A [Strategy] renders data of one type into a [Sink]. A holder pairs data
// with a strategy and is itself a [fmt.Formatter], so it can be handed to
// any fmt function or to [Write]:
//
//	s := "hello"
//	fmt.Println(fmtby.As[fmtby.Upper[string]](&s)) // HELLO
//
// # Holders
//
// There are three holders:
//
//   - [Ref] borrows its data through a pointer ([By], [As], [With])
//   - [Owned] owns a plain value ([ByValue], [AsValue], [WithValue])
//   - [Chained] owns another holder and is produced by chaining
//
// All of them implement [Holder], the transparent-access relation: Inner
// reads the innermost data and Rebuild swaps it while keeping every strategy
// in place. [Mutable] holders also give write access through Ptr.
//
// # Forms
//
// A [Form] is an fmt directive such as [Display] ("%v"), [Debug] ("%#v")
// or [UpperHex] ("%X"). Every form reaches the same strategy call. A
// strategy that wants form-specific output reads [Sink.Form] itself:
//
//	fmt.Printf("%v %x %#v\n", h, h, h) // same text three times
//
// Use [ParseForm] to turn a CLI flag into a Form.
//
// # Chaining
//
// Then, ThenWith and [ThenAs] wrap a holder in a [Chained] holder with a new
// strategy. The strategy attached last renders first and receives the
// wrapped holder as a Holder[E]:
//
//	n := -255
//	h := fmtby.By(&n, fmtby.UpperHexProxy[int]{}).Then(fmtby.SignedHolder[int]{})
//	fmt.Println(h) // 负FF
//
// # Strategies
//
//   - [Upper], [UpperHolder]: Unicode upper-casing
//   - [Signed], [SignedHolder]: 负/零/正 sign words
//   - [Joined], [SeqJoined]: delimiter joining
//   - [DebugMap], [PairsDebugMap], [SortedDebugMap]: {k: v} map literals
//   - [Repeat]: repetition
//   - [FormProxy] and the fixed-form proxies such as [HexProxy]
//   - [JSON], [YAML]: encoded documents
//   - [Padded], [Truncated]: display-width layout
//   - [Styled]: lipgloss styling
//   - [StrategyFunc]: any function with the right signature
//
// # Errors
//
// The only error the core produces is [ErrSinkWrite]. It wraps the first
// failed write to the underlying writer and is returned unchanged through
// every strategy and holder. [ParseForm] and [NewSink] return
// [ErrUnsupportedForm] for malformed forms.
//
// # Concurrency
//
// Rendering is synchronous. Holders and strategies are plain values; they
// are safe to render concurrently when the data they hold is.
package fmtby
