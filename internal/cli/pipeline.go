package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjaus/fmtby"
)

var (
	errUnknownStep     = errors.New("unknown step")
	errUnknownPipeline = errors.New("unknown pipeline")
	errStepArg         = errors.New("invalid step argument")
)

// step is one "name" or "name=arg" element of a pipeline.
type step struct {
	name string
	arg  string
}

func (s step) String() string {
	if s.arg == "" {
		return s.name
	}
	return s.name + "=" + s.arg
}

// parsePipeline splits a pipeline such as "hex|signed|pad=6:right" into
// steps. Blank steps are skipped.
func parsePipeline(p string) []step {
	var steps []step
	for _, part := range strings.Split(p, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, arg, _ := strings.Cut(part, "=")
		steps = append(steps, step{name: strings.TrimSpace(name), arg: strings.TrimSpace(arg)})
	}
	return steps
}

// stepFuncs builds the strategy for one step name. leaf is used when the
// step is first and attaches to the value; outer is used when the step
// wraps an earlier one.
type stepFuncs[E any] struct {
	leaf  func(arg string) (fmtby.Strategy[E], error)
	outer func(arg string) (fmtby.Strategy[fmtby.Holder[E]], error)
}

type stepTable[E any] map[string]stepFuncs[E]

func commonSteps[E any]() stepTable[E] {
	return stepTable[E]{
		"repeat":   {leaf: repeatStep[E], outer: repeatStep[fmtby.Holder[E]]},
		"pad":      {leaf: padStep[E], outer: padStep[fmtby.Holder[E]]},
		"truncate": {leaf: truncateStep[E], outer: truncateStep[fmtby.Holder[E]]},
		"style":    {leaf: styleStep[E], outer: styleStep[fmtby.Holder[E]]},
		"json": {
			leaf:  fixed[E](fmtby.JSON[E]{}),
			outer: fixed[fmtby.Holder[E]](encodeRendered[E](fmtby.JSON[string]{})),
		},
		"yaml": {
			leaf:  fixed[E](fmtby.YAML[E]{}),
			outer: fixed[fmtby.Holder[E]](encodeRendered[E](fmtby.YAML[string]{})),
		},
	}
}

// intForms are the form steps accepted for integer values.
var intForms = []fmtby.Form{fmtby.Display, fmtby.Hex, fmtby.UpperHex, fmtby.Binary, fmtby.Octal}

func intSteps() stepTable[int64] {
	t := commonSteps[int64]()
	t["signed"] = stepFuncs[int64]{
		leaf:  fixed[int64](fmtby.Signed[int64]{}),
		outer: fixed[fmtby.Holder[int64]](fmtby.SignedHolder[int64]{}),
	}
	for _, f := range intForms {
		t[f.Name()] = stepFuncs[int64]{
			leaf:  fixed[int64](fmtby.FormProxy[int64]{Form: f}),
			outer: fixed[fmtby.Holder[int64]](reform[int64](f)),
		}
	}
	return t
}

func textSteps() stepTable[string] {
	t := commonSteps[string]()
	t["upper"] = stepFuncs[string]{
		leaf:  fixed[string](fmtby.Upper[string]{}),
		outer: fixed[fmtby.Holder[string]](fmtby.UpperHolder[string]{}),
	}
	return t
}

// fixed returns a step builder for a step that takes no argument.
func fixed[T any](s fmtby.Strategy[T]) func(arg string) (fmtby.Strategy[T], error) {
	return func(arg string) (fmtby.Strategy[T], error) {
		if arg != "" {
			return nil, fmt.Errorf("%w: takes no argument, got %q", errStepArg, arg)
		}
		return s, nil
	}
}

func repeatStep[T any](arg string) (fmtby.Strategy[T], error) {
	n, err := count(arg)
	if err != nil {
		return nil, err
	}
	return fmtby.Repeat[T]{N: n}, nil
}

func padStep[T any](arg string) (fmtby.Strategy[T], error) {
	num, side, _ := strings.Cut(arg, ":")
	n, err := count(num)
	if err != nil {
		return nil, err
	}
	align, err := parseAlign(side)
	if err != nil {
		return nil, err
	}
	return fmtby.Padded[T]{Width: n, Align: align}, nil
}

func truncateStep[T any](arg string) (fmtby.Strategy[T], error) {
	n, err := count(arg)
	if err != nil {
		return nil, err
	}
	return fmtby.Truncated[T]{Width: n}, nil
}

func styleStep[T any](arg string) (fmtby.Strategy[T], error) {
	st := lipgloss.NewStyle()
	switch arg {
	case "bold":
		st = st.Bold(true)
	case "italic":
		st = st.Italic(true)
	case "underline":
		st = st.Underline(true)
	case "faint":
		st = st.Faint(true)
	default:
		return nil, fmt.Errorf("%w: style %q", errStepArg, arg)
	}
	return fmtby.Styled[T]{Style: st}, nil
}

func count(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: want a count, got %q", errStepArg, arg)
	}
	return n, nil
}

func parseAlign(s string) (fmtby.Alignment, error) {
	switch s {
	case "", "left":
		return fmtby.AlignLeft, nil
	case "center":
		return fmtby.AlignCenter, nil
	case "right":
		return fmtby.AlignRight, nil
	}
	return 0, fmt.Errorf("%w: alignment %q", errStepArg, s)
}

// reform renders the wrapped holder again in form f, so a leaf that follows
// the requested form switches to f.
func reform[E any](f fmtby.Form) fmtby.StrategyFunc[fmtby.Holder[E]] {
	return func(s fmtby.Sink, h fmtby.Holder[E]) error {
		return fmtby.Write(s, f, h)
	}
}

// encodeRendered encodes the text rendered by the wrapped holder.
func encodeRendered[E any](enc fmtby.Strategy[string]) fmtby.StrategyFunc[fmtby.Holder[E]] {
	return func(s fmtby.Sink, h fmtby.Holder[E]) error {
		text, err := fmtby.Marshal(s.Form(), h)
		if err != nil {
			return err
		}
		return enc.Render(s, string(text))
	}
}

// native renders the data in whatever form the caller asked for.
func native[E any]() fmtby.StrategyFunc[E] {
	return func(s fmtby.Sink, data E) error {
		_, err := fmt.Fprintf(s, string(s.Form()), data)
		return err
	}
}

// compiled is a pipeline resolved against one value type.
type compiled[E any] struct {
	leaf   fmtby.Strategy[E]
	outers []fmtby.Strategy[fmtby.Holder[E]]
}

func compile[E any](steps []step, table stepTable[E]) (compiled[E], error) {
	c := compiled[E]{leaf: native[E]()}
	for i, st := range steps {
		fns, ok := table[st.name]
		if !ok {
			return c, fmt.Errorf("%w: %q", errUnknownStep, st.name)
		}
		if i == 0 {
			leaf, err := fns.leaf(st.arg)
			if err != nil {
				return c, fmt.Errorf("step %s: %w", st, err)
			}
			c.leaf = leaf
			continue
		}
		outer, err := fns.outer(st.arg)
		if err != nil {
			return c, fmt.Errorf("step %s: %w", st, err)
		}
		c.outers = append(c.outers, outer)
	}
	return c, nil
}

// holder attaches the compiled pipeline to v.
func (c compiled[E]) holder(v E) fmtby.Holder[E] {
	h := fmtby.ByValue(v, c.leaf)
	if len(c.outers) == 0 {
		return h
	}
	ch := h.Then(c.outers[0])
	for _, o := range c.outers[1:] {
		ch = ch.Then(o)
	}
	return ch
}

// renderers returns one renderer per value when each is set, otherwise a
// single renderer. Several values are shown as a bracketed list joined by
// sep.
func (c compiled[E]) renderers(values []E, sep string, each bool) []fmtby.Renderer {
	holders := make([]fmtby.Holder[E], len(values))
	for i, v := range values {
		holders[i] = c.holder(v)
	}
	if each || len(holders) == 1 {
		out := make([]fmtby.Renderer, len(holders))
		for i, h := range holders {
			out[i] = h
		}
		return out
	}
	list := fmtby.ByValue(holders, fmtby.Joined[fmtby.Holder[E]]{Sep: sep}).
		ThenWith(bracketed[[]fmtby.Holder[E]])
	return []fmtby.Renderer{list}
}

func bracketed[T any](s fmtby.Sink, h fmtby.Holder[T]) error {
	if _, err := s.WriteString("["); err != nil {
		return err
	}
	if err := h.Render(s); err != nil {
		return err
	}
	_, err := s.WriteString("]")
	return err
}

// buildRenderers picks the value type from args and applies the pipeline.
// Arguments are integers when every one of them parses as an int64.
func buildRenderers(args []string, steps []step, sep string, each bool) ([]fmtby.Renderer, error) {
	if ints, ok := parseInts(args); ok {
		c, err := compile(steps, intSteps())
		if err != nil {
			return nil, err
		}
		return c.renderers(ints, sep, each), nil
	}
	c, err := compile(steps, textSteps())
	if err != nil {
		return nil, err
	}
	return c.renderers(args, sep, each), nil
}

func parseInts(args []string) ([]int64, bool) {
	ints := make([]int64, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, false
		}
		ints[i] = n
	}
	return ints, true
}
