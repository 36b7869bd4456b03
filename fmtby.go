package fmtby

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSinkWrite       = errors.New("sink write failed")
	ErrUnsupportedForm = errors.New("unsupported form")
)

// Form selects the output form requested from a holder. A form is an fmt
// directive such as "%v" or "%#x"; strategies may inspect it through
// [Sink.Form] but are not required to.
type Form string

const (
	Display  Form = "%v"
	Verbose  Form = "%+v"
	Debug    Form = "%#v"
	Text     Form = "%s"
	Quoted   Form = "%q"
	Decimal  Form = "%d"
	Binary   Form = "%b"
	Octal    Form = "%o"
	Hex      Form = "%x"
	UpperHex Form = "%X"
	Exp      Form = "%e"
	UpperExp Form = "%E"
	Pointer  Form = "%p"
)

type namedForm struct {
	name string
	form Form
}

var forms = []namedForm{
	{"display", Display},
	{"verbose", Verbose},
	{"debug", Debug},
	{"text", Text},
	{"quoted", Quoted},
	{"decimal", Decimal},
	{"binary", Binary},
	{"octal", Octal},
	{"hex", Hex},
	{"upper-hex", UpperHex},
	{"exp", Exp},
	{"upper-exp", UpperExp},
	{"pointer", Pointer},
}

// String returns the fmt directive of the form.
func (f Form) String() string { return string(f) }

// Name returns the registered name of the form, or the directive itself for
// forms without one.
func (f Form) Name() string {
	for _, nf := range forms {
		if nf.form == f {
			return nf.name
		}
	}
	return string(f)
}

// Verb returns the verb rune of the form. The zero Form is treated as
// [Display]. Malformed forms return 0.
func (f Form) Verb() rune {
	d, err := parseDirective(f)
	if err != nil {
		return 0
	}
	return d.verb
}

// Forms returns all named forms in registration order.
func Forms() []Form {
	out := make([]Form, len(forms))
	for i, nf := range forms {
		out[i] = nf.form
	}
	return out
}

// ParseForm parses a form name ("hex", "debug", ...) or a raw fmt directive
// ("%08x", "%+v").
func ParseForm(s string) (Form, error) {
	if strings.HasPrefix(s, "%") {
		if _, err := parseDirective(Form(s)); err != nil {
			return "", err
		}
		return Form(s), nil
	}
	for _, nf := range forms {
		if nf.name == s {
			return nf.form, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedForm, s)
}

// Renderer renders itself into a sink. Every holder is a Renderer.
type Renderer interface {
	Render(s Sink) error
}

// Strategy renders data of type T into a sink. Strategies are small values,
// usually empty structs, and are copied freely; the same value is reused
// for every render and every form.
type Strategy[T any] interface {
	Render(s Sink, data T) error
}

// Write renders items back to back into w using form f. The first write
// failure is returned wrapped in [ErrSinkWrite]; nothing is retried.
func Write(w io.Writer, f Form, items ...Renderer) error {
	s, err := NewSink(w, f)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders items and returns the bytes.
func Marshal(f Form, items ...Renderer) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// format is the fmt.Formatter body shared by all holders. fmt gives no way
// to return an error, so a failed render is reported inline the way fmt
// reports a bad verb.
func format(st fmt.State, verb rune, r Renderer) {
	if err := r.Render(stateSink{State: st, verb: verb}); err != nil {
		fmt.Fprintf(st, "%%!%c(fmtby.error=%s)", verb, err)
	}
}

func writeTo(w io.Writer, r Renderer) (int64, error) {
	s := &writerSink{w: w, form: Display, dir: directive{verb: 'v'}}
	err := r.Render(s)
	return s.n, err
}
