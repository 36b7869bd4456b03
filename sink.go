package fmtby

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sink is the destination of a render. It accepts text and carries the form
// the caller asked for, in the same shape as [fmt.State].
type Sink interface {
	io.Writer
	io.StringWriter

	// Form returns the requested form, including flags, width and precision.
	Form() Form

	// Flag reports whether the flag c, a character, was set.
	Flag(c int) bool

	// Width returns the width option and whether it was set.
	Width() (wid int, ok bool)

	// Precision returns the precision option and whether it was set.
	Precision() (prec int, ok bool)
}

// NewSink returns a Sink that writes to w and reports form f.
//
// The first failed or short write is remembered: it is returned wrapped in
// [ErrSinkWrite], and every later write returns the same error without
// touching w again.
func NewSink(w io.Writer, f Form) (Sink, error) {
	d, err := parseDirective(f)
	if err != nil {
		return nil, err
	}
	if f == "" {
		f = Display
	}
	return &writerSink{w: w, form: f, dir: d}, nil
}

type writerSink struct {
	w    io.Writer
	form Form
	dir  directive
	n    int64
	err  error
}

func (s *writerSink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	return s.record(n, len(p), err)
}

func (s *writerSink) WriteString(str string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := io.WriteString(s.w, str)
	return s.record(n, len(str), err)
}

func (s *writerSink) record(n, attempted int, err error) (int, error) {
	s.n += int64(n)
	if err == nil && n != attempted {
		err = io.ErrShortWrite
	}
	if err != nil {
		// A nested sink writing into another sink already wrapped it.
		if !errors.Is(err, ErrSinkWrite) {
			err = fmt.Errorf("%w: %w", ErrSinkWrite, err)
		}
		s.err = err
		return n, s.err
	}
	return n, nil
}

func (s *writerSink) Form() Form { return s.form }

func (s *writerSink) Flag(c int) bool {
	return c < utf8.RuneSelf && strings.IndexByte(s.dir.flags, byte(c)) >= 0
}

func (s *writerSink) Width() (int, bool)     { return s.dir.wid, s.dir.hasWid }
func (s *writerSink) Precision() (int, bool) { return s.dir.prec, s.dir.hasPrec }

// stateSink adapts the fmt.State handed to a holder's Format method.
type stateSink struct {
	fmt.State
	verb rune
}

func (s stateSink) WriteString(str string) (int, error) {
	return io.WriteString(s.State, str)
}

func (s stateSink) Form() Form {
	return Form(fmt.FormatString(s.State, s.verb))
}

// redirectSink keeps the form of a sink but sends the text elsewhere.
type redirectSink struct {
	Sink
	w io.Writer
}

func redirect(s Sink, w io.Writer) Sink {
	return redirectSink{Sink: s, w: w}
}

func (r redirectSink) Write(p []byte) (int, error) {
	return r.w.Write(p)
}

func (r redirectSink) WriteString(str string) (int, error) {
	return io.WriteString(r.w, str)
}

// --- Directive parsing ---

type directive struct {
	flags   string
	wid     int
	prec    int
	hasWid  bool
	hasPrec bool
	verb    rune
}

const directiveFlags = "+-# 0"

// parseDirective accepts %[flags][width][.precision]verb. Argument indexes
// and star widths are not forms and are rejected.
func parseDirective(f Form) (directive, error) {
	s := string(f)
	if s == "" {
		return directive{verb: 'v'}, nil
	}
	bad := fmt.Errorf("%w: %q", ErrUnsupportedForm, s)
	if s[0] != '%' {
		return directive{}, bad
	}
	var d directive
	i := 1
	for i < len(s) && strings.IndexByte(directiveFlags, s[i]) >= 0 {
		i++
	}
	d.flags = s[1:i]
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i > start {
		d.wid, _ = strconv.Atoi(s[start:i])
		d.hasWid = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		// "%.f" means precision zero, as in fmt.
		d.prec, _ = strconv.Atoi(s[start:i])
		d.hasPrec = true
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if size == 0 || i+size != len(s) || !unicode.IsLetter(r) {
		return directive{}, bad
	}
	d.verb = r
	return d, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
