package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fmtby"
)

func render(t *testing.T, form fmtby.Form, items []fmtby.Renderer) string {
	t.Helper()
	got, err := fmtby.Marshal(form, items...)
	require.NoError(t, err)
	return string(got)
}

func TestParsePipeline(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []step
	}{
		"empty":  {input: "", want: nil},
		"single": {input: "signed", want: []step{{name: "signed"}}},
		"args": {
			input: "hex | pad=6:right|repeat=2",
			want:  []step{{name: "hex"}, {name: "pad", arg: "6:right"}, {name: "repeat", arg: "2"}},
		},
		"blank steps": {input: "|upper||", want: []step{{name: "upper"}}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parsePipeline(tt.input))
		})
	}
}

func TestStepString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "signed", step{name: "signed"}.String())
	assert.Equal(t, "pad=3:left", step{name: "pad", arg: "3:left"}.String())
}

func TestBuildRenderersIntegers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		pipe string
		form fmtby.Form
		want string
	}{
		"native display":     {args: []string{"255"}, want: "255"},
		"native hex form":    {args: []string{"255"}, form: fmtby.Hex, want: "ff"},
		"signed":             {args: []string{"-42"}, pipe: "signed", want: "负42"},
		"upper-hex signed":   {args: []string{"-255"}, pipe: "upper-hex|signed", want: "负FF"},
		"zero":               {args: []string{"0"}, pipe: "hex|signed", want: "零"},
		"binary":             {args: []string{"5"}, pipe: "binary", want: "101"},
		"octal":              {args: []string{"8"}, pipe: "octal", want: "10"},
		"padded":             {args: []string{"-5"}, pipe: "signed|pad=6:right", want: "   负5"},
		"centered":           {args: []string{"7"}, pipe: "display|pad=3:center", want: " 7 "},
		"repeat":             {args: []string{"1"}, pipe: "signed|repeat=3", want: "正1正1正1"},
		"truncate":           {args: []string{"123456"}, pipe: "display|truncate=4", want: "1..."},
		"json leaf":          {args: []string{"12"}, pipe: "json", want: "12"},
		"json outer":         {args: []string{"-3"}, pipe: "signed|json", want: `"负3"`},
		"yaml outer":         {args: []string{"3"}, pipe: "hex|yaml", want: `"3"`},
		"list":               {args: []string{"-1", "0", "1"}, pipe: "signed", want: "[负1, 零, 正1]"},
		"list native form":   {args: []string{"10", "11"}, form: fmtby.UpperHex, want: "[A, B]"},
		"reform is wrapping": {args: []string{"-2"}, pipe: "signed|hex", want: "负2"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			items, err := buildRenderers(tt.args, parsePipeline(tt.pipe), defaultSep, false)
			require.NoError(t, err)
			form := tt.form
			if form == "" {
				form = fmtby.Display
			}
			assert.Equal(t, tt.want, render(t, form, items))
		})
	}
}

func TestBuildRenderersText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		pipe string
		want string
	}{
		"native":         {args: []string{"hi"}, want: "hi"},
		"upper":          {args: []string{"straße"}, pipe: "upper", want: "STRASSE"},
		"repeat upper":   {args: []string{"ab"}, pipe: "repeat=2|upper", want: "ABAB"},
		"upper truncate": {args: []string{"hello world"}, pipe: "upper|truncate=8", want: "HELLO..."},
		"pad wide":       {args: []string{"你好"}, pipe: "pad=6", want: "你好  "},
		"json":           {args: []string{"a<b"}, pipe: "json", want: `"a<b"`},
		"mixed values":   {args: []string{"1", "x"}, pipe: "upper", want: "[1, X]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			items, err := buildRenderers(tt.args, parsePipeline(tt.pipe), defaultSep, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, fmtby.Display, items))
		})
	}
}

func TestBuildRenderersEach(t *testing.T) {
	t.Parallel()
	items, err := buildRenderers([]string{"a", "b"}, parsePipeline("upper"), defaultSep, true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", render(t, fmtby.Display, items[:1]))
	assert.Equal(t, "B", render(t, fmtby.Display, items[1:]))
}

func TestBuildRenderersSeparator(t *testing.T) {
	t.Parallel()
	items, err := buildRenderers([]string{"a", "b"}, nil, " / ", false)
	require.NoError(t, err)
	assert.Equal(t, "[a / b]", render(t, fmtby.Display, items))
}

func TestBuildRenderersStyle(t *testing.T) {
	t.Parallel()
	items, err := buildRenderers([]string{"x"}, parsePipeline("upper|style=bold"), defaultSep, false)
	require.NoError(t, err)
	assert.Contains(t, render(t, fmtby.Display, items), "X")
}

func TestBuildRenderersErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		pipe    string
		wantErr error
	}{
		"unknown":            {args: []string{"x"}, pipe: "sparkle", wantErr: errUnknownStep},
		"signed on text":     {args: []string{"x"}, pipe: "signed", wantErr: errUnknownStep},
		"upper on int":       {args: []string{"1"}, pipe: "upper", wantErr: errUnknownStep},
		"unknown later":      {args: []string{"1"}, pipe: "signed|nope", wantErr: errUnknownStep},
		"bad count":          {args: []string{"x"}, pipe: "repeat=many", wantErr: errStepArg},
		"negative count":     {args: []string{"x"}, pipe: "pad=-1", wantErr: errStepArg},
		"missing count":      {args: []string{"x"}, pipe: "truncate", wantErr: errStepArg},
		"bad alignment":      {args: []string{"x"}, pipe: "pad=3:up", wantErr: errStepArg},
		"bad style":          {args: []string{"x"}, pipe: "style=blink", wantErr: errStepArg},
		"unexpected arg":     {args: []string{"1"}, pipe: "signed=2", wantErr: errStepArg},
		"unexpected arg out": {args: []string{"1"}, pipe: "hex|signed=2", wantErr: errStepArg},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := buildRenderers(tt.args, parsePipeline(tt.pipe), defaultSep, false)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnknownStepNamesStep(t *testing.T) {
	t.Parallel()
	_, err := buildRenderers([]string{"x"}, parsePipeline("upper|sparkle"), defaultSep, false)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `"sparkle"`), err.Error())
}

func TestParseInts(t *testing.T) {
	t.Parallel()
	got, ok := parseInts([]string{"1", "-2", "9223372036854775807"})
	require.True(t, ok)
	assert.Equal(t, []int64{1, -2, 9223372036854775807}, got)

	_, ok = parseInts([]string{"1", "2.5"})
	assert.False(t, ok)
	_, ok = parseInts([]string{"9223372036854775808"})
	assert.False(t, ok)
}

func TestCompiledHolderRebuild(t *testing.T) {
	t.Parallel()
	c, err := compile(parsePipeline("upper-hex|signed|pad=5:right"), intSteps())
	require.NoError(t, err)
	h := c.holder(-255)
	assert.Equal(t, int64(-255), h.Inner())
	assert.Equal(t, " 正1F", render(t, fmtby.Display, []fmtby.Renderer{h.Rebuild(31)}))
}
