package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fmtby"
)

// execute runs the root command with args and returns stdout and stderr.
// A config path inside a temp dir is always passed so the user's own
// config is never read.
func execute(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "none.toml")
	}
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"plain":         {args: []string{"render", "hello"}, want: "hello\n"},
		"form flag":     {args: []string{"render", "--form", "hex", "255"}, want: "ff\n"},
		"directive":     {args: []string{"render", "-f", "%05d", "42"}, want: "00042\n"},
		"signed chain":  {args: []string{"render", "--pipe", "upper-hex|signed", "--", "-255"}, want: "负FF\n"},
		"text list":     {args: []string{"render", "-p", "upper", "a", "b", "c"}, want: "[A, B, C]\n"},
		"each":          {args: []string{"render", "--each", "-p", "upper", "a", "b"}, want: "A\nB\n"},
		"separator":     {args: []string{"render", "--sep", "; ", "1", "2"}, want: "[1; 2]\n"},
		"min saturates": {args: []string{"render", "-p", "signed", "--", "-9223372036854775808"}, want: "负9223372036854775807\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"unknown step":     {args: []string{"render", "-p", "sparkle", "x"}, wantErr: errUnknownStep},
		"unknown form":     {args: []string{"render", "-f", "xml", "x"}, wantErr: fmtby.ErrUnsupportedForm},
		"unknown pipeline": {args: []string{"render", "-P", "missing", "x"}, wantErr: errUnknownPipeline},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRenderCommandRequiresValue(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "render")
	require.Error(t, err)
}

func TestRenderCommandPipeAndPipelineExclusive(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "render", "-p", "upper", "-P", "shout", "x")
	require.Error(t, err)
}

func TestRenderCommandUsesConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
form = "upper-hex"
sep = " | "

[pipelines]
sign = "upper-hex|signed|pad=5:right"
`)

	out, _, err := execute(t, path, "render", "-P", "sign", "--", "-255")
	require.NoError(t, err)
	assert.Equal(t, " 负FF\n", out)

	out, _, err = execute(t, path, "render", "10", "11")
	require.NoError(t, err)
	assert.Equal(t, "[A | B]\n", out)

	// Flags win over the config file.
	out, _, err = execute(t, path, "render", "-f", "decimal", "--sep", ",", "10", "11")
	require.NoError(t, err)
	assert.Equal(t, "[10,11]\n", out)
}

func TestRenderCommandBadConfig(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, writeConfig(t, "sep = [\n"), "render", "x")
	require.Error(t, err)
}

func TestRenderCommandVerbose(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "", "-v", "render", "-p", "upper", "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendering")

	_, stderr, err = execute(t, "", "render", "x")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "rendering")
}

func TestFormsCommand(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "forms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(fmtby.Forms()))
	assert.Equal(t, "display     %v", lines[0])
	assert.Contains(t, lines, "upper-hex   %X")
}

func TestFormsCommandRejectsArgs(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "forms", "extra")
	require.Error(t, err)
}
