package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
form = "hex"
sep = " / "

[pipelines]
sign = "upper-hex|signed"
shout = "upper|repeat=2"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hex", cfg.Form)
	assert.Equal(t, " / ", cfg.Sep)
	assert.Equal(t, map[string]string{
		"sign":  "upper-hex|signed",
		"shout": "upper|repeat=2",
	}, cfg.Pipelines)

	p, err := cfg.pipeline("sign")
	require.NoError(t, err)
	assert.Equal(t, "upper-hex|signed", p)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config{}, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	_, err := loadConfig(writeConfig(t, "form = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigUnknownPipeline(t *testing.T) {
	t.Parallel()
	_, err := config{}.pipeline("nope")
	require.ErrorIs(t, err, errUnknownPipeline)
}

func TestConfigPath(t *testing.T) {
	t.Parallel()
	path := configPath()
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(path)))
}
