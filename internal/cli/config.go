package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// config is the optional TOML config file:
//
//	form = "hex"
//	sep = " / "
//
//	[pipelines]
//	sign = "upper-hex|signed|pad=8:right"
type config struct {
	Form      string            `toml:"form"`
	Sep       string            `toml:"sep"`
	Pipelines map[string]string `toml:"pipelines"`
}

// configPath returns the default config location under the XDG config home.
func configPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// loadConfig reads the config file at path, or at configPath when path is
// empty. A missing file yields the zero config.
func loadConfig(path string) (config, error) {
	if path == "" {
		path = configPath()
	}
	var cfg config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// pipeline returns the named pipeline from the config.
func (c config) pipeline(name string) (string, error) {
	p, ok := c.Pipelines[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownPipeline, name)
	}
	return p, nil
}
