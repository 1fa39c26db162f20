package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vizinline/pkg/display"
	"github.com/matzehuels/vizinline/pkg/errors"
	"github.com/matzehuels/vizinline/pkg/inline"
)

// Config is the vizinline config file.
type Config struct {
	// AssetDir holds lib/interpret-inline.js.
	AssetDir string `toml:"asset_dir"`
	// DefaultKey is the specific visualization selected initially.
	DefaultKey int `toml:"default_key"`
	// Environments are host markers, e.g. "databricks".
	Environments []string `toml:"environments"`
	// HostFunction is the global display function for host environments.
	HostFunction string `toml:"host_function"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		AssetDir:     ".",
		DefaultKey:   inline.DefaultKey,
		HostFunction: display.DatabricksFunction,
	}
}

// LoadConfig reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return DefaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if cfg.AssetDir == "" {
		cfg.AssetDir = "."
	}
	if cfg.HostFunction == "" {
		cfg.HostFunction = display.DatabricksFunction
	}
	return cfg, nil
}
