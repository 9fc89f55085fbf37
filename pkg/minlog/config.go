package minlog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// configFilePermissions keeps saved configurations private to the owner.
const configFilePermissions = 0o600

// LoadConfig reads a logger configuration from path, picking the format
// by extension: .yaml and .yml parse as YAML, .toml as TOML. YAML plain
// scalars coerce into the string map, so reopen_interval: 60 loads as
// "60"; TOML is typed, so quote the values there.
func LoadConfig(path string) (Config, error) {
	// #nosec G304 -- the path is the operator's to choose
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return nil, errors.Wrapf(err, "parse %s at line %d column %d", path, row, col)
			}
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in the format its extension selects,
// with the same extension rules as LoadConfig.
func SaveConfig(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(filepath.Clean(path), data, configFilePermissions), "write config")
}
