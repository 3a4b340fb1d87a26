// Package config loads remod settings with koanf, layering built-in
// defaults, an optional .remod.toml in the scan root, and REMOD_* environment
// variables. The result is a plain types.Settings value passed explicitly
// into each operation; nothing here is process-global.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/remod/pkg/errors"
	"github.com/arthur-debert/remod/pkg/types"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFilenames are the per-project override files probed in the scan root,
// in order; the first one found wins.
var ConfigFilenames = []string{".remod.toml", "remod.toml"}

// Load builds the effective settings for a run rooted at root.
func Load(root string) (types.Settings, error) {
	var settings types.Settings

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return settings, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project config in the scan root, if present
	for _, filename := range ConfigFilenames {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return settings, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", path)
			}
			break
		}
	}

	// 3. Environment overrides: REMOD_MARKER, REMOD_DEST_FILENAME, ...
	if err := k.Load(env.Provider("REMOD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "REMOD_"))
	}), nil); err != nil {
		return settings, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if err := k.Unmarshal("", &settings); err != nil {
		return settings, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	return settings, nil
}

// Default returns the built-in settings without project or environment
// overrides. Panics only if the embedded defaults are invalid, which is a
// build defect.
func Default() types.Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	var settings types.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		panic(err)
	}
	return settings
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
