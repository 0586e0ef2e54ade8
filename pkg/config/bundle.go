package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/passbundle/pkg/errors"
	"github.com/arthur-debert/passbundle/pkg/types"
)

// BundleKeys holds per-bundle signing-key overrides.
type BundleKeys struct {
	// Path overrides the keys directory recorded on the loaded template
	Path string `toml:"path"`

	// Password is the default key password when the loader is given none
	Password string `toml:"password"`
}

// BundleConfig is the optional .passbundle.toml inside a bundle directory.
// The definition file stays pure appearance data; key-location overrides
// live here instead.
type BundleConfig struct {
	Keys BundleKeys `toml:"keys"`
}

// LoadBundleConfig reads and parses a bundle's override file. A missing
// file is the caller's concern; this assumes the path exists.
func LoadBundleConfig(fs types.FS, path string) (BundleConfig, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return BundleConfig{}, errors.Wrap(err, errors.ErrFileAccess, "cannot read bundle override").
			WithDetail("path", path)
	}

	var cfg BundleConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return BundleConfig{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse bundle override").
			WithDetail("path", path)
	}

	return cfg, nil
}
