package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// BundleSettings controls how a bundle directory is interpreted.
type BundleSettings struct {
	// DefinitionFile is the name of the JSON definition inside a bundle
	DefinitionFile string `koanf:"definition_file"`

	// OverrideFile is the name of the optional per-bundle TOML override
	OverrideFile string `koanf:"override_file"`
}

// KeySettings controls how the signing-key probe derives filenames.
type KeySettings struct {
	// Path is the default keys directory recorded on new templates
	Path string `koanf:"path"`

	// Extension is appended to the stripped identifier when probing
	Extension string `koanf:"extension"`

	// IdentifierPrefix is stripped from passTypeIdentifier when probing
	IdentifierPrefix string `koanf:"identifier_prefix"`
}

// Config holds the resolved passbundle configuration.
type Config struct {
	Bundle BundleSettings `koanf:"bundle"`
	Keys   KeySettings    `koanf:"keys"`
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Load builds the configuration from embedded defaults, then an optional
// passbundle.toml in the directory named by PASSBUNDLE_CONFIG_DIR.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configDir := os.Getenv("PASSBUNDLE_CONFIG_DIR"); configDir != "" {
		path := filepath.Join(configDir, "passbundle.toml")
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the process-wide configuration, loading it on first use.
// Load errors fall back to the compiled-in defaults.
func Default() *Config {
	defaultOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = &Config{
				Bundle: BundleSettings{
					DefinitionFile: "pass.json",
					OverrideFile:   ".passbundle.toml",
				},
				Keys: KeySettings{
					Path:             "keys",
					Extension:        ".pem",
					IdentifierPrefix: "pass.",
				},
			}
		}
		defaultCfg = cfg
	})
	return defaultCfg
}
