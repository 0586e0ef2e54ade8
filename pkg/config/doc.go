// Package config provides layered configuration for passbundle.
//
// Defaults are compiled in from embedded/defaults.toml and may be
// overridden by a passbundle.toml in PASSBUNDLE_CONFIG_DIR. Bundles may
// additionally carry a .passbundle.toml with key-location overrides.
package config
