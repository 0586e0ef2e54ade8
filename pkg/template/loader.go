package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/passbundle/pkg/config"
	"github.com/arthur-debert/passbundle/pkg/errors"
	"github.com/arthur-debert/passbundle/pkg/filesystem"
	"github.com/arthur-debert/passbundle/pkg/logging"
	"github.com/arthur-debert/passbundle/pkg/styles"
	"github.com/arthur-debert/passbundle/pkg/types"
)

// Load builds a Template from an on-disk bundle directory. The pipeline
// is sequential and fail-fast: directory check, definition parse, style
// detection, field validation, image loading and the optional bundle
// override are all fatal. Only the trailing signing-key probe is
// best-effort.
func Load(fsys types.FS, dir, keyPassword string) (*Template, error) {
	logger := logging.GetLogger("template.loader")
	cfg := config.Default()

	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrBundleNotFound, "bundle directory does not exist").
				WithDetail("path", dir)
		}
		return nil, errors.Wrap(err, errors.ErrBundleAccess, "cannot access bundle directory").
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrBundleInvalid, "bundle path is not a directory").
			WithDetail("path", dir)
	}

	defPath := filepath.Join(dir, cfg.Bundle.DefinitionFile)
	data, err := fsys.ReadFile(defPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read bundle definition").
			WithDetail("path", defPath)
	}

	var def map[string]interface{}
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, errors.ErrDefinitionParse, "invalid bundle definition").
			WithDetail("path", defPath)
	}

	style, err := styles.Detect(def)
	if err != nil {
		return nil, err
	}

	// The full definition is the initial field mapping: recognized
	// top-level keys become fields, the style key and anything else is
	// skipped by New.
	tpl, err := New(style, def)
	if err != nil {
		return nil, err
	}

	if err := tpl.images.Load(fsys, dir); err != nil {
		return nil, err
	}

	ovPath := filepath.Join(dir, cfg.Bundle.OverrideFile)
	if _, err := fsys.Stat(ovPath); err == nil {
		override, err := config.LoadBundleConfig(fsys, ovPath)
		if err != nil {
			return nil, err
		}
		tpl.Keys(override.Keys.Path, override.Keys.Password)
		if keyPassword == "" {
			keyPassword = override.Keys.Password
		}
	}

	probeSigningKey(fsys, tpl, dir, keyPassword, cfg, logger)

	logger.Debug().
		Str("dir", dir).
		Str("style", string(style)).
		Int("fields", len(tpl.fields)).
		Int("images", tpl.images.Len()).
		Msg("Loaded bundle")

	return tpl, nil
}

// LoadDir is Load against the OS filesystem.
func LoadDir(dir, keyPassword string) (*Template, error) {
	return Load(filesystem.NewOS(), dir, keyPassword)
}

// probeSigningKey looks for the bundle's signing key and, when present,
// records the bundle directory as the key location. The probe never
// fails the load: an absent key only means the template stays without
// key configuration. The expected filename is the pass type identifier
// with its well-known prefix stripped, e.g. "pass.com.example.event"
// probes "com.example.event.pem" inside the bundle directory.
func probeSigningKey(fsys types.FS, tpl *Template, dir, keyPassword string, cfg *config.Config, logger zerolog.Logger) {
	id, ok := tpl.PassTypeIdentifier()
	if !ok || id == "" {
		logger.Debug().Str("dir", dir).Msg("No pass type identifier, skipping key probe")
		return
	}

	name := strings.TrimPrefix(id, cfg.Keys.IdentifierPrefix) + cfg.Keys.Extension
	keyPath := filepath.Join(dir, name)

	info, err := fsys.Stat(keyPath)
	switch {
	case err == nil && info.Mode().IsRegular():
		tpl.Keys(dir, keyPassword)
		logger.Debug().Str("key", keyPath).Msg("Found signing key")
	case err == nil:
		logger.Warn().Str("key", keyPath).Msg("Signing key path is not a regular file, ignoring")
	case os.IsNotExist(err):
		logger.Debug().Str("key", keyPath).Msg("No signing key in bundle")
	default:
		logger.Warn().Err(err).Str("key", keyPath).Msg("Cannot probe signing key, continuing without")
	}
}
