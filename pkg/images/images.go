package images

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/arthur-debert/passbundle/pkg/errors"
	"github.com/arthur-debert/passbundle/pkg/logging"
	"github.com/arthur-debert/passbundle/pkg/types"
)

// ImageName identifies one of the recognized pass image slots.
type ImageName string

// Recognized image slots within a bundle directory.
const (
	Icon       ImageName = "icon"
	Logo       ImageName = "logo"
	Background ImageName = "background"
	Footer     ImageName = "footer"
	Strip      ImageName = "strip"
	Thumbnail  ImageName = "thumbnail"
)

// Variant is the pixel-density variant of an image file.
type Variant string

// Density variants, keyed by the filename suffix convention.
const (
	Density1x Variant = "1x"
	Density2x Variant = "2x"
	Density3x Variant = "3x"
)

// filePattern matches recognized image filenames, e.g. "icon.png",
// "logo@2x.png". Unrecognized files are ignored during Load.
var filePattern = regexp.MustCompile(`^(icon|logo|background|footer|strip|thumbnail)(@[23]x)?\.png$`)

type slot struct {
	name    ImageName
	variant Variant
}

// Collection holds references to the image files of one bundle. Images
// are never decoded; the collection stores paths only. One Collection is
// shared by every pass minted from a template, so it must not be
// mutated after loading.
type Collection struct {
	paths map[slot]string
}

// NewCollection returns an empty image collection.
func NewCollection() *Collection {
	return &Collection{paths: make(map[slot]string)}
}

// Load scans dir for recognized image files and records their paths.
// Previously recorded entries are kept unless overwritten; unrecognized
// files are skipped silently.
func (c *Collection) Load(fs types.FS, dir string) error {
	logger := logging.GetLogger("images")

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read bundle images").
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := filePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		variant := Density1x
		switch m[2] {
		case "@2x":
			variant = Density2x
		case "@3x":
			variant = Density3x
		}

		c.paths[slot{ImageName(m[1]), variant}] = filepath.Join(dir, entry.Name())
		logger.Trace().
			Str("image", m[1]).
			Str("variant", string(variant)).
			Msg("Found image")
	}

	logger.Debug().Str("dir", dir).Int("count", len(c.paths)).Msg("Loaded bundle images")
	return nil
}

// Path returns the recorded file path for an image slot.
func (c *Collection) Path(name ImageName, variant Variant) (string, bool) {
	p, ok := c.paths[slot{name, variant}]
	return p, ok
}

// Len returns the number of recorded images.
func (c *Collection) Len() int {
	return len(c.paths)
}

// Names returns the distinct image names present, sorted.
func (c *Collection) Names() []ImageName {
	seen := make(map[ImageName]bool)
	for s := range c.paths {
		seen[s.name] = true
	}
	names := make([]ImageName, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
