package images_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/passbundle/pkg/errors"
	"github.com/arthur-debert/passbundle/pkg/filesystem"
	"github.com/arthur-debert/passbundle/pkg/images"
)

func writeFiles(t *testing.T, fs afero.Fs, dir string, names ...string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte("png"), 0644))
	}
}

func TestCollectionLoad(t *testing.T) {
	memfs := afero.NewMemMapFs()
	writeFiles(t, memfs, "/bundle",
		"icon.png", "icon@2x.png", "logo.png", "strip@3x.png",
		"pass.json", "notes.txt", "banner.png", "icon.jpg")

	coll := images.NewCollection()
	err := coll.Load(filesystem.NewAferoFS(memfs), "/bundle")
	require.NoError(t, err)

	assert.Equal(t, 4, coll.Len())

	p, ok := coll.Path(images.Icon, images.Density1x)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/bundle", "icon.png"), p)

	_, ok = coll.Path(images.Icon, images.Density2x)
	assert.True(t, ok)

	_, ok = coll.Path(images.Strip, images.Density3x)
	assert.True(t, ok)

	// Unrecognized names and extensions are skipped.
	_, ok = coll.Path(images.ImageName("banner"), images.Density1x)
	assert.False(t, ok)

	assert.Equal(t, []images.ImageName{images.Icon, images.Logo, images.Strip}, coll.Names())
}

func TestCollectionLoadMissingDir(t *testing.T) {
	coll := images.NewCollection()
	err := coll.Load(filesystem.NewAferoFS(afero.NewMemMapFs()), "/missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.Equal(t, 0, coll.Len())
}

func TestCollectionEmpty(t *testing.T) {
	coll := images.NewCollection()
	assert.Equal(t, 0, coll.Len())
	assert.Empty(t, coll.Names())

	_, ok := coll.Path(images.Icon, images.Density1x)
	assert.False(t, ok)
}
