package filesystem_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/passbundle/pkg/filesystem"
)

func TestAferoFS(t *testing.T) {
	memfs := afero.NewMemMapFs()
	fsys := filesystem.NewAferoFS(memfs)

	require.NoError(t, fsys.MkdirAll("/dir/sub", 0755))
	require.NoError(t, fsys.WriteFile("/dir/a.txt", []byte("alpha"), 0644))
	require.NoError(t, fsys.WriteFile("/dir/b.txt", []byte("beta"), 0644))

	t.Run("stat", func(t *testing.T) {
		info, err := fsys.Stat("/dir/a.txt")
		require.NoError(t, err)
		assert.False(t, info.IsDir())
		assert.Equal(t, int64(5), info.Size())
	})

	t.Run("read_file", func(t *testing.T) {
		data, err := fsys.ReadFile("/dir/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(data))
	})

	t.Run("read_file_on_dir_fails", func(t *testing.T) {
		_, err := fsys.ReadFile("/dir")
		assert.Error(t, err)
	})

	t.Run("read_dir", func(t *testing.T) {
		entries, err := fsys.ReadDir("/dir")
		require.NoError(t, err)
		require.Len(t, entries, 3)

		names := make(map[string]bool)
		for _, e := range entries {
			names[e.Name()] = e.IsDir()
		}
		assert.Equal(t, map[string]bool{"a.txt": false, "b.txt": false, "sub": true}, names)
	})

	t.Run("read_dir_missing", func(t *testing.T) {
		_, err := fsys.ReadDir("/missing")
		assert.Error(t, err)
	})
}
