package passbundle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/passbundle/pkg/testutil"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	root := t.TempDir()
	good := testutil.WriteBundle(t, root, "good", "eventTicket", map[string]interface{}{
		"logoText": "Show",
	}, "icon.png")
	bad := testutil.CreateDir(t, root, "bad")

	t.Run("valid_bundle", func(t *testing.T) {
		stdout, _, err := runCommand(t, "validate", good)
		require.NoError(t, err)
		assert.Contains(t, stdout, "eventTicket")
		assert.Contains(t, stdout, "1 fields")
		assert.Contains(t, stdout, "1 images")
	})

	t.Run("invalid_bundle", func(t *testing.T) {
		_, stderr, err := runCommand(t, "validate", bad)
		require.Error(t, err)
		assert.Contains(t, stderr, "FILE_ACCESS")
	})

	t.Run("mixed_bundles_fail", func(t *testing.T) {
		stdout, _, err := runCommand(t, "validate", good, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 bundles failed")
		assert.Contains(t, stdout, "eventTicket")
	})
}

func TestFieldsCommand(t *testing.T) {
	root := t.TempDir()
	dir := testutil.WriteBundle(t, root, "show", "coupon", map[string]interface{}{
		"logoText": "Deal",
	})

	stdout, _, err := runCommand(t, "fields", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"coupon"`)
	assert.Contains(t, stdout, `"Deal"`)
}
