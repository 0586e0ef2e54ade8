package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// WriteBundle creates a bundle directory named name under root with a
// pass.json whose single style key holds styleFields and whose other
// entries of topLevel are written at the top level. Image files are
// created with placeholder content.
func WriteBundle(t *testing.T, root, name, style string, topLevel map[string]interface{}, imageNames ...string) string {
	t.Helper()

	dir := CreateDir(t, root, name)

	def := map[string]interface{}{
		style: map[string]interface{}{},
	}
	for k, v := range topLevel {
		def[k] = v
	}

	data, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("Failed to marshal bundle definition: %v", err)
	}
	CreateFile(t, dir, "pass.json", string(data))

	for _, img := range imageNames {
		CreateFile(t, dir, img, "png-placeholder")
	}

	return dir
}
