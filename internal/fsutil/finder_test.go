package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}
	explicit := filepath.Join(dir, "notes.txt")

	files, err := FindFilesByExtension(".hcl", dir, filepath.Join(dir, "a.hcl"), explicit)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
		explicit,
	}, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(".hcl", filepath.Join(t.TempDir(), "missing"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _, _ = FindFilesByExtension("", ".") })
}
