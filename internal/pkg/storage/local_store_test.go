package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStore(base)

	path, size, err := store.Save("CT1", "contract", "agreement.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.EqualValues(t, len("pdf bytes"), size)
	assert.True(t, strings.HasPrefix(path, filepath.Join(base, "CT1")))
	assert.Equal(t, ".pdf", filepath.Ext(path))
	assert.True(t, store.Exists(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))

	// A second save of the same name gets a fresh path.
	other, _, err := store.Save("CT1", "contract", "agreement.pdf", strings.NewReader("newer"))
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestLocalStoreCopy(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	src, _, err := store.Save("CT1", "contract", "invoice.pdf", strings.NewReader("invoice"))
	require.NoError(t, err)

	copied, size, err := store.Copy(src, "CT1", "termination")
	require.NoError(t, err)
	assert.NotEqual(t, src, copied)
	assert.EqualValues(t, len("invoice"), size)

	// Removing the source leaves the copy readable.
	require.NoError(t, store.Remove(src))
	assert.False(t, store.Exists(src))
	content, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, "invoice", string(content))
}

func TestLocalStoreRemove(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	path, _, err := store.Save("CT2", "contract", "scan.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))
	assert.Error(t, store.Remove(path))
}
