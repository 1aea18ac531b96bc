package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := store.Save("deck.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "deck.pdf", name)

	data, err := os.ReadFile(store.Path("deck.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestLocalStorageCreatesNestedDirs(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = store.Save(filepath.Join("2026", "q3", "workbook.xlsx"), []byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "2026", "q3", "workbook.xlsx"))
	require.NoError(t, err)
}

func TestLocalStorageAbsolutePathPassthrough(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(t.TempDir(), "out.csv")
	assert.Equal(t, abs, store.Path(abs))
}
