package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFile(t *testing.T) (*File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.json")
	f, err := NewFile(path)
	assert.NoError(t, err)

	return f, path
}

func TestFileGetMissing(t *testing.T) {
	t.Parallel()

	f, path := newTestFile(t)

	_, ok, err := f.Get(KeyTrades)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Opening never creates the file; only Put does.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFilePutGetOverwrite(t *testing.T) {
	t.Parallel()

	f, _ := newTestFile(t)

	assert.NoError(t, f.Put(KeyAccounts, `[{"id":1}]`))

	got, ok, err := f.Get(KeyAccounts)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, got)

	assert.NoError(t, f.Put(KeyAccounts, `[]`))

	got, ok, err = f.Get(KeyAccounts)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, got)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	f, path := newTestFile(t)
	assert.NoError(t, f.Put(KeyAccounts, `[{"id":1}]`))
	assert.NoError(t, f.Put(KeyTrades, `[]`))
	assert.NoError(t, f.Close())

	f2, err := NewFile(path)
	assert.NoError(t, err)

	got, ok, err := f2.Get(KeyAccounts)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, got)

	got, ok, err = f2.Get(KeyTrades)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, got)
}

func TestFileRejectsCorruptStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := NewFile(path)
	assert.Error(t, err)
}
