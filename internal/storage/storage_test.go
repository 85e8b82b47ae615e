package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/libtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("open existing directory succeeds", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Open(dir)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, dir, s.Root())
		assert.Equal(t, filepath.Join(dir, "books.txt"), s.CatalogPath())
		assert.Equal(t, filepath.Join(dir, "issued_books.txt"), s.IssuedPath())
	})

	t.Run("open non-existent directory returns error", func(t *testing.T) {
		s, err := Open("/nonexistent/path")
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("open a file returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		s, err := Open(path)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("configured file names are used", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(t.TempDir(), "loans.txt")
		content := "catalog_file: data/catalog.txt\nissued_file: " + abs + "\n"
		require.NoError(t, os.WriteFile(ConfigPath(dir), []byte(content), 0644))

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "data", "catalog.txt"), s.CatalogPath())
		assert.Equal(t, abs, s.IssuedPath())
	})
}

func TestLoadMissingFiles(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	books, skipped, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Empty(t, skipped)

	records, skipped, err := s.LoadIssued()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Empty(t, skipped)
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory where the catalog file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "books.txt"), 0755))

	s, err := Open(dir)
	require.NoError(t, err)

	_, _, err = s.LoadCatalog()
	require.Error(t, err)
}

func TestSaveAndLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	books := []model.Book{
		{ID: "B101", Title: "Python Guide", Author: "G V"},
		{ID: "B102", Title: "Go In Action", Author: "William Kennedy"},
	}
	require.NoError(t, s.SaveCatalog(books))

	data, err := os.ReadFile(filepath.Join(dir, "books.txt"))
	require.NoError(t, err)
	assert.Equal(t, "B101|Python Guide|G V\nB102|Go In Action|William Kennedy\n", string(data))

	loaded, skipped, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, books, loaded)
}

func TestSaveAndLoadIssued(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	records := model.IssuedRecords{
		"S101": model.NewBookSet("B101", "B103"),
		"S102": model.NewBookSet("B102"),
	}
	require.NoError(t, s.SaveIssued(records))

	data, err := os.ReadFile(filepath.Join(dir, "issued_books.txt"))
	require.NoError(t, err)
	assert.Equal(t, "S101: B101,B103\nS102: B102\n", string(data))

	loaded, skipped, err := s.LoadIssued()
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, records, loaded)
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveIssued(model.IssuedRecords{"S101": model.NewBookSet("B101")}))
	require.NoError(t, s.SaveIssued(model.IssuedRecords{}))

	data, err := os.ReadFile(s.IssuedPath())
	require.NoError(t, err)
	assert.Empty(t, string(data))

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "issued_books.txt", entries[0].Name())
}

func TestSaveToMissingDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	content := "catalog_file: missing/books.txt\n"
	require.NoError(t, os.WriteFile(ConfigPath(dir), []byte(content), 0644))

	s, err := Open(dir)
	require.NoError(t, err)

	err = s.SaveCatalog([]model.Book{{ID: "B101", Title: "T", Author: "A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "books.txt")
}
