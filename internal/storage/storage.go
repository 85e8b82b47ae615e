// Package storage provides file system operations for the library data files.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jacksmith/libtrack/internal/model"
)

// Storage provides access to the catalog and issued-records files in a directory.
type Storage struct {
	root string // directory holding the data files and .libtrack.yaml
	cfg  *Config
}

// Open returns a Storage for the given directory, reading .libtrack.yaml if present.
// The data files themselves need not exist yet.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	return &Storage{root: dir, cfg: cfg}, nil
}

// Root returns the directory the storage was opened on.
func (s *Storage) Root() string {
	return s.root
}

// Config returns the effective configuration.
func (s *Storage) Config() *Config {
	return s.cfg
}

// CatalogPath returns the path to the catalog file.
func (s *Storage) CatalogPath() string {
	return s.resolve(s.cfg.CatalogFile)
}

// IssuedPath returns the path to the issued-records file.
func (s *Storage) IssuedPath() string {
	return s.resolve(s.cfg.IssuedFile)
}

// resolve makes a configured file name relative to the storage root.
func (s *Storage) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.root, name)
}

// LoadCatalog reads the catalog file.
// A missing file is an empty catalog, not an error.
func (s *Storage) LoadCatalog() ([]model.Book, []model.SkippedLine, error) {
	f, err := os.Open(s.CatalogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open %s: %w", s.CatalogPath(), err)
	}
	defer f.Close()

	return model.ParseCatalog(f)
}

// SaveCatalog overwrites the catalog file with books.
func (s *Storage) SaveCatalog(books []model.Book) error {
	return writeFileAtomic(s.CatalogPath(), func(w io.Writer) error {
		return model.FormatCatalog(w, books)
	})
}

// LoadIssued reads the issued-records file.
// A missing file means nothing is issued, not an error.
func (s *Storage) LoadIssued() (model.IssuedRecords, []model.SkippedLine, error) {
	f, err := os.Open(s.IssuedPath())
	if err != nil {
		if os.IsNotExist(err) {
			return model.IssuedRecords{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open %s: %w", s.IssuedPath(), err)
	}
	defer f.Close()

	return model.ParseIssued(f)
}

// SaveIssued overwrites the issued-records file with records.
func (s *Storage) SaveIssued(records model.IssuedRecords) error {
	return writeFileAtomic(s.IssuedPath(), func(w io.Writer) error {
		return model.FormatIssued(w, records)
	})
}

// writeFileAtomic writes to a temp file beside path and renames it over path,
// so a failed write never leaves a truncated file behind.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
