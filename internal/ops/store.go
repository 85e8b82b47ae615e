package ops

import "github.com/jacksmith/libtrack/internal/model"

// Store defines the persistence interface required by Library.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, failing writers) for testing.
type Store interface {
	LoadCatalog() ([]model.Book, []model.SkippedLine, error)
	SaveCatalog(books []model.Book) error
	LoadIssued() (model.IssuedRecords, []model.SkippedLine, error)
	SaveIssued(records model.IssuedRecords) error
}
