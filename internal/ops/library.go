// Package ops provides the library's business logic: the in-memory catalog and
// issued records, and the operations that mutate and query them.
package ops

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/jacksmith/libtrack/internal/model"
)

const (
	catalogFile = "catalog"
	issuedFile  = "issued records"
)

// Loan pairs a student with a book, as issued or returned.
type Loan struct {
	StudentID string
	BookID    string
}

// Library holds the catalog and issued records in memory and persists them
// through a Store after every mutation. It is not safe for concurrent use.
type Library struct {
	store Store
	log   *slog.Logger

	catalog   []model.Book
	available model.BookSet // mirrors catalog IDs for existence checks
	issued    model.IssuedRecords
}

// Open loads the catalog and issued records from s.
//
// Open always returns a usable Library. If a file cannot be read, that part of
// the state starts empty and the returned error holds a *ReadError for it.
// A nil logger discards diagnostics.
func Open(s Store, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Library{
		store:     s,
		log:       logger,
		available: make(model.BookSet),
		issued:    make(model.IssuedRecords),
	}

	var errs []error

	books, skipped, err := s.LoadCatalog()
	if err != nil {
		l.log.Debug("catalog unreadable, starting empty", "error", err)
		errs = append(errs, &ReadError{File: catalogFile, Err: err})
	} else {
		l.logSkipped(catalogFile, skipped)
		for _, b := range books {
			l.catalog = append(l.catalog, b)
			l.available[b.ID] = struct{}{}
		}
	}

	records, skipped, err := s.LoadIssued()
	if err != nil {
		l.log.Debug("issued records unreadable, starting empty", "error", err)
		errs = append(errs, &ReadError{File: issuedFile, Err: err})
	} else {
		l.logSkipped(issuedFile, skipped)
		if records != nil {
			l.issued = records
		}
	}

	l.log.Debug("library loaded", "books", len(l.catalog), "students", len(l.issued))
	return l, errors.Join(errs...)
}

func (l *Library) logSkipped(file string, skipped []model.SkippedLine) {
	for _, s := range skipped {
		l.log.Debug("skipped line", "file", file, "line", s.Line, "reason", s.Reason)
	}
}

// AddBook adds a book to the catalog and saves the catalog.
// The ID is trimmed and uppercased; title and author are title-cased.
//
// If only the save fails, the book is still added and the returned error is a
// *WriteError.
func (l *Library) AddBook(id, title, author string) (model.Book, error) {
	id = model.NormalizeID(id)
	if id == "" {
		return model.Book{}, &ValidationError{Field: "book ID", Message: "must not be empty"}
	}
	if strings.TrimSpace(title) == "" {
		return model.Book{}, &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if l.available.Has(id) {
		return model.Book{}, &DuplicateIDError{ID: id}
	}

	book := model.Book{
		ID:     id,
		Title:  model.TitleCase(title),
		Author: model.TitleCase(author),
	}
	l.catalog = append(l.catalog, book)
	l.available[id] = struct{}{}
	l.log.Info("book added", "book", id)

	return book, l.saveCatalog()
}

// IssueBook records bookID as held by studentID and saves the issued records.
//
// If only the save fails, the book is still issued and the returned error is a
// *WriteError.
func (l *Library) IssueBook(studentID, bookID string) (Loan, error) {
	loan, err := normalizeLoan(studentID, bookID)
	if err != nil {
		return Loan{}, err
	}

	if !l.available.Has(loan.BookID) {
		return Loan{}, &BookNotFoundError{ID: loan.BookID}
	}
	if holder, ok := l.issued.Holder(loan.BookID); ok {
		return Loan{}, &AlreadyIssuedError{ID: loan.BookID, Holder: holder}
	}

	books, ok := l.issued[loan.StudentID]
	if !ok {
		books = make(model.BookSet)
		l.issued[loan.StudentID] = books
	}
	books[loan.BookID] = struct{}{}
	l.log.Info("book issued", "book", loan.BookID, "student", loan.StudentID)

	return loan, l.saveIssued()
}

// ReturnBook removes bookID from studentID's issued set and saves the issued
// records. A student left holding nothing is removed entirely.
//
// If only the save fails, the book is still returned and the returned error is
// a *WriteError.
func (l *Library) ReturnBook(studentID, bookID string) (Loan, error) {
	loan, err := normalizeLoan(studentID, bookID)
	if err != nil {
		return Loan{}, err
	}

	books, ok := l.issued[loan.StudentID]
	if !ok {
		return Loan{}, &NoRecordsError{StudentID: loan.StudentID}
	}
	if !books.Has(loan.BookID) {
		return Loan{}, &NotIssuedError{StudentID: loan.StudentID, BookID: loan.BookID}
	}

	delete(books, loan.BookID)
	if len(books) == 0 {
		delete(l.issued, loan.StudentID)
	}
	l.log.Info("book returned", "book", loan.BookID, "student", loan.StudentID)

	return loan, l.saveIssued()
}

func normalizeLoan(studentID, bookID string) (Loan, error) {
	loan := Loan{
		StudentID: model.NormalizeID(studentID),
		BookID:    model.NormalizeID(bookID),
	}
	if loan.StudentID == "" {
		return Loan{}, &ValidationError{Field: "student ID", Message: "must not be empty"}
	}
	if loan.BookID == "" {
		return Loan{}, &ValidationError{Field: "book ID", Message: "must not be empty"}
	}
	return loan, nil
}

// ListAvailable returns the catalog books not issued to anyone, in catalog order.
// An empty result with CatalogSize() > 0 means every book is issued.
func (l *Library) ListAvailable() []model.Book {
	issued := l.issued.Union()

	var available []model.Book
	for _, b := range l.catalog {
		if !issued.Has(b.ID) {
			available = append(available, b)
		}
	}
	return available
}

// CatalogSize returns the number of books in the catalog.
func (l *Library) CatalogSize() int {
	return len(l.catalog)
}

// HasBook reports whether id is in the catalog.
func (l *Library) HasBook(id string) bool {
	return l.available.Has(model.NormalizeID(id))
}

// Holder returns the student holding bookID, if any.
func (l *Library) Holder(bookID string) (string, bool) {
	return l.issued.Holder(model.NormalizeID(bookID))
}

// IssuedTo returns the book IDs held by studentID in ascending order.
func (l *Library) IssuedTo(studentID string) []string {
	books, ok := l.issued[model.NormalizeID(studentID)]
	if !ok {
		return nil
	}
	return books.Sorted()
}

// Books returns a copy of the catalog.
func (l *Library) Books() []model.Book {
	out := make([]model.Book, len(l.catalog))
	copy(out, l.catalog)
	return out
}

// Records returns a copy of the issued records.
func (l *Library) Records() model.IssuedRecords {
	return l.issued.Clone()
}

// Snapshot returns the full library state for export.
func (l *Library) Snapshot() model.Snapshot {
	return model.NewSnapshot(l.catalog, l.issued)
}

func (l *Library) saveCatalog() error {
	if err := l.store.SaveCatalog(l.catalog); err != nil {
		l.log.Debug("saving catalog failed", "error", err)
		return &WriteError{File: catalogFile, Err: err}
	}
	l.log.Debug("catalog saved", "books", len(l.catalog))
	return nil
}

func (l *Library) saveIssued() error {
	if err := l.store.SaveIssued(l.issued); err != nil {
		l.log.Debug("saving issued records failed", "error", err)
		return &WriteError{File: issuedFile, Err: err}
	}
	l.log.Debug("issued records saved", "students", len(l.issued))
	return nil
}
