package ops

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The typed errors below unwrap to these.
var (
	ErrDuplicateID   = errors.New("duplicate book id")
	ErrBookNotFound  = errors.New("book not found")
	ErrAlreadyIssued = errors.New("book already issued")
	ErrNoRecords     = errors.New("student has no issued books")
	ErrNotIssued     = errors.New("book not issued to student")
)

// ValidationError indicates unusable input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// DuplicateIDError indicates a book ID is already in the catalog.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("book ID %s already exists, use a unique ID", e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// BookNotFoundError indicates a book ID is not in the catalog.
type BookNotFoundError struct {
	ID string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book ID %s does not exist in the catalog", e.ID)
}

func (e *BookNotFoundError) Unwrap() error { return ErrBookNotFound }

// AlreadyIssuedError indicates a book is held by a student.
type AlreadyIssuedError struct {
	ID     string
	Holder string // student currently holding the book
}

func (e *AlreadyIssuedError) Error() string {
	return fmt.Sprintf("book ID %s is already issued", e.ID)
}

func (e *AlreadyIssuedError) Unwrap() error { return ErrAlreadyIssued }

// NoRecordsError indicates a student holds no books.
type NoRecordsError struct {
	StudentID string
}

func (e *NoRecordsError) Error() string {
	return fmt.Sprintf("student ID %s has no outstanding issued books", e.StudentID)
}

func (e *NoRecordsError) Unwrap() error { return ErrNoRecords }

// NotIssuedError indicates a book is not held by the given student.
type NotIssuedError struct {
	StudentID string
	BookID    string
}

func (e *NotIssuedError) Error() string {
	return fmt.Sprintf("book ID %s was not issued to student %s", e.BookID, e.StudentID)
}

func (e *NotIssuedError) Unwrap() error { return ErrNotIssued }

// ReadError indicates a data file could not be read. The affected part of the
// library starts empty.
type ReadError struct {
	File string // "catalog" or "issued records"
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates a data file could not be saved. The in-memory change
// that triggered the save is kept.
type WriteError struct {
	File string // "catalog" or "issued records"
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error saving %s: %v", e.File, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
