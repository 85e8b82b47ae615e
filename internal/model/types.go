// Package model defines the core data structures for libtrack.
package model

import "sort"

// Book is a catalog entry. Books are never mutated once added.
type Book struct {
	ID     string
	Title  string
	Author string
}

// BookSet is a set of book IDs.
type BookSet map[string]struct{}

// NewBookSet returns a set holding ids.
func NewBookSet(ids ...string) BookSet {
	s := make(BookSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s BookSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the IDs in ascending order.
func (s BookSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IssuedRecords maps a student ID to the set of books issued to them.
// A student key is present only while its set is non-empty.
type IssuedRecords map[string]BookSet

// Union returns every book ID issued to any student.
// An empty IssuedRecords yields an empty set.
func (r IssuedRecords) Union() BookSet {
	all := make(BookSet)
	for _, books := range r {
		for id := range books {
			all[id] = struct{}{}
		}
	}
	return all
}

// Holder returns the student holding bookID, if any.
func (r IssuedRecords) Holder(bookID string) (string, bool) {
	for student, books := range r {
		if books.Has(bookID) {
			return student, true
		}
	}
	return "", false
}

// Students returns the student IDs in ascending order.
func (r IssuedRecords) Students() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy.
func (r IssuedRecords) Clone() IssuedRecords {
	out := make(IssuedRecords, len(r))
	for student, books := range r {
		cp := make(BookSet, len(books))
		for id := range books {
			cp[id] = struct{}{}
		}
		out[student] = cp
	}
	return out
}
