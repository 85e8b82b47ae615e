package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// catalogSep separates the fields of a catalog line.
	catalogSep = "|"
	// issuedSep separates the student ID from the book list.
	issuedSep = ":"
	// bookListSep separates book IDs in an issued-records line.
	bookListSep = ","
)

// SkippedLine describes a persisted line that was dropped while parsing.
type SkippedLine struct {
	Line   int    // 1-based line number
	Reason string // why the line was dropped
}

// eachLine calls fn with every line of r and its 1-based number.
// Lines may be of any length; the trailing newline is included.
func eachLine(r io.Reader, fn func(lineNo int, line string)) error {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(lineNo, line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ParseCatalog reads catalog lines of the form "id|title|author".
// Fields are trimmed. Lines without exactly three fields, and lines repeating
// an ID seen earlier in the file, are skipped and reported.
// Blank lines are ignored without being reported.
func ParseCatalog(r io.Reader) ([]Book, []SkippedLine, error) {
	var books []Book
	var skipped []SkippedLine
	seen := make(map[string]bool)

	err := eachLine(r, func(lineNo int, line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		parts := strings.Split(line, catalogSep)
		if len(parts) != 3 {
			skipped = append(skipped, SkippedLine{
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 3 fields, got %d", len(parts)),
			})
			return
		}

		book := Book{
			ID:     strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(parts[1]),
			Author: strings.TrimSpace(parts[2]),
		}
		if seen[book.ID] {
			skipped = append(skipped, SkippedLine{Line: lineNo, Reason: "duplicate id " + book.ID})
			return
		}
		seen[book.ID] = true
		books = append(books, book)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return books, skipped, nil
}

// FormatCatalog writes one "id|title|author" line per book, in order.
func FormatCatalog(w io.Writer, books []Book) error {
	bw := bufio.NewWriter(w)
	for _, b := range books {
		if _, err := fmt.Fprintf(bw, "%s%s%s%s%s\n", b.ID, catalogSep, b.Title, catalogSep, b.Author); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseIssued reads issued-records lines of the form "student: id1,id2".
// Lines without exactly two colon-separated fields are skipped. Book IDs are
// trimmed and empty ones ignored. A book already claimed by an earlier line
// is dropped from the later one, and a line left with no books is skipped.
func ParseIssued(r io.Reader) (IssuedRecords, []SkippedLine, error) {
	records := make(IssuedRecords)
	var skipped []SkippedLine
	claimed := make(map[string]string)

	err := eachLine(r, func(lineNo int, line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		parts := strings.Split(line, issuedSep)
		if len(parts) != 2 {
			skipped = append(skipped, SkippedLine{
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 2 fields, got %d", len(parts)),
			})
			return
		}

		student := strings.TrimSpace(parts[0])
		if student == "" {
			skipped = append(skipped, SkippedLine{Line: lineNo, Reason: "empty student id"})
			return
		}

		books := make(BookSet)
		for _, raw := range strings.Split(parts[1], bookListSep) {
			id := strings.TrimSpace(raw)
			if id == "" {
				continue
			}
			if holder, ok := claimed[id]; ok && holder != student {
				skipped = append(skipped, SkippedLine{
					Line:   lineNo,
					Reason: fmt.Sprintf("book %s already issued to %s", id, holder),
				})
				continue
			}
			claimed[id] = student
			books[id] = struct{}{}
		}
		if len(books) == 0 {
			skipped = append(skipped, SkippedLine{Line: lineNo, Reason: "no book ids"})
			return
		}

		// A student listed on two lines keeps the union.
		if existing, ok := records[student]; ok {
			for id := range books {
				existing[id] = struct{}{}
			}
			return
		}
		records[student] = books
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read issued records: %w", err)
	}

	return records, skipped, nil
}

// FormatIssued writes one "student: id1,id2" line per student.
// Students and their book IDs are written in ascending order; students with
// an empty set are not written.
func FormatIssued(w io.Writer, records IssuedRecords) error {
	bw := bufio.NewWriter(w)
	for _, student := range records.Students() {
		books := records[student]
		if len(books) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s%s %s\n", student, issuedSep, strings.Join(books.Sorted(), bookListSep)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
