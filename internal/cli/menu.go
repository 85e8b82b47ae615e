package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/libtrack/internal/model"
	"github.com/jacksmith/libtrack/internal/ops"
)

// Library is the part of ops.Library the menu drives.
type Library interface {
	AddBook(id, title, author string) (model.Book, error)
	IssueBook(studentID, bookID string) (ops.Loan, error)
	ReturnBook(studentID, bookID string) (ops.Loan, error)
	ListAvailable() []model.Book
	CatalogSize() int
	HasBook(id string) bool
}

// Menu choices.
const (
	choiceAdd       = "1"
	choiceIssue     = "2"
	choiceReturn    = "3"
	choiceAvailable = "4"
	choiceExit      = "5"
)

// Menu is the interactive numbered menu loop.
type Menu struct {
	lib     Library
	in      *bufio.Reader
	out     io.Writer
	readErr error // first input failure other than EOF
}

// NewMenu returns a menu reading answers from in and writing to out.
func NewMenu(lib Library, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		lib: lib,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run shows the menu until the user exits or input ends.
// Operation failures are printed and never end the loop; only a failure to
// read input is returned.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "--- Welcome to the Library Management System ---")

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, Gray("--- Main Menu ---"))
		fmt.Fprintln(m.out, "1. Add Book")
		fmt.Fprintln(m.out, "2. Issue Book (Borrow)")
		fmt.Fprintln(m.out, "3. Return Book")
		fmt.Fprintln(m.out, "4. Display Available Books")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.prompt("Enter your choice (1-5): ")
		if !ok {
			fmt.Fprintln(m.out)
			return m.readErr
		}

		var more bool
		switch choice {
		case choiceAdd:
			more = m.addBook()
		case choiceIssue:
			more = m.issueBook()
		case choiceReturn:
			more = m.returnBook()
		case choiceAvailable:
			m.displayAvailable()
			more = true
		case choiceExit:
			fmt.Fprintln(m.out, "Exiting Library Management System. Have a great day!")
			return nil
		default:
			fmt.Fprintln(m.out, Yellow("Invalid choice. Please enter a number between 1 and 5."))
			more = true
		}
		if !more {
			fmt.Fprintln(m.out)
			return m.readErr
		}
	}
}

// prompt prints label and reads one trimmed line of any length.
// ok is false once input ends or fails.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			m.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

// The operation handlers return false when input ended mid-prompt.

func (m *Menu) addBook() bool {
	fmt.Fprintln(m.out, Gray("\n--- Add New Book ---"))

	id, ok := m.prompt("Enter Book ID (e.g., B101): ")
	if !ok {
		return false
	}
	// Reject a duplicate before asking for the rest.
	if m.lib.HasBook(id) {
		m.printError(&ops.DuplicateIDError{ID: model.NormalizeID(id)})
		return true
	}
	title, ok := m.prompt("Enter Book Title: ")
	if !ok {
		return false
	}
	author, ok := m.prompt("Enter Author Name: ")
	if !ok {
		return false
	}

	book, err := m.lib.AddBook(id, title, author)
	if err != nil && !IsSaveFailure(err) {
		m.printError(err)
		return true
	}
	fmt.Fprintln(m.out, Green(fmt.Sprintf("Book '%s' by %s added successfully.", book.Title, book.Author)))
	m.printError(err)
	return true
}

func (m *Menu) issueBook() bool {
	fmt.Fprintln(m.out, Gray("\n--- Issue Book ---"))

	student, ok := m.prompt("Enter Student ID: ")
	if !ok {
		return false
	}
	bookID, ok := m.prompt("Enter Book ID to issue: ")
	if !ok {
		return false
	}

	loan, err := m.lib.IssueBook(student, bookID)
	if err != nil && !IsSaveFailure(err) {
		m.printError(err)
		return true
	}
	fmt.Fprintln(m.out, Green(fmt.Sprintf("Book %s successfully issued to Student %s.", loan.BookID, loan.StudentID)))
	m.printError(err)
	return true
}

func (m *Menu) returnBook() bool {
	fmt.Fprintln(m.out, Gray("\n--- Return Book ---"))

	student, ok := m.prompt("Enter Student ID: ")
	if !ok {
		return false
	}
	bookID, ok := m.prompt("Enter Book ID to return: ")
	if !ok {
		return false
	}

	loan, err := m.lib.ReturnBook(student, bookID)
	if err != nil && !IsSaveFailure(err) {
		m.printError(err)
		return true
	}
	fmt.Fprintln(m.out, Green(fmt.Sprintf("Book %s successfully returned by Student %s.", loan.BookID, loan.StudentID)))
	m.printError(err)
	return true
}

func (m *Menu) displayAvailable() {
	fmt.Fprintln(m.out, Gray("\n--- Available Book Catalog ---"))
	PrintAvailable(m.out, m.lib)
}

// PrintAvailable writes the available-books report: a notice when the catalog
// is empty or fully issued, otherwise a count and a 1-indexed listing.
func PrintAvailable(w io.Writer, lib Library) {
	if lib.CatalogSize() == 0 {
		fmt.Fprintln(w, "The library catalog is empty.")
		return
	}
	books := lib.ListAvailable()
	if len(books) == 0 {
		fmt.Fprintln(w, "All books are currently issued.")
		return
	}
	fmt.Fprintf(w, "Total books available: %d\n", len(books))
	RenderBooks(w, books)
}

func (m *Menu) printError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(m.out, Red(FormatError(err)))
}
