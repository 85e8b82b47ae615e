package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/libtrack/internal/cli"
	"github.com/jacksmith/libtrack/internal/model"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student <id>",
	Short: "Show the books issued to a student",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudent,
}

func init() {
	rootCmd.AddCommand(studentCmd)
}

func runStudent(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	studentID := model.NormalizeID(args[0])
	ids := lib.IssuedTo(studentID)
	if len(ids) == 0 {
		fmt.Printf("No books issued to %s.\n", studentID)
		return nil
	}

	// IssuedTo only returns IDs; look the titles up in the catalog.
	byID := make(map[string]model.Book)
	for _, b := range lib.Books() {
		byID[b.ID] = b
	}
	books := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			b = model.Book{ID: id, Title: "(not in catalog)"}
		}
		books = append(books, b)
	}

	fmt.Printf("Books issued to %s: %d\n", studentID, len(books))
	cli.RenderBooks(os.Stdout, books)
	return nil
}
