package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var issueCmd = &cobra.Command{
	Use:   "issue <student> <book>",
	Short: "Issue a book to a student",
	Long: `Issue a book to a student.

Fails if the book is not in the catalog or is already issued to anyone.

Examples:
  libtrack issue S101 B101`,
	Args: cobra.ExactArgs(2),
	RunE: runIssue,
}

func init() {
	rootCmd.AddCommand(issueCmd)
}

func runIssue(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	loan, err := lib.IssueBook(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s issued to %s\n", loan.BookID, loan.StudentID)
	return nil
}
