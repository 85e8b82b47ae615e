package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var returnCmd = &cobra.Command{
	Use:   "return <student> <book>",
	Short: "Return a book issued to a student",
	Long: `Return a book issued to a student.

Examples:
  libtrack return S101 B101`,
	Args: cobra.ExactArgs(2),
	RunE: runReturn,
}

func init() {
	rootCmd.AddCommand(returnCmd)
}

func runReturn(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	loan, err := lib.ReturnBook(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s returned by %s\n", loan.BookID, loan.StudentID)
	return nil
}
