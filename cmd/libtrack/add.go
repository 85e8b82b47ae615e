package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <title> <author>",
	Short: "Add a book to the catalog",
	Long: `Add a book to the catalog.

The ID is uppercased and must be unique. Title and author are stored with
each word capitalized.

Examples:
  libtrack add B101 "python guide" "g v"`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	book, err := lib.AddBook(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s by %s\n", book.ID, book.Title, book.Author)
	return nil
}
