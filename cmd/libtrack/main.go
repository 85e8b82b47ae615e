// Package main is the entry point for the libtrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/libtrack/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "libtrack",
	Short: "libtrack - a small library catalog and lending tracker",
	Long: `libtrack keeps a catalog of books and records which student holds each one.

Run without arguments for the interactive menu. The catalog is stored in
books.txt and the issued records in issued_books.txt in the current
directory; both names can be changed in .libtrack.yaml.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("libtrack version {{.Version}}\n")
}

func runMenu(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	return cli.NewMenu(lib, os.Stdin, os.Stdout).Run()
}
