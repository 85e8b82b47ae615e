package main

import (
	"os"

	"github.com/jacksmith/libtrack/internal/cli"
	"github.com/spf13/cobra"
)

var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "List books not issued to anyone",
	Args:  cobra.NoArgs,
	RunE:  runAvailable,
}

func init() {
	rootCmd.AddCommand(availableCmd)
}

func runAvailable(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	cli.PrintAvailable(os.Stdout, lib)
	return nil
}
