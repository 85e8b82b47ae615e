package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/libtrack/internal/cli"
	"github.com/jacksmith/libtrack/internal/ops"
	"github.com/jacksmith/libtrack/internal/storage"
)

// openLibrary loads the library from the current directory and sets up
// colors and logging from its config. Unreadable data files are reported on
// stderr and treated as empty.
func openLibrary() (*ops.Library, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}

	cfg := s.Config()
	cli.ConfigureColor(cfg.Color, os.Stdout)
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := cli.NewLogger(os.Stderr, level)

	lib, err := ops.Open(s, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Yellow(cli.FormatError(err)))
	}
	return lib, nil
}
