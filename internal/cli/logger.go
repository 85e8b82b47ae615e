package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text logger writing records at or above level to w.
// Every record carries a session id so runs can be told apart in a shared log.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}
