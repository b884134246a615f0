package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a debug-level text logger writing into the returned buffer,
// so tests can assert on run and request fields including the per-candidate scores.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
