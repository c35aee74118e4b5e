package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	timeFormat    = time.RFC3339
	timePrecision = time.Millisecond
)

// isTerminal reports whether the writer is an interactive terminal; table
// rendering falls back to plain tab-separated rows when it is not.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
