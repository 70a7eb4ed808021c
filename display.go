// Package main - display.go
//
// Display utilities for timelist.
//
// This file handles:
// - Plain-text rendering of the result list for terminal use
// - Text styling and ANSI color codes
// - Fatal error reporting
//
// JSON output for the launcher is handled by feedback.go; this is the
// human-facing alternative enabled with -plain.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// renderPlain writes the result list as aligned text lines, one row per
// representation, with the subtitle as a dimmed label.
func renderPlain(w io.Writer, items []Item, withColor bool) {
	width := 0
	for _, item := range items {
		if len(item.Subtitle) > width {
			width = len(item.Subtitle)
		}
	}
	for _, item := range items {
		label := item.Subtitle + strings.Repeat(" ", width-len(item.Subtitle))
		fmt.Fprintf(w, "%s  %s\n", style(label, "90", withColor), item.Title)
	}
}

// style applies ANSI color codes to text
func style(text, color string, enabled bool) string {
	if !enabled || color == "" {
		return text
	}
	return "\x1b[" + color + "m" + text + "\x1b[0m"
}

// fatal prints an error message and exits
func fatal(err error) {
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
