package filer

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff turning old into generated, with three
// lines of context. It is empty when both are equal.
func UnifiedDiff(path, old, generated string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(old),
		B:        splitLines(generated),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
}

// splitLines splits s after each newline. Unlike difflib.SplitLines it
// yields no empty line after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
