// Package report writes recorder summaries to streams and files.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Summarizer is the part of a recorder needed to publish its
// results. *tester.Recorder implements it.
type Summarizer interface {
	Summary() string
	CountFailed() int
}

// WriteSummary writes the summary of s to w.
func WriteSummary(w io.Writer, s Summarizer) error {
	if _, err := io.WriteString(w, s.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// SaveSummary writes the summary of s to path, creating parent
// directories as needed.
func SaveSummary(s Summarizer, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	if err := os.WriteFile(
		path, []byte(s.Summary()), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write summary %s: %w", path, err,
		)
	}
	return nil
}

// ExitCode returns 1 when s recorded a failure and 0 otherwise.
func ExitCode(s Summarizer) int {
	if s.CountFailed() > 0 {
		return 1
	}
	return 0
}
