// Package gha publishes named values in the GitHub Actions step-output
// format.
//
// Inside a workflow, outputs are appended to the file named by the
// GITHUB_OUTPUT environment variable using the name=value syntax, with a
// heredoc delimiter for multi-line values. Outside of Actions there is no
// output file, so values go to a fallback writer instead; that keeps
// local runs inspectable without any CI environment.
package gha

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvOutputFile is the environment variable naming the step-output file.
const EnvOutputFile = "GITHUB_OUTPUT"

// delimiter terminates multi-line values. The values this tool publishes
// are generated JSON and directory paths, which cannot contain the marker.
const delimiter = "MATRIXGEN_OUTPUT"

// Writer publishes named step outputs.
type Writer struct {
	path     string
	fallback io.Writer
}

// New returns a Writer appending to the output file at path. When path is
// empty, values are written to fallback as "name: value" lines.
func New(path string, fallback io.Writer) *Writer {
	return &Writer{path: path, fallback: fallback}
}

// FromEnv returns a Writer for the current process environment: the
// GITHUB_OUTPUT file when set, fallback otherwise.
func FromEnv(fallback io.Writer) *Writer {
	return New(os.Getenv(EnvOutputFile), fallback)
}

// Set publishes one named output value.
func (w *Writer) Set(name, value string) error {
	if w.path == "" {
		_, err := fmt.Fprintf(w.fallback, "%s: %s\n", name, value)
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Format(name, value)); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

// Format renders one output assignment in the syntax Actions parses:
// name=value for single-line values, a heredoc block otherwise.
func Format(name, value string) string {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	}
	return fmt.Sprintf("%s=%s\n", name, value)
}
