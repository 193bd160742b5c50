// Package errmsg formats generation errors with actionable suggestions.
//
// Every failure mode of a generation run has a concrete fix on the user's
// side; printing that fix next to the error saves a round trip through
// the documentation.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matrixgen-dev/matrixgen/internal/manifest"
)

// suggester is implemented by errors that carry their own suggestion.
type suggester interface {
	Suggestion() string
}

// Format returns the error message, followed by an actionable suggestion
// when the failure mode has a known fix.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())

	if tip := suggestionFor(err); tip != "" {
		sb.WriteString("\n\nSuggestion:\n  ")
		sb.WriteString(tip)
	}

	sb.WriteString("\n")
	return sb.String()
}

func suggestionFor(err error) string {
	var s suggester
	if errors.As(err, &s) {
		return s.Suggestion()
	}

	var parseErr *manifest.ParseError
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		return "Check the --manifest path; it should point at the package.json declaring napi.targets"
	case errors.As(err, &parseErr):
		return "Verify the manifest is well-formed JSON and napi.targets is an array of strings"
	case errors.Is(err, manifest.ErrNoTargets):
		return "Declare at least one target triple under napi.targets in the manifest"
	}
	return ""
}

// Fprint writes the formatted error to w.
func Fprint(w io.Writer, err error) {
	fmt.Fprint(w, Format(err))
}
