package errmsg

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matrixgen-dev/matrixgen/internal/manifest"
	"github.com/matrixgen-dev/matrixgen/internal/matrix"
)

func TestFormat_Nil(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestFormat_UnknownErrorPassesThrough(t *testing.T) {
	got := Format(errors.New("something broke"))
	if !strings.Contains(got, "Error: something broke") {
		t.Errorf("Format() = %q, missing error message", got)
	}
	if strings.Contains(got, "Suggestion") {
		t.Errorf("Format() = %q, unexpected suggestion for unknown error", got)
	}
}

func TestFormat_Suggestions(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantTip string
	}{
		{
			name:    "missing manifest",
			err:     fmt.Errorf("%w: package.json", manifest.ErrNotFound),
			wantTip: "--manifest",
		},
		{
			name:    "parse error",
			err:     &manifest.ParseError{Path: "package.json", Err: errors.New("bad json")},
			wantTip: "well-formed JSON",
		},
		{
			name:    "no targets",
			err:     fmt.Errorf("%w in package.json", manifest.ErrNoTargets),
			wantTip: "napi.targets",
		},
		{
			name:    "unsupported targets use the error's own suggestion",
			err:     &matrix.UnsupportedTargetsError{Targets: []string{"bogus"}},
			wantTip: "matrixgen platforms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.err)
			if !strings.Contains(got, tt.err.Error()) {
				t.Errorf("Format() = %q, missing error text", got)
			}
			if !strings.Contains(got, "Suggestion:") {
				t.Fatalf("Format() = %q, missing suggestion section", got)
			}
			if !strings.Contains(got, tt.wantTip) {
				t.Errorf("Format() = %q, want suggestion containing %q", got, tt.wantTip)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, errors.New("boom"))
	if !strings.Contains(buf.String(), "Error: boom") {
		t.Errorf("Fprint wrote %q", buf.String())
	}
}
