// Package manifest reads the npm package manifest that declares which
// native targets to build.
//
// Only the fields matrixgen needs are decoded: the package name and
// version for diagnostics, and the napi.targets list that drives matrix
// generation. Failure modes are classified so the CLI can map each to a
// distinct exit code: a missing file, an unparseable file, and a parseable
// file with no usable target list are different defects with different
// fixes.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/matrixgen-dev/matrixgen/internal/log"
)

// ErrNotFound indicates the manifest path does not resolve to a file.
var ErrNotFound = errors.New("manifest not found")

// ErrNoTargets indicates the manifest parsed but declares no targets
// under napi.targets.
var ErrNoTargets = errors.New("no targets declared under napi.targets")

// ParseError indicates the manifest exists but is not valid JSON, or a
// field has the wrong shape (e.g. napi.targets is not an array).
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Napi is the napi-rs section of package.json.
type Napi struct {
	Targets []string `json:"targets"`
}

// Manifest is the subset of package.json matrixgen reads.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Napi    Napi   `json:"napi"`

	path string
}

// Load reads and decodes the manifest at path.
// A missing file wraps ErrNotFound; undecodable content yields a
// *ParseError. Both are fatal to the caller, never retried here.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m := &Manifest{path: path}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// Not valid semver is worth a warning but must not block generation:
	// the version never reaches the build matrix.
	if m.Version != "" {
		if _, err := semver.NewVersion(m.Version); err != nil {
			log.Default().Warn("manifest version is not valid semver",
				"version", m.Version, "manifest", path)
		}
	}

	return m, nil
}

// Path returns the path the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Dir returns the directory containing the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.path)
}

// Targets returns the declared target triples exactly as written in the
// manifest, order and duplicates preserved. Returns an error wrapping
// ErrNoTargets when the napi.targets field is absent or empty.
func (m *Manifest) Targets() ([]string, error) {
	if len(m.Napi.Targets) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTargets, m.path)
	}
	return m.Napi.Targets, nil
}
