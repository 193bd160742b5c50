// Package matrix generates build matrices for native-module CI pipelines.
//
// Given a package manifest and a base build command, the Generator
// resolves each declared target triple against the platform registry and
// produces an ordered build plan: one (host, target, build command) row
// per declared target. Resolution is all-or-nothing; a single unknown
// triple fails the run, and the failure carries every unknown triple so
// one iteration fixes the whole manifest.
package matrix

import (
	"strings"

	"github.com/matrixgen-dev/matrixgen/internal/log"
	"github.com/matrixgen-dev/matrixgen/internal/manifest"
	"github.com/matrixgen-dev/matrixgen/internal/registry"
)

// Plan is the generated build matrix. The settings wrapper is the field
// name the downstream workflow reads as its job matrix.
type Plan struct {
	Settings []registry.Entry `json:"settings"`
}

// Result carries the three values published for one generation run.
type Result struct {
	// Plan is the ordered build matrix, one row per declared target,
	// declaration order and duplicates preserved.
	Plan Plan

	// RawTargets is the declared target list, verbatim and untrimmed.
	RawTargets []string

	// Dir is the directory containing the manifest.
	Dir string
}

// Generator resolves package manifests into build plans.
type Generator struct {
	logger log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{logger: log.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate reads the manifest at manifestPath and produces the build plan
// for baseCmd. The base command is passed through uninterpreted; each row
// gets --target <triple> and the target's extra flags appended.
//
// Declared triples are trimmed of surrounding whitespace before lookup,
// tolerating line-ending artifacts in hand-edited manifests; the
// published RawTargets keep the original spelling.
//
// Failure modes, all fatal and none retried here: a missing manifest
// (manifest.ErrNotFound), undecodable content (*manifest.ParseError), an
// absent or empty napi.targets list (manifest.ErrNoTargets), and declared
// triples outside the platform table (*UnsupportedTargetsError, carrying
// the complete offender list). No partial plan is ever returned.
func (g *Generator) Generate(manifestPath, baseCmd string) (*Result, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	declared, err := m.Targets()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("targets declared", "count", len(declared), "manifest", manifestPath)

	var (
		settings    []registry.Entry
		unsupported []string
	)
	for _, raw := range declared {
		target := strings.TrimSpace(raw)
		entry, ok := registry.Lookup(target, baseCmd)
		if !ok {
			// Keep collecting so the error reports every offender.
			g.logger.Debug("target rejected", "target", target)
			unsupported = append(unsupported, target)
			continue
		}
		g.logger.Debug("target resolved", "target", target, "host", entry.Host)
		settings = append(settings, entry)
	}

	if len(unsupported) > 0 {
		return nil, &UnsupportedTargetsError{Targets: unsupported}
	}

	return &Result{
		Plan:       Plan{Settings: settings},
		RawTargets: declared,
		Dir:        m.Dir(),
	}, nil
}
