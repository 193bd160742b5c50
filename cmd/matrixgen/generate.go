package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrixgen-dev/matrixgen/internal/gha"
	"github.com/matrixgen-dev/matrixgen/internal/log"
	"github.com/matrixgen-dev/matrixgen/internal/manifest"
	"github.com/matrixgen-dev/matrixgen/internal/matrix"
	"github.com/matrixgen-dev/matrixgen/internal/userconfig"
)

var (
	generateManifest string
	generateBuildCmd string
	generateJSON     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the build matrix from a package manifest",
	Long: `Generate the build matrix for the targets declared under napi.targets
in a package manifest.

Every declared target must be a supported platform triple; run
'matrixgen platforms' for the full table. Generation is all-or-nothing:
one unknown target fails the run, and the failure lists every unknown
target at once.

Published outputs (GITHUB_OUTPUT when set, stdout otherwise):
  matrix   the build plan JSON, one settings row per declared target
  targets  the declared target list, verbatim
  dir      the directory containing the manifest

Examples:
  matrixgen generate
  matrixgen generate --manifest packages/core/package.json
  matrixgen generate --build-command "pnpm build --release" --json`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateManifest, "manifest", "m", "", "Path to the package manifest (default: config, then package.json)")
	generateCmd.Flags().StringVarP(&generateBuildCmd, "build-command", "b", "", "Base build command parametrized per target (default: config, then 'pnpm build')")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Also print the build plan as indented JSON on stdout")
}

func runGenerate(cmd *cobra.Command, args []string) {
	manifestPath, buildCmd := generateInputs()

	gen := matrix.New(matrix.WithLogger(log.Default()))
	result, err := gen.Generate(manifestPath, buildCmd)
	if err != nil {
		printError(err)
		exitWithCode(exitCodeFor(err))
	}

	if err := publishResult(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitWithCode(ExitGeneral)
	}

	if generateJSON {
		printJSON(result.Plan)
	}
}

// generateInputs resolves the manifest path and base build command from
// flags, user config, and built-in defaults, in that order.
func generateInputs() (manifestPath, buildCmd string) {
	cfg := userconfig.Default()

	cfgPath, err := userconfig.Path()
	if err == nil {
		cfg, err = userconfig.Load(cfgPath)
	}
	if err != nil {
		// A broken config must not block generation driven by flags.
		log.Default().Warn("falling back to default config", "error", err)
		cfg = userconfig.Default()
	}

	manifestPath = generateManifest
	if manifestPath == "" {
		manifestPath = cfg.Manifest
	}
	buildCmd = generateBuildCmd
	if buildCmd == "" {
		buildCmd = cfg.BuildCommand
	}
	return manifestPath, buildCmd
}

// publishResult emits the three named outputs of a generation run.
func publishResult(result *matrix.Result) error {
	planJSON, err := json.Marshal(result.Plan)
	if err != nil {
		return fmt.Errorf("failed to encode build plan: %w", err)
	}
	targetsJSON, err := json.Marshal(result.RawTargets)
	if err != nil {
		return fmt.Errorf("failed to encode target list: %w", err)
	}

	out := gha.FromEnv(os.Stdout)
	outputs := []struct {
		name  string
		value string
	}{
		{"matrix", string(planJSON)},
		{"targets", string(targetsJSON)},
		{"dir", result.Dir},
	}
	for _, o := range outputs {
		if err := out.Set(o.name, o.value); err != nil {
			return fmt.Errorf("failed to publish output %s: %w", o.name, err)
		}
	}
	return nil
}

// exitCodeFor maps a generation failure to its exit code.
func exitCodeFor(err error) int {
	var parseErr *manifest.ParseError
	var unsupported *matrix.UnsupportedTargetsError
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		return ExitManifestNotFound
	case errors.As(err, &parseErr):
		return ExitManifestParse
	case errors.Is(err, manifest.ErrNoTargets):
		return ExitNoTargets
	case errors.As(err, &unsupported):
		return ExitUnsupportedTargets
	}
	return ExitGeneral
}
