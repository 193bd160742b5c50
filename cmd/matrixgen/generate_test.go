package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/matrixgen-dev/matrixgen/internal/manifest"
	"github.com/matrixgen-dev/matrixgen/internal/matrix"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "manifest not found",
			err:  fmt.Errorf("%w: package.json", manifest.ErrNotFound),
			want: ExitManifestNotFound,
		},
		{
			name: "manifest parse error",
			err:  &manifest.ParseError{Path: "package.json", Err: errors.New("bad json")},
			want: ExitManifestParse,
		},
		{
			name: "no targets declared",
			err:  fmt.Errorf("%w in package.json", manifest.ErrNoTargets),
			want: ExitNoTargets,
		},
		{
			name: "unsupported targets",
			err:  &matrix.UnsupportedTargetsError{Targets: []string{"bogus-a", "bogus-b"}},
			want: ExitUnsupportedTargets,
		},
		{
			name: "anything else",
			err:  errors.New("disk on fire"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestGenerateInputs_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MATRIXGEN_HOME", home)
	configTOML := "build_command = \"yarn build\"\nmanifest = \"pkg/package.json\"\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(configTOML), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("flags win over config", func(t *testing.T) {
		generateManifest = "flag/package.json"
		generateBuildCmd = "npm run build"
		defer func() { generateManifest, generateBuildCmd = "", "" }()

		manifestPath, buildCmd := generateInputs()
		if manifestPath != "flag/package.json" {
			t.Errorf("manifest = %q, want flag value", manifestPath)
		}
		if buildCmd != "npm run build" {
			t.Errorf("build command = %q, want flag value", buildCmd)
		}
	})

	t.Run("config wins over defaults", func(t *testing.T) {
		generateManifest, generateBuildCmd = "", ""

		manifestPath, buildCmd := generateInputs()
		if manifestPath != "pkg/package.json" {
			t.Errorf("manifest = %q, want config value", manifestPath)
		}
		if buildCmd != "yarn build" {
			t.Errorf("build command = %q, want config value", buildCmd)
		}
	})
}

func TestGenerateInputs_Defaults(t *testing.T) {
	t.Setenv("MATRIXGEN_HOME", t.TempDir())
	generateManifest, generateBuildCmd = "", ""

	manifestPath, buildCmd := generateInputs()
	if manifestPath != "package.json" {
		t.Errorf("manifest = %q, want built-in default", manifestPath)
	}
	if buildCmd != "pnpm build" {
		t.Errorf("build command = %q, want built-in default", buildCmd)
	}
}

func TestPublishResult_WritesStepOutputs(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "package.json")
	content := `{"napi": {"targets": ["x86_64-apple-darwin"]}}`
	if err := os.WriteFile(manifestPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := matrix.New().Generate(manifestPath, "pnpm build")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := publishResult(result); err != nil {
		t.Fatalf("publishResult() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read GITHUB_OUTPUT: %v", err)
	}
	want := "matrix={\"settings\":[{\"host\":\"macos-latest\",\"target\":\"x86_64-apple-darwin\",\"build\":\"pnpm build --target x86_64-apple-darwin\"}]}\n" +
		"targets=[\"x86_64-apple-darwin\"]\n" +
		"dir=" + dir + "\n"
	if string(data) != want {
		t.Errorf("GITHUB_OUTPUT =\n%s\nwant:\n%s", string(data), want)
	}
}
