package userconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BuildCommand != "pnpm build" {
		t.Errorf("BuildCommand = %q, want default", cfg.BuildCommand)
	}
	if cfg.Manifest != "package.json" {
		t.Errorf("Manifest = %q, want default", cfg.Manifest)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not valid toml [[["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on invalid TOML")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`build_command = "yarn build"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BuildCommand != "yarn build" {
		t.Errorf("BuildCommand = %q, want %q", cfg.BuildCommand, "yarn build")
	}
	if cfg.Manifest != "package.json" {
		t.Errorf("Manifest = %q, want default preserved", cfg.Manifest)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.toml")

	want := &Config{BuildCommand: "npm run build", Manifest: "packages/core/package.json"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestPath_HonorsEnvOverride(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/matrixgen-test-home")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if path != filepath.Join("/tmp/matrixgen-test-home", "config.toml") {
		t.Errorf("Path() = %q, want env override honored", path)
	}
}

func TestPath_DefaultUnderHome(t *testing.T) {
	t.Setenv(EnvHome, "")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".matrixgen", "config.toml")) {
		t.Errorf("Path() = %q, want ~/.matrixgen/config.toml", path)
	}
}
