// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath_TildeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/contracts", filepath.Join(home, "contracts")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~", home},
	}

	for _, tt := range tests {
		result := ExpandPath(tt.input)
		if result != tt.expected {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if paths.ConfigDir == "" {
		t.Error("ConfigDir should not be empty")
	}
	if paths.CacheDir == "" {
		t.Error("CacheDir should not be empty")
	}
	if paths.CachePath == "" {
		t.Error("CachePath should not be empty")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	paths := Paths{
		ConfigDir: filepath.Join(tmpDir, "config", "compactkit"),
		CacheDir:  filepath.Join(tmpDir, "cache", "compactkit"),
	}

	if _, err := os.Stat(paths.ConfigDir); !os.IsNotExist(err) {
		t.Fatal("ConfigDir should not exist before EnsureDirectories")
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	info, err := os.Stat(paths.ConfigDir)
	if err != nil {
		t.Fatalf("ConfigDir should exist after EnsureDirectories: %v", err)
	}
	if !info.IsDir() {
		t.Error("ConfigDir should be a directory")
	}

	info, err = os.Stat(paths.CacheDir)
	if err != nil {
		t.Fatalf("CacheDir should exist after EnsureDirectories: %v", err)
	}
	if !info.IsDir() {
		t.Error("CacheDir should be a directory")
	}

	// Calling EnsureDirectories again should be idempotent
	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories should be idempotent: %v", err)
	}
}

func TestBuildConfig_LoadFromTOML(t *testing.T) {
	tomlContent := `
[compiler]
source_dir = "contracts/src"
artifact_dir = "contracts/artifacts"
toolchain = "0.24.0"
skip_zk = true

[formatter]
check_only = true
`
	tmpFile := filepath.Join(t.TempDir(), "compact.toml")
	if err := os.WriteFile(tmpFile, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := LoadBuildConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadBuildConfig failed: %v", err)
	}

	if cfg.Compiler.SourceDir != "contracts/src" {
		t.Errorf("expected source dir contracts/src, got %s", cfg.Compiler.SourceDir)
	}
	if cfg.Compiler.Toolchain != "0.24.0" {
		t.Errorf("expected toolchain 0.24.0, got %s", cfg.Compiler.Toolchain)
	}
	if !cfg.Compiler.SkipZK {
		t.Error("expected skip_zk true")
	}
	if !cfg.Formatter.CheckOnly {
		t.Error("expected check_only true")
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should stay enabled by default")
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg := DefaultBuildConfig()

	if cfg.Compiler.SourceDir != "src" {
		t.Errorf("expected default source dir src, got %s", cfg.Compiler.SourceDir)
	}
	if cfg.Compiler.ArtifactDir != "artifacts" {
		t.Errorf("expected default artifact dir artifacts, got %s", cfg.Compiler.ArtifactDir)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestBuildConfig_PathExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	tomlContent := `
[compiler]
source_dir = "~/contracts/src"
artifact_dir = "~/contracts/artifacts"

[cache]
path = "~/cache/build.db"
enabled = true
`
	tmpFile := filepath.Join(t.TempDir(), "compact.toml")
	if err := os.WriteFile(tmpFile, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := LoadBuildConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadBuildConfig failed: %v", err)
	}

	expectedSrc := filepath.Join(home, "contracts", "src")
	if cfg.Compiler.SourceDir != expectedSrc {
		t.Errorf("expected source dir %s, got %s", expectedSrc, cfg.Compiler.SourceDir)
	}

	expectedCache := filepath.Join(home, "cache", "build.db")
	if cfg.Cache.Path != expectedCache {
		t.Errorf("expected cache path %s, got %s", expectedCache, cfg.Cache.Path)
	}
}

func TestBuildConfig_Validate(t *testing.T) {
	cfg := DefaultBuildConfig()
	cfg.Compiler.Toolchain = "not.a.version"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for malformed toolchain version")
	}

	cfg = DefaultBuildConfig()
	cfg.Compiler.SourceDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty source dir")
	}

	cfg = DefaultBuildConfig()
	cfg.Cache.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled cache without a path")
	}
	cfg.Cache.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled cache does not need a path: %v", err)
	}
}

func TestLoadBuildConfig_FileNotFound(t *testing.T) {
	_, err := LoadBuildConfig("/nonexistent/path/compact.toml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadBuildConfig_InvalidTOML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.toml")
	if err := os.WriteFile(tmpFile, []byte("this is not valid [ toml"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	_, err := LoadBuildConfig(tmpFile)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}
