// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	version "github.com/hashicorp/go-version"
	toml "github.com/pelletier/go-toml/v2"
)

// Paths holds XDG-compliant paths for CompactKit.
type Paths struct {
	ConfigDir string // ~/.config/compactkit
	CacheDir  string // ~/.cache/compactkit
	CachePath string // ~/.cache/compactkit/build.db
}

// ExpandPath expands ~ to the user's home directory.
// Returns the path unchanged if it doesn't start with ~.
// Panics if home directory cannot be determined when ~ expansion is needed.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(fmt.Sprintf("failed to get home directory: %v", err))
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(fmt.Sprintf("failed to get home directory: %v", err))
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultPaths returns the default XDG-compliant paths.
// Panics if the user's home directory cannot be determined.
func DefaultPaths() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
	configDir := filepath.Join(home, ".config", "compactkit")
	cacheDir := filepath.Join(home, ".cache", "compactkit")

	return Paths{
		ConfigDir: configDir,
		CacheDir:  cacheDir,
		CachePath: filepath.Join(cacheDir, "build.db"),
	}
}

// EnsureDirectories creates config and cache directories if they don't exist.
func (p Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.ConfigDir, 0700); err != nil {
		return err
	}
	return os.MkdirAll(p.CacheDir, 0700)
}

// BuildConfig holds configuration for the compact-builder and
// compact-compiler CLIs, loaded from compact.toml.
type BuildConfig struct {
	Compiler  CompilerSection  `toml:"compiler"`
	Formatter FormatterSection `toml:"formatter"`
	Cache     CacheSection     `toml:"cache"`
}

// CompilerSection holds compiler invocation settings.
type CompilerSection struct {
	SourceDir   string `toml:"source_dir"`
	ArtifactDir string `toml:"artifact_dir"`
	Toolchain   string `toml:"toolchain"`
	SkipZK      bool   `toml:"skip_zk"`
}

// FormatterSection holds formatter defaults.
type FormatterSection struct {
	CheckOnly bool `toml:"check_only"`
}

// CacheSection holds build-cache settings.
type CacheSection struct {
	Path    string `toml:"path"`
	Enabled bool   `toml:"enabled"`
}

// DefaultBuildConfig returns a BuildConfig with sensible defaults.
func DefaultBuildConfig() BuildConfig {
	paths := DefaultPaths()
	return BuildConfig{
		Compiler: CompilerSection{
			SourceDir:   "src",
			ArtifactDir: "artifacts",
		},
		Cache: CacheSection{
			Path:    paths.CachePath,
			Enabled: true,
		},
	}
}

// LoadBuildConfig loads a BuildConfig from a TOML file.
// Paths with ~ are expanded to the user's home directory.
func LoadBuildConfig(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultBuildConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.Compiler.SourceDir = ExpandPath(cfg.Compiler.SourceDir)
	cfg.Compiler.ArtifactDir = ExpandPath(cfg.Compiler.ArtifactDir)
	cfg.Cache.Path = ExpandPath(cfg.Cache.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values that cannot be acted on.
func (c *BuildConfig) Validate() error {
	if c.Compiler.SourceDir == "" {
		return fmt.Errorf("compiler.source_dir must not be empty")
	}
	if c.Compiler.ArtifactDir == "" {
		return fmt.Errorf("compiler.artifact_dir must not be empty")
	}
	if c.Compiler.Toolchain != "" {
		if _, err := version.NewVersion(c.Compiler.Toolchain); err != nil {
			return fmt.Errorf("compiler.toolchain %q is not a valid version: %w", c.Compiler.Toolchain, err)
		}
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("cache.path must not be empty when the cache is enabled")
	}
	return nil
}
