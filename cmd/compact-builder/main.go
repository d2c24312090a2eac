package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compactkit/compactkit/internal/config"
	"github.com/compactkit/compactkit/internal/toolchain"
)

var (
	flagConfig string
	flagDir    string
	flagOut    string
	flagSkipZK bool
	flagForce  bool
	flagPin    string
)

var rootCmd = &cobra.Command{
	Use:   "compact-builder",
	Short: "Incrementally build Compact contracts",
	Long: `compact-builder compiles the source tree through the compact
toolchain, skipping files whose content, toolchain version, and flags
match the local build cache. --force recompiles everything.

Settings come from compact.toml and can be overridden per flag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "compact.toml", "path to the build configuration")
	rootCmd.Flags().StringVar(&flagDir, "dir", "", "source directory (overrides the config)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "artifact directory (overrides the config)")
	rootCmd.Flags().BoolVar(&flagSkipZK, "skip-zk", false, "skip proving-key generation")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "recompile everything, ignoring the cache")
	rootCmd.Flags().StringVar(&flagPin, "toolchain", "", "pin the toolchain version (overrides the config)")
}

// resolveConfig merges compact.toml with the command-line overrides.
func resolveConfig() (config.BuildConfig, error) {
	cfg := config.DefaultBuildConfig()
	loaded, err := config.LoadBuildConfig(flagConfig)
	switch {
	case err == nil:
		cfg = *loaded
	case errors.Is(err, os.ErrNotExist) && flagConfig == "compact.toml":
		// The implicit default config is allowed to be absent.
	default:
		return config.BuildConfig{}, err
	}

	if flagDir != "" {
		cfg.Compiler.SourceDir = flagDir
	}
	if flagOut != "" {
		cfg.Compiler.ArtifactDir = flagOut
	}
	if flagSkipZK {
		cfg.Compiler.SkipZK = true
	}
	if flagPin != "" {
		cfg.Compiler.Toolchain = flagPin
	}
	return cfg, cfg.Validate()
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	services, err := toolchain.NewServices(toolchain.DefaultBinary, toolchain.NewRunner(), logger)
	if err != nil {
		return err
	}

	compiler := toolchain.NewCompiler(toolchain.CompilerConfig{
		SourceDir:  cfg.Compiler.SourceDir,
		OutputDir:  cfg.Compiler.ArtifactDir,
		SkipZK:     cfg.Compiler.SkipZK,
		VersionPin: cfg.Compiler.Toolchain,
	}, services)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Cache.Enabled {
		_, err := compiler.Compile(ctx)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0700); err != nil {
		return err
	}
	cache, err := toolchain.OpenCache(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer cache.Close()

	builder := &toolchain.Builder{Compiler: compiler, Cache: cache, Force: flagForce}

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("compiled %d, skipped %d\n", len(result.Compiled), len(result.Skipped))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
