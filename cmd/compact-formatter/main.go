package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compactkit/compactkit/internal/config"
	"github.com/compactkit/compactkit/internal/toolchain"
)

const configFile = "compact.toml"

var rootCmd = &cobra.Command{
	Use:   "compact-formatter [--check|--write] [--dir <name>] [file ...]",
	Short: "Format Compact contracts through the compact toolchain",
	Long: `compact-formatter runs the toolchain's format subcommand over the
source directory, or over the named files.

--write (the default) rewrites files in place; --check reports files
that would change and exits non-zero without touching them. The
formatter shipped with toolchain 0.25.0; older installations are
rejected with an upgrade hint.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runFormat,
}

// applyDefaults fills unset fields from compact.toml when present. The
// config's check_only applies only when neither mode flag was given.
func applyDefaults(cfg *toolchain.FormatterConfig, args []string) {
	defaults := config.DefaultBuildConfig()
	if loaded, err := config.LoadBuildConfig(configFile); err == nil {
		defaults = *loaded
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = defaults.Compiler.SourceDir
	}
	explicitMode := slices.Contains(args, "--check") || slices.Contains(args, "--write")
	if !explicitMode && defaults.Formatter.CheckOnly {
		cfg.Mode = toolchain.FormatCheck
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		return cmd.Help()
	}

	cfg, err := toolchain.FormatterFromArgs(args)
	if err != nil {
		return err
	}
	applyDefaults(&cfg, args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	services, err := toolchain.NewServices(toolchain.DefaultBinary, toolchain.NewRunner(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return toolchain.NewFormatter(cfg, services).Format(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
