package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compactkit/compactkit/internal/config"
	"github.com/compactkit/compactkit/internal/toolchain"
)

const configFile = "compact.toml"

// rootCmd keeps flag parsing disabled: the argument vector is the
// toolchain's own surface (--dir, --skip-zk, +<version>, files) and is
// parsed by CompilerFromArgs so the CLI and programmatic callers agree.
var rootCmd = &cobra.Command{
	Use:   "compact-compiler [--dir <name>] [--skip-zk] [--watch] [+<version>] [file ...]",
	Short: "Compile Compact contracts through the compact toolchain",
	Long: `compact-compiler discovers .compact sources and shells out to the
compact toolchain for each one, stopping at the first failure.

--dir selects the source directory, --skip-zk (or SKIP_ZK=true in the
environment) skips proving-key generation, +<version> pins the toolchain
release, and positional arguments restrict the run to the named files.
--watch keeps the process running and recompiles sources as they change.
Defaults not given on the command line come from compact.toml when the
file exists in the working directory.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runCompile,
}

// splitArgs peels off the flags this binary owns before the rest of the
// vector goes to the toolchain argument parser.
func splitArgs(args []string) (watch, help bool, rest []string) {
	rest = make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "--watch", "-w":
			watch = true
		case "--help", "-h":
			help = true
		default:
			rest = append(rest, arg)
		}
	}
	return watch, help, rest
}

// applyDefaults fills unset fields from compact.toml when present, falling
// back to the built-in defaults.
func applyDefaults(cfg *toolchain.CompilerConfig) {
	defaults := config.DefaultBuildConfig()
	if loaded, err := config.LoadBuildConfig(configFile); err == nil {
		defaults = *loaded
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = defaults.Compiler.SourceDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.Compiler.ArtifactDir
	}
	if !cfg.SkipZK {
		cfg.SkipZK = defaults.Compiler.SkipZK
	}
	if cfg.VersionPin == "" {
		cfg.VersionPin = defaults.Compiler.Toolchain
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	watch, help, rest := splitArgs(args)
	if help {
		return cmd.Help()
	}

	cfg, err := toolchain.CompilerFromArgs(rest, os.Getenv)
	if err != nil {
		return err
	}
	applyDefaults(&cfg)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	services, err := toolchain.NewServices(toolchain.DefaultBinary, toolchain.NewRunner(), logger)
	if err != nil {
		return err
	}
	compiler := toolchain.NewCompiler(cfg, services)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := compiler.Compile(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := toolchain.NewWatcher(compiler)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger.Info("watching for changes", "dir", cfg.SourceDir)
	if err := watcher.Watch(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
