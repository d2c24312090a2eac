package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// EnvSkipZK is the environment variable equivalent of --skip-zk.
const EnvSkipZK = "SKIP_ZK"

// CompilerConfig is the parsed configuration of one compiler run.
type CompilerConfig struct {
	// SourceDir is the directory searched for contract sources.
	SourceDir string

	// OutputDir receives the compiled artifacts, one subdirectory per
	// source file.
	OutputDir string

	// SkipZK disables proving/verification key generation.
	SkipZK bool

	// VersionPin, when non-empty, pins the toolchain release invoked for
	// every file (the `+<version>` argument).
	VersionPin string

	// Files restricts compilation to the named sources (relative to
	// SourceDir). Empty means every discovered source.
	Files []string
}

// CompilerFromArgs parses a compiler argument vector plus environment:
//
//	[--dir <name>] [--skip-zk] [+<version>] [files...]
//
// SKIP_ZK=true in the environment is equivalent to --skip-zk, so the same
// configuration is reachable from either surface. env is a getenv-shaped
// lookup, usually os.Getenv.
func CompilerFromArgs(args []string, env func(string) string) (CompilerConfig, error) {
	cfg := CompilerConfig{}

	if env != nil {
		if v := env(EnvSkipZK); strings.EqualFold(v, "true") || v == "1" {
			cfg.SkipZK = true
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--skip-zk":
			cfg.SkipZK = true
		case arg == "--dir":
			if i+1 >= len(args) {
				return CompilerConfig{}, fmt.Errorf("toolchain: --dir requires a value")
			}
			i++
			cfg.SourceDir = args[i]
		case strings.HasPrefix(arg, "--dir="):
			cfg.SourceDir = strings.TrimPrefix(arg, "--dir=")
		case strings.HasPrefix(arg, "+"):
			pin := strings.TrimPrefix(arg, "+")
			if _, err := version.NewVersion(pin); err != nil {
				return CompilerConfig{}, &VersionError{Raw: arg, Err: err}
			}
			cfg.VersionPin = pin
		case strings.HasPrefix(arg, "-"):
			return CompilerConfig{}, fmt.Errorf("toolchain: unknown flag %q", arg)
		default:
			cfg.Files = append(cfg.Files, arg)
		}
	}
	return cfg, nil
}

// Artifact records one successful compilation.
type Artifact struct {
	Source string
	Output string
}

// Compiler compiles contract sources through the external toolchain,
// one file at a time, stopping on the first failure.
type Compiler struct {
	Config   CompilerConfig
	Services *Services

	// Progress enables the progress bar. Defaults to "stderr is a TTY".
	Progress bool
}

// NewCompiler binds a parsed configuration to the shared services.
func NewCompiler(cfg CompilerConfig, services *Services) *Compiler {
	return &Compiler{
		Config:   cfg,
		Services: services,
		Progress: isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Compile discovers (or takes from the config) the source files and
// compiles them sequentially. The first failing file aborts the run with a
// CompilationError; files after it are not attempted.
func (c *Compiler) Compile(ctx context.Context) ([]Artifact, error) {
	files := c.Config.Files
	if len(files) == 0 {
		discovered, err := DiscoverSources(c.Config.SourceDir, c.Services.Log)
		if err != nil {
			return nil, err
		}
		files = discovered
	}
	if len(files) == 0 {
		return nil, nil
	}

	var bar *progressbar.ProgressBar
	if c.Progress {
		bar = progressbar.Default(int64(len(files)), "compiling")
	}

	artifacts := make([]Artifact, 0, len(files))
	for _, file := range files {
		artifact, err := c.compileOne(ctx, file)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	c.Services.Log.Info("compilation finished",
		"files", len(artifacts), "skip_zk", c.Config.SkipZK)
	return artifacts, nil
}

// compileOne invokes `compact compile [+pin] [--skip-zk] <src> <out>`.
func (c *Compiler) compileOne(ctx context.Context, file string) (Artifact, error) {
	src := filepath.Join(c.Config.SourceDir, file)
	out := filepath.Join(c.Config.OutputDir, strings.TrimSuffix(file, SourceExtension))

	args := []string{"compile"}
	if c.Config.VersionPin != "" {
		args = append(args, "+"+c.Config.VersionPin)
	}
	if c.Config.SkipZK {
		args = append(args, "--skip-zk")
	}
	args = append(args, src, out)

	c.Services.Log.Debug("compiling contract", "source", src, "output", out)
	stdout, stderr, err := c.Services.Runner.Run(ctx, c.Services.Binary, args...)
	if err != nil {
		return Artifact{}, &CompilationError{File: file, Stdout: stdout, Stderr: stderr, Err: err}
	}
	return Artifact{Source: file, Output: out}, nil
}
