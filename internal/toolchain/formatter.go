package toolchain

import (
	"context"
	"fmt"
	"strings"
)

// FormatMode selects between rewriting files and verifying them.
type FormatMode int

const (
	// FormatWrite rewrites files in place. The default.
	FormatWrite FormatMode = iota

	// FormatCheck reports files that would change without touching them.
	FormatCheck
)

// FormatterConfig is the parsed configuration of one formatter run.
type FormatterConfig struct {
	Mode      FormatMode
	SourceDir string

	// Files restricts formatting to the named sources (relative to
	// SourceDir). Empty means the whole source directory.
	Files []string
}

// FormatterFromArgs parses a formatter argument vector:
//
//	[--check|--write] [--dir <name>] [files...]
//
// --check and --write are mutually exclusive; neither means --write.
func FormatterFromArgs(args []string) (FormatterConfig, error) {
	cfg := FormatterConfig{Mode: FormatWrite}
	var sawCheck, sawWrite bool

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--check":
			sawCheck = true
			cfg.Mode = FormatCheck
		case arg == "--write":
			sawWrite = true
			cfg.Mode = FormatWrite
		case arg == "--dir":
			if i+1 >= len(args) {
				return FormatterConfig{}, fmt.Errorf("toolchain: --dir requires a value")
			}
			i++
			cfg.SourceDir = args[i]
		case strings.HasPrefix(arg, "--dir="):
			cfg.SourceDir = strings.TrimPrefix(arg, "--dir=")
		case strings.HasPrefix(arg, "-"):
			return FormatterConfig{}, fmt.Errorf("toolchain: unknown flag %q", arg)
		default:
			cfg.Files = append(cfg.Files, arg)
		}
	}

	if sawCheck && sawWrite {
		return FormatterConfig{}, fmt.Errorf("toolchain: --check and --write are mutually exclusive")
	}
	return cfg, nil
}

// Formatter runs the external `compact format` subcommand.
type Formatter struct {
	Config   FormatterConfig
	Services *Services
}

// NewFormatter binds a parsed configuration to the shared services.
func NewFormatter(cfg FormatterConfig, services *Services) *Formatter {
	return &Formatter{Config: cfg, Services: services}
}

// Format verifies the formatter is available on the installed toolchain,
// then formats (or checks) the configured targets in one invocation. Check
// findings and formatter failures are both FormatterError.
func (f *Formatter) Format(ctx context.Context) error {
	if err := f.Services.CheckFormatterAvailable(ctx); err != nil {
		return err
	}

	targets := f.Config.Files
	if len(targets) == 0 {
		targets = []string{f.Config.SourceDir}
	}

	args := []string{"format"}
	if f.Config.Mode == FormatCheck {
		args = append(args, "--check")
	}
	args = append(args, targets...)

	stdout, stderr, err := f.Services.Runner.Run(ctx, f.Services.Binary, args...)
	if err != nil {
		return &FormatterError{Files: targets, Stdout: stdout, Stderr: stderr, Err: err}
	}

	f.Services.Log.Info("formatting finished",
		"targets", len(targets), "check", f.Config.Mode == FormatCheck)
	return nil
}
