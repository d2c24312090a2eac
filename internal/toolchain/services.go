package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-version"
)

// DefaultBinary is the name of the external compiler executable.
const DefaultBinary = "compact"

// minFormatterVersion is the first toolchain release shipping `compact
// format`.
const minFormatterVersion = "0.25.0"

// Services bundles what every toolchain command needs: the resolved binary,
// a process runner, and a logger.
type Services struct {
	Binary string
	Runner Runner
	Log    *slog.Logger
}

// NewServices locates the external binary on PATH and returns the shared
// service bundle. A missing binary is a CLINotFoundError.
func NewServices(binary string, runner Runner, log *slog.Logger) (*Services, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = NewRunner()
	}
	if log == nil {
		log = slog.Default()
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, &CLINotFoundError{Binary: binary, Err: err}
	}

	return &Services{Binary: path, Runner: runner, Log: log}, nil
}

// ToolchainVersion queries the installed compiler's version.
func (s *Services) ToolchainVersion(ctx context.Context) (*version.Version, error) {
	stdout, stderr, err := s.Runner.Run(ctx, s.Binary, "compile", "--version")
	if err != nil {
		return nil, fmt.Errorf("toolchain: query compiler version: %w (%s)", err, strings.TrimSpace(stderr))
	}
	return parseToolchainVersion(stdout)
}

// parseToolchainVersion extracts the semantic version from the compiler's
// version banner. The banner's last whitespace-separated token is the
// version, e.g. "Compactc version: 0.24.0".
func parseToolchainVersion(banner string) (*version.Version, error) {
	fields := strings.Fields(strings.TrimSpace(banner))
	if len(fields) == 0 {
		return nil, &VersionError{Raw: banner, Err: fmt.Errorf("empty version banner")}
	}
	raw := fields[len(fields)-1]
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, &VersionError{Raw: raw, Err: err}
	}
	return v, nil
}

// CheckFormatterAvailable verifies the installed toolchain ships the
// formatter.
func (s *Services) CheckFormatterAvailable(ctx context.Context) error {
	installed, err := s.ToolchainVersion(ctx)
	if err != nil {
		return err
	}
	minimum := version.Must(version.NewVersion(minFormatterVersion))
	if installed.LessThan(minimum) {
		return &FormatterNotAvailableError{Installed: installed.String(), Minimum: minFormatterVersion}
	}
	return nil
}
