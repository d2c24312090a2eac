package toolchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterFromArgs(t *testing.T) {
	cfg, err := FormatterFromArgs([]string{"--check", "--dir", "token", "A.compact"})
	require.NoError(t, err)
	assert.Equal(t, FormatCheck, cfg.Mode)
	assert.Equal(t, "token", cfg.SourceDir)
	assert.Equal(t, []string{"A.compact"}, cfg.Files)

	cfg, err = FormatterFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, FormatWrite, cfg.Mode, "write is the default mode")

	_, err = FormatterFromArgs([]string{"--check", "--write"})
	assert.Error(t, err, "--check and --write are mutually exclusive")

	_, err = FormatterFromArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestFormat_RequiresModernToolchain(t *testing.T) {
	runner := newFakeRunner("0.24.0") // predates the formatter
	f := NewFormatter(FormatterConfig{SourceDir: t.TempDir()}, testServices(runner))

	err := f.Format(context.Background())

	var naErr *FormatterNotAvailableError
	require.ErrorAs(t, err, &naErr)
	assert.Equal(t, "0.24.0", naErr.Installed)
}

func TestFormat_CheckMode(t *testing.T) {
	runner := newFakeRunner("0.25.1")
	f := NewFormatter(FormatterConfig{Mode: FormatCheck, SourceDir: "src"}, testServices(runner))

	require.NoError(t, f.Format(context.Background()))

	// calls[0] is the version query, calls[1] the format invocation.
	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"compact", "format", "--check", "src"}, runner.calls[1])
}

func TestFormat_FailureIsFormatterError(t *testing.T) {
	runner := newFakeRunner("0.25.1")
	runner.failOn("format", "would reformat: token/Fungible.compact")

	f := NewFormatter(FormatterConfig{Mode: FormatCheck, SourceDir: "src"}, testServices(runner))
	err := f.Format(context.Background())

	var ferr *FormatterError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Stderr, "would reformat")
}
