package toolchain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestCompilerFromArgs_Flags(t *testing.T) {
	cfg, err := CompilerFromArgs([]string{"--dir", "security", "--skip-zk", "+0.24.0", "a.compact", "b.compact"}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "security", cfg.SourceDir)
	assert.True(t, cfg.SkipZK)
	assert.Equal(t, "0.24.0", cfg.VersionPin)
	assert.Equal(t, []string{"a.compact", "b.compact"}, cfg.Files)
}

func TestCompilerFromArgs_EnvEquivalence(t *testing.T) {
	// SKIP_ZK=true must produce the same configuration as --skip-zk.
	fromFlag, err := CompilerFromArgs([]string{"--skip-zk", "--dir", "token"}, noEnv)
	require.NoError(t, err)

	fromEnv, err := CompilerFromArgs([]string{"--dir", "token"}, func(key string) string {
		if key == EnvSkipZK {
			return "true"
		}
		return ""
	})
	require.NoError(t, err)

	assert.Equal(t, fromFlag, fromEnv, "flag and environment surfaces must parse identically")
}

func TestCompilerFromArgs_Rejects(t *testing.T) {
	_, err := CompilerFromArgs([]string{"--dir"}, noEnv)
	assert.Error(t, err, "--dir without a value should be rejected")

	_, err = CompilerFromArgs([]string{"--frobnicate"}, noEnv)
	assert.Error(t, err, "unknown flags should be rejected")

	_, err = CompilerFromArgs([]string{"+not-a-version"}, noEnv)
	var verr *VersionError
	assert.ErrorAs(t, err, &verr, "malformed version pins should be rejected")
}

func TestCompile_InvokesToolchainPerFile(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "token/Fungible.compact")
	writeSource(t, root, "access/Ownable.compact")

	runner := newFakeRunner("0.25.0")
	compiler := &Compiler{
		Config: CompilerConfig{
			SourceDir:  root,
			OutputDir:  filepath.Join(root, "artifacts"),
			SkipZK:     true,
			VersionPin: "0.24.0",
		},
		Services: testServices(runner),
	}

	artifacts, err := compiler.Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, filepath.Join("access", "Ownable.compact"), artifacts[0].Source)

	require.Len(t, runner.calls, 2)
	first := runner.calls[0]
	assert.Equal(t, "compact", first[0])
	assert.Equal(t, "compile", first[1])
	assert.Equal(t, "+0.24.0", first[2], "version pin should be forwarded")
	assert.Equal(t, "--skip-zk", first[3])
	assert.Contains(t, first[4], "Ownable.compact")
}

func TestCompile_StopsOnFirstFailure(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a/First.compact")
	writeSource(t, root, "b/Second.compact")
	writeSource(t, root, "c/Third.compact")

	runner := newFakeRunner("0.25.0")
	runner.failOn("Second.compact", "parse error: unexpected token")

	compiler := &Compiler{
		Config:   CompilerConfig{SourceDir: root, OutputDir: t.TempDir()},
		Services: testServices(runner),
	}

	_, err := compiler.Compile(context.Background())

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, filepath.Join("b", "Second.compact"), cerr.File)
	assert.Contains(t, cerr.Stderr, "parse error")

	// First compiled, second failed, third never attempted.
	assert.Len(t, runner.calls, 2, "compilation must stop at the first failure")
}

func TestCompile_ExplicitFilesBypassDiscovery(t *testing.T) {
	runner := newFakeRunner("0.25.0")
	compiler := &Compiler{
		Config: CompilerConfig{
			SourceDir: t.TempDir(),
			OutputDir: t.TempDir(),
			Files:     []string{"Only.compact"},
		},
		Services: testServices(runner),
	}

	artifacts, err := compiler.Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "Only.compact", artifacts[0].Source)
}
