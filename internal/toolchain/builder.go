package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
)

// Builder orchestrates a full build: discover sources, skip files the
// cache proves unchanged, compile the rest, and record the results.
type Builder struct {
	Compiler *Compiler
	Cache    *Cache

	// Force bypasses the cache and recompiles everything.
	Force bool
}

// BuildResult summarizes one builder run.
type BuildResult struct {
	Compiled []Artifact
	Skipped  []string
}

// flagsKey is the cache dimension covering everything besides the source
// text that affects the artifact.
func (b *Builder) flagsKey() string {
	return fmt.Sprintf("skip_zk=%t", b.Compiler.Config.SkipZK)
}

// Build runs the full pipeline. Like Compile, it stops on the first
// failing file; files already compiled in this run stay recorded, so a
// rerun resumes where it stopped.
func (b *Builder) Build(ctx context.Context) (BuildResult, error) {
	services := b.Compiler.Services

	toolchainVersion := b.Compiler.Config.VersionPin
	if toolchainVersion == "" {
		installed, err := services.ToolchainVersion(ctx)
		if err != nil {
			return BuildResult{}, err
		}
		toolchainVersion = installed.String()
	}

	files, err := DiscoverSources(b.Compiler.Config.SourceDir, services.Log)
	if err != nil {
		return BuildResult{}, err
	}

	var result BuildResult
	flags := b.flagsKey()
	for _, file := range files {
		digest, err := SourceDigest(filepath.Join(b.Compiler.Config.SourceDir, file))
		if err != nil {
			return result, err
		}

		if !b.Force {
			fresh, err := b.Cache.Fresh(file, digest, toolchainVersion, flags)
			if err != nil {
				return result, err
			}
			if fresh {
				services.Log.Debug("source unchanged, skipping", "source", file)
				result.Skipped = append(result.Skipped, file)
				continue
			}
		}

		artifact, err := b.Compiler.compileOne(ctx, file)
		if err != nil {
			return result, err
		}
		if err := b.Cache.Record(file, digest, toolchainVersion, flags); err != nil {
			return result, err
		}
		result.Compiled = append(result.Compiled, artifact)
	}

	services.Log.Info("build finished",
		"compiled", len(result.Compiled), "skipped", len(result.Skipped))
	return result, nil
}
