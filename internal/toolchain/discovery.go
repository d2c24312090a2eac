package toolchain

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExtension is the contract source file suffix.
const SourceExtension = ".compact"

// DiscoverSources walks root recursively and returns every contract source
// file, as paths relative to root, sorted. A root that does not exist is a
// DirectoryNotFoundError; a root that yields nothing (empty, or unreadable
// subtrees) returns an empty list and logs a warning, because "no sources"
// is a state the caller may legitimately be in, not a failure.
func DiscoverSources(root string, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryNotFoundError{Path: root}
	}

	var sources []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path during source discovery",
				"path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, SourceExtension) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		sources = append(sources, rel)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if len(sources) == 0 {
		log.Warn("no contract sources found", "dir", root, "extension", SourceExtension)
		return []string{}, nil
	}

	sort.Strings(sources)
	return sources, nil
}
