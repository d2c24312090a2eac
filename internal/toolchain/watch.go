package toolchain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher recompiles contract sources as they change on disk. Each change
// triggers one compile of the changed file; a compile failure is reported
// through the logger and the watch continues, since the author is mid-edit
// and the next save gets another chance.
type Watcher struct {
	compiler *Compiler
	fsw      *fsnotify.Watcher
}

// NewWatcher builds a watcher over the compiler's source directory,
// registering every subdirectory (fsnotify does not recurse on its own).
func NewWatcher(compiler *Compiler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	root := compiler.Config.SourceDir
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, &DirectoryNotFoundError{Path: root}
	}

	return &Watcher{compiler: compiler, fsw: fsw}, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watch blocks, recompiling changed sources, until ctx is cancelled or the
// filesystem watcher shuts down.
func (w *Watcher) Watch(ctx context.Context) error {
	log := w.compiler.Services.Log
	log.Info("watching for contract changes", "dir", w.compiler.Config.SourceDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			// New directories must be registered to keep recursion alive.
			if event.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = w.fsw.Add(event.Name)
					continue
				}
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(event.Name, SourceExtension) {
				continue
			}

			rel, err := filepath.Rel(w.compiler.Config.SourceDir, event.Name)
			if err != nil {
				continue
			}
			log.Info("source changed, recompiling", "source", rel)
			if _, err := w.compiler.compileOne(ctx, rel); err != nil {
				var cerr *CompilationError
				if errors.As(err, &cerr) {
					log.Error("compilation failed", "source", rel, "stderr", cerr.Stderr)
				} else {
					log.Error("compilation failed", "source", rel, "error", err)
				}
				continue
			}
			log.Info("recompiled", "source", rel)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}
