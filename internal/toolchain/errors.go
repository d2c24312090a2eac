// Package toolchain drives the external `compact` compiler: locating the
// binary, discovering contract sources, compiling, formatting, and caching
// build artifacts.
//
// This file defines the error hierarchy surfaced by the CLI drivers. Every
// type carries the context a human needs to act on the failure (file,
// directory, process output); none of them is retried — a failure is
// terminal for the operation in progress.
package toolchain

import "fmt"

// CLINotFoundError is returned when the external `compact` binary cannot
// be located on PATH.
type CLINotFoundError struct {
	Binary string
	Err    error
}

func (e *CLINotFoundError) Error() string {
	return fmt.Sprintf("toolchain: %q executable not found on PATH (install the Compact developer tools)", e.Binary)
}

func (e *CLINotFoundError) Unwrap() error { return e.Err }

// DirectoryNotFoundError is returned when a source directory named on the
// command line does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("toolchain: source directory %q does not exist", e.Path)
}

// CompilationError is returned when the external compiler fails on a file.
// Stdout and Stderr carry the compiler's own diagnostics for presentation.
type CompilationError struct {
	File   string
	Stdout string
	Stderr string
	Err    error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("toolchain: compiling %s: %v", e.File, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// FormatterError is returned when the external formatter fails, including
// check-mode findings (files that would be reformatted).
type FormatterError struct {
	Files  []string
	Stdout string
	Stderr string
	Err    error
}

func (e *FormatterError) Error() string {
	return fmt.Sprintf("toolchain: formatting failed: %v", e.Err)
}

func (e *FormatterError) Unwrap() error { return e.Err }

// FormatterNotAvailableError is returned when the installed toolchain
// predates the formatter.
type FormatterNotAvailableError struct {
	Installed string
	Minimum   string
}

func (e *FormatterNotAvailableError) Error() string {
	return fmt.Sprintf("toolchain: formatter requires compact >= %s, installed %s", e.Minimum, e.Installed)
}

// VersionError is returned when the toolchain's reported version cannot be
// parsed or does not satisfy a pin.
type VersionError struct {
	Raw string
	Err error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("toolchain: bad toolchain version %q: %v", e.Raw, e.Err)
}

func (e *VersionError) Unwrap() error { return e.Err }
