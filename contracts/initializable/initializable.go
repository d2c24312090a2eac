// Package initializable provides the one-shot initialization guard shared
// by the token building blocks. Contracts embed State in their ledger and
// gate every state-changing entry point on AssertInitialized.
package initializable

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions for the initialization guard.
const (
	// ErrAlreadyInitialized is returned when initialize is called twice.
	ErrAlreadyInitialized = runtime.AssertError("Initializable: contract already initialized")

	// ErrNotInitialized is returned when a guarded circuit runs before
	// initialization.
	ErrNotInitialized = runtime.AssertError("Initializable: contract not initialized")
)

// State is the embeddable initialization flag.
type State struct {
	Initialized bool
}

// Initialize marks the contract initialized. Calling it a second time is a
// revert, which is the re-initialization guard tests assert on.
func (s *State) Initialize() error {
	if s.Initialized {
		return ErrAlreadyInitialized
	}
	s.Initialized = true
	return nil
}

// AssertInitialized reverts unless Initialize has run.
func (s *State) AssertInitialized() error {
	if !s.Initialized {
		return ErrNotInitialized
	}
	return nil
}
