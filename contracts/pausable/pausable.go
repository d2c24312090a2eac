// Package pausable provides an emergency-stop switch. Contracts embed
// State and gate their transfer paths on AssertNotPaused; the standalone
// circuits flip the switch.
//
// The standalone contract deliberately lets any caller pause and unpause;
// access control is composed on top by the contract using it (see the
// integration tests for an owner-gated pausable token).
package pausable

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions.
const (
	// ErrPaused is returned by guarded circuits while the contract is
	// paused, and by Pause when already paused.
	ErrPaused = runtime.AssertError("Pausable: contract is paused")

	// ErrNotPaused is returned by Unpause when the contract is running.
	ErrNotPaused = runtime.AssertError("Pausable: contract is not paused")
)

// State is the embeddable pause switch.
type State struct {
	Paused bool
}

// AssertNotPaused reverts while the contract is paused.
func (s *State) AssertNotPaused() error {
	if s.Paused {
		return ErrPaused
	}
	return nil
}

// Pause stops the contract. Pausing twice is a revert.
func (s *State) Pause() error {
	if s.Paused {
		return ErrPaused
	}
	s.Paused = true
	return nil
}

// Unpause resumes the contract. Unpausing a running contract is a revert.
func (s *State) Unpause() error {
	if !s.Paused {
		return ErrNotPaused
	}
	s.Paused = false
	return nil
}

// Holder is the ledger surface the circuits operate on.
type Holder interface {
	runtime.State
	Pausable() *State
}

// Ledger is the standalone contract state.
type Ledger struct {
	Switch State
}

// Pausable implements Holder.
func (l *Ledger) Pausable() *State {
	return &l.Switch
}

// Clone implements runtime.State.
func (l *Ledger) Clone() runtime.State {
	c := *l
	return &c
}

// IsPaused reports whether the contract is paused.
func IsPaused[P any](ctx runtime.Context[P]) (bool, error) {
	return ctx.Query.State.(Holder).Pausable().Paused, nil
}

// Pause stops the contract.
func Pause[P any](ctx runtime.Context[P]) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.Pausable().Pause(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// Unpause resumes the contract.
func Unpause[P any](ctx runtime.Context[P]) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.Pausable().Unpause(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}
