// Package ownable provides single-owner access control: one account holds
// ownership, guarded circuits require it, and ownership can be transferred
// or renounced.
//
// The package has two layers. State is the embeddable ownership cell with
// its guard, for contracts that compose ownership with their own ledger.
// Ledger plus the circuit functions form the standalone contract, which is
// what the simulator drives in tests.
package ownable

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions.
const (
	// ErrUnauthorized is returned when a guarded circuit is called by an
	// account that is not the owner.
	ErrUnauthorized = runtime.AssertError("Ownable: caller is not the owner")

	// ErrInvalidOwner is returned when ownership would be handed to the
	// zero key through a path other than renouncement.
	ErrInvalidOwner = runtime.AssertError("Ownable: new owner is the zero key")
)

// State is the embeddable ownership cell. A zero Owner means ownership has
// been renounced and every owner-guarded circuit reverts permanently.
type State struct {
	Owner runtime.PublicKey
}

// AssertOnlyOwner reverts unless caller is the current owner.
func (s *State) AssertOnlyOwner(caller runtime.PublicKey) error {
	if s.Owner.IsZero() || caller != s.Owner {
		return ErrUnauthorized
	}
	return nil
}

// Transfer hands ownership to newOwner after checking the caller.
func (s *State) Transfer(caller, newOwner runtime.PublicKey) error {
	if err := s.AssertOnlyOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return ErrInvalidOwner
	}
	s.Owner = newOwner
	return nil
}

// Renounce clears ownership after checking the caller.
func (s *State) Renounce(caller runtime.PublicKey) error {
	if err := s.AssertOnlyOwner(caller); err != nil {
		return err
	}
	s.Owner = runtime.PublicKey{}
	return nil
}

// Holder is the ledger surface the circuits operate on. Composed contracts
// satisfy it by embedding Ledger or by exposing their own ownership cell.
type Holder interface {
	runtime.State
	Ownable() *State
}

// Ledger is the standalone contract state.
type Ledger struct {
	Ownership State
}

// NewLedger builds the initial state. A zero initial owner is rejected at
// construction, before any circuit is reachable.
func NewLedger(initialOwner runtime.PublicKey) (*Ledger, error) {
	if initialOwner.IsZero() {
		return nil, ErrInvalidOwner
	}
	return &Ledger{Ownership: State{Owner: initialOwner}}, nil
}

// Ownable implements Holder.
func (l *Ledger) Ownable() *State {
	return &l.Ownership
}

// Clone implements runtime.State.
func (l *Ledger) Clone() runtime.State {
	c := *l
	return &c
}

// Owner returns the current owner. Zero once ownership is renounced.
func Owner[P any](ctx runtime.Context[P]) (runtime.PublicKey, error) {
	return ctx.Query.State.(Holder).Ownable().Owner, nil
}

// TransferOwnership hands ownership to newOwner. Caller must be the owner.
func TransferOwnership[P any](ctx runtime.Context[P], newOwner runtime.PublicKey) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.Ownable().Transfer(ctx.Caller(), newOwner); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// RenounceOwnership clears ownership permanently. Caller must be the owner.
func RenounceOwnership[P any](ctx runtime.Context[P]) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.Ownable().Renounce(ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}
