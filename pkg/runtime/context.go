// Package runtime defines the contract execution surface that generated
// contracts and the simulation harness share: circuit contexts, public
// ledger state, caller identity, and the result shape returned by
// state-mutating circuits.
//
// The model is deliberately small. A circuit is an ordinary function that
// receives a Context, reads (and for impure circuits, replaces) the public
// state carried inside it, and returns a result. There is no scheduler and
// no concurrency: one context is current at a time per contract instance,
// and every impure call is a read-modify-write against that single slot.
package runtime

import "time"

// State is the public ledger state of one contract instance. Each contract
// defines its own concrete ledger type. Clone must return a deep copy;
// impure circuits mutate a clone and hand it back inside the successor
// context, so the previous context's state is never touched in place.
type State interface {
	Clone() State
}

// BlockInfo carries the simulated block metadata visible to circuits.
type BlockInfo struct {
	Height    uint64
	Timestamp time.Time
}

// LocalState is the caller-scoped transaction-local state. It is rebuilt
// for every call, which is how the simulator makes a caller override take
// effect for exactly the calls issued while it is set.
type LocalState struct {
	// Caller is the identity the current call appears to originate from.
	Caller PublicKey
}

// QueryContext is the transaction-level view of the contract: its public
// state, its address, and the block the call executes in.
type QueryContext struct {
	State   State
	Address ContractAddress
	Block   BlockInfo
}

// Context is the circuit context threaded through every call. PrivateState
// is contract-defined data that never reaches the public ledger (P is
// struct{} for contracts without secrets). Original snapshots the public
// state as it was when the call entered, before any mutation.
type Context[P any] struct {
	PrivateState P
	Local        LocalState
	Original     State
	Query        QueryContext
}

// Caller returns the effective caller identity for this call.
func (c Context[P]) Caller() PublicKey {
	return c.Local.Caller
}

// CallResult is what an impure circuit returns: the call's result value and
// the successor context carrying the updated public state. The caller (in
// practice the simulator) replaces its stored context with Context.
type CallResult[P any, R any] struct {
	Result  R
	Context Context[P]
}

// Begin starts a state mutation inside an impure circuit. It deep-copies
// the current public state, returns the copy typed as the contract's
// ledger, and returns the successor context already pointing at the copy.
// The entry state is preserved in the successor's Original field.
//
// The type assertion panics if the context was built for a different
// contract; that is a harness wiring bug, not a revert condition.
func Begin[P any, S State](ctx Context[P]) (S, Context[P]) {
	next := ctx
	next.Original = ctx.Query.State
	cloned := ctx.Query.State.Clone().(S)
	next.Query.State = cloned
	return cloned, next
}

// Succeed packages a result and successor context into a CallResult.
func Succeed[P any, R any](ctx Context[P], result R) (CallResult[P, R], error) {
	return CallResult[P, R]{Result: result, Context: ctx}, nil
}

// Fail returns a zero-valued CallResult and the given revert error. The
// stored context of the simulator is left untouched on error, so a failed
// call never leaks partial state.
func Fail[P any, R any](err error) (CallResult[P, R], error) {
	return CallResult[P, R]{}, err
}

// ConstructorContext is handed to a contract's initial-state constructor.
type ConstructorContext[P any] struct {
	PrivateState P
	Caller       PublicKey
	Address      ContractAddress
	Block        BlockInfo
}

// DeployResult is what a contract constructor returns: the initial private
// state, public state, and transaction-local state of the new instance.
type DeployResult[P any] struct {
	PrivateState P
	State        State
	Local        LocalState
}
