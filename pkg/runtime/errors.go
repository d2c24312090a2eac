// Package runtime provides the contract execution surface.
//
// This file defines the error type used for contract-level revert
// conditions. Reverts are intentional, tested failure modes defined by the
// contract logic itself (insufficient balance, unauthorized caller, and so
// on); they propagate to the test harness verbatim and are matched on
// their message text.
package runtime

// AssertError is a contract revert. Using a string type keeps revert
// messages stable for tests and allows declaring them as constants.
type AssertError string

// Error implements the error interface for AssertError.
func (e AssertError) Error() string {
	return string(e)
}
