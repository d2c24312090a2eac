// Package accesscontrol provides role-based access control. Roles are
// 32-byte identifiers derived from a name; every role has an admin role
// whose members may grant and revoke it. The default admin role is the
// zero identifier and administers itself and, initially, every other role.
package accesscontrol

import (
	"golang.org/x/crypto/sha3"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// Revert conditions.
const (
	// ErrUnauthorized is returned when the caller lacks the role a
	// guarded circuit requires.
	ErrUnauthorized = runtime.AssertError("AccessControl: account is missing role")

	// ErrBadRenounce is returned when renouncing a role for an account
	// other than the caller.
	ErrBadRenounce = runtime.AssertError("AccessControl: can only renounce roles for self")
)

// RoleID identifies a role.
type RoleID [32]byte

// DefaultAdminRole is the zero role. Its members administer every role
// that has not been given a dedicated admin.
var DefaultAdminRole = RoleID{}

// Role derives a role identifier from its name: sha3-256(name). Stable
// across runs, so contracts can declare roles as package variables.
func Role(name string) RoleID {
	var id RoleID
	h := sha3.New256()
	h.Write([]byte(name))
	copy(id[:], h.Sum(nil))
	return id
}

// State is the embeddable role table.
type State struct {
	// Members maps role -> account -> membership.
	Members map[RoleID]map[runtime.PublicKey]bool

	// Admins maps role -> admin role. Missing entries fall back to
	// DefaultAdminRole.
	Admins map[RoleID]RoleID
}

// NewState builds a role table with admin as the initial member of the
// default admin role.
func NewState(admin runtime.PublicKey) State {
	s := State{
		Members: map[RoleID]map[runtime.PublicKey]bool{},
		Admins:  map[RoleID]RoleID{},
	}
	s.grant(DefaultAdminRole, admin)
	return s
}

// Clone deep-copies the role table.
func (s State) Clone() State {
	c := State{
		Members: make(map[RoleID]map[runtime.PublicKey]bool, len(s.Members)),
		Admins:  make(map[RoleID]RoleID, len(s.Admins)),
	}
	for role, members := range s.Members {
		m := make(map[runtime.PublicKey]bool, len(members))
		for acct, ok := range members {
			m[acct] = ok
		}
		c.Members[role] = m
	}
	for role, admin := range s.Admins {
		c.Admins[role] = admin
	}
	return c
}

// HasRole reports whether account is a member of role.
func (s *State) HasRole(role RoleID, account runtime.PublicKey) bool {
	return s.Members[role][account]
}

// AdminOf returns the admin role of role.
func (s *State) AdminOf(role RoleID) RoleID {
	return s.Admins[role] // zero value is DefaultAdminRole
}

// SetAdmin rebinds role's admin role. Exposed for composing contracts;
// the standalone circuits never rebind admins.
func (s *State) SetAdmin(role, admin RoleID) {
	s.Admins[role] = admin
}

// AssertOnlyRole reverts unless caller is a member of role.
func (s *State) AssertOnlyRole(role RoleID, caller runtime.PublicKey) error {
	if !s.HasRole(role, caller) {
		return ErrUnauthorized
	}
	return nil
}

// Grant adds account to role after checking the caller against the role's
// admin role. Granting an already-held role is a no-op, not a revert.
func (s *State) Grant(role RoleID, account, caller runtime.PublicKey) error {
	if err := s.AssertOnlyRole(s.AdminOf(role), caller); err != nil {
		return err
	}
	s.grant(role, account)
	return nil
}

// Revoke removes account from role after checking the caller against the
// role's admin role. Revoking a role the account does not hold is a no-op.
func (s *State) Revoke(role RoleID, account, caller runtime.PublicKey) error {
	if err := s.AssertOnlyRole(s.AdminOf(role), caller); err != nil {
		return err
	}
	delete(s.Members[role], account)
	return nil
}

// Renounce removes the caller's own membership of role. The account
// argument must equal the caller, matching the two-argument circuit shape.
func (s *State) Renounce(role RoleID, account, caller runtime.PublicKey) error {
	if account != caller {
		return ErrBadRenounce
	}
	delete(s.Members[role], account)
	return nil
}

func (s *State) grant(role RoleID, account runtime.PublicKey) {
	if s.Members[role] == nil {
		s.Members[role] = map[runtime.PublicKey]bool{}
	}
	s.Members[role][account] = true
}

// Holder is the ledger surface the circuits operate on.
type Holder interface {
	runtime.State
	AccessControl() *State
}

// Ledger is the standalone contract state.
type Ledger struct {
	Roles State
}

// NewLedger builds the initial state with admin holding the default admin
// role. A zero admin is rejected at construction.
func NewLedger(admin runtime.PublicKey) (*Ledger, error) {
	if admin.IsZero() {
		return nil, runtime.AssertError("AccessControl: invalid initial admin")
	}
	return &Ledger{Roles: NewState(admin)}, nil
}

// AccessControl implements Holder.
func (l *Ledger) AccessControl() *State {
	return &l.Roles
}

// Clone implements runtime.State.
func (l *Ledger) Clone() runtime.State {
	return &Ledger{Roles: l.Roles.Clone()}
}

// HasRole reports whether account is a member of role.
func HasRole[P any](ctx runtime.Context[P], role RoleID, account runtime.PublicKey) (bool, error) {
	return ctx.Query.State.(Holder).AccessControl().HasRole(role, account), nil
}

// GetRoleAdmin returns the admin role of role.
func GetRoleAdmin[P any](ctx runtime.Context[P], role RoleID) (RoleID, error) {
	return ctx.Query.State.(Holder).AccessControl().AdminOf(role), nil
}

// GrantRole adds account to role. Caller must hold the role's admin role.
func GrantRole[P any](ctx runtime.Context[P], role RoleID, account runtime.PublicKey) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.AccessControl().Grant(role, account, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// RevokeRole removes account from role. Caller must hold the role's admin
// role.
func RevokeRole[P any](ctx runtime.Context[P], role RoleID, account runtime.PublicKey) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.AccessControl().Revoke(role, account, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// RenounceRole removes the caller's own membership of role; account must
// equal the caller.
func RenounceRole[P any](ctx runtime.Context[P], role RoleID, account runtime.PublicKey) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	if err := led.AccessControl().Renounce(role, account, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}
