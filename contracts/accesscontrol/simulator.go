package accesscontrol

import (
	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives the standalone access-control contract in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys the contract with admin holding the default admin
// role.
func NewSimulator(caller, admin runtime.PublicKey) (*Simulator, error) {
	base, err := simulator.New(simulator.Options[struct{}, *Ledger]{
		Caller: caller,
		Ledger: func(s runtime.State) *Ledger { return s.(*Ledger) },
		Deploy: func(ctx runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
			led, err := NewLedger(admin)
			if err != nil {
				return runtime.DeployResult[struct{}]{}, err
			}
			return runtime.DeployResult[struct{}]{
				State: led,
				Local: runtime.LocalState{Caller: ctx.Caller},
			}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return &Simulator{Simulator: base}, nil
}

// HasRole reports whether account is a member of role.
func (s *Simulator) HasRole(role RoleID, account runtime.PublicKey) (bool, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (bool, error) {
		return HasRole(ctx, role, account)
	})
}

// GetRoleAdmin returns the admin role of role.
func (s *Simulator) GetRoleAdmin(role RoleID) (RoleID, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (RoleID, error) {
		return GetRoleAdmin(ctx, role)
	})
}

// GrantRole adds account to role as the effective caller.
func (s *Simulator) GrantRole(role RoleID, account runtime.PublicKey) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return GrantRole(ctx, role, account)
	})
	return err
}

// RevokeRole removes account from role as the effective caller.
func (s *Simulator) RevokeRole(role RoleID, account runtime.PublicKey) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return RevokeRole(ctx, role, account)
	})
	return err
}

// RenounceRole removes the caller's own membership of role.
func (s *Simulator) RenounceRole(role RoleID, account runtime.PublicKey) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return RenounceRole(ctx, role, account)
	})
	return err
}
