// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arco

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package arco

// WorldState is an interface to access and manipulate the state of the ledger
// as far as it is visible to applications: account balances, application
// parameters, and the global, local, and box storage of each application.
// Accessors do not fail; missing entries are reported through the boolean
// results or zero values.
type WorldState interface {
	GetBalance(Address) uint64
	SetBalance(Address, uint64)

	// CreateApp allocates a new application identifier and records the
	// given parameters for it.
	CreateApp(AppParams) AppID
	GetApp(AppID) (AppParams, bool)
	// DeleteApp removes the application parameters together with its
	// global state, all local states, and all boxes.
	DeleteApp(AppID)

	GetGlobal(AppID, string) (Value, bool)
	SetGlobal(AppID, string, Value)
	DeleteGlobal(AppID, string)
	GetGlobalKeys(AppID) []string

	IsOptedIn(AppID, Address) bool
	OptIn(AppID, Address)
	// CloseOut removes the local state of the account for the application.
	CloseOut(AppID, Address)

	GetLocal(AppID, Address, string) (Value, bool)
	SetLocal(AppID, Address, string, Value)
	DeleteLocal(AppID, Address, string)
	GetLocalKeys(AppID, Address) []string

	GetBox(AppID, []byte) ([]byte, bool)
	SetBox(AppID, []byte, []byte)
	DeleteBox(AppID, []byte) bool
}

// AppParams summarizes the ledger-level properties of an application.
type AppParams struct {
	Creator      Address
	GlobalSchema StateSchema
	LocalSchema  StateSchema
}
