// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package avm

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// Sender returns the account issuing the invocation.
func (m *Machine) Sender() arco.Address {
	return m.params.Sender
}

// Creator returns the account that created the running application.
func (m *Machine) Creator() arco.Address {
	return m.params.Creator
}

// AppID returns the identifier of the running application. During the
// creation of an application, this is the newly assigned identifier.
func (m *Machine) AppID() arco.AppID {
	return m.params.App
}

// AppAddress returns the account controlled by the running application.
func (m *Machine) AppAddress() arco.Address {
	return m.params.App.Address()
}

func (m *Machine) OnCompletion() arco.OnCompletion {
	return m.params.OnCompletion
}

// IsCreate returns true if the invocation creates the application.
func (m *Machine) IsCreate() bool {
	return m.params.IsCreate()
}

// NumAppArgs returns the number of application arguments.
func (m *Machine) NumAppArgs() int {
	return len(m.params.Args)
}

// AppArgs returns the raw application arguments. The result must not be
// modified.
func (m *Machine) AppArgs() [][]byte {
	return m.params.Args
}

// AppArg returns the application argument with the given index.
func (m *Machine) AppArg(i int) ([]byte, error) {
	if err := m.Charge(CostTxnField); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(m.params.Args) {
		return nil, arco.Rejectf("invalid ApplicationArgs index %d", i)
	}
	return m.params.Args[i], nil
}

// Application resolves an entry of the applications array of the invocation.
// Index 0 refers to the running application, indices from 1 on refer to the
// foreign applications.
func (m *Machine) Application(i int) (arco.AppID, error) {
	if err := m.Charge(CostTxnField); err != nil {
		return 0, err
	}
	if i == 0 {
		return m.params.App, nil
	}
	if i < 0 || i > len(m.params.Applications) {
		return 0, arco.Rejectf("invalid Applications index %d", i)
	}
	return m.params.Applications[i-1], nil
}

// Asset resolves an entry of the assets array of the invocation.
func (m *Machine) Asset(i int) (arco.AssetID, error) {
	if err := m.Charge(CostTxnField); err != nil {
		return 0, err
	}
	if i < 0 || i >= len(m.params.Assets) {
		return 0, arco.Rejectf("invalid Assets index %d", i)
	}
	return m.params.Assets[i], nil
}

// Account resolves an entry of the accounts array of the invocation. Index 0
// refers to the sender, indices from 1 on refer to the foreign accounts.
func (m *Machine) Account(i int) (arco.Address, error) {
	if err := m.Charge(CostTxnField); err != nil {
		return arco.Address{}, err
	}
	if i == 0 {
		return m.params.Sender, nil
	}
	if i < 0 || i > len(m.params.Accounts) {
		return arco.Address{}, arco.Rejectf("invalid Accounts index %d", i)
	}
	return m.params.Accounts[i-1], nil
}

// ----------------------------------------------------------------------------
// Inner transactions
// ----------------------------------------------------------------------------

// Pay issues a payment from the account of the running application to the
// given receiver. The invocation is rejected if the ledger refuses the
// payment.
func (m *Machine) Pay(receiver arco.Address, amount, fee uint64) error {
	if err := m.Charge(CostPayment); err != nil {
		return err
	}
	if m.innerCount >= arco.MaxInnerTransactions {
		return arco.Reject("too many inner transactions")
	}
	m.innerCount++
	err := m.context.Submit(arco.InnerTransaction{
		Type:     arco.Payment,
		Sender:   m.AppAddress(),
		Receiver: receiver,
		Amount:   amount,
		Fee:      fee,
	})
	if err != nil && arco.AsRejection(err) == nil {
		return fmt.Errorf("failed to submit inner transaction: %w", err)
	}
	return err
}
