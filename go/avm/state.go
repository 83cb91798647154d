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
	"github.com/Fantom-foundation/Arco/go/arco"
)

// GlobalGet reads an entry of the global state of the running application.
func (m *Machine) GlobalGet(key string) (arco.Value, bool, error) {
	if err := m.Charge(CostStateRead); err != nil {
		return arco.Value{}, false, err
	}
	value, found := m.context.GetGlobal(m.params.App, key)
	return value, found, nil
}

// GlobalPut writes an entry of the global state of the running application.
func (m *Machine) GlobalPut(key string, value arco.Value) error {
	if err := m.Charge(CostStateSet); err != nil {
		return err
	}
	if err := checkEntry(key, value); err != nil {
		return err
	}
	m.context.SetGlobal(m.params.App, key, value)
	return nil
}

// GlobalDel removes an entry of the global state of the running application.
func (m *Machine) GlobalDel(key string) error {
	if err := m.Charge(CostStateSet); err != nil {
		return err
	}
	m.context.DeleteGlobal(m.params.App, key)
	return nil
}

// LocalGet reads an entry of the local state of the given account, which has
// to be opted in to the running application.
func (m *Machine) LocalGet(account arco.Address, key string) (arco.Value, bool, error) {
	if err := m.Charge(CostStateRead); err != nil {
		return arco.Value{}, false, err
	}
	if err := m.checkOptedIn(account); err != nil {
		return arco.Value{}, false, err
	}
	value, found := m.context.GetLocal(m.params.App, account, key)
	return value, found, nil
}

// LocalPut writes an entry of the local state of the given account, which
// has to be opted in to the running application.
func (m *Machine) LocalPut(account arco.Address, key string, value arco.Value) error {
	if err := m.Charge(CostStateSet); err != nil {
		return err
	}
	if err := m.checkOptedIn(account); err != nil {
		return err
	}
	if err := checkEntry(key, value); err != nil {
		return err
	}
	m.context.SetLocal(m.params.App, account, key, value)
	return nil
}

// LocalDel removes an entry of the local state of the given account.
func (m *Machine) LocalDel(account arco.Address, key string) error {
	if err := m.Charge(CostStateSet); err != nil {
		return err
	}
	if err := m.checkOptedIn(account); err != nil {
		return err
	}
	m.context.DeleteLocal(m.params.App, account, key)
	return nil
}

// BoxGet reads the content of a box of the running application.
func (m *Machine) BoxGet(name []byte) ([]byte, bool, error) {
	if err := m.Charge(CostStateRead); err != nil {
		return nil, false, err
	}
	if err := checkBoxName(name); err != nil {
		return nil, false, err
	}
	content, found := m.context.GetBox(m.params.App, name)
	return content, found, nil
}

// BoxPut writes the content of a box, creating the box if necessary. The
// size of an existing box cannot be changed.
func (m *Machine) BoxPut(name []byte, content []byte) error {
	if err := m.Charge(CostStateSet); err != nil {
		return err
	}
	if err := checkBoxName(name); err != nil {
		return err
	}
	if len(content) > arco.MaxBoxSize {
		return arco.Rejectf("box size too large: %d > %d", len(content), arco.MaxBoxSize)
	}
	existing, found := m.context.GetBox(m.params.App, name)
	if found && len(existing) != len(content) {
		return arco.Reject("box size mismatch")
	}
	if !found {
		if err := m.Charge(CostBoxCreate); err != nil {
			return err
		}
	}
	m.context.SetBox(m.params.App, name, content)
	return nil
}

// BoxDel removes a box of the running application. The result reports
// whether the box existed.
func (m *Machine) BoxDel(name []byte) (bool, error) {
	if err := m.Charge(CostStateSet); err != nil {
		return false, err
	}
	if err := checkBoxName(name); err != nil {
		return false, err
	}
	return m.context.DeleteBox(m.params.App, name), nil
}

func (m *Machine) checkOptedIn(account arco.Address) error {
	if !m.context.IsOptedIn(m.params.App, account) {
		return arco.Rejectf("account %v is not opted in to app %d", account, m.params.App)
	}
	return nil
}

func checkEntry(key string, value arco.Value) error {
	if len(key) > arco.MaxKeyLength {
		return arco.Rejectf("key too long: length was %d, maximum is %d", len(key), arco.MaxKeyLength)
	}
	if value.IsZero() {
		return arco.Reject("invalid state value")
	}
	if len(key)+value.Size() > arco.MaxKeyValueLength {
		return arco.Rejectf("key/value total too long: length was %d, maximum is %d", len(key)+value.Size(), arco.MaxKeyValueLength)
	}
	return nil
}

func checkBoxName(name []byte) error {
	if len(name) == 0 || len(name) > arco.MaxBoxNameLength {
		return arco.Rejectf("invalid box name length %d", len(name))
	}
	return nil
}
