// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package native implements the TestingApp contract by handlers written
// directly against the primitives of the avm Machine. It is the reference
// implementation of the contract.
package native

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/avm"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
	"github.com/Fantom-foundation/Arco/go/router"
)

func init() {
	err := arco.RegisterExecutorFactory("native", func(any) (arco.Executor, error) {
		return NewExecutor(), nil
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register native executor: %v", err))
	}
}

// NewExecutor creates an executor running the TestingApp contract.
func NewExecutor() *router.Router {
	return testingapp.NewRouter(handlers{})
}

var (
	swappedEvent = abi.MustParseEvent(testingapp.Swapped)
	complexEvent = abi.MustParseEvent(testingapp.Complex)
)

type handlers struct{}

func (handlers) Create(*router.Call) (any, error) {
	return nil, nil
}

func (handlers) Update(c *router.Call) (any, error) {
	return nil, c.Assert(c.Sender() == c.Creator(), testingapp.Unauthorized)
}

func (handlers) Delete(c *router.Call) (any, error) {
	return nil, c.Assert(c.Sender() == c.Creator(), testingapp.Unauthorized)
}

func (handlers) OptIn(*router.Call) (any, error) {
	return nil, nil
}

func (handlers) CallABI(c *router.Call) (any, error) {
	res, err := c.Concat([]byte("Hello, "), []byte(c.Args[0].(string)))
	if err != nil {
		return nil, err
	}
	return string(res), nil
}

func (handlers) CallABIForeignRefs(c *router.Call) (any, error) {
	app, err := c.Application(1)
	if err != nil {
		return nil, err
	}
	asset, err := c.Asset(0)
	if err != nil {
		return nil, err
	}
	account, err := c.Account(0)
	if err != nil {
		return nil, err
	}
	first, err := c.GetByte(account[:], 0)
	if err != nil {
		return nil, err
	}
	second, err := c.GetByte(account[:], 1)
	if err != nil {
		return nil, err
	}

	parts := [][]byte{[]byte("App: "), nil, []byte(", Asset: "), nil, []byte(", Account: "), nil, []byte(":"), nil}
	for i, value := range []uint64{uint64(app), uint64(asset), first, second} {
		if parts[2*i+1], err = itoa(c.Machine, value); err != nil {
			return nil, err
		}
	}
	res, err := c.Concat(parts...)
	if err != nil {
		return nil, err
	}
	return string(res), nil
}

func (handlers) SetGlobal(c *router.Call) (any, error) {
	return nil, putAll(c, func(key string, value arco.Value) error {
		return c.GlobalPut(key, value)
	}, [4]string{testingapp.GlobalInt1, testingapp.GlobalInt2, testingapp.GlobalBytes1, testingapp.GlobalBytes2})
}

func (handlers) SetLocal(c *router.Call) (any, error) {
	sender := c.Sender()
	return nil, putAll(c, func(key string, value arco.Value) error {
		return c.LocalPut(sender, key, value)
	}, [4]string{testingapp.LocalInt1, testingapp.LocalInt2, testingapp.LocalBytes1, testingapp.LocalBytes2})
}

// putAll stores the arguments of set_global and set_local under the given
// keys. The string is stored without its length prefix.
func putAll(c *router.Call, put func(string, arco.Value) error, keys [4]string) error {
	values := []arco.Value{
		arco.NewUint(c.Args[0].(uint64)),
		arco.NewUint(c.Args[1].(uint64)),
		arco.NewBytes([]byte(c.Args[2].(string))),
		arco.NewBytes(c.Args[3].([]byte)),
	}
	for i, value := range values {
		if err := put(keys[i], value); err != nil {
			return err
		}
	}
	return nil
}

func (handlers) IssueTransferToSender(c *router.Call) (any, error) {
	return nil, c.Pay(c.Sender(), c.Args[0].(uint64), 0)
}

func (handlers) SetBox(c *router.Call) (any, error) {
	name := c.Args[0].([]byte)
	if _, err := c.BoxDel(name); err != nil {
		return nil, err
	}
	return nil, c.BoxPut(name, c.Raw[1])
}

func (handlers) Error(c *router.Call) (any, error) {
	return nil, c.Fail(testingapp.DeliberateError)
}

func (handlers) EmitSwapped(c *router.Call) (any, error) {
	a, b := c.Args[0].(uint64), c.Args[1].(uint64)
	return nil, emit(c.Machine, swappedEvent, a, b)
}

func (handlers) EmitSwappedTwice(c *router.Call) (any, error) {
	a, b := c.Args[0].(uint64), c.Args[1].(uint64)
	if err := emit(c.Machine, swappedEvent, a, b); err != nil {
		return nil, err
	}
	return nil, emit(c.Machine, swappedEvent, b, a)
}

func (handlers) EmitComplex(c *router.Call) (any, error) {
	a, b, array := c.Args[0].(uint64), c.Args[1].(uint64), c.Args[2]
	if err := emit(c.Machine, swappedEvent, a, b); err != nil {
		return nil, err
	}
	return nil, emit(c.Machine, complexEvent, array, b)
}

// emit logs an event. Like compiled contracts, the entry is assembled by a
// concatenation of the selector and the encoded fields.
func emit(m *avm.Machine, event *abi.Event, values ...any) error {
	fields, err := abi.Encode(abi.Tuple(event.Fields...), values)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", event.Name, err)
	}
	selector := event.Selector()
	entry, err := m.Concat(selector[:], fields)
	if err != nil {
		return err
	}
	return m.Log(entry)
}

var digits = []byte("0123456789")

// itoa converts the given integer into its decimal representation. Each
// recursion level is metered like a subroutine call.
func itoa(m *avm.Machine, i uint64) ([]byte, error) {
	if err := m.Charge(avm.CostCall); err != nil {
		return nil, err
	}
	rest, err := m.Div(i, 10)
	if err != nil {
		return nil, err
	}
	var prefix []byte
	if rest > 0 {
		if prefix, err = itoa(m, rest); err != nil {
			return nil, err
		}
	}
	digit, err := m.Mod(i, 10)
	if err != nil {
		return nil, err
	}
	suffix, err := m.Extract(digits, digit, 1)
	if err != nil {
		return nil, err
	}
	return m.Concat(prefix, suffix)
}
