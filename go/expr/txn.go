// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package expr

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// leaf creates an operation without operands.
func leaf(name string, eval func(*Env) (arco.Value, error)) Expr {
	return newOp(name, func(e *Env, _ []arco.Value) (arco.Value, error) {
		return eval(e)
	})
}

func asAddress(name string, value arco.Value) (arco.Address, error) {
	data, err := asBytes(name, value)
	if err != nil {
		return arco.Address{}, err
	}
	var res arco.Address
	if len(data) != len(res) {
		return res, arco.Rejectf("%s: invalid account of length %d", name, len(data))
	}
	copy(res[:], data)
	return res, nil
}

// ----------------------------------------------------------------------------
// Transaction fields
// ----------------------------------------------------------------------------

// Arg yields the i-th application argument following the method selector.
func Arg(i int) Expr {
	return leaf(fmt.Sprintf("Arg(%d)", i), func(e *Env) (arco.Value, error) {
		arg, err := e.machine.AppArg(i + 1)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(arg), nil
	})
}

// Sender yields the address of the sender of the invocation.
func Sender() Expr {
	return leaf("Sender", func(e *Env) (arco.Value, error) {
		sender := e.machine.Sender()
		return arco.NewBytes(sender[:]), nil
	})
}

// Creator yields the address of the creator of the running application.
func Creator() Expr {
	return leaf("Creator", func(e *Env) (arco.Value, error) {
		creator := e.machine.Creator()
		return arco.NewBytes(creator[:]), nil
	})
}

// Application yields an entry of the applications array. Index 0 refers to
// the running application.
func Application(i int) Expr {
	return leaf(fmt.Sprintf("Application(%d)", i), func(e *Env) (arco.Value, error) {
		app, err := e.machine.Application(i)
		return arco.NewUint(uint64(app)), err
	})
}

// Asset yields an entry of the assets array.
func Asset(i int) Expr {
	return leaf(fmt.Sprintf("Asset(%d)", i), func(e *Env) (arco.Value, error) {
		asset, err := e.machine.Asset(i)
		return arco.NewUint(uint64(asset)), err
	})
}

// Account yields an entry of the accounts array. Index 0 refers to the
// sender.
func Account(i int) Expr {
	return leaf(fmt.Sprintf("Account(%d)", i), func(e *Env) (arco.Value, error) {
		account, err := e.machine.Account(i)
		return arco.NewBytes(account[:]), err
	})
}

// ----------------------------------------------------------------------------
// State
// ----------------------------------------------------------------------------

// GlobalGet reads an entry of the global state. Missing entries yield the
// integer zero.
func GlobalGet(key string) Expr {
	return leaf(fmt.Sprintf("GlobalGet(%q)", key), func(e *Env) (arco.Value, error) {
		value, found, err := e.machine.GlobalGet(key)
		if err != nil || !found {
			return arco.NewUint(0), err
		}
		return value, nil
	})
}

// GlobalPut writes an entry of the global state.
func GlobalPut(key string, value Expr) Expr {
	return newOp(fmt.Sprintf("GlobalPut[%q]", key), func(e *Env, values []arco.Value) (arco.Value, error) {
		return arco.Value{}, e.machine.GlobalPut(key, values[0])
	}, value)
}

// GlobalDel removes an entry of the global state.
func GlobalDel(key string) Expr {
	return leaf(fmt.Sprintf("GlobalDel(%q)", key), func(e *Env) (arco.Value, error) {
		return arco.Value{}, e.machine.GlobalDel(key)
	})
}

// LocalGet reads an entry of the local state of an account. Missing entries
// yield the integer zero.
func LocalGet(account Expr, key string) Expr {
	return newOp(fmt.Sprintf("LocalGet[%q]", key), func(e *Env, values []arco.Value) (arco.Value, error) {
		address, err := asAddress("app_local_get", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		value, found, err := e.machine.LocalGet(address, key)
		if err != nil || !found {
			return arco.NewUint(0), err
		}
		return value, nil
	}, account)
}

// LocalPut writes an entry of the local state of an account.
func LocalPut(account Expr, key string, value Expr) Expr {
	return newOp(fmt.Sprintf("LocalPut[%q]", key), func(e *Env, values []arco.Value) (arco.Value, error) {
		address, err := asAddress("app_local_put", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		return arco.Value{}, e.machine.LocalPut(address, key, values[1])
	}, account, value)
}

// BoxGet reads the content of a box. Missing boxes reject the invocation.
func BoxGet(name Expr) Expr {
	return newOp("BoxGet", func(e *Env, values []arco.Value) (arco.Value, error) {
		name, err := asBytes("box_get", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		content, found, err := e.machine.BoxGet(name)
		if err != nil {
			return arco.Value{}, err
		}
		if !found {
			return arco.Value{}, arco.Rejectf("no such box 0x%x", name)
		}
		return arco.NewBytes(content), nil
	}, name)
}

// BoxPut writes the content of a box.
func BoxPut(name, content Expr) Expr {
	return newOp("BoxPut", func(e *Env, values []arco.Value) (arco.Value, error) {
		name, err := asBytes("box_put", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		content, err := asBytes("box_put", values[1])
		if err != nil {
			return arco.Value{}, err
		}
		return arco.Value{}, e.machine.BoxPut(name, content)
	}, name, content)
}

// BoxDel removes a box. It yields 1 if the box existed and 0 otherwise.
func BoxDel(name Expr) Expr {
	return newOp("BoxDel", func(e *Env, values []arco.Value) (arco.Value, error) {
		name, err := asBytes("box_del", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		existed, err := e.machine.BoxDel(name)
		return arco.NewUint(toUint(existed)), err
	}, name)
}

// ----------------------------------------------------------------------------
// Effects
// ----------------------------------------------------------------------------

// Log appends a byte string to the log of the invocation.
func Log(entry Expr) Expr {
	return newOp("Log", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("log", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		return arco.Value{}, e.machine.Log(data)
	}, entry)
}

// Assert rejects the invocation with the given message if the condition
// evaluates to zero.
func Assert(cond Expr, message string) Expr {
	return newOp(fmt.Sprintf("Assert[%q]", message), func(e *Env, values []arco.Value) (arco.Value, error) {
		c, err := asUint("assert", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		return arco.Value{}, e.machine.Assert(c != 0, message)
	}, cond)
}

// Fail rejects the invocation with the given message.
func Fail(message string) Expr {
	return leaf(fmt.Sprintf("Fail(%q)", message), func(e *Env) (arco.Value, error) {
		return arco.Value{}, e.machine.Fail(message)
	})
}

// Approve has no effect and yields no value.
func Approve() Expr {
	return leaf("Approve", func(*Env) (arco.Value, error) {
		return arco.Value{}, nil
	})
}

// Pay issues an inner payment from the application account.
func Pay(receiver, amount, fee Expr) Expr {
	return newOp("Pay", func(e *Env, values []arco.Value) (arco.Value, error) {
		address, err := asAddress("itxn_field Receiver", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		amount, err := asUint("itxn_field Amount", values[1])
		if err != nil {
			return arco.Value{}, err
		}
		fee, err := asUint("itxn_field Fee", values[2])
		if err != nil {
			return arco.Value{}, err
		}
		return arco.Value{}, e.machine.Pay(address, amount, fee)
	}, receiver, amount, fee)
}
