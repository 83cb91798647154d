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
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/avm"
)

func binaryUint(name string, f func(m *avm.Machine, a, b uint64) (uint64, error)) func(*Env, []arco.Value) (arco.Value, error) {
	return func(e *Env, values []arco.Value) (arco.Value, error) {
		a, err := asUint(name, values[0])
		if err != nil {
			return arco.Value{}, err
		}
		b, err := asUint(name, values[1])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := f(e.machine, a, b)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(res), nil
	}
}

func Add(a, b Expr) Expr { return newOp("Add", binaryUint("+", (*avm.Machine).Add), a, b) }
func Sub(a, b Expr) Expr { return newOp("Sub", binaryUint("-", (*avm.Machine).Sub), a, b) }
func Mul(a, b Expr) Expr { return newOp("Mul", binaryUint("*", (*avm.Machine).Mul), a, b) }
func Div(a, b Expr) Expr { return newOp("Div", binaryUint("/", (*avm.Machine).Div), a, b) }
func Mod(a, b Expr) Expr { return newOp("Mod", binaryUint("%", (*avm.Machine).Mod), a, b) }

func comparison(name string, f func(a, b uint64) bool) func(*Env, []arco.Value) (arco.Value, error) {
	return binaryUint(name, func(m *avm.Machine, a, b uint64) (uint64, error) {
		if err := m.Charge(avm.CostDefault); err != nil {
			return 0, err
		}
		return toUint(f(a, b)), nil
	})
}

func Lt(a, b Expr) Expr { return newOp("Lt", comparison("<", func(a, b uint64) bool { return a < b }), a, b) }
func Gt(a, b Expr) Expr { return newOp("Gt", comparison(">", func(a, b uint64) bool { return a > b }), a, b) }
func And(a, b Expr) Expr {
	return newOp("And", comparison("&&", func(a, b uint64) bool { return a != 0 && b != 0 }), a, b)
}
func Or(a, b Expr) Expr {
	return newOp("Or", comparison("||", func(a, b uint64) bool { return a != 0 || b != 0 }), a, b)
}

// Not yields 1 for zero and 0 for any other integer.
func Not(a Expr) Expr {
	return newOp("Not", func(e *Env, values []arco.Value) (arco.Value, error) {
		v, err := asUint("!", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		if err := e.machine.Charge(avm.CostDefault); err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(toUint(v == 0)), nil
	}, a)
}

// Eq compares two values of the same type.
func Eq(a, b Expr) Expr {
	return newOp("Eq", func(e *Env, values []arco.Value) (arco.Value, error) {
		if values[0].Type != values[1].Type || values[0].IsZero() {
			return arco.Value{}, arco.Rejectf("cannot compare (%v to %v)", typeName(values[0]), typeName(values[1]))
		}
		if err := e.machine.Charge(avm.CostDefault); err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(toUint(values[0].Equal(values[1]))), nil
	}, a, b)
}

// Neq is the negation of Eq.
func Neq(a, b Expr) Expr {
	return Not(Eq(a, b))
}

func toUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Concat joins the given byte strings.
func Concat(parts ...Expr) Expr {
	return newOp("Concat", func(e *Env, values []arco.Value) (arco.Value, error) {
		parts := make([][]byte, 0, len(values))
		for _, value := range values {
			part, err := asBytes("concat", value)
			if err != nil {
				return arco.Value{}, err
			}
			parts = append(parts, part)
		}
		res, err := e.machine.Concat(parts...)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(res), nil
	}, parts...)
}

// Extract yields length bytes of data starting at start.
func Extract(data, start, length Expr) Expr {
	return newOp("Extract", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("extract", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		start, err := asUint("extract", values[1])
		if err != nil {
			return arco.Value{}, err
		}
		length, err := asUint("extract", values[2])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.Extract(data, start, length)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(res), nil
	}, data, start, length)
}

// Suffix yields the bytes of data following the first start bytes.
func Suffix(data Expr, start uint64) Expr {
	return newOp("Suffix", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("extract", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		if start > uint64(len(data)) {
			return arco.Value{}, arco.Rejectf("extraction start %d is beyond length: %d", start, len(data))
		}
		res, err := e.machine.Extract(data, start, uint64(len(data))-start)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(res), nil
	}, data)
}

// GetByte yields the byte of data at the given index as an integer.
func GetByte(data, index Expr) Expr {
	return newOp("GetByte", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("getbyte", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		index, err := asUint("getbyte", values[1])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.GetByte(data, index)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(res), nil
	}, data, index)
}

// Itob yields the 8-byte big-endian encoding of an integer.
func Itob(a Expr) Expr {
	return newOp("Itob", func(e *Env, values []arco.Value) (arco.Value, error) {
		v, err := asUint("itob", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.Itob(v)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(res), nil
	}, a)
}

// Btoi interprets up to 8 bytes as a big-endian integer.
func Btoi(a Expr) Expr {
	return newOp("Btoi", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("btoi", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.Btoi(data)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(res), nil
	}, a)
}

// Len yields the length of a byte string.
func Len(a Expr) Expr {
	return newOp("Len", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("len", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.Len(data)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewUint(res), nil
	}, a)
}

// Sha512_256 hashes a byte string.
func Sha512_256(a Expr) Expr {
	return newOp("Sha512_256", func(e *Env, values []arco.Value) (arco.Value, error) {
		data, err := asBytes("sha512_256", values[0])
		if err != nil {
			return arco.Value{}, err
		}
		res, err := e.machine.Sha512_256(data)
		if err != nil {
			return arco.Value{}, err
		}
		return arco.NewBytes(res), nil
	}, a)
}
