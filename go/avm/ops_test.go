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
	"bytes"
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// runOp runs a single primitive and reports whether it was rejected.
func runOp(t *testing.T, op func(m *Machine) error) (rejected bool) {
	t.Helper()
	_, params := newTestContext(t)
	result, err := Run(params, op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return !result.Success
}

func TestMachine_ArithmeticRejectsInvalidOperands(t *testing.T) {
	tests := map[string]struct {
		op   func(m *Machine) (uint64, error)
		want uint64
		fail bool
	}{
		"add":          {op: func(m *Machine) (uint64, error) { return m.Add(1, 2) }, want: 3},
		"add overflow": {op: func(m *Machine) (uint64, error) { return m.Add(math.MaxUint64, 1) }, fail: true},
		"sub":          {op: func(m *Machine) (uint64, error) { return m.Sub(3, 2) }, want: 1},
		"sub negative": {op: func(m *Machine) (uint64, error) { return m.Sub(2, 3) }, fail: true},
		"mul":          {op: func(m *Machine) (uint64, error) { return m.Mul(3, 4) }, want: 12},
		"mul zero":     {op: func(m *Machine) (uint64, error) { return m.Mul(0, math.MaxUint64) }, want: 0},
		"mul overflow": {op: func(m *Machine) (uint64, error) { return m.Mul(math.MaxUint64/2+1, 2) }, fail: true},
		"div":          {op: func(m *Machine) (uint64, error) { return m.Div(7, 2) }, want: 3},
		"div zero":     {op: func(m *Machine) (uint64, error) { return m.Div(7, 0) }, fail: true},
		"mod":          {op: func(m *Machine) (uint64, error) { return m.Mod(7, 4) }, want: 3},
		"mod zero":     {op: func(m *Machine) (uint64, error) { return m.Mod(7, 0) }, fail: true},
		"getbyte":      {op: func(m *Machine) (uint64, error) { return m.GetByte([]byte{5, 6}, 1) }, want: 6},
		"getbyte end":  {op: func(m *Machine) (uint64, error) { return m.GetByte([]byte{5, 6}, 2) }, fail: true},
		"btoi":         {op: func(m *Machine) (uint64, error) { return m.Btoi([]byte{1, 0}) }, want: 256},
		"btoi empty":   {op: func(m *Machine) (uint64, error) { return m.Btoi(nil) }, want: 0},
		"btoi long":    {op: func(m *Machine) (uint64, error) { return m.Btoi(make([]byte, 9)) }, fail: true},
		"len":          {op: func(m *Machine) (uint64, error) { return m.Len([]byte("abc")) }, want: 3},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var got uint64
			rejected := runOp(t, func(m *Machine) error {
				res, err := test.op(m)
				got = res
				return err
			})
			if want := test.fail; want != rejected {
				t.Fatalf("unexpected rejection, want %t, got %t", want, rejected)
			}
			if !test.fail && test.want != got {
				t.Errorf("unexpected result, want %d, got %d", test.want, got)
			}
		})
	}
}

func TestMachine_ByteStringPrimitives(t *testing.T) {
	tests := map[string]struct {
		op   func(m *Machine) ([]byte, error)
		want string
		fail bool
	}{
		"concat":         {op: func(m *Machine) ([]byte, error) { return m.Concat([]byte("ab"), nil, []byte("c")) }, want: "616263"},
		"concat max":     {op: func(m *Machine) ([]byte, error) { return m.Concat(make([]byte, MaxStringSize)) }, want: strings.Repeat("00", MaxStringSize)},
		"concat too big": {op: func(m *Machine) ([]byte, error) { return m.Concat(make([]byte, MaxStringSize), []byte{1}) }, fail: true},
		"extract":        {op: func(m *Machine) ([]byte, error) { return m.Extract([]byte("0123456789"), 3, 1) }, want: "33"},
		"extract end":    {op: func(m *Machine) ([]byte, error) { return m.Extract([]byte("01"), 1, 1) }, want: "31"},
		"extract beyond": {op: func(m *Machine) ([]byte, error) { return m.Extract([]byte("01"), 1, 2) }, fail: true},
		"extract start":  {op: func(m *Machine) ([]byte, error) { return m.Extract([]byte("01"), 3, 0) }, fail: true},
		"itob":           {op: func(m *Machine) ([]byte, error) { return m.Itob(258) }, want: "0000000000000102"},
		"sha512_256":     {op: func(m *Machine) ([]byte, error) { return m.Sha512_256([]byte("Swapped(uint64,uint64)")) }},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var got []byte
			rejected := runOp(t, func(m *Machine) error {
				res, err := test.op(m)
				got = res
				return err
			})
			if want := test.fail; want != rejected {
				t.Fatalf("unexpected rejection, want %t, got %t", want, rejected)
			}
			if test.fail || test.want == "" {
				return
			}
			if want := test.want; want != hex.EncodeToString(got) {
				t.Errorf("unexpected result, want %s, got %x", want, got)
			}
		})
	}
}

func TestMachine_HashMatchesEventSelector(t *testing.T) {
	_, params := newTestContext(t)
	_, err := Run(params, func(m *Machine) error {
		hash, err := m.Sha512_256([]byte("Swapped(uint64,uint64)"))
		if err != nil {
			return err
		}
		if want := []byte{0x1c, 0xcb, 0xd9, 0x25}; !bytes.Equal(want, hash[:4]) {
			t.Errorf("unexpected hash prefix, want %x, got %x", want, hash[:4])
		}
		if want, got := arco.DefaultBudget-CostHash, m.Remaining(); want != got {
			t.Errorf("unexpected remaining budget, want %d, got %d", want, got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
