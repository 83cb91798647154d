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
	"crypto/sha512"
	"encoding/binary"
	"math"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// MaxStringSize is the maximum length of byte strings produced by the
// primitives of a Machine.
const MaxStringSize = 4096

// The primitives below mirror the arithmetic and byte-string opcodes of the
// AVM. Each primitive is charged CostDefault unless stated otherwise; invalid
// operands reject the invocation.

func (m *Machine) Add(a, b uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if a > math.MaxUint64-b {
		return 0, arco.Reject("+ overflowed")
	}
	return a + b, nil
}

func (m *Machine) Sub(a, b uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if a < b {
		return 0, arco.Reject("- would result negative")
	}
	return a - b, nil
}

func (m *Machine) Mul(a, b uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if a != 0 && b > math.MaxUint64/a {
		return 0, arco.Reject("* overflowed")
	}
	return a * b, nil
}

func (m *Machine) Div(a, b uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, arco.Reject("/ 0")
	}
	return a / b, nil
}

func (m *Machine) Mod(a, b uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, arco.Reject("% 0")
	}
	return a % b, nil
}

// Concat joins the given byte strings.
func (m *Machine) Concat(parts ...[]byte) ([]byte, error) {
	if err := m.Charge(CostDefault * arco.Budget(max(len(parts)-1, 1))); err != nil {
		return nil, err
	}
	size := 0
	for _, part := range parts {
		size += len(part)
	}
	if size > MaxStringSize {
		return nil, arco.Rejectf("concat produced a too big (%d) byte-array", size)
	}
	res := make([]byte, 0, size)
	for _, part := range parts {
		res = append(res, part...)
	}
	return res, nil
}

// Extract returns length bytes of data starting at the given offset.
func (m *Machine) Extract(data []byte, start, length uint64) ([]byte, error) {
	if err := m.Charge(CostDefault); err != nil {
		return nil, err
	}
	if start > uint64(len(data)) || length > uint64(len(data))-start {
		return nil, arco.Rejectf("extraction end %d is beyond length: %d", start+length, len(data))
	}
	return data[start : start+length], nil
}

// GetByte returns the byte at the given position as an integer.
func (m *Machine) GetByte(data []byte, i uint64) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if i >= uint64(len(data)) {
		return 0, arco.Rejectf("getbyte index %d beyond length %d", i, len(data))
	}
	return uint64(data[i]), nil
}

// Itob produces the 8-byte big-endian encoding of an integer.
func (m *Machine) Itob(v uint64) ([]byte, error) {
	if err := m.Charge(CostDefault); err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint64(nil, v), nil
}

// Btoi interprets up to 8 bytes as a big-endian integer.
func (m *Machine) Btoi(data []byte) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	if len(data) > 8 {
		return 0, arco.Rejectf("btoi arg too long, got [%d]bytes", len(data))
	}
	var res uint64
	for _, b := range data {
		res = res<<8 | uint64(b)
	}
	return res, nil
}

// Len returns the length of a byte string.
func (m *Machine) Len(data []byte) (uint64, error) {
	if err := m.Charge(CostDefault); err != nil {
		return 0, err
	}
	return uint64(len(data)), nil
}

// Sha512_256 hashes the given data. It is charged CostHash.
func (m *Machine) Sha512_256(data []byte) ([]byte, error) {
	if err := m.Charge(CostHash); err != nil {
		return nil, err
	}
	hash := sha512.Sum512_256(data)
	return hash[:], nil
}
