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

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Address represents the 256-bit (32 bytes) public key identifying an account.
type Address [32]byte

// AppID identifies an application. Zero is reserved for application creation.
type AppID uint64

// AssetID identifies an asset referenced by an invocation.
type AssetID uint64

// Selector is the 4-byte prefix of the hash of a canonical method or event
// signature.
type Selector [4]byte

// Data represents the input or output of contract invocations.
type Data []byte

// Log is a single entry in the ordered log of an invocation.
type Log []byte

// Budget represents the opcode budget consumed by an invocation.
type Budget int64

// DefaultBudget is the opcode budget granted to a single application call.
const DefaultBudget Budget = 700

const (
	addressChecksumLength = 4
	appIDAddressPrefix    = "appID"
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// String renders the address in its checksummed base32 form.
func (a Address) String() string {
	checksum := sha512.Sum512_256(a[:])
	buffer := make([]byte, 0, len(a)+addressChecksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[len(checksum)-addressChecksumLength:]...)
	return addressEncoding.EncodeToString(buffer)
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(data []byte) error {
	res, err := ParseAddress(string(data))
	if err != nil {
		return err
	}
	*a = res
	return nil
}

// ParseAddress decodes a checksummed base32 address. For convenience, a
// 0x-prefixed hex string of 32 bytes is accepted as well.
func ParseAddress(s string) (Address, error) {
	var res Address
	if strings.HasPrefix(s, "0x") {
		decoded, err := hex.DecodeString(s[2:])
		if err != nil {
			return res, err
		}
		if len(decoded) != len(res) {
			return res, fmt.Errorf("invalid address length, wanted %d bytes, got %d", len(res), len(decoded))
		}
		copy(res[:], decoded)
		return res, nil
	}
	decoded, err := addressEncoding.DecodeString(s)
	if err != nil {
		return res, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(decoded) != len(res)+addressChecksumLength {
		return res, fmt.Errorf("invalid address %q: wrong length", s)
	}
	copy(res[:], decoded)
	checksum := sha512.Sum512_256(res[:])
	if !bytes.Equal(checksum[len(checksum)-addressChecksumLength:], decoded[len(res):]) {
		return res, fmt.Errorf("invalid address %q: checksum mismatch", s)
	}
	return res, nil
}

// Address returns the account controlled by the application.
func (id AppID) Address() Address {
	buffer := make([]byte, 0, len(appIDAddressPrefix)+8)
	buffer = append(buffer, appIDAddressPrefix...)
	buffer = binary.BigEndian.AppendUint64(buffer, uint64(id))
	return Address(sha512.Sum512_256(buffer))
}

func (s Selector) String() string {
	return fmt.Sprintf("0x%x", s[:])
}

func (d Data) String() string {
	return fmt.Sprintf("0x%x", []byte(d))
}

func (l Log) String() string {
	return fmt.Sprintf("0x%x", []byte(l))
}

// ----------------------------------------------------------------------------
// Values
// ----------------------------------------------------------------------------

// ValueType distinguishes the two kinds of values held in global and local
// state.
type ValueType uint8

const (
	UintType ValueType = iota + 1
	BytesType
)

func (t ValueType) String() string {
	switch t {
	case UintType:
		return "uint64"
	case BytesType:
		return "bytes"
	}
	return fmt.Sprintf("ValueType(%d)", t)
}

// Value is a typed entry of global or local state. The zero Value represents
// an absent entry.
type Value struct {
	Type  ValueType
	Uint  uint64
	Bytes []byte
}

// NewUint creates an integer state value.
func NewUint(v uint64) Value {
	return Value{Type: UintType, Uint: v}
}

// NewBytes creates a byte-string state value. The given slice is copied.
func NewBytes(b []byte) Value {
	return Value{Type: BytesType, Bytes: bytes.Clone(b)}
}

func (v Value) IsZero() bool {
	return v.Type == 0
}

func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case UintType:
		return v.Uint == other.Uint
	case BytesType:
		return bytes.Equal(v.Bytes, other.Bytes)
	}
	return true
}

func (v Value) Clone() Value {
	if v.Type == BytesType {
		return NewBytes(v.Bytes)
	}
	return v
}

// Size returns the number of bytes accounted for the value in state limits.
func (v Value) Size() int {
	if v.Type == BytesType {
		return len(v.Bytes)
	}
	return 0
}

func (v Value) String() string {
	switch v.Type {
	case UintType:
		return fmt.Sprintf("%d", v.Uint)
	case BytesType:
		return fmt.Sprintf("0x%x", v.Bytes)
	}
	return "<absent>"
}

// StateSchema limits the number of entries of each type in a key/value state.
type StateSchema struct {
	NumUint      uint64
	NumByteSlice uint64
}

// Allows checks whether the given number of entries fit into the schema.
func (s StateSchema) Allows(numUint, numByteSlice uint64) bool {
	return numUint <= s.NumUint && numByteSlice <= s.NumByteSlice
}

func (s StateSchema) String() string {
	return fmt.Sprintf("{uints: %d, byte slices: %d}", s.NumUint, s.NumByteSlice)
}

// Limits of the key/value stores accessible to applications.
const (
	MaxKeyLength         = 64
	MaxKeyValueLength    = 128
	MaxBoxNameLength     = 64
	MaxBoxSize           = 32768
	MaxLogCalls          = 32
	MaxLogSize           = 1024
	MaxInnerTransactions = 16
)

// ----------------------------------------------------------------------------
// Call types
// ----------------------------------------------------------------------------

// OnCompletion is the call type of an application call. It determines the
// action taken by the ledger after a successful invocation.
type OnCompletion uint8

const (
	NoOp OnCompletion = iota
	OptIn
	CloseOut
	ClearState
	UpdateApplication
	DeleteApplication
	numOnCompletions int = iota
)

func (oc OnCompletion) String() string {
	switch oc {
	case NoOp:
		return "NoOp"
	case OptIn:
		return "OptIn"
	case CloseOut:
		return "CloseOut"
	case ClearState:
		return "ClearState"
	case UpdateApplication:
		return "UpdateApplication"
	case DeleteApplication:
		return "DeleteApplication"
	}
	return fmt.Sprintf("OnCompletion(%d)", oc)
}

// GetAllOnCompletions lists all known call types.
func GetAllOnCompletions() []OnCompletion {
	res := make([]OnCompletion, 0, numOnCompletions)
	for i := 0; i < numOnCompletions; i++ {
		res = append(res, OnCompletion(i))
	}
	return res
}

func (oc OnCompletion) MarshalText() ([]byte, error) {
	if int(oc) >= numOnCompletions {
		return nil, fmt.Errorf("invalid on-completion: %d", oc)
	}
	return []byte(oc.String()), nil
}

func (oc *OnCompletion) UnmarshalText(data []byte) error {
	for _, cur := range GetAllOnCompletions() {
		if strings.EqualFold(cur.String(), string(data)) {
			*oc = cur
			return nil
		}
	}
	return fmt.Errorf("unknown on-completion: %s", data)
}
