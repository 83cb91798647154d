// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package abi

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/holiman/uint256"
)

const (
	boolTrue  = 0x80
	boolFalse = 0x00
)

// Encode serializes the given value according to the ARC-4 encoding of the
// given type. The following Go values are accepted:
//
//   - uintN: any Go integer type, *uint256.Int or uint256.Int
//   - byte: any Go integer type in range
//   - bool: bool
//   - address: arco.Address, [32]byte or a 32-byte slice
//   - string: string or []byte
//   - arrays and tuples: any slice or array of accepted values, e.g. []any
func Encode(t Type, value any) ([]byte, error) {
	return encode(t, value)
}

// Decode deserializes a value of the given type. The input must be consumed
// completely. Decoded values are represented as follows: uint64 for uintN
// with N <= 64, *uint256.Int for larger integers, byte, bool, arco.Address,
// string, []byte for arrays of bytes, and []any for all other arrays and
// tuples.
func Decode(t Type, data []byte) (any, error) {
	return decode(t, data)
}

func encode(t Type, value any) ([]byte, error) {
	switch t.Kind {
	case UintKind:
		v, err := toUint256(value)
		if err != nil {
			return nil, err
		}
		if v.BitLen() > t.Bits || v.BitLen() > 256 {
			return nil, fmt.Errorf("value %v exceeds %v", v, t)
		}
		word := v.Bytes32()
		size := t.Bits / 8
		if size <= len(word) {
			return word[len(word)-size:], nil
		}
		res := make([]byte, size)
		copy(res[size-len(word):], word[:])
		return res, nil
	case ByteKind:
		v, err := toUint256(value)
		if err != nil {
			return nil, err
		}
		if !v.IsUint64() || v.Uint64() > math.MaxUint8 {
			return nil, fmt.Errorf("value %v exceeds byte", v)
		}
		return []byte{byte(v.Uint64())}, nil
	case BoolKind:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", value)
		}
		if b {
			return []byte{boolTrue}, nil
		}
		return []byte{boolFalse}, nil
	case AddressKind:
		addr, err := toAddress(value)
		if err != nil {
			return nil, err
		}
		return addr[:], nil
	case StringKind:
		var content []byte
		switch v := value.(type) {
		case string:
			content = []byte(v)
		case []byte:
			content = v
		default:
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		if len(content) > math.MaxUint16 {
			return nil, fmt.Errorf("string of %d bytes exceeds maximum length", len(content))
		}
		res := binary.BigEndian.AppendUint16(make([]byte, 0, lengthSize+len(content)), uint16(len(content)))
		return append(res, content...), nil
	case StaticArrayKind:
		elems, err := elements(value)
		if err != nil {
			return nil, err
		}
		if len(elems) != t.Length {
			return nil, fmt.Errorf("expected %d elements for %v, got %d", t.Length, t, len(elems))
		}
		return encodeTuple(repeat(*t.Elem, t.Length), elems)
	case DynamicArrayKind:
		elems, err := elements(value)
		if err != nil {
			return nil, err
		}
		if len(elems) > math.MaxUint16 {
			return nil, fmt.Errorf("array of %d elements exceeds maximum length", len(elems))
		}
		body, err := encodeTuple(repeat(*t.Elem, len(elems)), elems)
		if err != nil {
			return nil, err
		}
		res := binary.BigEndian.AppendUint16(make([]byte, 0, lengthSize+len(body)), uint16(len(elems)))
		return append(res, body...), nil
	case TupleKind:
		elems, err := elements(value)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(t.Fields) {
			return nil, fmt.Errorf("expected %d fields for %v, got %d", len(t.Fields), t, len(elems))
		}
		return encodeTuple(t.Fields, elems)
	}
	return nil, fmt.Errorf("unsupported type %v", t)
}

// encodeTuple produces the head/tail layout of a tuple. Static components
// are stored in the head, dynamic components in the tail referenced by a
// 2-byte offset relative to the start of the tuple.
func encodeTuple(types []Type, values []any) ([]byte, error) {
	type part struct {
		head    []byte
		tail    []byte
		dynamic bool
	}
	parts := make([]part, 0, len(types))
	for i := 0; i < len(types); {
		if types[i].Kind == BoolKind {
			n := boolRunLength(types[i:])
			packed := byte(0)
			for j := 0; j < n; j++ {
				b, ok := values[i+j].(bool)
				if !ok {
					return nil, fmt.Errorf("expected bool, got %T", values[i+j])
				}
				if b {
					packed |= 0x80 >> j
				}
			}
			parts = append(parts, part{head: []byte{packed}})
			i += n
			continue
		}
		encoded, err := encode(types[i], values[i])
		if err != nil {
			return nil, err
		}
		if types[i].IsDynamic() {
			parts = append(parts, part{head: make([]byte, lengthSize), tail: encoded, dynamic: true})
		} else {
			parts = append(parts, part{head: encoded})
		}
		i++
	}

	headSize := 0
	for _, p := range parts {
		headSize += len(p.head)
	}
	offset := headSize
	res := make([]byte, 0, headSize)
	for _, p := range parts {
		if p.dynamic {
			if offset > math.MaxUint16 {
				return nil, fmt.Errorf("tuple encoding exceeds maximum offset")
			}
			binary.BigEndian.PutUint16(p.head, uint16(offset))
			offset += len(p.tail)
		}
		res = append(res, p.head...)
	}
	for _, p := range parts {
		res = append(res, p.tail...)
	}
	return res, nil
}

func decode(t Type, data []byte) (any, error) {
	if !t.IsDynamic() && len(data) != t.StaticSize() {
		return nil, fmt.Errorf("invalid encoding of %v: expected %d bytes, got %d", t, t.StaticSize(), len(data))
	}
	switch t.Kind {
	case UintKind:
		if t.Bits <= 64 {
			var word [8]byte
			copy(word[8-len(data):], data)
			return binary.BigEndian.Uint64(word[:]), nil
		}
		if len(data) > 32 {
			for _, b := range data[:len(data)-32] {
				if b != 0 {
					return nil, fmt.Errorf("value of %v exceeds 256 bits", t)
				}
			}
			data = data[len(data)-32:]
		}
		return new(uint256.Int).SetBytes(data), nil
	case ByteKind:
		return data[0], nil
	case BoolKind:
		switch data[0] {
		case boolTrue:
			return true, nil
		case boolFalse:
			return false, nil
		}
		return nil, fmt.Errorf("invalid bool encoding 0x%02x", data[0])
	case AddressKind:
		return arco.Address(data), nil
	case StringKind:
		if len(data) < lengthSize {
			return nil, fmt.Errorf("missing string length")
		}
		length := int(binary.BigEndian.Uint16(data))
		if len(data) != lengthSize+length {
			return nil, fmt.Errorf("invalid string encoding: length %d, got %d bytes", length, len(data)-lengthSize)
		}
		return string(data[lengthSize:]), nil
	case StaticArrayKind:
		return decodeArray(*t.Elem, t.Length, data)
	case DynamicArrayKind:
		if len(data) < lengthSize {
			return nil, fmt.Errorf("missing array length")
		}
		length := int(binary.BigEndian.Uint16(data))
		return decodeArray(*t.Elem, length, data[lengthSize:])
	case TupleKind:
		return decodeTuple(t.Fields, data)
	}
	return nil, fmt.Errorf("unsupported type %v", t)
}

func decodeArray(elem Type, length int, data []byte) (any, error) {
	values, err := decodeTuple(repeat(elem, length), data)
	if err != nil {
		return nil, err
	}
	if elem.Kind != ByteKind {
		return values, nil
	}
	res := make([]byte, len(values))
	for i, v := range values {
		res[i] = v.(byte)
	}
	return res, nil
}

func decodeTuple(types []Type, data []byte) ([]any, error) {
	type field struct {
		index  int
		offset int
	}
	res := make([]any, len(types))
	dynamic := make([]field, 0, len(types))

	pos := 0
	for i := 0; i < len(types); {
		if types[i].Kind == BoolKind {
			n := boolRunLength(types[i:])
			if pos >= len(data) {
				return nil, fmt.Errorf("tuple encoding too short")
			}
			packed := data[pos]
			if packed&(0xff>>n) != 0 {
				return nil, fmt.Errorf("invalid bool encoding 0x%02x", packed)
			}
			for j := 0; j < n; j++ {
				res[i+j] = packed&(0x80>>j) != 0
			}
			pos++
			i += n
			continue
		}
		if types[i].IsDynamic() {
			if pos+lengthSize > len(data) {
				return nil, fmt.Errorf("tuple encoding too short")
			}
			offset := int(binary.BigEndian.Uint16(data[pos:]))
			dynamic = append(dynamic, field{index: i, offset: offset})
			pos += lengthSize
			i++
			continue
		}
		size := types[i].StaticSize()
		if pos+size > len(data) {
			return nil, fmt.Errorf("tuple encoding too short")
		}
		value, err := decode(types[i], data[pos:pos+size])
		if err != nil {
			return nil, err
		}
		res[i] = value
		pos += size
		i++
	}

	if len(dynamic) == 0 {
		if pos != len(data) {
			return nil, fmt.Errorf("%d trailing bytes in tuple encoding", len(data)-pos)
		}
		return res, nil
	}
	for k, cur := range dynamic {
		end := len(data)
		if k+1 < len(dynamic) {
			end = dynamic[k+1].offset
		}
		if (k == 0 && cur.offset != pos) || cur.offset > end || end > len(data) {
			return nil, fmt.Errorf("invalid offset %d in tuple encoding", cur.offset)
		}
		value, err := decode(types[cur.index], data[cur.offset:end])
		if err != nil {
			return nil, err
		}
		res[cur.index] = value
	}
	return res, nil
}

func toUint256(value any) (*uint256.Int, error) {
	switch v := value.(type) {
	case *uint256.Int:
		if v == nil {
			return nil, fmt.Errorf("nil integer")
		}
		return v, nil
	case uint256.Int:
		return &v, nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint256.NewInt(rv.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return nil, fmt.Errorf("negative value %d", rv.Int())
		}
		return uint256.NewInt(uint64(rv.Int())), nil
	}
	return nil, fmt.Errorf("expected integer, got %T", value)
}

func toAddress(value any) (arco.Address, error) {
	var res arco.Address
	switch v := value.(type) {
	case arco.Address:
		return v, nil
	case [32]byte:
		return arco.Address(v), nil
	case []byte:
		if len(v) != len(res) {
			return res, fmt.Errorf("invalid address length %d", len(v))
		}
		copy(res[:], v)
		return res, nil
	}
	return res, fmt.Errorf("expected address, got %T", value)
}

func elements(value any) ([]any, error) {
	if values, ok := value.([]any); ok {
		return values, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected sequence, got %T", value)
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, nil
}
