// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package abi implements the ARC-4 application binary interface: the type
// system, the encoding of values, and the signatures and selectors of methods
// and events.
package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the categories of ABI types.
type Kind int

const (
	UintKind Kind = iota
	ByteKind
	BoolKind
	AddressKind
	StringKind
	StaticArrayKind
	DynamicArrayKind
	TupleKind
)

const (
	minUintBits = 8
	maxUintBits = 512
	addressSize = 32
	lengthSize  = 2
)

// Type describes an ABI type. Types are values and compare structurally
// through their canonical String representation.
type Type struct {
	Kind   Kind
	Bits   int    // number of bits of uintN types
	Length int    // number of elements of static arrays
	Elem   *Type  // element type of arrays
	Fields []Type // component types of tuples
}

// Frequently used types.
var (
	Uint64  = Type{Kind: UintKind, Bits: 64}
	Uint32  = Type{Kind: UintKind, Bits: 32}
	Byte    = Type{Kind: ByteKind}
	Bool    = Type{Kind: BoolKind}
	Address = Type{Kind: AddressKind}
	String  = Type{Kind: StringKind}
)

// Uint creates a uintN type.
func Uint(bits int) Type {
	return Type{Kind: UintKind, Bits: bits}
}

// StaticArray creates a T[N] type.
func StaticArray(elem Type, length int) Type {
	return Type{Kind: StaticArrayKind, Elem: &elem, Length: length}
}

// DynamicArray creates a T[] type.
func DynamicArray(elem Type) Type {
	return Type{Kind: DynamicArrayKind, Elem: &elem}
}

// Tuple creates a (T1,...,Tn) type.
func Tuple(fields ...Type) Type {
	return Type{Kind: TupleKind, Fields: fields}
}

// ParseType parses the canonical string representation of an ABI type.
func ParseType(s string) (Type, error) {
	if strings.HasSuffix(s, "]") {
		open := strings.LastIndex(s, "[")
		if open <= 0 {
			return Type{}, fmt.Errorf("invalid array type %q", s)
		}
		elem, err := ParseType(s[:open])
		if err != nil {
			return Type{}, err
		}
		length := s[open+1 : len(s)-1]
		if length == "" {
			return DynamicArray(elem), nil
		}
		n, err := parseDecimal(length)
		if err != nil {
			return Type{}, fmt.Errorf("invalid array length in %q: %w", s, err)
		}
		return StaticArray(elem, n), nil
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		parts, err := splitTopLevel(s[1 : len(s)-1])
		if err != nil {
			return Type{}, fmt.Errorf("invalid tuple %q: %w", s, err)
		}
		fields := make([]Type, 0, len(parts))
		for _, part := range parts {
			field, err := ParseType(part)
			if err != nil {
				return Type{}, err
			}
			fields = append(fields, field)
		}
		return Tuple(fields...), nil
	}
	switch s {
	case "byte":
		return Byte, nil
	case "bool":
		return Bool, nil
	case "address":
		return Address, nil
	case "string":
		return String, nil
	}
	if bits, found := strings.CutPrefix(s, "uint"); found {
		n, err := parseDecimal(bits)
		if err != nil {
			return Type{}, fmt.Errorf("invalid integer type %q: %w", s, err)
		}
		if n < minUintBits || n > maxUintBits || n%8 != 0 {
			return Type{}, fmt.Errorf("unsupported integer size in %q", s)
		}
		return Uint(n), nil
	}
	return Type{}, fmt.Errorf("unknown type %q", s)
}

// MustParseType is a variant of ParseType panicking on invalid input. It is
// intended for static type declarations.
func MustParseType(s string) Type {
	res, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return res
}

func (t Type) String() string {
	switch t.Kind {
	case UintKind:
		return "uint" + strconv.Itoa(t.Bits)
	case ByteKind:
		return "byte"
	case BoolKind:
		return "bool"
	case AddressKind:
		return "address"
	case StringKind:
		return "string"
	case StaticArrayKind:
		return t.Elem.String() + "[" + strconv.Itoa(t.Length) + "]"
	case DynamicArrayKind:
		return t.Elem.String() + "[]"
	case TupleKind:
		parts := make([]string, 0, len(t.Fields))
		for _, field := range t.Fields {
			parts = append(parts, field.String())
		}
		return "(" + strings.Join(parts, ",") + ")"
	}
	return fmt.Sprintf("Kind(%d)", t.Kind)
}

func (t Type) Equal(other Type) bool {
	return t.String() == other.String()
}

// IsDynamic returns true if the length of the encoding of values of this type
// depends on the value.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case StringKind, DynamicArrayKind:
		return true
	case StaticArrayKind:
		return t.Elem.IsDynamic()
	case TupleKind:
		for _, field := range t.Fields {
			if field.IsDynamic() {
				return true
			}
		}
	}
	return false
}

// StaticSize returns the length of the encoding of values of a static type.
// The result is undefined for dynamic types.
func (t Type) StaticSize() int {
	switch t.Kind {
	case UintKind:
		return t.Bits / 8
	case ByteKind, BoolKind:
		return 1
	case AddressKind:
		return addressSize
	case StaticArrayKind:
		if t.Elem.Kind == BoolKind {
			return (t.Length + 7) / 8
		}
		return t.Length * t.Elem.StaticSize()
	case TupleKind:
		return tupleStaticSize(t.Fields)
	}
	return 0
}

func tupleStaticSize(types []Type) int {
	size := 0
	for i := 0; i < len(types); {
		if types[i].Kind == BoolKind {
			i += boolRunLength(types[i:])
			size++
			continue
		}
		size += types[i].StaticSize()
		i++
	}
	return size
}

// boolRunLength returns the number of leading bool types packed into a
// single byte, at most 8.
func boolRunLength(types []Type) int {
	n := 0
	for n < len(types) && n < 8 && types[n].Kind == BoolKind {
		n++
	}
	return n
}

func repeat(t Type, n int) []Type {
	res := make([]Type, n)
	for i := range res {
		res[i] = t
	}
	return res
}

// splitTopLevel splits a comma separated list ignoring commas nested in
// parentheses. An empty input yields an empty list.
func splitTopLevel(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	parts = append(parts, s[start:])
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty component")
		}
	}
	return parts, nil
}

func parseDecimal(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("not a canonical number: %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a canonical number: %q", s)
		}
	}
	return strconv.Atoi(s)
}
