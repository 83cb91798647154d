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
	"bytes"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Arco/go/arco"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ReturnPrefix is the log prefix marking the return value of an ABI method.
var ReturnPrefix = []byte{0x15, 0x1f, 0x7c, 0x75}

// MaxAppArgs is the maximum number of application arguments of a call. The
// selector occupies the first argument; methods with more parameters pass
// the surplus as a single tuple in the last argument.
const MaxAppArgs = 16

const signatureCacheSize = 1024

var methodCache = mustNewCache[*Method]()

func mustNewCache[V any]() *lru.Cache[string, V] {
	cache, err := lru.New[string, V](signatureCacheSize)
	if err != nil {
		panic(err) // can only fail for non-positive size
	}
	return cache
}

// Method describes an ARC-4 method. Methods are immutable once parsed.
type Method struct {
	Name    string
	Args    []Type
	Returns *Type // nil for void methods
}

// ParseMethod parses a method signature of the form name(arg,...)ret where
// ret is either a type or void. Parsed signatures are cached.
func ParseMethod(signature string) (*Method, error) {
	if method, found := methodCache.Get(signature); found {
		return method, nil
	}
	name, args, rest, err := splitSignature(signature)
	if err != nil {
		return nil, err
	}
	method := &Method{Name: name, Args: args}
	switch rest {
	case "":
		return nil, fmt.Errorf("missing return type in %q", signature)
	case "void":
	default:
		returns, err := ParseType(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid return type in %q: %w", signature, err)
		}
		method.Returns = &returns
	}
	methodCache.Add(signature, method)
	return method, nil
}

// MustParseMethod is a variant of ParseMethod panicking on invalid input.
func MustParseMethod(signature string) *Method {
	res, err := ParseMethod(signature)
	if err != nil {
		panic(err)
	}
	return res
}

// Signature produces the canonical signature of the method.
func (m *Method) Signature() string {
	ret := "void"
	if m.Returns != nil {
		ret = m.Returns.String()
	}
	return m.Name + joinTypes(m.Args) + ret
}

func (m *Method) String() string {
	return m.Signature()
}

// Selector is the first 4 bytes of the SHA-512/256 hash of the signature.
func (m *Method) Selector() arco.Selector {
	return SelectorOf(m.Signature())
}

// SelectorOf computes the selector of an arbitrary signature string.
func SelectorOf(signature string) arco.Selector {
	hash := sha512.Sum512_256([]byte(signature))
	return arco.Selector(hash[:4])
}

// transportTypes lists the types of the application arguments following the
// selector.
func (m *Method) transportTypes() []Type {
	if len(m.Args) < MaxAppArgs {
		return m.Args
	}
	res := make([]Type, 0, MaxAppArgs-1)
	res = append(res, m.Args[:MaxAppArgs-2]...)
	return append(res, Tuple(m.Args[MaxAppArgs-2:]...))
}

// EncodeCall produces the application arguments invoking this method with
// the given argument values.
func (m *Method) EncodeCall(values ...any) ([][]byte, error) {
	if len(values) != len(m.Args) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", m.Name, len(m.Args), len(values))
	}
	if len(m.Args) >= MaxAppArgs {
		packed := make([]any, 0, MaxAppArgs-1)
		packed = append(packed, values[:MaxAppArgs-2]...)
		values = append(packed, values[MaxAppArgs-2:])
	}
	selector := m.Selector()
	res := make([][]byte, 0, len(values)+1)
	res = append(res, selector[:])
	for i, t := range m.transportTypes() {
		encoded, err := Encode(t, values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s: %w", i, m.Name, err)
		}
		res = append(res, encoded)
	}
	return res, nil
}

// DecodeCall decodes the arguments of a call of this method. The first
// application argument must be the method's selector.
func (m *Method) DecodeCall(appArgs [][]byte) ([]any, error) {
	selector := m.Selector()
	if len(appArgs) == 0 || !bytes.Equal(appArgs[0], selector[:]) {
		return nil, fmt.Errorf("missing selector of %s", m.Signature())
	}
	types := m.transportTypes()
	if len(appArgs)-1 != len(types) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", m.Name, len(types), len(appArgs)-1)
	}
	res := make([]any, 0, len(m.Args))
	for i, t := range types {
		value, err := Decode(t, appArgs[i+1])
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s: %w", i, m.Name, err)
		}
		if len(m.Args) >= MaxAppArgs && i == len(types)-1 {
			res = append(res, value.([]any)...)
		} else {
			res = append(res, value)
		}
	}
	return res, nil
}

// EncodeReturn produces the log entry reporting the given return value.
func (m *Method) EncodeReturn(value any) ([]byte, error) {
	if m.Returns == nil {
		return nil, fmt.Errorf("%s does not return a value", m.Name)
	}
	encoded, err := Encode(*m.Returns, value)
	if err != nil {
		return nil, err
	}
	return append(bytes.Clone(ReturnPrefix), encoded...), nil
}

// DecodeReturn extracts the return value from a log entry produced by
// EncodeReturn.
func (m *Method) DecodeReturn(log []byte) (any, error) {
	if m.Returns == nil {
		return nil, fmt.Errorf("%s does not return a value", m.Name)
	}
	encoded, found := bytes.CutPrefix(log, ReturnPrefix)
	if !found {
		return nil, fmt.Errorf("missing return prefix")
	}
	return Decode(*m.Returns, encoded)
}

func splitSignature(signature string) (name string, args []Type, rest string, err error) {
	open := strings.IndexByte(signature, '(')
	if open <= 0 {
		return "", nil, "", fmt.Errorf("invalid signature %q", signature)
	}
	depth, end := 0, -1
	for i := open; i < len(signature) && end < 0; i++ {
		switch signature[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
	}
	if end < 0 {
		return "", nil, "", fmt.Errorf("unbalanced parentheses in %q", signature)
	}
	parsed, err := ParseType(signature[open : end+1])
	if err != nil {
		return "", nil, "", fmt.Errorf("invalid arguments in %q: %w", signature, err)
	}
	return signature[:open], parsed.Fields, signature[end+1:], nil
}

func joinTypes(types []Type) string {
	return Tuple(types...).String()
}
