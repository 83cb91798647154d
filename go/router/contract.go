// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package router implements ARC-4 method routing. A Router dispatches
// invocations to the handlers of a declared contract based on the method
// selector of the invocation or, for bare calls, on the call type. Routers
// implement the arco.Executor interface.
package router

import (
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/avm"
)

// CreatePolicy defines whether a handler may service application creations.
type CreatePolicy uint8

const (
	Never   CreatePolicy = iota // < the handler only serves existing applications
	Allow                       // < the handler serves creations and existing applications
	Require                     // < the handler only serves creations
)

func (p CreatePolicy) String() string {
	switch p {
	case Never:
		return "never"
	case Allow:
		return "allow"
	case Require:
		return "require"
	}
	return fmt.Sprintf("CreatePolicy(%d)", p)
}

func (p CreatePolicy) permits(create bool) bool {
	switch p {
	case Allow:
		return true
	case Require:
		return create
	}
	return !create
}

// Actions is a set of call types.
type Actions uint8

// ActionsOf creates the set of the given call types.
func ActionsOf(ocs ...arco.OnCompletion) Actions {
	var res Actions
	for _, oc := range ocs {
		res |= 1 << oc
	}
	return res
}

func (a Actions) Contains(oc arco.OnCompletion) bool {
	return oc < 8 && a&(1<<oc) != 0
}

// List enumerates the call types in the set.
func (a Actions) List() []arco.OnCompletion {
	var res []arco.OnCompletion
	for _, oc := range arco.GetAllOnCompletions() {
		if a.Contains(oc) {
			res = append(res, oc)
		}
	}
	return res
}

func (a Actions) String() string {
	names := []string{}
	for _, oc := range a.List() {
		names = append(names, oc.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Call is the input of a handler.
type Call struct {
	*avm.Machine
	Args []any    // the decoded ABI arguments, empty for bare calls
	Raw  [][]byte // the application arguments following the selector
}

// Handler implements the body of a method. The result is the return value of
// ABI methods and ignored for void methods and bare calls. Values of type
// Encoded are returned as they are; all other values are encoded according to
// the return type of the method.
type Handler func(*Call) (any, error)

// Encoded is an already ARC-4 encoded return value.
type Encoded []byte

// Method declares an ABI method of a contract.
type Method struct {
	Signature string
	ArgNames  []string // optional, used for descriptions
	Actions   Actions  // defaults to NoOp
	Create    CreatePolicy
	ReadOnly  bool
	Events    []string // signatures of emitted events, used for descriptions
	Handler   Handler
}

// Bare declares a handler of calls without application arguments.
type Bare struct {
	Name    string
	Actions Actions
	Create  CreatePolicy
	Handler Handler
}

// StateField declares an entry of the global or local state.
type StateField struct {
	Name string
	Type arco.ValueType
}

// BoxMap declares a family of boxes sharing a key and value type.
type BoxMap struct {
	Name      string
	KeyType   string
	ValueType string
	Prefix    []byte
}

// Contract is the declaration of an application: its state, its events, and
// the handlers of the supported calls.
type Contract struct {
	Name   string
	Global []StateField
	Local  []StateField
	Boxes  []BoxMap
	Events []string

	Methods []Method
	Bare    []Bare

	// ClearState is the program run on clear-state calls. It approves if
	// nil. Clear-state calls are never dispatched to other handlers.
	ClearState Handler
}

// GlobalSchema derives the global state schema from the declared fields.
func (c *Contract) GlobalSchema() arco.StateSchema {
	return schemaOf(c.Global)
}

// LocalSchema derives the local state schema from the declared fields.
func (c *Contract) LocalSchema() arco.StateSchema {
	return schemaOf(c.Local)
}

func schemaOf(fields []StateField) arco.StateSchema {
	var res arco.StateSchema
	for _, field := range fields {
		switch field.Type {
		case arco.UintType:
			res.NumUint++
		case arco.BytesType:
			res.NumByteSlice++
		}
	}
	return res
}
