// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package testingapp declares the interface of the TestingApp contract: its
// state, its methods, and its events. The behavior of the contract is
// provided by independent implementations of the Handlers interface.
package testingapp

import (
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/router"
)

const Name = "TestingApp"

// Method signatures.
const (
	OptIn                 = "opt_in()void"
	CallABI               = "call_abi(string)string"
	CallABIForeignRefs    = "call_abi_foreign_refs()string"
	SetGlobal             = "set_global(uint64,uint64,string,byte[4])void"
	SetLocal              = "set_local(uint64,uint64,string,byte[4])void"
	IssueTransferToSender = "issue_transfer_to_sender(uint64)void"
	SetBox                = "set_box(byte[4],string)void"
	Error                 = "error()void"
	EmitSwapped           = "emitSwapped(uint64,uint64)void"
	EmitSwappedTwice      = "emitSwappedTwice(uint64,uint64)void"
	EmitComplex           = "emitComplex(uint64,uint64,uint32[])void"
)

// Event signatures.
const (
	Swapped = "Swapped(uint64,uint64)"
	Complex = "Complex(uint32[],uint64)"
)

// Keys of the global state.
const (
	GlobalValue  = "value"
	GlobalBytes1 = "bytes1"
	GlobalBytes2 = "bytes2"
	GlobalInt1   = "int1"
	GlobalInt2   = "int2"
)

// Keys of the local state.
const (
	LocalBytes1 = "local_bytes1"
	LocalBytes2 = "local_bytes2"
	LocalInt1   = "local_int1"
	LocalInt2   = "local_int2"
)

// Diagnostic messages of rejections.
const (
	Unauthorized    = "unauthorized"
	DeliberateError = "Deliberate error"
)

// BoxNameSize is the size of the names of the boxes of the contract.
const BoxNameSize = 4

// Handlers is implemented by each flavor of the contract.
type Handlers interface {
	Create(*router.Call) (any, error)
	Update(*router.Call) (any, error)
	Delete(*router.Call) (any, error)
	OptIn(*router.Call) (any, error)
	CallABI(*router.Call) (any, error)
	CallABIForeignRefs(*router.Call) (any, error)
	SetGlobal(*router.Call) (any, error)
	SetLocal(*router.Call) (any, error)
	IssueTransferToSender(*router.Call) (any, error)
	SetBox(*router.Call) (any, error)
	Error(*router.Call) (any, error)
	EmitSwapped(*router.Call) (any, error)
	EmitSwappedTwice(*router.Call) (any, error)
	EmitComplex(*router.Call) (any, error)
}

// Declare combines the interface of the contract with the given handlers.
func Declare(h Handlers) router.Contract {
	return router.Contract{
		Name: Name,
		Global: []router.StateField{
			{Name: GlobalValue, Type: arco.UintType},
			{Name: GlobalBytes1, Type: arco.BytesType},
			{Name: GlobalBytes2, Type: arco.BytesType},
			{Name: GlobalInt1, Type: arco.UintType},
			{Name: GlobalInt2, Type: arco.UintType},
		},
		Local: []router.StateField{
			{Name: LocalBytes1, Type: arco.BytesType},
			{Name: LocalBytes2, Type: arco.BytesType},
			{Name: LocalInt1, Type: arco.UintType},
			{Name: LocalInt2, Type: arco.UintType},
		},
		Boxes: []router.BoxMap{
			{Name: "box", KeyType: "byte[4]", ValueType: "string"},
		},
		Events: []string{Swapped, Complex},
		Bare: []router.Bare{
			{
				Name:    "create",
				Actions: router.ActionsOf(arco.NoOp, arco.OptIn),
				Create:  router.Require,
				Handler: h.Create,
			},
			{
				Name:    "update",
				Actions: router.ActionsOf(arco.UpdateApplication),
				Handler: h.Update,
			},
			{
				Name:    "delete",
				Actions: router.ActionsOf(arco.DeleteApplication),
				Handler: h.Delete,
			},
		},
		Methods: []router.Method{
			{Signature: OptIn, Actions: router.ActionsOf(arco.OptIn), Handler: h.OptIn},
			{Signature: CallABI, ArgNames: []string{"value"}, ReadOnly: true, Handler: h.CallABI},
			{Signature: CallABIForeignRefs, ReadOnly: true, Handler: h.CallABIForeignRefs},
			{Signature: SetGlobal, ArgNames: []string{"int1", "int2", "bytes1", "bytes2"}, Handler: h.SetGlobal},
			{Signature: SetLocal, ArgNames: []string{"int1", "int2", "bytes1", "bytes2"}, Handler: h.SetLocal},
			{Signature: IssueTransferToSender, ArgNames: []string{"amount"}, Handler: h.IssueTransferToSender},
			{Signature: SetBox, ArgNames: []string{"name", "value"}, Handler: h.SetBox},
			{Signature: Error, ReadOnly: true, Handler: h.Error},
			{Signature: EmitSwapped, ArgNames: []string{"a", "b"}, Events: []string{Swapped}, Handler: h.EmitSwapped},
			{Signature: EmitSwappedTwice, ArgNames: []string{"a", "b"}, Events: []string{Swapped}, Handler: h.EmitSwappedTwice},
			{Signature: EmitComplex, ArgNames: []string{"a", "b", "array"}, Events: []string{Swapped, Complex}, Handler: h.EmitComplex},
		},
	}
}

// NewRouter builds the dispatch table of the contract for the given handlers.
func NewRouter(h Handlers) *router.Router {
	return router.MustNew(Declare(h))
}

// GlobalSchema is the global state schema of the contract.
func GlobalSchema() arco.StateSchema {
	return arco.StateSchema{NumUint: 3, NumByteSlice: 2}
}

// LocalSchema is the local state schema of the contract.
func LocalSchema() arco.StateSchema {
	return arco.StateSchema{NumUint: 2, NumByteSlice: 2}
}
