// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package expr implements the TestingApp contract by expression trees
// evaluated by the expr package. It is an independent implementation of the
// contract verified against the native one.
package expr

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
	"github.com/Fantom-foundation/Arco/go/router"

	. "github.com/Fantom-foundation/Arco/go/expr"
)

func init() {
	err := arco.RegisterExecutorFactory("expr", func(any) (arco.Executor, error) {
		return NewExecutor(), nil
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register expr executor: %v", err))
	}
}

// NewExecutor creates an executor running the TestingApp contract.
func NewExecutor() *router.Router {
	return testingapp.NewRouter(handlers{})
}

var program = newProgram()

func newProgram() *Program {
	res := NewProgram()
	digit := Extract(Str("0123456789"), Mod(Param(0), Int(10)), Int(1))
	res.Define("itoa", 1, If(
		Gt(Div(Param(0), Int(10)), Int(0)),
		Concat(Call("itoa", Div(Param(0), Int(10))), digit),
		digit,
	))
	return res
}

var (
	onlyCreator = Assert(Eq(Sender(), Creator()), testingapp.Unauthorized)

	callABI = Concat(Str("Hello, "), ArgString(0))

	callABIForeignRefs = Concat(
		Str("App: "), Call("itoa", Application(1)),
		Str(", Asset: "), Call("itoa", Asset(0)),
		Str(", Account: "), Call("itoa", GetByte(Account(0), Int(0))),
		Str(":"), Call("itoa", GetByte(Account(0), Int(1))),
	)

	setGlobal = Seq(
		GlobalPut(testingapp.GlobalInt1, ArgUint(0)),
		GlobalPut(testingapp.GlobalInt2, ArgUint(1)),
		GlobalPut(testingapp.GlobalBytes1, ArgString(2)),
		GlobalPut(testingapp.GlobalBytes2, Arg(3)),
	)

	setLocal = Seq(
		LocalPut(Sender(), testingapp.LocalInt1, ArgUint(0)),
		LocalPut(Sender(), testingapp.LocalInt2, ArgUint(1)),
		LocalPut(Sender(), testingapp.LocalBytes1, ArgString(2)),
		LocalPut(Sender(), testingapp.LocalBytes2, Arg(3)),
	)

	issueTransferToSender = Pay(Sender(), ArgUint(0), Int(0))

	setBox = Seq(
		BoxDel(Arg(0)),
		BoxPut(Arg(0), Arg(1)),
	)

	emitSwapped = Emit(testingapp.Swapped, Arg(0), Arg(1))

	emitSwappedTwice = Seq(
		Emit(testingapp.Swapped, Arg(0), Arg(1)),
		Emit(testingapp.Swapped, Arg(1), Arg(0)),
	)

	// The head of Complex consists of the offset of the array followed by
	// the integer, 10 bytes in total.
	emitComplex = Seq(
		Emit(testingapp.Swapped, Arg(0), Arg(1)),
		Emit(testingapp.Complex, Bytes([]byte{0, 10}), Arg(1), Arg(2)),
	)
)

// run evaluates the body of a handler. The resulting value is returned to
// the router for encoding.
func run(c *router.Call, body Expr) (any, error) {
	value, err := NewEnv(c.Machine, program).Eval(body)
	if err != nil {
		return nil, err
	}
	switch value.Type {
	case arco.UintType:
		return value.Uint, nil
	case arco.BytesType:
		return value.Bytes, nil
	}
	return nil, nil
}

type handlers struct{}

func (handlers) Create(c *router.Call) (any, error) {
	return run(c, Approve())
}

func (handlers) Update(c *router.Call) (any, error) {
	return run(c, onlyCreator)
}

func (handlers) Delete(c *router.Call) (any, error) {
	return run(c, onlyCreator)
}

func (handlers) OptIn(c *router.Call) (any, error) {
	return run(c, Approve())
}

func (handlers) CallABI(c *router.Call) (any, error) {
	return run(c, callABI)
}

func (handlers) CallABIForeignRefs(c *router.Call) (any, error) {
	return run(c, callABIForeignRefs)
}

func (handlers) SetGlobal(c *router.Call) (any, error) {
	return run(c, setGlobal)
}

func (handlers) SetLocal(c *router.Call) (any, error) {
	return run(c, setLocal)
}

func (handlers) IssueTransferToSender(c *router.Call) (any, error) {
	return run(c, issueTransferToSender)
}

func (handlers) SetBox(c *router.Call) (any, error) {
	return run(c, setBox)
}

func (handlers) Error(c *router.Call) (any, error) {
	return run(c, Fail(testingapp.DeliberateError))
}

func (handlers) EmitSwapped(c *router.Call) (any, error) {
	return run(c, emitSwapped)
}

func (handlers) EmitSwappedTwice(c *router.Call) (any, error) {
	return run(c, emitSwappedTwice)
}

func (handlers) EmitComplex(c *router.Call) (any, error) {
	return run(c, emitComplex)
}
