// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package expr provides a small expression language for writing contract
// programs as trees of operations. Expressions are evaluated on an avm
// Machine; each operation is metered by the primitive of the Machine it maps
// to. Values are the two types of the AVM stack: uint64 and byte strings.
package expr

import (
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/avm"
)

// MaxCallDepth limits the nesting of subroutine calls.
const MaxCallDepth = 64

// Expr is a node of an expression tree.
type Expr interface {
	// Eval evaluates the expression in the given environment. Expressions
	// without a result produce the zero Value. Errors of type
	// *arco.Rejection reject the invocation.
	Eval(*Env) (arco.Value, error)
	String() string
}

// Subroutine is a named expression with positional parameters.
type Subroutine struct {
	Params int
	Body   Expr
}

// Program is a set of subroutines shared by the expressions evaluated in it.
type Program struct {
	subroutines map[string]Subroutine
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{subroutines: map[string]Subroutine{}}
}

// Define adds a subroutine to the program. Subroutines may call themselves
// and each other.
func (p *Program) Define(name string, params int, body Expr) {
	p.subroutines[name] = Subroutine{Params: params, Body: body}
}

// Env is the environment in which an expression is evaluated.
type Env struct {
	machine *avm.Machine
	program *Program
	frames  [][]arco.Value
}

// NewEnv creates an environment evaluating expressions of the given program
// on the machine.
func NewEnv(machine *avm.Machine, program *Program) *Env {
	if program == nil {
		program = NewProgram()
	}
	return &Env{machine: machine, program: program}
}

// Machine returns the machine the environment is evaluating expressions on.
func (e *Env) Machine() *avm.Machine {
	return e.machine
}

// Eval evaluates the given expression.
func (e *Env) Eval(expr Expr) (arco.Value, error) {
	return expr.Eval(e)
}

// ----------------------------------------------------------------------------
// Constants
// ----------------------------------------------------------------------------

type intConst uint64

// Int is an integer constant.
func Int(v uint64) Expr {
	return intConst(v)
}

func (c intConst) Eval(e *Env) (arco.Value, error) {
	if err := e.machine.Charge(avm.CostDefault); err != nil {
		return arco.Value{}, err
	}
	return arco.NewUint(uint64(c)), nil
}

func (c intConst) String() string {
	return fmt.Sprintf("%d", uint64(c))
}

type bytesConst string

// Bytes is a byte string constant.
func Bytes(v []byte) Expr {
	return bytesConst(v)
}

// Str is a byte string constant given as text.
func Str(v string) Expr {
	return bytesConst(v)
}

func (c bytesConst) Eval(e *Env) (arco.Value, error) {
	if err := e.machine.Charge(avm.CostDefault); err != nil {
		return arco.Value{}, err
	}
	return arco.NewBytes([]byte(c)), nil
}

func (c bytesConst) String() string {
	return fmt.Sprintf("0x%x", string(c))
}

// ----------------------------------------------------------------------------
// Control flow
// ----------------------------------------------------------------------------

type seq []Expr

// Seq evaluates the given expressions in order. The result is the result of
// the last expression.
func Seq(exprs ...Expr) Expr {
	return seq(exprs)
}

func (s seq) Eval(e *Env) (arco.Value, error) {
	var res arco.Value
	for _, expr := range s {
		var err error
		if res, err = expr.Eval(e); err != nil {
			return arco.Value{}, err
		}
	}
	return res, nil
}

func (s seq) String() string {
	return format("Seq", s)
}

type ifExpr struct {
	cond, then, otherwise Expr
}

// If evaluates then if the condition is a non-zero integer and otherwise
// if not. The otherwise branch may be nil.
func If(cond, then, otherwise Expr) Expr {
	return ifExpr{cond: cond, then: then, otherwise: otherwise}
}

func (i ifExpr) Eval(e *Env) (arco.Value, error) {
	cond, err := i.cond.Eval(e)
	if err != nil {
		return arco.Value{}, err
	}
	c, err := asUint("if", cond)
	if err != nil {
		return arco.Value{}, err
	}
	if err := e.machine.Charge(avm.CostDefault); err != nil {
		return arco.Value{}, err
	}
	if c != 0 {
		return i.then.Eval(e)
	}
	if i.otherwise == nil {
		return arco.Value{}, nil
	}
	return i.otherwise.Eval(e)
}

func (i ifExpr) String() string {
	if i.otherwise == nil {
		return format("If", []Expr{i.cond, i.then})
	}
	return format("If", []Expr{i.cond, i.then, i.otherwise})
}

type call struct {
	name string
	args []Expr
}

// Call invokes a subroutine of the program.
func Call(name string, args ...Expr) Expr {
	return call{name: name, args: args}
}

func (c call) Eval(e *Env) (arco.Value, error) {
	sub, found := e.program.subroutines[c.name]
	if !found {
		return arco.Value{}, fmt.Errorf("unknown subroutine %q", c.name)
	}
	if sub.Params != len(c.args) {
		return arco.Value{}, fmt.Errorf("subroutine %q expects %d arguments, got %d", c.name, sub.Params, len(c.args))
	}
	frame := make([]arco.Value, 0, len(c.args))
	for _, arg := range c.args {
		value, err := arg.Eval(e)
		if err != nil {
			return arco.Value{}, err
		}
		frame = append(frame, value)
	}
	if err := e.machine.Charge(avm.CostCall); err != nil {
		return arco.Value{}, err
	}
	if len(e.frames) >= MaxCallDepth {
		return arco.Value{}, arco.Reject("call stack too deep")
	}
	e.frames = append(e.frames, frame)
	defer func() { e.frames = e.frames[:len(e.frames)-1] }()
	return sub.Body.Eval(e)
}

func (c call) String() string {
	return format(c.name, c.args)
}

type param int

// Param refers to a parameter of the enclosing subroutine.
func Param(i int) Expr {
	return param(i)
}

func (p param) Eval(e *Env) (arco.Value, error) {
	if len(e.frames) == 0 {
		return arco.Value{}, fmt.Errorf("parameter %d referenced outside of a subroutine", int(p))
	}
	frame := e.frames[len(e.frames)-1]
	if int(p) < 0 || int(p) >= len(frame) {
		return arco.Value{}, fmt.Errorf("invalid parameter %d", int(p))
	}
	if err := e.machine.Charge(avm.CostDefault); err != nil {
		return arco.Value{}, err
	}
	return frame[p], nil
}

func (p param) String() string {
	return fmt.Sprintf("Param(%d)", int(p))
}

// ----------------------------------------------------------------------------
// Operations
// ----------------------------------------------------------------------------

// op is a node applying a primitive to the values of its operands, which are
// evaluated from left to right.
type op struct {
	name     string
	operands []Expr
	apply    func(*Env, []arco.Value) (arco.Value, error)
}

func (o *op) Eval(e *Env) (arco.Value, error) {
	values := make([]arco.Value, 0, len(o.operands))
	for _, operand := range o.operands {
		value, err := operand.Eval(e)
		if err != nil {
			return arco.Value{}, err
		}
		values = append(values, value)
	}
	return o.apply(e, values)
}

func (o *op) String() string {
	if len(o.operands) == 0 {
		return o.name
	}
	return format(o.name, o.operands)
}

func newOp(name string, apply func(*Env, []arco.Value) (arco.Value, error), operands ...Expr) Expr {
	return &op{name: name, operands: operands, apply: apply}
}

func asUint(name string, value arco.Value) (uint64, error) {
	if value.Type != arco.UintType {
		return 0, arco.Rejectf("%s wanted type uint64 got %v", name, typeName(value))
	}
	return value.Uint, nil
}

func asBytes(name string, value arco.Value) ([]byte, error) {
	if value.Type != arco.BytesType {
		return nil, arco.Rejectf("%s wanted type []byte got %v", name, typeName(value))
	}
	return value.Bytes, nil
}

func typeName(value arco.Value) string {
	switch value.Type {
	case arco.UintType:
		return "uint64"
	case arco.BytesType:
		return "[]byte"
	}
	return "none"
}

func format(name string, operands []Expr) string {
	parts := make([]string, 0, len(operands))
	for _, operand := range operands {
		parts = append(parts, operand.String())
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
