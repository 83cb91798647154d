// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package router

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/avm"
)

type route struct {
	Method
	abi *abi.Method
}

// Router is the static dispatch table of a contract. Routers are immutable
// and safe for concurrent use.
type Router struct {
	contract Contract
	methods  map[arco.Selector]*route
	order    []*route
}

// New builds the dispatch table of the given contract. Declarations with
// invalid signatures, duplicated selectors, or overlapping bare handlers are
// refused.
func New(contract Contract) (*Router, error) {
	res := &Router{
		contract: contract,
		methods:  map[arco.Selector]*route{},
	}
	for _, method := range contract.Methods {
		parsed, err := abi.ParseMethod(method.Signature)
		if err != nil {
			return nil, fmt.Errorf("invalid method %q: %w", method.Signature, err)
		}
		if method.Handler == nil {
			return nil, fmt.Errorf("missing handler for %s", method.Signature)
		}
		if len(method.ArgNames) != 0 && len(method.ArgNames) != len(parsed.Args) {
			return nil, fmt.Errorf("invalid number of argument names for %s", method.Signature)
		}
		if method.Actions == 0 {
			method.Actions = ActionsOf(arco.NoOp)
		}
		if method.Actions.Contains(arco.ClearState) {
			return nil, fmt.Errorf("method %s must not serve clear-state calls", method.Signature)
		}
		selector := parsed.Selector()
		if existing, found := res.methods[selector]; found {
			return nil, fmt.Errorf("selector collision between %s and %s", existing.Signature, method.Signature)
		}
		for _, event := range method.Events {
			if _, err := abi.ParseEvent(event); err != nil {
				return nil, fmt.Errorf("invalid event of %s: %w", method.Signature, err)
			}
		}
		r := &route{Method: method, abi: parsed}
		res.methods[selector] = r
		res.order = append(res.order, r)
	}
	var covered Actions
	for _, bare := range contract.Bare {
		if bare.Handler == nil {
			return nil, fmt.Errorf("missing handler for bare method %s", bare.Name)
		}
		if bare.Actions&covered != 0 {
			return nil, fmt.Errorf("bare method %s overlaps with other bare methods", bare.Name)
		}
		if bare.Actions.Contains(arco.ClearState) {
			return nil, fmt.Errorf("bare method %s must not serve clear-state calls", bare.Name)
		}
		covered |= bare.Actions
	}
	for _, event := range contract.Events {
		if _, err := abi.ParseEvent(event); err != nil {
			return nil, fmt.Errorf("invalid event: %w", err)
		}
	}
	return res, nil
}

// MustNew is a variant of New panicking on invalid declarations. It is
// intended for statically declared contracts.
func MustNew(contract Contract) *Router {
	res, err := New(contract)
	if err != nil {
		panic(err)
	}
	return res
}

// Contract returns the declaration the router was built for.
func (r *Router) Contract() *Contract {
	return &r.contract
}

// Run executes an invocation of the contract.
func (r *Router) Run(params arco.Parameters) (arco.Result, error) {
	return avm.Run(params, r.dispatch)
}

func (r *Router) dispatch(m *avm.Machine) error {
	oc := m.OnCompletion()
	if oc == arco.ClearState {
		return r.runClearState(m)
	}
	if m.NumAppArgs() == 0 {
		return r.dispatchBare(m, oc)
	}

	arg, err := m.AppArg(0)
	if err != nil {
		return err
	}
	if err := m.Charge(avm.CostDefault); err != nil {
		return err
	}
	var selector arco.Selector
	if len(arg) != len(selector) {
		return arco.Rejectf("invalid method selector 0x%x", arg)
	}
	copy(selector[:], arg)
	route, found := r.methods[selector]
	if !found {
		return arco.Rejectf("unknown method selector %v", selector)
	}
	if !route.Actions.Contains(oc) {
		return arco.Rejectf("%s does not support %v calls", route.abi.Name, oc)
	}
	if err := checkCreate(m, route.Create, route.abi.Name); err != nil {
		return err
	}
	args, err := route.abi.DecodeCall(m.AppArgs())
	if err != nil {
		return arco.Rejectf("invalid arguments: %v", err)
	}
	if err := r.initialize(m); err != nil {
		return err
	}
	call := &Call{Machine: m, Args: args, Raw: m.AppArgs()[1:]}
	result, err := route.Handler(call)
	if err != nil {
		return err
	}
	if route.abi.Returns == nil {
		return nil
	}
	encoded, ok := result.(Encoded)
	if !ok {
		encoded, err = abi.Encode(*route.abi.Returns, result)
		if err != nil {
			return fmt.Errorf("invalid return value of %s: %w", route.abi.Name, err)
		}
	}
	return m.Return(encoded)
}

func (r *Router) dispatchBare(m *avm.Machine, oc arco.OnCompletion) error {
	if err := m.Charge(avm.CostDefault); err != nil {
		return err
	}
	for _, bare := range r.contract.Bare {
		if !bare.Actions.Contains(oc) {
			continue
		}
		if err := checkCreate(m, bare.Create, bare.Name); err != nil {
			return err
		}
		if err := r.initialize(m); err != nil {
			return err
		}
		_, err := bare.Handler(&Call{Machine: m})
		return err
	}
	return arco.Rejectf("no bare method for %v calls", oc)
}

func (r *Router) runClearState(m *avm.Machine) error {
	if r.contract.ClearState == nil {
		return nil
	}
	_, err := r.contract.ClearState(&Call{Machine: m})
	return err
}

// initialize sets all declared global fields to their zero value when the
// application is created.
func (r *Router) initialize(m *avm.Machine) error {
	if !m.IsCreate() {
		return nil
	}
	for _, field := range r.contract.Global {
		value := arco.NewUint(0)
		if field.Type == arco.BytesType {
			value = arco.NewBytes(nil)
		}
		if err := m.GlobalPut(field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func checkCreate(m *avm.Machine, policy CreatePolicy, name string) error {
	if policy.permits(m.IsCreate()) {
		return nil
	}
	if m.IsCreate() {
		return arco.Rejectf("%s can not create the application", name)
	}
	return arco.Rejectf("%s can only be called during creation", name)
}

// Lookup returns the declaration of the method with the given selector.
func (r *Router) Lookup(selector []byte) (*Method, bool) {
	var key arco.Selector
	if len(selector) != len(key) {
		return nil, false
	}
	copy(key[:], selector)
	route, found := r.methods[key]
	if !found {
		return nil, false
	}
	return &route.Method, true
}

// Methods lists the declared ABI methods in declaration order.
func (r *Router) Methods() []*abi.Method {
	res := make([]*abi.Method, 0, len(r.order))
	for _, route := range r.order {
		res = append(res, route.abi)
	}
	return res
}

// MethodBySignature looks up a method by its name or signature.
func (r *Router) MethodBySignature(signature string) (*abi.Method, error) {
	var matches []*abi.Method
	for _, route := range r.order {
		if route.abi.Signature() == signature {
			return route.abi, nil
		}
		if route.abi.Name == signature {
			matches = append(matches, route.abi)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("unknown method %q", signature)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("ambiguous method name %q", signature)
}
