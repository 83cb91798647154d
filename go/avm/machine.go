// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package avm provides the runtime primitives available to application
// programs during a single invocation. A Machine meters every primitive
// against the opcode budget of the invocation and enforces the limits of the
// ledger, turning violations into rejections.
package avm

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
)

// Program is the code executed by a Machine. A program fails by returning an
// error. If the error is a *arco.Rejection, the invocation is rejected;
// otherwise the error is considered a failure of the host.
type Program func(*Machine) error

// Machine is the execution environment of a single invocation. For each
// invocation a new Machine is created.
type Machine struct {
	// Inputs
	params  arco.Parameters
	context arco.RunContext

	// Execution state
	budget     arco.Budget
	logCalls   int
	logSize    int
	innerCount int
	output     arco.Data
}

// Run executes the given program for the invocation described by the
// parameters. Rejected invocations leave no trace in the run context.
func Run(params arco.Parameters, program Program) (arco.Result, error) {
	if params.Context == nil {
		return arco.Result{}, fmt.Errorf("missing run context")
	}
	m := newMachine(params)
	snapshot := m.context.CreateSnapshot()
	if err := program(m); err != nil {
		if rejection := arco.AsRejection(err); rejection != nil {
			m.context.RestoreSnapshot(snapshot)
			return arco.Result{
				Success:    false,
				Message:    rejection.Message,
				BudgetUsed: m.Used(),
			}, nil
		}
		return arco.Result{}, err
	}
	return arco.Result{
		Success:    true,
		Output:     m.output,
		BudgetUsed: m.Used(),
	}, nil
}

func newMachine(params arco.Parameters) *Machine {
	budget := params.Budget
	if budget <= 0 {
		budget = arco.DefaultBudget
	}
	if params.App == 0 {
		params.App = params.AppID
	}
	return &Machine{
		params:  params,
		context: params.Context,
		budget:  budget,
	}
}

// Charge consumes the given amount of the opcode budget. The invocation is
// rejected if the budget is exhausted.
func (m *Machine) Charge(cost arco.Budget) error {
	if cost < 0 || m.budget < cost {
		m.budget = 0
		return ErrBudgetExceeded
	}
	m.budget -= cost
	return nil
}

// Remaining returns the unused part of the opcode budget.
func (m *Machine) Remaining() arco.Budget {
	return m.budget
}

// Used returns the consumed part of the opcode budget.
func (m *Machine) Used() arco.Budget {
	total := m.params.Budget
	if total <= 0 {
		total = arco.DefaultBudget
	}
	return total - m.budget
}

// Assert rejects the invocation with the given message if the condition does
// not hold.
func (m *Machine) Assert(condition bool, message string) error {
	if err := m.Charge(CostAssert); err != nil {
		return err
	}
	if !condition {
		return arco.Reject(message)
	}
	return nil
}

// Fail unconditionally rejects the invocation.
func (m *Machine) Fail(message string) error {
	return m.Assert(false, message)
}

// ----------------------------------------------------------------------------
// Logs and return values
// ----------------------------------------------------------------------------

// Log appends an entry to the log of the invocation.
func (m *Machine) Log(entry []byte) error {
	if err := m.Charge(CostLog); err != nil {
		return err
	}
	if m.logCalls >= arco.MaxLogCalls {
		return ErrTooManyLogCalls
	}
	if m.logSize+len(entry) > arco.MaxLogSize {
		return ErrLogsTooLarge
	}
	m.logCalls++
	m.logSize += len(entry)
	m.context.EmitLog(arco.Log(entry))
	return nil
}

// Return logs the given encoded value as the return value of an ABI method
// and records it as the output of the invocation.
func (m *Machine) Return(encoded []byte) error {
	entry := make([]byte, 0, len(abi.ReturnPrefix)+len(encoded))
	entry = append(entry, abi.ReturnPrefix...)
	entry = append(entry, encoded...)
	if err := m.Log(entry); err != nil {
		return err
	}
	m.output = arco.Data(entry[len(abi.ReturnPrefix):])
	return nil
}

// Output returns the value recorded by Return, if any.
func (m *Machine) Output() arco.Data {
	return m.output
}
