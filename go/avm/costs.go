// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package avm

import "github.com/Fantom-foundation/Arco/go/arco"

// Costs of the primitives of a Machine in units of the opcode budget.
const (
	CostDefault   arco.Budget = 1  // < arithmetic, comparisons, and constants
	CostTxnField  arco.Budget = 1  // < access to fields of the invocation
	CostAssert    arco.Budget = 1  // < assertions and explicit failures
	CostLog       arco.Budget = 1  // < a single log entry
	CostStateRead arco.Budget = 1  // < reading global, local, or box state
	CostStateSet  arco.Budget = 1  // < writing or deleting state
	CostBoxCreate arco.Budget = 1  // < creating a new box
	CostCall      arco.Budget = 2  // < subroutine calls, including the return
	CostPayment   arco.Budget = 3  // < begin, configure, and submit a payment
	CostHash      arco.Budget = 45 // < hashing with SHA-512/256
)

// Rejections caused by exhausted resources.
var (
	ErrBudgetExceeded  = arco.Reject("dynamic cost budget exceeded")
	ErrTooManyLogCalls = arco.Reject("too many log calls")
	ErrLogsTooLarge    = arco.Reject("logs too large")
)
