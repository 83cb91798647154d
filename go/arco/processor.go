// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arco

//go:generate mockgen -source processor.go -destination processor_mock.go -package arco

// Processor is an interface for a component capable of executing application
// call transactions. Implementations progress the world state by charging
// fees, managing the life-cycle of applications and their local states,
// running the Executor of the called application, and ensuring that a
// rejected transaction leaves no trace in the world state.
type Processor interface {
	// Run executes the transaction in the given context. Rejections are
	// reported through an unsuccessful receipt; an error is only returned
	// if the host environment failed.
	Run(Transaction, TransactionContext) (Receipt, error)
}

// Transaction summarizes the parameters of an application call transaction.
type Transaction struct {
	Sender       Address
	AppID        AppID // zero to create a new application
	OnCompletion OnCompletion
	Args         [][]byte
	Applications []AppID
	Assets       []AssetID
	Accounts     []Address
	Fee          uint64

	// The schemas are only considered for application creations.
	GlobalSchema StateSchema
	LocalSchema  StateSchema
}

// Receipt summarizes the result of the execution of a transaction.
type Receipt struct {
	Success           bool   // false if the transaction was rejected, true otherwise
	Message           string // diagnostic message of a rejection
	AppID             AppID  // the called or created application
	Output            Data   // the encoded return value of an ABI method, if any
	Logs              []Log
	InnerTransactions []InnerTransaction
	BudgetUsed        Budget
}
