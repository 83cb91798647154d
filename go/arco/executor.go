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

//go:generate mockgen -source executor.go -destination executor_mock.go -package arco

// Executor is a component capable of executing a single application call
// against the state provided by a RunContext. It is the contract-specific part
// of the execution stack; fees, application life-cycle management, and the
// atomicity of invocations are handled by a Processor.
// To obtain an Executor instance, client code should use NewExecutor() provided
// by the registry file in this package.
type Executor interface {
	// Run executes the invocation provided by the parameters and returns the
	// processing result. The resulting error is nil whenever the invocation
	// was correctly processed, even if it was rejected by the contract; in
	// such a case the result is unsuccessful and carries a diagnostic
	// message. The error is not nil if the host environment failed in a way
	// that prevented the invocation from being processed. In such a case the
	// result is undefined. Executors are required to be thread-safe.
	Run(Parameters) (Result, error)
}

// Invocation is the immutable description of a single application call.
type Invocation struct {
	Sender       Address
	AppID        AppID // zero if the application is created by this call
	OnCompletion OnCompletion
	Args         [][]byte
	Applications []AppID
	Assets       []AssetID
	Accounts     []Address
}

// IsCreate returns true if the invocation creates the application.
func (i *Invocation) IsCreate() bool {
	return i.AppID == 0
}

// Parameters summarizes the list of input parameters required for executing
// an invocation.
type Parameters struct {
	Invocation
	Context RunContext
	App     AppID // the executed application, also set during creation
	Creator Address
	Budget  Budget
}

// Result summarizes the result of an invocation.
type Result struct {
	Success    bool   // false if the invocation was rejected, true otherwise
	Message    string // the diagnostic message of a rejection
	Output     Data   // the encoded return value of an ABI method, if any
	BudgetUsed Budget
}

// TransactionContext is an interface to access and manipulate the world state
// in a transaction. All modifications on the world state are buffered in a
// transaction context, which can be snapshot and restored. Logs emitted by
// applications are managed as part of the context and are subject to the
// same snapshot handling.
type TransactionContext interface {
	WorldState

	CreateSnapshot() Snapshot
	RestoreSnapshot(Snapshot)

	EmitLog(Log)
	GetLogs() []Log
}

// RunContext provides the TransactionContext to executors and extends it by
// the ability to issue inner transactions on behalf of the running application.
type RunContext interface {
	TransactionContext

	// Submit executes the given inner transaction with the account of the
	// running application as the sender. A *Rejection is returned if the
	// ledger refuses the transaction.
	Submit(InnerTransaction) error
}

// Snapshot is a type used to represent a snapshot of the world state in a
// transaction context.
type Snapshot int

// TransactionType enumerates the kinds of inner transactions.
type TransactionType uint8

const (
	Payment TransactionType = iota + 1
)

func (t TransactionType) String() string {
	if t == Payment {
		return "pay"
	}
	return "unknown"
}

// InnerTransaction is a transaction issued by an application during its
// invocation. It takes effect atomically with the issuing invocation.
type InnerTransaction struct {
	Type     TransactionType
	Sender   Address // filled in by the ledger
	Receiver Address
	Amount   uint64
	Fee      uint64
}
