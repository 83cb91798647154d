// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contracts

import (
	"testing"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
	"github.com/Fantom-foundation/Arco/go/ledger"
	"github.com/Fantom-foundation/Arco/go/processor/standard"

	_ "github.com/Fantom-foundation/Arco/go/contracts/expr"   // < registers expr executor for testing
	_ "github.com/Fantom-foundation/Arco/go/contracts/native" // < registers native executor for testing
)

var (
	creator = arco.Address{1}
	alice   = arco.Address{2, 7}
	bob     = arco.Address{3, 5}
)

const (
	initialBalance    = 10_000_000
	initialAppBalance = 1_000_000
	fee               = 2 * standard.DefaultMinFee
)

func getExecutors(t *testing.T) map[string]arco.Executor {
	t.Helper()
	res := map[string]arco.Executor{}
	for _, name := range []string{"native", "expr"} {
		executor, err := arco.NewExecutor(name)
		if err != nil {
			t.Fatalf("failed to create executor %s: %v", name, err)
		}
		res[name] = executor
	}
	return res
}

// harness runs transactions against a TestingApp instance created by the
// creator account.
type harness struct {
	t         *testing.T
	ledger    *ledger.Ledger
	processor arco.Processor
	app       arco.AppID
}

func newHarness(t *testing.T, executor arco.Executor) *harness {
	t.Helper()
	h := &harness{
		t: t,
		ledger: ledger.NewWithState(ledger.State{
			Balances: ledger.Balances{
				creator: initialBalance,
				alice:   initialBalance,
				bob:     initialBalance,
			},
		}),
		processor: standard.New(executor, standard.Config{}),
	}
	receipt := h.run(arco.Transaction{
		Sender:       creator,
		OnCompletion: arco.NoOp,
		Fee:          fee,
		GlobalSchema: testingapp.GlobalSchema(),
		LocalSchema:  testingapp.LocalSchema(),
	})
	if !receipt.Success {
		t.Fatalf("failed to create app: %s", receipt.Message)
	}
	h.app = receipt.AppID
	h.ledger.SetBalance(h.app.Address(), initialAppBalance)
	h.ledger.Commit()
	return h
}

func (h *harness) run(transaction arco.Transaction) arco.Receipt {
	h.t.Helper()
	receipt, err := h.processor.Run(transaction, h.ledger)
	if err != nil {
		h.t.Fatalf("failed to run transaction: %v", err)
	}
	h.ledger.Commit()
	return receipt
}

func (h *harness) transaction(sender arco.Address, oc arco.OnCompletion) arco.Transaction {
	return arco.Transaction{
		Sender:       sender,
		AppID:        h.app,
		OnCompletion: oc,
		Fee:          fee,
	}
}

func (h *harness) encode(signature string, args ...any) [][]byte {
	h.t.Helper()
	encoded, err := abi.MustParseMethod(signature).EncodeCall(args...)
	if err != nil {
		h.t.Fatalf("failed to encode call of %s: %v", signature, err)
	}
	return encoded
}

// call invokes an ABI method by a NoOp call.
func (h *harness) call(sender arco.Address, signature string, args ...any) arco.Receipt {
	h.t.Helper()
	transaction := h.transaction(sender, arco.NoOp)
	transaction.Args = h.encode(signature, args...)
	return h.run(transaction)
}

// bare performs a call without arguments.
func (h *harness) bare(sender arco.Address, oc arco.OnCompletion) arco.Receipt {
	h.t.Helper()
	return h.run(h.transaction(sender, oc))
}

func (h *harness) optIn(sender arco.Address) {
	h.t.Helper()
	transaction := h.transaction(sender, arco.OptIn)
	transaction.Args = h.encode(testingapp.OptIn)
	if receipt := h.run(transaction); !receipt.Success {
		h.t.Fatalf("failed to opt in: %s", receipt.Message)
	}
}

func (h *harness) global(key string) arco.Value {
	value, _ := h.ledger.GetGlobal(h.app, key)
	return value
}

func (h *harness) local(account arco.Address, key string) arco.Value {
	value, _ := h.ledger.GetLocal(h.app, account, key)
	return value
}

func returned(t *testing.T, receipt arco.Receipt, signature string) any {
	t.Helper()
	if !receipt.Success {
		t.Fatalf("call of %s was rejected: %s", signature, receipt.Message)
	}
	method := abi.MustParseMethod(signature)
	value, err := abi.Decode(*method.Returns, receipt.Output)
	if err != nil {
		t.Fatalf("failed to decode return value: %v", err)
	}
	if len(receipt.Logs) == 0 {
		t.Fatalf("missing return log")
	}
	if logged, err := method.DecodeReturn(receipt.Logs[len(receipt.Logs)-1]); err != nil || logged != value {
		t.Errorf("logged return value does not match output, got %v, %v", logged, err)
	}
	return value
}

func requireRejection(t *testing.T, receipt arco.Receipt, message string) {
	t.Helper()
	if receipt.Success {
		t.Fatalf("transaction should have been rejected with %q", message)
	}
	if want, got := message, receipt.Message; want != got {
		t.Errorf("unexpected rejection message, want %q, got %q", want, got)
	}
}
