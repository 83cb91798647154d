// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package standard

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/ledger"
	"go.uber.org/mock/gomock"
)

var (
	alice = arco.Address{1}
	bob   = arco.Address{2}
	app   = ledger.FirstAppID
)

func newTestLedger() *ledger.Ledger {
	return ledger.NewWithState(ledger.State{
		Balances: ledger.Balances{
			alice:         1_000_000,
			bob:           1_000_000,
			app.Address(): 1_000_000,
		},
		Apps: ledger.Apps{app: {
			Params: arco.AppParams{
				Creator:      alice,
				GlobalSchema: arco.StateSchema{NumUint: 1, NumByteSlice: 1},
				LocalSchema:  arco.StateSchema{NumUint: 1},
			},
			Local: ledger.LocalStates{alice: {}},
		}},
		NextAppID: app + 1,
	})
}

func call(oc arco.OnCompletion) arco.Transaction {
	return arco.Transaction{
		Sender:       bob,
		AppID:        app,
		OnCompletion: oc,
		Fee:          DefaultMinFee,
	}
}

func TestProcessor_IsRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor, err := arco.NewProcessor("standard", arco.NewMockExecutor(ctrl))
	if err != nil {
		t.Fatalf("failed to create processor: %v", err)
	}
	if processor == nil {
		t.Fatalf("processor is nil")
	}
}

func TestProcessor_InvalidTransactionsAreRejectedWithoutRunningTheExecutor(t *testing.T) {
	tests := map[string]struct {
		transaction arco.Transaction
		message     string
	}{
		"fee too small": {
			transaction: arco.Transaction{Sender: bob, AppID: app, Fee: DefaultMinFee - 1},
			message:     "transaction fee too small",
		},
		"insufficient balance": {
			transaction: arco.Transaction{Sender: arco.Address{9}, AppID: app, Fee: DefaultMinFee},
			message:     "insufficient balance",
		},
		"unknown app": {
			transaction: arco.Transaction{Sender: bob, AppID: app + 1, Fee: DefaultMinFee},
			message:     "does not exist",
		},
		"create with update": {
			transaction: arco.Transaction{Sender: bob, OnCompletion: arco.UpdateApplication, Fee: DefaultMinFee},
			message:     "can not be created",
		},
		"repeated opt in": {
			transaction: arco.Transaction{Sender: alice, AppID: app, OnCompletion: arco.OptIn, Fee: DefaultMinFee},
			message:     "already opted in",
		},
		"close out without opt in": {
			transaction: arco.Transaction{Sender: bob, AppID: app, OnCompletion: arco.CloseOut, Fee: DefaultMinFee},
			message:     "not opted in",
		},
		"clear state without opt in": {
			transaction: arco.Transaction{Sender: bob, AppID: app, OnCompletion: arco.ClearState, Fee: DefaultMinFee},
			message:     "not opted in",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			state := newTestLedger()
			before := state.State()

			receipt, err := New(executor, Config{}).Run(test.transaction, state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if receipt.Success {
				t.Fatalf("transaction should have been rejected")
			}
			if !strings.Contains(receipt.Message, test.message) {
				t.Errorf("unexpected message, want %q, got %q", test.message, receipt.Message)
			}
			if diff := before.Diff(state.State()); len(diff) != 0 {
				t.Errorf("rejected transaction modified the state: %v", diff)
			}
		})
	}
}

func TestProcessor_FeeIsCharged(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any()).Return(arco.Result{Success: true}, nil)

	state := newTestLedger()
	transaction := call(arco.NoOp)
	transaction.Fee = 2500
	receipt, err := New(executor, Config{}).Run(transaction, state)
	if err != nil || !receipt.Success {
		t.Fatalf("unexpected result: %v, %v", receipt, err)
	}
	if want, got := uint64(1_000_000-2500), state.GetBalance(bob); want != got {
		t.Errorf("unexpected balance, want %d, got %d", want, got)
	}
}

func TestProcessor_ParametersArePassedToTheExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)

	transaction := arco.Transaction{
		Sender:       bob,
		AppID:        app,
		OnCompletion: arco.NoOp,
		Args:         [][]byte{{1, 2}, {3}},
		Applications: []arco.AppID{7},
		Assets:       []arco.AssetID{8},
		Accounts:     []arco.Address{{9}},
		Fee:          DefaultMinFee,
	}
	executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
		if want, got := app, params.App; want != got {
			t.Errorf("unexpected app, want %d, got %d", want, got)
		}
		if want, got := alice, params.Creator; want != got {
			t.Errorf("unexpected creator, want %v, got %v", want, got)
		}
		if want, got := arco.Budget(123), params.Budget; want != got {
			t.Errorf("unexpected budget, want %d, got %d", want, got)
		}
		if want, got := bob, params.Sender; want != got {
			t.Errorf("unexpected sender, want %v, got %v", want, got)
		}
		if len(params.Args) != 2 || len(params.Applications) != 1 || len(params.Assets) != 1 || len(params.Accounts) != 1 {
			t.Errorf("unexpected invocation: %+v", params.Invocation)
		}
		return arco.Result{Success: true, Output: arco.Data{1}, BudgetUsed: 12}, nil
	})

	receipt, err := New(executor, Config{Budget: 123}).Run(transaction, newTestLedger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := arco.Receipt{Success: true, AppID: app, Output: arco.Data{1}, BudgetUsed: 12}
	if got := receipt; !got.Success || got.AppID != want.AppID || got.BudgetUsed != want.BudgetUsed || string(got.Output) != string(want.Output) {
		t.Errorf("unexpected receipt, want %v, got %v", want, got)
	}
}

func TestProcessor_CreationAllocatesANewApp(t *testing.T) {
	for _, oc := range []arco.OnCompletion{arco.NoOp, arco.OptIn} {
		t.Run(oc.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			schema := arco.StateSchema{NumUint: 3, NumByteSlice: 2}

			executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
				if !params.IsCreate() {
					t.Errorf("invocation should be a creation")
				}
				if want, got := app+1, params.App; want != got {
					t.Errorf("unexpected app, want %d, got %d", want, got)
				}
				if want, got := bob, params.Creator; want != got {
					t.Errorf("unexpected creator, want %v, got %v", want, got)
				}
				if want, got := oc == arco.OptIn, params.Context.IsOptedIn(params.App, bob); want != got {
					t.Errorf("unexpected opt-in state, want %t, got %t", want, got)
				}
				return arco.Result{Success: true}, nil
			})

			state := newTestLedger()
			transaction := call(oc)
			transaction.AppID = 0
			transaction.GlobalSchema = schema
			receipt, err := New(executor, Config{}).Run(transaction, state)
			if err != nil || !receipt.Success {
				t.Fatalf("unexpected result: %v, %v", receipt, err)
			}
			if want, got := app+1, receipt.AppID; want != got {
				t.Errorf("unexpected app in receipt, want %d, got %d", want, got)
			}
			params, found := state.GetApp(receipt.AppID)
			if !found {
				t.Fatalf("app was not created")
			}
			if want, got := (arco.AppParams{Creator: bob, GlobalSchema: schema}), params; want != got {
				t.Errorf("unexpected app parameters, want %v, got %v", want, got)
			}
		})
	}
}

func TestProcessor_RejectionsRevertAllEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
		params.Context.SetGlobal(params.App, "int1", arco.NewUint(5))
		params.Context.EmitLog(arco.Log("hello"))
		return arco.Result{Success: false, Message: "no way", BudgetUsed: 3}, nil
	})

	state := newTestLedger()
	before := state.State()
	receipt, err := New(executor, Config{}).Run(call(arco.NoOp), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.Success || receipt.Message != "no way" {
		t.Errorf("unexpected receipt: %v", receipt)
	}
	if want, got := arco.Budget(3), receipt.BudgetUsed; want != got {
		t.Errorf("unexpected budget used, want %d, got %d", want, got)
	}
	if len(receipt.Logs) != 0 || len(state.GetLogs()) != 0 {
		t.Errorf("logs of rejected transaction were kept")
	}
	if diff := before.Diff(state.State()); len(diff) != 0 {
		t.Errorf("rejected transaction modified the state: %v", diff)
	}
}

func TestProcessor_HostFailuresAreReportedAsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)
	injected := fmt.Errorf("injected")
	executor.EXPECT().Run(gomock.Any()).Return(arco.Result{}, injected)

	state := newTestLedger()
	before := state.State()
	_, err := New(executor, Config{}).Run(call(arco.NoOp), state)
	if err == nil || !strings.Contains(err.Error(), "injected") {
		t.Errorf("expected injected error, got %v", err)
	}
	if diff := before.Diff(state.State()); len(diff) != 0 {
		t.Errorf("failed transaction modified the state: %v", diff)
	}
}

func TestProcessor_LifeCycleOperations(t *testing.T) {
	tests := map[string]struct {
		sender arco.Address
		oc     arco.OnCompletion
		check  func(*testing.T, *ledger.Ledger)
	}{
		"opt in": {
			sender: bob,
			oc:     arco.OptIn,
			check: func(t *testing.T, l *ledger.Ledger) {
				if !l.IsOptedIn(app, bob) {
					t.Errorf("account should be opted in")
				}
			},
		},
		"close out": {
			sender: alice,
			oc:     arco.CloseOut,
			check: func(t *testing.T, l *ledger.Ledger) {
				if l.IsOptedIn(app, alice) {
					t.Errorf("account should be closed out")
				}
			},
		},
		"clear state": {
			sender: alice,
			oc:     arco.ClearState,
			check: func(t *testing.T, l *ledger.Ledger) {
				if l.IsOptedIn(app, alice) {
					t.Errorf("local state should be cleared")
				}
			},
		},
		"delete": {
			sender: alice,
			oc:     arco.DeleteApplication,
			check: func(t *testing.T, l *ledger.Ledger) {
				if _, found := l.GetApp(app); found {
					t.Errorf("app should be deleted")
				}
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			executor.EXPECT().Run(gomock.Any()).Return(arco.Result{Success: true}, nil)

			state := newTestLedger()
			transaction := call(test.oc)
			transaction.Sender = test.sender
			receipt, err := New(executor, Config{}).Run(transaction, state)
			if err != nil || !receipt.Success {
				t.Fatalf("unexpected result: %v, %v", receipt, err)
			}
			test.check(t, state)
		})
	}
}

func TestProcessor_RejectedLifeCycleOperationsHaveNoEffect(t *testing.T) {
	for _, oc := range []arco.OnCompletion{arco.CloseOut, arco.DeleteApplication} {
		t.Run(oc.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			executor.EXPECT().Run(gomock.Any()).Return(arco.Result{Success: false, Message: "no"}, nil)

			state := newTestLedger()
			transaction := call(oc)
			transaction.Sender = alice
			receipt, err := New(executor, Config{}).Run(transaction, state)
			if err != nil || receipt.Success {
				t.Fatalf("unexpected result: %v, %v", receipt, err)
			}
			if _, found := state.GetApp(app); !found {
				t.Errorf("app should still exist")
			}
			if !state.IsOptedIn(app, alice) {
				t.Errorf("account should still be opted in")
			}
		})
	}
}

func TestProcessor_ClearStateRemovesLocalStateEvenIfRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any()).Return(arco.Result{Success: false, Message: "refused"}, nil)

	state := newTestLedger()
	transaction := call(arco.ClearState)
	transaction.Sender = alice
	receipt, err := New(executor, Config{}).Run(transaction, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !receipt.Success {
		t.Errorf("clear state should succeed, got %v", receipt)
	}
	if want, got := "refused", receipt.Message; want != got {
		t.Errorf("unexpected message, want %q, got %q", want, got)
	}
	if state.IsOptedIn(app, alice) {
		t.Errorf("local state should be cleared")
	}
	if want, got := uint64(1_000_000-DefaultMinFee), state.GetBalance(alice); want != got {
		t.Errorf("unexpected balance, want %d, got %d", want, got)
	}
}

func TestProcessor_SchemaViolationsAreRejected(t *testing.T) {
	tests := map[string]func(arco.Parameters){
		"too many global uints": func(params arco.Parameters) {
			params.Context.SetGlobal(params.App, "a", arco.NewUint(1))
			params.Context.SetGlobal(params.App, "b", arco.NewUint(2))
		},
		"too many global byte slices": func(params arco.Parameters) {
			params.Context.SetGlobal(params.App, "a", arco.NewBytes([]byte("a")))
			params.Context.SetGlobal(params.App, "b", arco.NewBytes([]byte("b")))
		},
		"local byte slice not allowed": func(params arco.Parameters) {
			params.Context.SetLocal(params.App, alice, "a", arco.NewBytes([]byte("a")))
		},
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
				modify(params)
				return arco.Result{Success: true}, nil
			})

			state := newTestLedger()
			before := state.State()
			transaction := call(arco.NoOp)
			transaction.Sender = alice
			receipt, err := New(executor, Config{}).Run(transaction, state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if receipt.Success || !strings.Contains(receipt.Message, "exceeds schema") {
				t.Errorf("unexpected receipt: %v", receipt)
			}
			if diff := before.Diff(state.State()); len(diff) != 0 {
				t.Errorf("rejected transaction modified the state: %v", diff)
			}
		})
	}
}

func TestProcessor_ReceiptContainsOnlyLogsOfTheTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := arco.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
		params.Context.EmitLog(arco.Log("a"))
		params.Context.EmitLog(arco.Log("b"))
		return arco.Result{Success: true}, nil
	})

	state := newTestLedger()
	state.EmitLog(arco.Log("earlier"))
	receipt, err := New(executor, Config{}).Run(call(arco.NoOp), state)
	if err != nil || !receipt.Success {
		t.Fatalf("unexpected result: %v, %v", receipt, err)
	}
	if want, got := []arco.Log{arco.Log("a"), arco.Log("b")}, receipt.Logs; !slices.EqualFunc(want, got, func(a, b arco.Log) bool { return string(a) == string(b) }) {
		t.Errorf("unexpected logs, want %q, got %q", want, got)
	}
}

func TestProcessor_InnerPayments(t *testing.T) {
	tests := map[string]struct {
		amount  uint64
		fee     uint64
		message string
	}{
		"pooled fee": {
			amount: 1000,
			fee:    2 * DefaultMinFee,
		},
		"fee not covered": {
			amount:  1000,
			fee:     DefaultMinFee,
			message: "fee too small",
		},
		"below min balance": {
			amount:  1_000_000 - DefaultMinBalance + 1,
			fee:     2 * DefaultMinFee,
			message: "below min",
		},
		"insufficient balance": {
			amount:  2_000_000,
			fee:     2 * DefaultMinFee,
			message: "insufficient balance",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := arco.NewMockExecutor(ctrl)
			executor.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
				err := params.Context.Submit(arco.InnerTransaction{
					Type:     arco.Payment,
					Receiver: params.Sender,
					Amount:   test.amount,
				})
				if rejection := arco.AsRejection(err); rejection != nil {
					return arco.Result{Success: false, Message: rejection.Message}, nil
				}
				return arco.Result{Success: err == nil}, err
			})

			state := newTestLedger()
			before := state.State()
			transaction := call(arco.NoOp)
			transaction.Fee = test.fee
			receipt, err := New(executor, Config{}).Run(transaction, state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if test.message != "" {
				if receipt.Success || !strings.Contains(receipt.Message, test.message) {
					t.Errorf("unexpected receipt, wanted rejection with %q, got %v", test.message, receipt)
				}
				if diff := before.Diff(state.State()); len(diff) != 0 {
					t.Errorf("rejected transaction modified the state: %v", diff)
				}
				return
			}

			if !receipt.Success {
				t.Fatalf("transaction should succeed, got %v", receipt)
			}
			want := []arco.InnerTransaction{{
				Type:     arco.Payment,
				Sender:   app.Address(),
				Receiver: bob,
				Amount:   test.amount,
			}}
			if got := receipt.InnerTransactions; !slices.Equal(want, got) {
				t.Errorf("unexpected inner transactions, want %v, got %v", want, got)
			}
			if want, got := 1_000_000-test.fee+test.amount, state.GetBalance(bob); want != got {
				t.Errorf("unexpected receiver balance, want %d, got %d", want, got)
			}
			if want, got := 1_000_000-test.amount, state.GetBalance(app.Address()); want != got {
				t.Errorf("unexpected app balance, want %d, got %d", want, got)
			}
		})
	}
}
