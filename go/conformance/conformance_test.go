// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


package conformance

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
	"go.uber.org/mock/gomock"

	_ "github.com/Fantom-foundation/Arco/go/contracts/expr"   // < registers expr executor for testing
	_ "github.com/Fantom-foundation/Arco/go/contracts/native" // < registers native executor for testing
)

func getExecutor(t *testing.T, name string) arco.Executor {
	t.Helper()
	executor, err := arco.NewExecutor(name)
	if err != nil {
		t.Fatalf("failed to create executor %s: %v", name, err)
	}
	return executor
}

func TestGenerateCase_SameSeedProducesSameCase(t *testing.T) {
	a := GenerateCase(42, 30)
	b := GenerateCase(42, 30)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("cases generated with the same seed differ")
	}
	c := GenerateCase(43, 30)
	if reflect.DeepEqual(a.Transactions, c.Transactions) {
		t.Errorf("cases generated with different seeds are equal")
	}
}

func TestGenerateCase_StartsByCreatingTheApp(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		c := GenerateCase(seed, 5)
		if want, got := 6, len(c.Transactions); want != got {
			t.Fatalf("unexpected number of transactions, want %d, got %d", want, got)
		}
		creation := c.Transactions[0]
		if creation.AppID != 0 {
			t.Errorf("first transaction does not create an app")
		}
		if oc := creation.OnCompletion; oc != arco.NoOp && oc != arco.OptIn {
			t.Errorf("app created by unsupported call type %v", oc)
		}
		if want, got := testingapp.GlobalSchema(), creation.GlobalSchema; want != got {
			t.Errorf("unexpected global schema, want %v, got %v", want, got)
		}
		for _, account := range Accounts {
			if c.Setup.Balances[account] == 0 {
				t.Errorf("account %v is not funded", account)
			}
		}
	}
}

func TestGenerateCase_CoversAllMethodsAndCallTypes(t *testing.T) {
	selectors := map[arco.Selector]bool{}
	onCompletions := map[arco.OnCompletion]bool{}
	for seed := uint64(0); seed < 20; seed++ {
		for _, tx := range GenerateCase(seed, 50).Transactions {
			onCompletions[tx.OnCompletion] = true
			if len(tx.Args) > 0 && len(tx.Args[0]) == len(arco.Selector{}) {
				selectors[arco.Selector(tx.Args[0])] = true
			}
		}
	}
	for _, call := range calls {
		if !selectors[abi.SelectorOf(call.signature)] {
			t.Errorf("no call of %s generated", call.signature)
		}
	}
	for _, oc := range arco.GetAllOnCompletions() {
		if !onCompletions[oc] {
			t.Errorf("no %v call generated", oc)
		}
	}
}

func TestRunCase_NativeAndExprAgree(t *testing.T) {
	native := getExecutor(t, "native")
	expr := getExecutor(t, "expr")
	for seed := uint64(0); seed < 20; seed++ {
		issue, err := RunCase(native, expr, GenerateCase(seed, 40), Config{}.Processor)
		if err != nil {
			t.Fatalf("failed to run case: %v", err)
		}
		if issue != nil {
			t.Errorf("unexpected divergence: %v", issue)
		}
	}
}

func TestRunCase_ReportsDivergence(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidate := arco.NewMockExecutor(ctrl)
	candidate.EXPECT().Run(gomock.Any()).Return(arco.Result{Message: "nope"}, nil)

	issue, err := RunCase(getExecutor(t, "native"), candidate, GenerateCase(1, 3), Config{}.Processor)
	if err != nil {
		t.Fatalf("failed to run case: %v", err)
	}
	if issue == nil {
		t.Fatalf("divergence not detected")
	}
	if want, got := 0, issue.Step; want != got {
		t.Errorf("unexpected step, want %d, got %d", want, got)
	}
	if !strings.Contains(issue.Error(), "different success: true != false") {
		t.Errorf("missing difference in %v", issue)
	}
	if !strings.Contains(issue.Error(), "different message: \"\" != \"nope\"") {
		t.Errorf("missing difference in %v", issue)
	}
}

func TestRunCase_HostFailuresArePropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidate := arco.NewMockExecutor(ctrl)
	injected := errors.New("injected")
	candidate.EXPECT().Run(gomock.Any()).Return(arco.Result{}, injected)

	_, err := RunCase(getExecutor(t, "native"), candidate, GenerateCase(1, 3), Config{}.Processor)
	if !errors.Is(err, injected) {
		t.Errorf("unexpected error, want %v, got %v", injected, err)
	}
}

func TestRun_ProcessesAllCases(t *testing.T) {
	native := getExecutor(t, "native")
	expr := getExecutor(t, "expr")
	summary, err := Run(native, expr, Config{Cases: 16, Length: 10, Seed: 7, Jobs: 4})
	if err != nil {
		t.Fatalf("failed to run comparison: %v", err)
	}
	if want, got := int64(16), summary.Cases; want != got {
		t.Errorf("unexpected number of processed cases, want %d, got %d", want, got)
	}
	if len(summary.Issues) != 0 {
		t.Errorf("unexpected issues: %v", summary.Issues)
	}
}

func TestRun_StopsAfterMaxIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidate := arco.NewMockExecutor(ctrl)
	candidate.EXPECT().Run(gomock.Any()).Return(arco.Result{Message: "nope"}, nil).AnyTimes()

	summary, err := Run(getExecutor(t, "native"), candidate, Config{Cases: 100, Length: 1, Jobs: 1, MaxIssues: 3})
	if err != nil {
		t.Fatalf("failed to run comparison: %v", err)
	}
	if want, got := 3, len(summary.Issues); want != got {
		t.Errorf("unexpected number of issues, want %d, got %d", want, got)
	}
	for i := 1; i < len(summary.Issues); i++ {
		if summary.Issues[i-1].Case.Seed >= summary.Issues[i].Case.Seed {
			t.Errorf("issues are not sorted by seed")
		}
	}
}

func TestRun_ReportsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidate := arco.NewMockExecutor(ctrl)
	injected := errors.New("injected")
	candidate.EXPECT().Run(gomock.Any()).Return(arco.Result{}, injected).AnyTimes()

	_, err := Run(getExecutor(t, "native"), candidate, Config{Cases: 10, Length: 1, Jobs: 2})
	if !errors.Is(err, injected) {
		t.Errorf("unexpected error, want %v, got %v", injected, err)
	}
}

func TestRun_ReportsProgress(t *testing.T) {
	native := getExecutor(t, "native")
	ctrl := gomock.NewController(t)
	candidate := arco.NewMockExecutor(ctrl)
	candidate.EXPECT().Run(gomock.Any()).DoAndReturn(func(params arco.Parameters) (arco.Result, error) {
		time.Sleep(5 * time.Millisecond)
		return native.Run(params)
	}).AnyTimes()

	var calls int
	_, err := Run(native, candidate, Config{
		Cases:            20,
		Length:           2,
		Jobs:             1,
		ProgressInterval: time.Millisecond,
		Progress: func(time.Duration, float64, int64) {
			calls++
		},
	})
	if err != nil {
		t.Fatalf("failed to run comparison: %v", err)
	}
	if calls == 0 {
		t.Errorf("progress was never reported")
	}
}
