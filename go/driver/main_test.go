// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
)

var creator = arco.Address{1}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"arco", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestList_PrintsRegisteredComponents(t *testing.T) {
	out, err := runApp(t, "list")
	if err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
	for _, name := range []string{"native", "expr", "standard"} {
		if !strings.Contains(out, "  "+name+"\n") {
			t.Errorf("%s is not listed in %q", name, out)
		}
	}
}

func TestSelector_PrintsSelectorsOfMethodsAndEvents(t *testing.T) {
	out, err := runApp(t, "selector", testingapp.SetBox, testingapp.Swapped)
	if err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
	want := fmt.Sprintf("%v %s\n0x1ccbd925 %s\n",
		abi.MustParseMethod(testingapp.SetBox).Selector(), testingapp.SetBox, testingapp.Swapped,
	)
	if want != out {
		t.Errorf("unexpected output, want %q, got %q", want, out)
	}
}

func TestSelector_RejectsInvalidSignatures(t *testing.T) {
	if _, err := runApp(t, "selector", "not a signature"); err == nil {
		t.Errorf("invalid signature should be rejected")
	}
	if _, err := runApp(t, "selector"); err == nil {
		t.Errorf("missing signature should be rejected")
	}
}

func TestSpec_PrintsContractDescription(t *testing.T) {
	for _, executor := range []string{"native", "expr"} {
		t.Run(executor, func(t *testing.T) {
			out, err := runApp(t, "spec", executor)
			if err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
			var description map[string]any
			if err := json.Unmarshal([]byte(out), &description); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if want, got := testingapp.Name, description["name"]; want != got {
				t.Errorf("unexpected contract name, want %v, got %v", want, got)
			}
		})
	}
}

func TestSpec_RejectsUnknownExecutor(t *testing.T) {
	if _, err := runApp(t, "spec", "unknown"); err == nil {
		t.Errorf("unknown executor should be rejected")
	}
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write scenario: %v", err)
	}
	return path
}

func TestRun_PrintsReceiptsAndPersistsLedger(t *testing.T) {
	db := filepath.Join(t.TempDir(), "db")
	account := fmt.Sprintf("0x%x", creator[:])

	create := writeScenario(t, fmt.Sprintf(`
accounts:
  - address: "%[1]s"
    balance: 1000000
transactions:
  - sender: "%[1]s"
    onCompletion: NoOp
`, account))
	out, err := runApp(t, "run", "--db", db, create)
	if err != nil {
		t.Fatalf("failed to run scenario: %v", err)
	}
	if !strings.Contains(out, "#0 NoOp call of app 1001: success\n") {
		t.Errorf("unexpected output %q", out)
	}

	call := writeScenario(t, fmt.Sprintf(`
transactions:
  - sender: "%[1]s"
    app: 1001
    method: call_abi(string)string
    args: ["World"]
  - sender: "%[1]s"
    app: 1001
    method: error()void
`, account))
	for _, executor := range []string{"native", "expr"} {
		out, err = runApp(t, "run", "--db", db, "--executor", executor, call)
		if err != nil {
			t.Fatalf("failed to run scenario: %v", err)
		}
		for _, want := range []string{
			"#0 NoOp call of app 1001: success\n",
			"\toutput: 0x000c48656c6c6f2c20576f726c64\n",
			"\tlog 0: 0x151f7c75000c48656c6c6f2c20576f726c64\n",
			"#1 NoOp call of app 1001: rejected: Deliberate error\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in output %q", want, out)
			}
		}
	}
}

func TestRun_RejectsInvalidScenarios(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "transactions:\n  - wrong: 1\n",
		"unknown method":  "transactions:\n  - method: \"nope\"\n",
		"missing args":    "transactions:\n  - method: call_abi(string)string\n",
		"wrong arg type":  "transactions:\n  - method: call_abi(string)string\n    args: [[1]]\n",
		"unknown oc":      "transactions:\n  - onCompletion: Other\n",
		"invalid raw arg": "transactions:\n  - rawArgs: [\"xyz\"]\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := runApp(t, "run", writeScenario(t, content)); err == nil {
				t.Errorf("invalid scenario should be rejected")
			}
		})
	}
}

func TestRun_RequiresScenario(t *testing.T) {
	if _, err := runApp(t, "run"); err == nil {
		t.Errorf("missing scenario should be rejected")
	}
}

func TestCompare_FlavorsAgree(t *testing.T) {
	out, err := runApp(t, "compare", "--cases", "4", "--length", "5", "--jobs", "2", "native", "expr")
	if err != nil {
		t.Fatalf("failed to compare executors: %v", err)
	}
	if !strings.Contains(out, "All 4 cases passed successfully!") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCompare_RejectsUnknownExecutors(t *testing.T) {
	if _, err := runApp(t, "compare", "native", "unknown"); err == nil {
		t.Errorf("unknown executor should be rejected")
	}
}
