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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/ledger"
)

type testContext struct {
	*ledger.Ledger
}

func (testContext) Submit(arco.InnerTransaction) error {
	return arco.Reject("payments not supported")
}

var errInjected = fmt.Errorf("injected")

func testContract() Contract {
	return Contract{
		Name: "Test",
		Global: []StateField{
			{Name: "counter", Type: arco.UintType},
			{Name: "name", Type: arco.BytesType},
		},
		Local:  []StateField{{Name: "flag", Type: arco.UintType}},
		Boxes:  []BoxMap{{Name: "box", KeyType: "byte[4]", ValueType: "string"}},
		Events: []string{"Counted(uint64)"},
		Methods: []Method{
			{
				Signature: "echo(string)string",
				ArgNames:  []string{"value"},
				ReadOnly:  true,
				Handler: func(c *Call) (any, error) {
					return "x" + c.Args[0].(string), nil
				},
			},
			{
				Signature: "add(uint64,uint64)uint128",
				Create:    Allow,
				Handler: func(c *Call) (any, error) {
					return c.Args[0].(uint64) + c.Args[1].(uint64), nil
				},
			},
			{
				Signature: "raw()byte[2]",
				Handler: func(c *Call) (any, error) {
					return Encoded{1, 2}, nil
				},
			},
			{
				Signature: "count()void",
				Events:    []string{"Counted(uint64)"},
				Handler: func(c *Call) (any, error) {
					value, _, err := c.GlobalGet("counter")
					if err != nil {
						return nil, err
					}
					return nil, c.GlobalPut("counter", arco.NewUint(value.Uint+1))
				},
			},
			{
				Signature: "join()void",
				Actions:   ActionsOf(arco.OptIn),
				Handler:   func(c *Call) (any, error) { return nil, nil },
			},
			{
				Signature: "boom()void",
				Handler:   func(c *Call) (any, error) { return nil, errInjected },
			},
			{
				Signature: "bad()uint8",
				Handler:   func(c *Call) (any, error) { return 256, nil },
			},
		},
		Bare: []Bare{
			{
				Name:    "create",
				Actions: ActionsOf(arco.NoOp, arco.OptIn),
				Create:  Require,
				Handler: func(c *Call) (any, error) { return nil, nil },
			},
			{
				Name:    "update",
				Actions: ActionsOf(arco.UpdateApplication),
				Handler: func(c *Call) (any, error) {
					return nil, c.Assert(c.Sender() == c.Creator(), "unauthorized")
				},
			},
		},
	}
}

var (
	creator = arco.Address{1}
	other   = arco.Address{2}
)

// runCall executes a call of the given router on an existing application
// created by the creator.
func runCall(t *testing.T, r *Router, sender arco.Address, oc arco.OnCompletion, args ...[]byte) (arco.Result, *ledger.Ledger) {
	t.Helper()
	l := ledger.New()
	app := l.CreateApp(arco.AppParams{Creator: creator})
	l.Commit()
	result, err := r.Run(arco.Parameters{
		Invocation: arco.Invocation{Sender: sender, AppID: app, OnCompletion: oc, Args: args},
		Context:    testContext{l},
		App:        app,
		Creator:    creator,
		Budget:     arco.DefaultBudget,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result, l
}

func encodeCall(t *testing.T, signature string, values ...any) [][]byte {
	t.Helper()
	args, err := abi.MustParseMethod(signature).EncodeCall(values...)
	if err != nil {
		t.Fatalf("failed to encode call: %v", err)
	}
	return args
}

func TestRouter_ImplementsExecutor(t *testing.T) {
	var _ arco.Executor = &Router{}
}

func TestRouter_MethodsProduceReturnValues(t *testing.T) {
	r := MustNew(testContract())
	tests := map[string]struct {
		args [][]byte
		want string
	}{
		"string": {
			args: encodeCall(t, "echo(string)string", "ab"),
			want: "0003786162",
		},
		"uint128": {
			args: encodeCall(t, "add(uint64,uint64)uint128", 1, 2),
			want: "00000000000000000000000000000003",
		},
		"pre-encoded": {
			args: encodeCall(t, "raw()byte[2]"),
			want: "0102",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result, l := runCall(t, r, other, arco.NoOp, test.args...)
			if !result.Success {
				t.Fatalf("unexpected rejection: %s", result.Message)
			}
			if got := hex.EncodeToString(result.Output); test.want != got {
				t.Errorf("unexpected output, want %s, got %s", test.want, got)
			}
			logs := l.GetLogs()
			if len(logs) != 1 || !bytes.Equal(logs[0], append(bytes.Clone(abi.ReturnPrefix), result.Output...)) {
				t.Errorf("unexpected logs %v", logs)
			}
		})
	}
}

func TestRouter_InvalidCallsAreRejected(t *testing.T) {
	r := MustNew(testContract())
	echo := encodeCall(t, "echo(string)string", "ab")
	tests := map[string]struct {
		sender arco.Address
		oc     arco.OnCompletion
		args   [][]byte
		want   string
	}{
		"unknown selector": {
			args: [][]byte{{1, 2, 3, 4}},
			want: "unknown method selector 0x01020304",
		},
		"short selector": {
			args: [][]byte{{1, 2, 3}},
			want: "invalid method selector 0x010203",
		},
		"wrong call type": {
			oc:   arco.OptIn,
			args: echo,
			want: "echo does not support OptIn calls",
		},
		"missing argument": {
			args: echo[:1],
			want: "invalid arguments: echo expects 1 arguments, got 0",
		},
		"malformed argument": {
			args: [][]byte{echo[0], {0, 5}},
		},
		"bare call type": {
			oc:   arco.DeleteApplication,
			want: "no bare method for DeleteApplication calls",
		},
		"bare requires creation": {
			oc:   arco.NoOp,
			want: "create can only be called during creation",
		},
		"unauthorized": {
			sender: other,
			oc:     arco.UpdateApplication,
			want:   "unauthorized",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result, l := runCall(t, r, test.sender, test.oc, test.args...)
			if result.Success {
				t.Fatalf("expected rejection")
			}
			if test.want != "" && test.want != result.Message {
				t.Errorf("unexpected message, want %q, got %q", test.want, result.Message)
			}
			if logs := l.GetLogs(); len(logs) != 0 {
				t.Errorf("rejected call produced logs %v", logs)
			}
		})
	}
}

func TestRouter_AuthorizedBareCallSucceeds(t *testing.T) {
	r := MustNew(testContract())
	result, _ := runCall(t, r, creator, arco.UpdateApplication)
	if !result.Success {
		t.Errorf("unexpected rejection: %s", result.Message)
	}
}

func TestRouter_CreationInitializesGlobalState(t *testing.T) {
	r := MustNew(testContract())
	tests := map[string]struct {
		oc      arco.OnCompletion
		args    [][]byte
		success bool
	}{
		"bare noop":          {oc: arco.NoOp, success: true},
		"bare opt-in":        {oc: arco.OptIn, success: true},
		"method allowing":    {oc: arco.NoOp, args: encodeCall(t, "add(uint64,uint64)uint128", 1, 2), success: true},
		"method not allowed": {oc: arco.NoOp, args: encodeCall(t, "echo(string)string", "")},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			l := ledger.New()
			app := l.CreateApp(arco.AppParams{Creator: creator})
			result, err := r.Run(arco.Parameters{
				Invocation: arco.Invocation{Sender: creator, OnCompletion: test.oc, Args: test.args},
				Context:    testContext{l},
				App:        app,
				Creator:    creator,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.success, result.Success; want != got {
				t.Fatalf("unexpected success, want %t, got %t (%s)", want, got, result.Message)
			}
			counter, found := l.GetGlobal(app, "counter")
			if want, got := test.success, found; want != got {
				t.Fatalf("unexpected presence of global counter, want %t, got %t", want, got)
			}
			if !test.success {
				return
			}
			if !counter.Equal(arco.NewUint(0)) {
				t.Errorf("unexpected counter value %v", counter)
			}
			if name, _ := l.GetGlobal(app, "name"); !name.Equal(arco.NewBytes(nil)) {
				t.Errorf("unexpected name value %v", name)
			}
		})
	}
}

func TestRouter_ClearStateApprovesByDefault(t *testing.T) {
	r := MustNew(testContract())
	result, _ := runCall(t, r, other, arco.ClearState, encodeCall(t, "boom()void")...)
	if !result.Success {
		t.Errorf("clear state should approve, got %s", result.Message)
	}

	contract := testContract()
	contract.ClearState = func(c *Call) (any, error) { return nil, c.Fail("no") }
	result, _ = runCall(t, MustNew(contract), other, arco.ClearState)
	if result.Success || result.Message != "no" {
		t.Errorf("unexpected result of clear state program: %+v", result)
	}
}

func TestRouter_HostFailuresArePropagated(t *testing.T) {
	r := MustNew(testContract())
	l := ledger.New()
	app := l.CreateApp(arco.AppParams{})
	for _, signature := range []string{"boom()void", "bad()uint8"} {
		_, err := r.Run(arco.Parameters{
			Invocation: arco.Invocation{AppID: app, Args: encodeCall(t, signature)},
			Context:    testContext{l},
			App:        app,
		})
		if err == nil {
			t.Errorf("expected host failure for %s", signature)
		}
	}
	_, err := r.Run(arco.Parameters{
		Invocation: arco.Invocation{AppID: app, Args: encodeCall(t, "boom()void")},
		Context:    testContext{l},
		App:        app,
	})
	if !errors.Is(err, errInjected) {
		t.Errorf("expected injected error, got %v", err)
	}
}

func TestRouter_StateChangesPersistAcrossCalls(t *testing.T) {
	r := MustNew(testContract())
	l := ledger.New()
	app := l.CreateApp(arco.AppParams{Creator: creator})
	l.SetGlobal(app, "counter", arco.NewUint(0))
	for i := 0; i < 3; i++ {
		result, err := r.Run(arco.Parameters{
			Invocation: arco.Invocation{AppID: app, Args: encodeCall(t, "count()void")},
			Context:    testContext{l},
			App:        app,
		})
		if err != nil || !result.Success {
			t.Fatalf("unexpected result %+v, %v", result, err)
		}
	}
	if value, _ := l.GetGlobal(app, "counter"); !value.Equal(arco.NewUint(3)) {
		t.Errorf("unexpected counter value %v", value)
	}
}

func TestNew_InvalidDeclarationsAreRejected(t *testing.T) {
	noop := func(*Call) (any, error) { return nil, nil }
	tests := map[string]func(c *Contract){
		"invalid signature": func(c *Contract) {
			c.Methods = append(c.Methods, Method{Signature: "x(", Handler: noop})
		},
		"duplicate method": func(c *Contract) {
			c.Methods = append(c.Methods, c.Methods[0])
		},
		"missing handler": func(c *Contract) {
			c.Methods = append(c.Methods, Method{Signature: "y()void"})
		},
		"argument names": func(c *Contract) {
			c.Methods = append(c.Methods, Method{Signature: "y(uint8)void", ArgNames: []string{"a", "b"}, Handler: noop})
		},
		"clear state method": func(c *Contract) {
			c.Methods = append(c.Methods, Method{Signature: "y()void", Actions: ActionsOf(arco.ClearState), Handler: noop})
		},
		"overlapping bare": func(c *Contract) {
			c.Bare = append(c.Bare, Bare{Name: "x", Actions: ActionsOf(arco.OptIn), Handler: noop})
		},
		"clear state bare": func(c *Contract) {
			c.Bare = append(c.Bare, Bare{Name: "x", Actions: ActionsOf(arco.ClearState), Handler: noop})
		},
		"invalid event": func(c *Contract) {
			c.Events = append(c.Events, "E(uint1)")
		},
	}
	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			contract := testContract()
			modify(&contract)
			if _, err := New(contract); err == nil {
				t.Errorf("expected declaration to be rejected")
			}
		})
	}
}

func TestRouter_LookupAndMethodBySignature(t *testing.T) {
	r := MustNew(testContract())
	selector := abi.SelectorOf("echo(string)string")
	method, found := r.Lookup(selector[:])
	if !found || method.Signature != "echo(string)string" {
		t.Errorf("failed to look up method by selector")
	}
	if _, found := r.Lookup([]byte{1}); found {
		t.Errorf("invalid selector should not be found")
	}
	for _, name := range []string{"echo", "echo(string)string"} {
		m, err := r.MethodBySignature(name)
		if err != nil || m.Name != "echo" {
			t.Errorf("failed to look up %q: %v", name, err)
		}
	}
	if _, err := r.MethodBySignature("missing"); err == nil {
		t.Errorf("expected unknown method to be reported")
	}
	if want, got := 7, len(r.Methods()); want != got {
		t.Errorf("unexpected number of methods, want %d, got %d", want, got)
	}
}

func TestRouter_Describe(t *testing.T) {
	r := MustNew(testContract())
	desc := r.Describe()
	if want, got := "Test", desc.Name; want != got {
		t.Errorf("unexpected name, want %s, got %s", want, got)
	}
	if want, got := (SchemaDescription{Ints: 1, Bytes: 1}), desc.State.Schema.Global; want != got {
		t.Errorf("unexpected global schema, want %v, got %v", want, got)
	}
	if want, got := (SchemaDescription{Ints: 1}), desc.State.Schema.Local; want != got {
		t.Errorf("unexpected local schema, want %v, got %v", want, got)
	}
	if want, got := "AVMBytes", desc.State.Keys.Global["name"].ValueType; want != got {
		t.Errorf("unexpected value type, want %s, got %s", want, got)
	}
	if want, got := []string{"NoOp", "OptIn"}, desc.BareActions.Create; fmt.Sprint(want) != fmt.Sprint(got) {
		t.Errorf("unexpected bare create actions, want %v, got %v", want, got)
	}
	if want, got := []string{"UpdateApplication"}, desc.BareActions.Call; fmt.Sprint(want) != fmt.Sprint(got) {
		t.Errorf("unexpected bare call actions, want %v, got %v", want, got)
	}

	echo := desc.Methods[0]
	if echo.Name != "echo" || !echo.ReadOnly || echo.Returns.Type != "string" || echo.Args[0].Name != "value" {
		t.Errorf("unexpected description of echo: %+v", echo)
	}
	add := desc.Methods[1]
	if len(add.Actions.Create) != 1 || len(add.Actions.Call) != 1 {
		t.Errorf("unexpected actions of add: %+v", add.Actions)
	}
	if want, got := "Counted", desc.Methods[3].Events[0].Name; want != got {
		t.Errorf("unexpected event, want %s, got %s", want, got)
	}

	data, err := r.DescribeJSON()
	if err != nil {
		t.Fatalf("failed to produce JSON: %v", err)
	}
	var decoded Description
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if want, got := []byte("counter"), decoded.State.Keys.Global["counter"].Key; !bytes.Equal(want, got) {
		t.Errorf("unexpected key, want %q, got %q", want, got)
	}
}

func TestActions_String(t *testing.T) {
	if want, got := "{NoOp,DeleteApplication}", ActionsOf(arco.DeleteApplication, arco.NoOp).String(); want != got {
		t.Errorf("unexpected string, want %s, got %s", want, got)
	}
	if want, got := "{}", Actions(0).String(); want != got {
		t.Errorf("unexpected string, want %s, got %s", want, got)
	}
}
