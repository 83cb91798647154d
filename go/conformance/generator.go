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
	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/contracts/testingapp"
	"github.com/Fantom-foundation/Arco/go/ledger"
	"github.com/Fantom-foundation/Arco/go/processor/standard"
	"pgregory.net/rand"
)

// Case is a sequence of transactions to be run on a ledger initialized with
// Setup. The first transaction creates the application targeted by all
// following transactions.
type Case struct {
	Seed         uint64
	Setup        ledger.State
	Transactions []arco.Transaction
}

// Accounts are the senders of generated transactions.
var Accounts = []arco.Address{{1}, {2, 7}, {3, 5}}

// App is the application created by every generated case.
const App = ledger.FirstAppID

const (
	initialBalance = 10_000_000

	// Foreign references are kept small such that the decimal conversion of
	// call_abi_foreign_refs stays within the budget of every flavor.
	maxForeignID     = 1_000_000
	maxForeignRefs   = 3
	maxStringLength  = 24
	maxArrayLength   = 4
	numBoxNames      = 3
	unknownAppID     = 1
	pooledFeeFactor = 2
)

// GenerateCase produces a random case of the given number of transactions,
// not counting the creation of the application. The same seed always
// yields the same case.
func GenerateCase(seed uint64, length int) Case {
	g := generator{rand: rand.New(seed)}
	res := Case{
		Seed:         seed,
		Setup:        g.setup(),
		Transactions: make([]arco.Transaction, 0, length+1),
	}
	res.Transactions = append(res.Transactions, g.creation())
	for i := 0; i < length; i++ {
		res.Transactions = append(res.Transactions, g.transaction())
	}
	return res
}

type generator struct {
	rand *rand.Rand
}

func (g *generator) setup() ledger.State {
	balances := ledger.Balances{}
	for _, account := range Accounts {
		balances[account] = initialBalance
	}
	appBalances := []uint64{0, standard.DefaultMinBalance, 10 * standard.DefaultMinBalance}
	balances[App.Address()] = choose(g.rand, appBalances)
	return ledger.State{Balances: balances}
}

func (g *generator) creation() arco.Transaction {
	return arco.Transaction{
		Sender:       choose(g.rand, Accounts),
		OnCompletion: choose(g.rand, []arco.OnCompletion{arco.NoOp, arco.OptIn}),
		Fee:          standard.DefaultMinFee,
		GlobalSchema: testingapp.GlobalSchema(),
		LocalSchema:  testingapp.LocalSchema(),
	}
}

func (g *generator) transaction() arco.Transaction {
	res := arco.Transaction{
		Sender: choose(g.rand, Accounts),
		AppID:  g.appID(),
		Fee:    g.fee(),
	}
	if res.AppID == 0 {
		res.GlobalSchema = testingapp.GlobalSchema()
		res.LocalSchema = testingapp.LocalSchema()
	}

	switch n := g.rand.Uint64n(20); {
	case n < 4:
		res.OnCompletion = g.onCompletion()
	case n < 5:
		res.OnCompletion = arco.NoOp
		res.Args = g.invalidArgs()
	default:
		call := choose(g.rand, calls)
		res.OnCompletion = call.onCompletion
		if g.rand.Uint64n(10) == 0 {
			res.OnCompletion = g.onCompletion()
		}
		args, err := abi.MustParseMethod(call.signature).EncodeCall(call.args(g)...)
		if err != nil {
			panic(err) // < generated values always match the declared types
		}
		res.Args = args
	}

	if g.rand.Uint64n(4) == 0 {
		res.Applications = g.applications()
		res.Assets = g.assets()
		res.Accounts = g.accounts()
	}
	return res
}

func (g *generator) appID() arco.AppID {
	switch g.rand.Uint64n(40) {
	case 0:
		return 0
	case 1:
		return unknownAppID
	}
	return App
}

func (g *generator) fee() uint64 {
	switch g.rand.Uint64n(20) {
	case 0:
		return standard.DefaultMinFee - 1
	case 1, 2:
		return pooledFeeFactor * standard.DefaultMinFee
	}
	return standard.DefaultMinFee + g.rand.Uint64n(standard.DefaultMinFee)
}

func (g *generator) onCompletion() arco.OnCompletion {
	return choose(g.rand, arco.GetAllOnCompletions())
}

func (g *generator) invalidArgs() [][]byte {
	switch g.rand.Uint64n(3) {
	case 0:
		return [][]byte{g.bytes(4)}
	case 1:
		selector := abi.SelectorOf(choose(g.rand, calls).signature)
		return [][]byte{selector[:], g.bytes(int(g.rand.Uint64n(10)))}
	}
	selector := abi.SelectorOf(testingapp.SetGlobal)
	return [][]byte{selector[:], g.bytes(8)}
}

func (g *generator) applications() []arco.AppID {
	res := make([]arco.AppID, g.rand.Uint64n(maxForeignRefs+1))
	for i := range res {
		res[i] = arco.AppID(g.rand.Uint64n(maxForeignID))
	}
	return res
}

func (g *generator) assets() []arco.AssetID {
	res := make([]arco.AssetID, g.rand.Uint64n(maxForeignRefs+1))
	for i := range res {
		res[i] = arco.AssetID(g.rand.Uint64n(maxForeignID))
	}
	return res
}

func (g *generator) accounts() []arco.Address {
	res := make([]arco.Address, g.rand.Uint64n(maxForeignRefs+1))
	for i := range res {
		if g.rand.Uint64n(2) == 0 {
			res[i] = choose(g.rand, Accounts)
		} else {
			copy(res[i][:], g.bytes(len(res[i])))
		}
	}
	return res
}

func (g *generator) number() uint64 {
	switch g.rand.Uint64n(4) {
	case 0:
		return g.rand.Uint64n(16)
	case 1:
		return ^uint64(0) - g.rand.Uint64n(16)
	}
	return g.rand.Uint64()
}

func (g *generator) text() string {
	return string(g.bytes(int(g.rand.Uint64n(maxStringLength + 1))))
}

func (g *generator) bytes(size int) []byte {
	res := make([]byte, size)
	for i := range res {
		res[i] = byte(g.rand.Uint64n(256))
	}
	return res
}

func (g *generator) byte4() [4]byte {
	var res [4]byte
	copy(res[:], g.bytes(len(res)))
	return res
}

func (g *generator) boxName() [testingapp.BoxNameSize]byte {
	return [testingapp.BoxNameSize]byte{'b', 'o', 'x', byte(g.rand.Uint64n(numBoxNames))}
}

func (g *generator) boxContent() string {
	sizes := []int{0, 1, 10, 100, 1000, arco.MaxBoxSize - 2, arco.MaxBoxSize - 1}
	return string(g.bytes(choose(g.rand, sizes)))
}

func (g *generator) amount() uint64 {
	return choose(g.rand, []uint64{0, 1, standard.DefaultMinBalance, 5 * standard.DefaultMinBalance, 2 * initialBalance})
}

func (g *generator) array() []uint32 {
	res := make([]uint32, g.rand.Uint64n(maxArrayLength+1))
	for i := range res {
		res[i] = uint32(g.rand.Uint64())
	}
	return res
}

// call describes how to produce random invocations of a method.
type call struct {
	signature    string
	onCompletion arco.OnCompletion
	args         func(*generator) []any
}

var calls = []call{
	{testingapp.OptIn, arco.OptIn, noArgs},
	{testingapp.CallABI, arco.NoOp, func(g *generator) []any {
		return []any{g.text()}
	}},
	{testingapp.CallABIForeignRefs, arco.NoOp, noArgs},
	{testingapp.SetGlobal, arco.NoOp, func(g *generator) []any {
		return []any{g.number(), g.number(), g.text(), g.byte4()}
	}},
	{testingapp.SetLocal, arco.NoOp, func(g *generator) []any {
		return []any{g.number(), g.number(), g.text(), g.byte4()}
	}},
	{testingapp.IssueTransferToSender, arco.NoOp, func(g *generator) []any {
		return []any{g.amount()}
	}},
	{testingapp.SetBox, arco.NoOp, func(g *generator) []any {
		return []any{g.boxName(), g.boxContent()}
	}},
	{testingapp.Error, arco.NoOp, noArgs},
	{testingapp.EmitSwapped, arco.NoOp, func(g *generator) []any {
		return []any{g.number(), g.number()}
	}},
	{testingapp.EmitSwappedTwice, arco.NoOp, func(g *generator) []any {
		return []any{g.number(), g.number()}
	}},
	{testingapp.EmitComplex, arco.NoOp, func(g *generator) []any {
		return []any{g.number(), g.number(), g.array()}
	}},
}

func noArgs(*generator) []any {
	return nil
}

func choose[T any](rand *rand.Rand, options []T) T {
	return options[rand.Uint64n(uint64(len(options)))]
}
