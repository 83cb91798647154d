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
	"fmt"
	"io"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/ledger"
	"github.com/Fantom-foundation/Arco/go/router"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run the transactions of a scenario and print their receipts",
	ArgsUsage: "<scenario file>",
	Flags: []cli.Flag{
		&ExecutorFlag.flag,
		&ProcessorFlag.flag,
		&DbFlag.flag,
	},
}

// declaring is implemented by executors dispatching calls to a declared
// contract.
type declaring interface {
	Contract() *router.Contract
}

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected a single scenario file")
	}
	scenario, err := LoadScenario(context.Args().Get(0))
	if err != nil {
		return err
	}

	executor, err := arco.NewExecutor(ExecutorFlag.Fetch(context))
	if err != nil {
		return err
	}
	processor, err := arco.NewProcessor(ProcessorFlag.Fetch(context), executor)
	if err != nil {
		return err
	}

	var global, local arco.StateSchema
	if contract, ok := executor.(declaring); ok {
		global = contract.Contract().GlobalSchema()
		local = contract.Contract().LocalSchema()
	}
	transactions, err := scenario.Build(global, local)
	if err != nil {
		return err
	}

	db, err := openDatabase(DbFlag.Fetch(context))
	if err != nil {
		return err
	}
	defer db.Close()

	state, err := ledger.Load(db)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	for _, account := range scenario.Accounts {
		state.Balances[account.Address] = account.Balance
	}
	l := ledger.NewWithState(state)

	for i, transaction := range transactions {
		receipt, err := processor.Run(transaction, l)
		if err != nil {
			return fmt.Errorf("failed to run transaction %d: %w", i, err)
		}
		l.Commit()
		printReceipt(context.App.Writer, i, transaction, receipt)
	}

	if err := ledger.Save(db, l.State()); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// openDatabase opens the LevelDB database in the given directory, or an
// in-memory database if no directory is given.
func openDatabase(dir string) (ethdb.KeyValueStore, error) {
	if dir == "" {
		return memorydb.New(), nil
	}
	db, err := leveldb.New(dir, 16, 16, "", false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dir, err)
	}
	return db, nil
}

func printReceipt(out io.Writer, index int, transaction arco.Transaction, receipt arco.Receipt) {
	if receipt.Success {
		fmt.Fprintf(out, "#%d %v call of app %d: success\n", index, transaction.OnCompletion, receipt.AppID)
	} else {
		fmt.Fprintf(out, "#%d %v call of app %d: rejected: %s\n", index, transaction.OnCompletion, receipt.AppID, receipt.Message)
	}
	if len(receipt.Output) > 0 {
		fmt.Fprintf(out, "\toutput: %v\n", receipt.Output)
	}
	for i, log := range receipt.Logs {
		fmt.Fprintf(out, "\tlog %d: %v\n", i, log)
	}
	for i, inner := range receipt.InnerTransactions {
		fmt.Fprintf(out, "\tinner %d: %v of %d to %v\n", i, inner.Type, inner.Amount, inner.Receiver)
	}
	fmt.Fprintf(out, "\tbudget used: %d\n", receipt.BudgetUsed)
}
