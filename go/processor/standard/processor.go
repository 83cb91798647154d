// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package standard implements the default transaction processor for
// application calls. It charges fees, manages the life-cycle of applications
// and of the local states of accounts, runs the executor of the called
// application, and enforces state schemas and fee pooling.
package standard

import (
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/ethereum/go-ethereum/log"
)

const (
	DefaultMinFee     = 1_000
	DefaultMinBalance = 100_000
)

func init() {
	arco.RegisterProcessorFactory("standard", func(executor arco.Executor) arco.Processor {
		return New(executor, Config{})
	})
}

// Config collects the protocol parameters of the processor. Zero values are
// replaced by the defaults.
type Config struct {
	MinFee     uint64      // minimal fee per transaction, including inner transactions
	MinBalance uint64      // minimal balance application accounts have to retain
	Budget     arco.Budget // opcode budget of a single invocation
	Logger     log.Logger
}

func (c Config) withDefaults() Config {
	if c.MinFee == 0 {
		c.MinFee = DefaultMinFee
	}
	if c.MinBalance == 0 {
		c.MinBalance = DefaultMinBalance
	}
	if c.Budget <= 0 {
		c.Budget = arco.DefaultBudget
	}
	if c.Logger == nil {
		c.Logger = log.Root()
	}
	return c
}

// New creates a processor running the given executor for all applications.
func New(executor arco.Executor, config Config) arco.Processor {
	config = config.withDefaults()
	return &processor{
		executor: executor,
		config:   config,
		logger:   config.Logger.New("processor", "standard"),
	}
}

type processor struct {
	executor arco.Executor
	config   Config
	logger   log.Logger
}

func (p *processor) Run(
	transaction arco.Transaction,
	context arco.TransactionContext,
) (arco.Receipt, error) {
	snapshot := context.CreateSnapshot()
	receipt, err := p.run(transaction, context)
	if err != nil {
		context.RestoreSnapshot(snapshot)
		if rejection := arco.AsRejection(err); rejection != nil {
			p.logger.Debug("transaction rejected", "sender", transaction.Sender, "app", transaction.AppID, "reason", rejection.Message)
			return arco.Receipt{
				Success:    false,
				Message:    rejection.Message,
				AppID:      transaction.AppID,
				BudgetUsed: receipt.BudgetUsed,
			}, nil
		}
		p.logger.Warn("transaction failed", "sender", transaction.Sender, "app", transaction.AppID, "err", err)
		return arco.Receipt{}, err
	}
	p.logger.Debug("transaction processed",
		"sender", transaction.Sender,
		"app", receipt.AppID,
		"type", transaction.OnCompletion,
		"logs", len(receipt.Logs),
		"inner", len(receipt.InnerTransactions),
		"budget", receipt.BudgetUsed,
	)
	return receipt, nil
}

// run processes the transaction. Rejections are reported as *arco.Rejection
// errors; the caller is responsible for restoring the context in case of
// errors.
func (p *processor) run(
	transaction arco.Transaction,
	context arco.TransactionContext,
) (arco.Receipt, error) {
	logStart := len(context.GetLogs())
	sender := transaction.Sender

	if err := chargeFee(transaction, context, p.config.MinFee); err != nil {
		return arco.Receipt{}, err
	}

	app, creator, err := p.setupApp(transaction, context)
	if err != nil {
		return arco.Receipt{}, err
	}

	if err := setupLocalState(transaction.OnCompletion, app, sender, context); err != nil {
		return arco.Receipt{}, err
	}

	runContext := &runContext{
		TransactionContext: context,
		app:                app,
		minBalance:         p.config.MinBalance,
	}
	result, err := p.executor.Run(arco.Parameters{
		Invocation: arco.Invocation{
			Sender:       sender,
			AppID:        transaction.AppID,
			OnCompletion: transaction.OnCompletion,
			Args:         transaction.Args,
			Applications: transaction.Applications,
			Assets:       transaction.Assets,
			Accounts:     transaction.Accounts,
		},
		Context: runContext,
		App:     app,
		Creator: creator,
		Budget:  p.config.Budget,
	})
	if err != nil {
		return arco.Receipt{}, fmt.Errorf("failed to run app %d: %w", app, err)
	}

	receipt := arco.Receipt{
		Success:    true,
		Message:    result.Message,
		AppID:      app,
		Output:     result.Output,
		BudgetUsed: result.BudgetUsed,
	}

	switch transaction.OnCompletion {
	case arco.ClearState:
		// The local state is removed even if the clear state program rejects.
		if !result.Success {
			runContext.inner = nil
			receipt.Output = nil
		}
		context.CloseOut(app, sender)
	case arco.CloseOut:
		if !result.Success {
			return receipt, arco.Reject(result.Message)
		}
		context.CloseOut(app, sender)
	case arco.DeleteApplication:
		if !result.Success {
			return receipt, arco.Reject(result.Message)
		}
		context.DeleteApp(app)
	default:
		if !result.Success {
			return receipt, arco.Reject(result.Message)
		}
	}

	if err := checkSchemas(transaction, app, context); err != nil {
		return receipt, err
	}
	if err := checkFees(transaction.Fee, runContext.inner, p.config.MinFee); err != nil {
		return receipt, err
	}

	logs := context.GetLogs()[logStart:]
	if len(logs) > 0 {
		receipt.Logs = append([]arco.Log(nil), logs...)
	}
	receipt.InnerTransactions = runContext.inner
	return receipt, nil
}

func chargeFee(transaction arco.Transaction, context arco.TransactionContext, minFee uint64) error {
	if transaction.Fee < minFee {
		return arco.Rejectf("transaction fee too small: %d < %d", transaction.Fee, minFee)
	}
	balance := context.GetBalance(transaction.Sender)
	if balance < transaction.Fee {
		return arco.Rejectf("insufficient balance: %d < %d", balance, transaction.Fee)
	}
	context.SetBalance(transaction.Sender, balance-transaction.Fee)
	return nil
}

// setupApp resolves the called application, creating it if needed, and
// returns its id and creator.
func (p *processor) setupApp(
	transaction arco.Transaction,
	context arco.TransactionContext,
) (arco.AppID, arco.Address, error) {
	if transaction.AppID != 0 {
		params, found := context.GetApp(transaction.AppID)
		if !found {
			return 0, arco.Address{}, arco.Rejectf("application %d does not exist", transaction.AppID)
		}
		return transaction.AppID, params.Creator, nil
	}

	oc := transaction.OnCompletion
	if oc != arco.NoOp && oc != arco.OptIn {
		return 0, arco.Address{}, arco.Rejectf("applications can not be created by %v calls", oc)
	}
	app := context.CreateApp(arco.AppParams{
		Creator:      transaction.Sender,
		GlobalSchema: transaction.GlobalSchema,
		LocalSchema:  transaction.LocalSchema,
	})
	p.logger.Debug("application created", "app", app, "creator", transaction.Sender)
	return app, transaction.Sender, nil
}

func setupLocalState(
	oc arco.OnCompletion,
	app arco.AppID,
	sender arco.Address,
	context arco.TransactionContext,
) error {
	switch oc {
	case arco.OptIn:
		if context.IsOptedIn(app, sender) {
			return arco.Rejectf("account %v has already opted in to app %d", sender, app)
		}
		context.OptIn(app, sender)
	case arco.CloseOut, arco.ClearState:
		if !context.IsOptedIn(app, sender) {
			return arco.Rejectf("account %v is not opted in to app %d", sender, app)
		}
	}
	return nil
}

// checkSchemas verifies that the global state of the application and the
// local states of the accounts referenced by the transaction fit into the
// schemas declared at creation.
func checkSchemas(transaction arco.Transaction, app arco.AppID, context arco.TransactionContext) error {
	params, found := context.GetApp(app)
	if !found {
		return nil
	}
	numUint, numBytes := countEntries(context.GetGlobalKeys(app), func(key string) (arco.Value, bool) {
		return context.GetGlobal(app, key)
	})
	if !params.GlobalSchema.Allows(numUint, numBytes) {
		return arco.Rejectf("global state of app %d exceeds schema %v", app, params.GlobalSchema)
	}

	accounts := append([]arco.Address{transaction.Sender}, transaction.Accounts...)
	for _, account := range accounts {
		if !context.IsOptedIn(app, account) {
			continue
		}
		numUint, numBytes := countEntries(context.GetLocalKeys(app, account), func(key string) (arco.Value, bool) {
			return context.GetLocal(app, account, key)
		})
		if !params.LocalSchema.Allows(numUint, numBytes) {
			return arco.Rejectf("local state of %v exceeds schema %v", account, params.LocalSchema)
		}
	}
	return nil
}

func countEntries(keys []string, get func(string) (arco.Value, bool)) (numUint, numBytes uint64) {
	for _, key := range keys {
		value, _ := get(key)
		switch value.Type {
		case arco.UintType:
			numUint++
		case arco.BytesType:
			numBytes++
		}
	}
	return numUint, numBytes
}

// checkFees verifies that the fee of the transaction covers the minimal fee
// of the inner transactions it has issued.
func checkFees(fee uint64, inner []arco.InnerTransaction, minFee uint64) error {
	total := fee
	for _, tx := range inner {
		total += tx.Fee
	}
	required := minFee * uint64(1+len(inner))
	if total < required {
		return arco.Rejectf("fee too small: %d < %d", total, required)
	}
	return nil
}
