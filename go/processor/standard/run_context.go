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
	"math"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// runContext is the RunContext handed to executors. It executes inner
// payments issued by the running application and records them.
type runContext struct {
	arco.TransactionContext
	app        arco.AppID
	minBalance uint64
	inner      []arco.InnerTransaction
}

func (r *runContext) Submit(transaction arco.InnerTransaction) error {
	if transaction.Type != arco.Payment {
		return arco.Rejectf("unsupported inner transaction type %v", transaction.Type)
	}
	transaction.Sender = r.app.Address()

	if transaction.Amount > math.MaxUint64-transaction.Fee {
		return arco.Reject("payment amount overflow")
	}
	total := transaction.Amount + transaction.Fee
	balance := r.GetBalance(transaction.Sender)
	if balance < total {
		return arco.Rejectf("insufficient balance: %d < %d", balance, total)
	}
	remaining := balance - total
	if remaining < r.minBalance {
		return arco.Rejectf("balance %d below min %d", remaining, r.minBalance)
	}
	r.SetBalance(transaction.Sender, remaining)

	received := r.GetBalance(transaction.Receiver)
	if received > math.MaxUint64-transaction.Amount {
		return arco.Reject("balance overflow")
	}
	r.SetBalance(transaction.Receiver, received+transaction.Amount)

	r.inner = append(r.inner, transaction)
	return nil
}
