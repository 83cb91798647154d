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
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// DiffReceipts lists the differences between two receipts. The used budget
// is not compared since it depends on the executor.
func DiffReceipts(want, got arco.Receipt) []string {
	var res []string
	if want.Success != got.Success {
		res = append(res, fmt.Sprintf("different success: %t != %t", want.Success, got.Success))
	}
	if want.Message != got.Message {
		res = append(res, fmt.Sprintf("different message: %q != %q", want.Message, got.Message))
	}
	if want.AppID != got.AppID {
		res = append(res, fmt.Sprintf("different app ID: %d != %d", want.AppID, got.AppID))
	}
	if !bytes.Equal(want.Output, got.Output) {
		res = append(res, fmt.Sprintf("different output: %v != %v", want.Output, got.Output))
	}

	if len(want.Logs) != len(got.Logs) {
		res = append(res, fmt.Sprintf("different number of logs: %d != %d", len(want.Logs), len(got.Logs)))
	} else {
		for i := range want.Logs {
			if !bytes.Equal(want.Logs[i], got.Logs[i]) {
				res = append(res, fmt.Sprintf("different log %d: %v != %v", i, want.Logs[i], got.Logs[i]))
			}
		}
	}

	if len(want.InnerTransactions) != len(got.InnerTransactions) {
		res = append(res, fmt.Sprintf("different number of inner transactions: %d != %d", len(want.InnerTransactions), len(got.InnerTransactions)))
	} else {
		for i := range want.InnerTransactions {
			if want.InnerTransactions[i] != got.InnerTransactions[i] {
				res = append(res, fmt.Sprintf("different inner transaction %d: %+v != %+v", i, want.InnerTransactions[i], got.InnerTransactions[i]))
			}
		}
	}
	return res
}
