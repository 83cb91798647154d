// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arco

import (
	"errors"
	"fmt"
)

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	ErrAppNotFound      = ConstError("application does not exist")
	ErrUnknownExecutor  = ConstError("unknown executor")
	ErrUnknownProcessor = ConstError("unknown processor")
)

// Rejection signals that an invocation was refused by the contract or by the
// ledger on behalf of the contract. A rejection is not a failure of the
// host: it is reported as an unsuccessful Result or Receipt, and all effects
// of the invocation are discarded.
type Rejection struct {
	Message string
}

// Reject creates a rejection carrying the given diagnostic message.
func Reject(message string) *Rejection {
	return &Rejection{Message: message}
}

// Rejectf creates a rejection with a formatted diagnostic message.
func Rejectf(format string, args ...any) *Rejection {
	return &Rejection{Message: fmt.Sprintf(format, args...)}
}

func (r *Rejection) Error() string {
	return "rejected: " + r.Message
}

// AsRejection extracts a rejection from the given error chain. The result is
// nil if the error is not caused by a rejection.
func AsRejection(err error) *Rejection {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection
	}
	return nil
}
