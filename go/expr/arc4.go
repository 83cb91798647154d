// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package expr

import (
	"github.com/Fantom-foundation/Arco/go/abi"
)

// This file provides shorthands for the ARC-4 encoding of arguments and
// events in terms of the basic operations.

// ArgUint decodes a uint64 argument.
func ArgUint(i int) Expr {
	return Btoi(Arg(i))
}

// ArgString yields the content of a string argument.
func ArgString(i int) Expr {
	return Suffix(Arg(i), 2)
}

// EventSelector yields the log prefix of the event with the given signature.
func EventSelector(signature string) Expr {
	selector := abi.MustParseEvent(signature).Selector()
	return Bytes(selector[:])
}

// Emit logs an event. The fields have to be ARC-4 encoded, the head and tail
// layout of dynamic fields is up to the caller.
func Emit(signature string, fields ...Expr) Expr {
	return Log(Concat(append([]Expr{EventSelector(signature)}, fields...)...))
}
