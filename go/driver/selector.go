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

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/urfave/cli/v2"
)

var SelectorCmd = cli.Command{
	Action:    doSelector,
	Name:      "selector",
	Usage:     "Print the selector of method or event signatures",
	ArgsUsage: "<signature>...",
}

func doSelector(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("missing signature")
	}
	for _, signature := range context.Args().Slice() {
		if method, err := abi.ParseMethod(signature); err == nil {
			fmt.Fprintf(context.App.Writer, "%v %s\n", method.Selector(), method.Signature())
			continue
		}
		event, err := abi.ParseEvent(signature)
		if err != nil {
			return fmt.Errorf("invalid signature %q: %w", signature, err)
		}
		fmt.Fprintf(context.App.Writer, "%v %s\n", event.Selector(), event.Signature())
	}
	return nil
}
