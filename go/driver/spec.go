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

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/urfave/cli/v2"
)

var SpecCmd = cli.Command{
	Action:    doSpec,
	Name:      "spec",
	Usage:     "Print the JSON description of the contract implemented by an executor",
	ArgsUsage: "<executor>",
}

// describer is implemented by executors declaring their contract.
type describer interface {
	DescribeJSON() ([]byte, error)
}

func doSpec(context *cli.Context) error {
	name := "native"
	if context.Args().Len() >= 1 {
		name = context.Args().Get(0)
	}
	executor, err := arco.NewExecutor(name)
	if err != nil {
		return err
	}
	contract, ok := executor.(describer)
	if !ok {
		return fmt.Errorf("executor %s does not describe its contract", name)
	}
	description, err := contract.DescribeJSON()
	if err != nil {
		return fmt.Errorf("failed to describe contract: %w", err)
	}
	fmt.Fprintln(context.App.Writer, string(description))
	return nil
}
