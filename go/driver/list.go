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
	"sort"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "List all registered executors and processors",
}

func doList(context *cli.Context) error {
	out := context.App.Writer

	executors := maps.Keys(arco.GetAllRegisteredExecutors())
	sort.Strings(executors)
	fmt.Fprintln(out, "executors:")
	for _, name := range executors {
		fmt.Fprintf(out, "  %s\n", name)
	}

	processors := maps.Keys(arco.GetAllRegisteredProcessorFactories())
	sort.Strings(processors)
	fmt.Fprintln(out, "processors:")
	for _, name := range processors {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
