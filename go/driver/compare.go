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
	"time"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/conformance"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var CompareCmd = addCommonFlags(cli.Command{
	Action:    doCompare,
	Name:      "compare",
	Usage:     "Compare two executors on randomly generated transactions",
	ArgsUsage: "<reference> <candidate>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "cases",
			Usage: "number of generated cases",
			Value: conformance.DefaultCases,
		},
		&cli.IntFlag{
			Name:  "length",
			Usage: "number of transactions per case",
			Value: conformance.DefaultLength,
		},
		&cli.IntFlag{
			Name:  "max-issues",
			Usage: "aborts testing after the given number of issues",
			Value: -1,
		},
		&JobsFlag.flag,
		&SeedFlag.flag,
	},
})

func doCompare(context *cli.Context) error {
	reference, candidate := "native", "expr"
	if context.Args().Len() >= 1 {
		reference = context.Args().Get(0)
	}
	if context.Args().Len() >= 2 {
		candidate = context.Args().Get(1)
	}

	referenceExecutor, err := arco.NewExecutor(reference)
	if err != nil {
		return err
	}
	candidateExecutor, err := arco.NewExecutor(candidate)
	if err != nil {
		return err
	}

	out := context.App.Writer
	config := conformance.Config{
		Cases:     context.Int("cases"),
		Length:    context.Int("length"),
		Seed:      SeedFlag.Fetch(context),
		Jobs:      JobsFlag.Fetch(context),
		MaxIssues: context.Int("max-issues"),
		Progress: func(elapsed time.Duration, rate float64, done int64) {
			fmt.Fprintf(out,
				"[t=%4d:%02d] - Processing ~%s cases per second, total %d\n",
				int(elapsed.Seconds())/60, int(elapsed.Seconds())%60,
				unitconv.FormatPrefix(rate, unitconv.SI, 0), done,
			)
		},
	}

	fmt.Fprintf(out, "Comparing %s against %s with seed %d ...\n", candidate, reference, config.Seed)
	summary, err := conformance.Run(referenceExecutor, candidateExecutor, config)
	if err != nil {
		return fmt.Errorf("failed to compare executors: %w", err)
	}

	if len(summary.Issues) == 0 {
		fmt.Fprintf(out, "All %d cases passed successfully!\n", summary.Cases)
		return nil
	}
	for _, issue := range summary.Issues {
		fmt.Fprintf(out, "----------------------------\n")
		fmt.Fprintf(out, "%s", issue.Error())
	}
	return fmt.Errorf("found %d divergences in %d cases", len(summary.Issues), summary.Cases)
}
