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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

type verbosityFlagType struct {
	flag cli.IntFlag
}

var VerbosityFlag = verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 2,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.flag.Name)
}

type executorFlagType struct {
	flag cli.StringFlag
}

var ExecutorFlag = executorFlagType{
	cli.StringFlag{
		Name:    "executor",
		Aliases: []string{"e"},
		Usage:   "name of the executor running the application",
		Value:   "native",
	},
}

func (f *executorFlagType) Fetch(context *cli.Context) string {
	return context.String(f.flag.Name)
}

type processorFlagType struct {
	flag cli.StringFlag
}

var ProcessorFlag = processorFlagType{
	cli.StringFlag{
		Name:  "processor",
		Usage: "name of the processor running transactions",
		Value: "standard",
	},
}

func (f *processorFlagType) Fetch(context *cli.Context) string {
	return context.String(f.flag.Name)
}

type dbFlagType struct {
	flag cli.StringFlag
}

var DbFlag = dbFlagType{
	cli.StringFlag{
		Name:      "db",
		Usage:     "directory of a LevelDB database holding the ledger, kept in memory if empty",
		TakesFile: true,
	},
}

func (f *dbFlagType) Fetch(context *cli.Context) string {
	return context.String(f.flag.Name)
}

type jobsFlagType struct {
	flag cli.IntFlag
}

var JobsFlag = jobsFlagType{
	cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of jobs run simultaneously",
		Value:   runtime.NumCPU(),
	},
}

func (f *jobsFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.flag.Name)
}

type seedFlagType struct {
	flag cli.Uint64Flag
}

var SeedFlag = seedFlagType{
	cli.Uint64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "seed for the random number generator",
	},
}

func (f *seedFlagType) Fetch(context *cli.Context) uint64 {
	return context.Uint64(f.flag.Name)
}

type cpuProfileType struct {
	flag cli.StringFlag
}

var CpuProfileFlag = cpuProfileType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *cpuProfileType) Fetch(context *cli.Context) string {
	return context.String(f.flag.Name)
}

// addCommonFlags equips the command with the flags shared by long running
// commands.
func addCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, &CpuProfileFlag.flag)

	action := command.Action
	command.Action = func(context *cli.Context) error {
		if filename := CpuProfileFlag.Fetch(context); filename != "" {
			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}
		return action(context)
	}
	return command
}

func setDefaultLogger(verbosity int) {
	handler := log.NewGlogHandler(log.NewTerminalHandler(os.Stderr, true))
	handler.Verbosity(log.FromLegacyLevel(verbosity))
	log.SetDefault(log.NewLogger(handler))
}
