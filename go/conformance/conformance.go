// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


// Package conformance compares executors by running random sequences of
// transactions on both of them and checking that the resulting receipts and
// ledger states are identical.
package conformance

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/ledger"
	"github.com/Fantom-foundation/Arco/go/processor/standard"
	"github.com/ethereum/go-ethereum/log"
)

const (
	DefaultCases            = 1000
	DefaultLength           = 20
	DefaultProgressInterval = 5 * time.Second
)

// Config controls a comparison run. Zero values are replaced by defaults.
type Config struct {
	Cases     int    // number of generated cases
	Length    int    // number of transactions per case
	Seed      uint64 // case i is generated using seed Seed+i
	Jobs      int    // number of cases processed in parallel
	MaxIssues int    // stop after this many issues, unlimited if zero

	Processor standard.Config

	// Progress is called periodically while cases are processed, reporting
	// the elapsed time, the current rate in cases per second and the number
	// of processed cases.
	Progress         func(elapsed time.Duration, rate float64, done int64)
	ProgressInterval time.Duration

	Logger log.Logger
}

func (c Config) withDefaults() Config {
	if c.Cases <= 0 {
		c.Cases = DefaultCases
	}
	if c.Length <= 0 {
		c.Length = DefaultLength
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = DefaultProgressInterval
	}
	if c.Logger == nil {
		c.Logger = log.Root()
	}
	return c
}

// Issue describes the first divergence found in a case.
type Issue struct {
	Case        Case
	Step        int // index of the diverging transaction in the case
	Differences []string
}

func (i *Issue) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "case with seed %d diverged in step %d", i.Case.Seed, i.Step)
	if i.Step < len(i.Case.Transactions) {
		fmt.Fprintf(&builder, " running %s", formatTransaction(i.Case.Transactions[i.Step]))
	}
	builder.WriteString(":\n")
	for _, diff := range i.Differences {
		fmt.Fprintf(&builder, "\t%s\n", diff)
	}
	return builder.String()
}

// Summary is the outcome of a comparison run.
type Summary struct {
	Cases  int64   // number of fully processed cases
	Issues []Issue // sorted by case seed
}

// Run compares the candidate executor against the reference executor on
// randomly generated cases. Divergences are reported as issues of the
// summary; an error is only returned if the execution of a case failed.
func Run(reference, candidate arco.Executor, config Config) (Summary, error) {
	config = config.withDefaults()
	logger := config.Logger.New("seed", config.Seed, "cases", config.Cases)
	logger.Debug("starting comparison", "jobs", config.Jobs, "length", config.Length)

	var workers sync.WaitGroup
	var caseCounter atomic.Int64
	var abort atomic.Bool

	var issuesMutex sync.Mutex
	var issues []Issue

	var errorMutex sync.Mutex
	var returnError error

	done := make(chan struct{})
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		if config.Progress == nil {
			return
		}
		ticker := time.NewTicker(config.ProgressInterval)
		defer ticker.Stop()
		startTime := time.Now()
		lastTime := startTime
		lastCounter := int64(0)
		for {
			select {
			case <-done:
				return
			case curTime := <-ticker.C:
				cur := caseCounter.Load()
				rate := float64(cur-lastCounter) / curTime.Sub(lastTime).Seconds()
				lastTime, lastCounter = curTime, cur
				config.Progress(curTime.Sub(startTime), rate, cur)
			}
		}
	}()

	seeds := make(chan uint64, 10*config.Jobs)
	workers.Add(config.Jobs)
	for i := 0; i < config.Jobs; i++ {
		go func() {
			defer workers.Done()
			for seed := range seeds {
				if abort.Load() {
					continue // < drain the channel
				}
				issue, err := RunCase(reference, candidate, GenerateCase(seed, config.Length), config.Processor)
				if err != nil {
					abort.Store(true)
					errorMutex.Lock()
					returnError = err
					errorMutex.Unlock()
					continue
				}
				caseCounter.Add(1)
				if issue == nil {
					continue
				}
				logger.Debug("found divergence", "case", seed, "step", issue.Step)
				issuesMutex.Lock()
				issues = append(issues, *issue)
				if config.MaxIssues > 0 && len(issues) >= config.MaxIssues {
					abort.Store(true)
				}
				issuesMutex.Unlock()
			}
		}()
	}

	for i := 0; i < config.Cases && !abort.Load(); i++ {
		seeds <- config.Seed + uint64(i)
	}
	close(seeds)
	workers.Wait()

	close(done)
	<-printerDone

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].Case.Seed < issues[j].Case.Seed
	})
	summary := Summary{Cases: caseCounter.Load(), Issues: issues}
	logger.Debug("finished comparison", "processed", summary.Cases, "issues", len(issues))
	return summary, returnError
}

// RunCase runs the given case on fresh ledgers using the reference and the
// candidate executor. It returns the first divergence, or nil if both runs
// produced identical receipts and states.
func RunCase(reference, candidate arco.Executor, c Case, config standard.Config) (*Issue, error) {
	referenceLedger := ledger.NewWithState(c.Setup)
	candidateLedger := ledger.NewWithState(c.Setup)
	referenceProcessor := standard.New(reference, config)
	candidateProcessor := standard.New(candidate, config)

	for step, transaction := range c.Transactions {
		want, err := referenceProcessor.Run(transaction, referenceLedger)
		if err != nil {
			return nil, fmt.Errorf("reference failed in step %d of case %d: %w", step, c.Seed, err)
		}
		got, err := candidateProcessor.Run(transaction, candidateLedger)
		if err != nil {
			return nil, fmt.Errorf("candidate failed in step %d of case %d: %w", step, c.Seed, err)
		}
		referenceLedger.Commit()
		candidateLedger.Commit()

		diffs := DiffReceipts(want, got)
		diffs = append(diffs, referenceLedger.State().Diff(candidateLedger.State())...)
		if len(diffs) > 0 {
			return &Issue{Case: c, Step: step, Differences: diffs}, nil
		}
	}
	return nil, nil
}

func formatTransaction(tx arco.Transaction) string {
	args := make([]string, 0, len(tx.Args))
	for _, arg := range tx.Args {
		args = append(args, arco.Data(arg).String())
	}
	return fmt.Sprintf("%v call of app %d by %v with args [%s]", tx.OnCompletion, tx.AppID, tx.Sender, strings.Join(args, ", "))
}
