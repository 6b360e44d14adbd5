// Copyright 2025 go-introsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	introsort "github.com/ajroetker/go-introsort"
	"github.com/ajroetker/go-introsort/internal/cpuinfo"
	"github.com/ajroetker/go-introsort/internal/workerpool"
	"github.com/ajroetker/go-introsort/internal/workload"
)

// benchSorters maps --algos names to comparator entry points.
var benchSorters = map[string]func(x []int, cmp func(a, b int) int){
	algoIntro:     introsort.SortFunc[int],
	algoHeap:      introsort.HeapSortFunc[int],
	algoInsertion: introsort.InsertionSortFunc[int],
}

type benchOptions struct {
	n        int
	seed     int64
	patterns []string
	algos    []string
	workers  int
}

// trial is one (pattern, algorithm) run.
type trial struct {
	pattern workload.Pattern
	algo    string
	sort    func(x []int, cmp func(a, b int) int)

	comparisons int
	elapsed     time.Duration
	sorted      bool
}

func (t *trial) run(n int, seed int64) {
	in := t.pattern.Gen(n, seed)
	count := 0
	compare := func(a, b int) int {
		count++
		return in.Compare(a, b)
	}

	start := time.Now()
	t.sort(in.Data, compare)
	t.elapsed = time.Since(start)
	t.comparisons = count
	t.sorted = introsort.IsSortedFunc(in.Data, in.Compare)
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{
		patterns: lo.Map(workload.Patterns(), func(p workload.Pattern, _ int) string { return p.Name }),
		algos:    []string{algoIntro, algoHeap},
	}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Count comparisons on adversarial input patterns",
		Long: `Bench sorts every selected pattern with every selected algorithm, counts
comparator calls and reports them relative to n*log2(n). It fails if any
output is not sorted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.n, "n", "n", 10000, "elements per input")
	f.Int64Var(&opts.seed, "seed", 1, "seed for the random patterns")
	f.StringSliceVarP(&opts.patterns, "patterns", "p", opts.patterns, "input patterns")
	f.StringSliceVarP(&opts.algos, "algos", "a", opts.algos, "algorithms: intro, heap, insertion")
	f.IntVarP(&opts.workers, "workers", "w", 0, "concurrent trials (0 means GOMAXPROCS)")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, opts benchOptions) error {
	if opts.n < 0 {
		return errors.Errorf("--n must not be negative, got %d", opts.n)
	}

	var trials []trial
	for _, name := range opts.patterns {
		p, ok := workload.ByName(name)
		if !ok {
			return errors.Errorf("unknown pattern %q", name)
		}
		for _, algo := range opts.algos {
			sortFn, ok := benchSorters[algo]
			if !ok {
				return errors.Errorf("unknown algorithm %q", algo)
			}
			trials = append(trials, trial{pattern: p, algo: algo, sort: sortFn})
		}
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	start := time.Now()
	pool.Each(len(trials), func(i int) {
		trials[i].run(opts.n, opts.seed)
	})
	a.log.Info("bench finished",
		zap.Int("trials", len(trials)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Duration("elapsed", time.Since(start)))

	if err := writeReport(cmd, opts, trials); err != nil {
		return err
	}

	unsorted := lo.Filter(trials, func(t trial, _ int) bool { return !t.sorted })
	if len(unsorted) > 0 {
		names := lo.Map(unsorted, func(t trial, _ int) string { return t.pattern.Name + "/" + t.algo })
		return errors.Errorf("%d trials produced unsorted output: %v", len(unsorted), names)
	}
	return nil
}

func writeReport(cmd *cobra.Command, opts benchOptions, trials []trial) error {
	nlogn := 0.0
	if opts.n > 1 {
		nlogn = float64(opts.n) * math.Log2(float64(opts.n))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "host: %s\n", cpuinfo.Describe())
	fmt.Fprintf(out, "n=%d seed=%d\n", opts.n, opts.seed)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tALGO\tCOMPARISONS\tPER_NLOGN\tTIME\tSORTED")
	for _, t := range trials {
		ratio := 0.0
		if nlogn > 0 {
			ratio = float64(t.comparisons) / nlogn
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%s\t%t\n",
			t.pattern.Name, t.algo, t.comparisons, ratio, t.elapsed.Round(time.Microsecond), t.sorted)
	}
	return errors.Wrap(tw.Flush(), "writing report")
}
