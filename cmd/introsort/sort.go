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
	"bufio"
	"cmp"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	introsort "github.com/ajroetker/go-introsort"
)

// Algorithm names accepted by --algo.
const (
	algoIntro     = "intro"
	algoHeap      = "heap"
	algoInsertion = "insertion"
	algoFloats    = "floats"
)

type sortOptions struct {
	valueType string
	algo      string
	reverse   bool
	output    string
}

func newSortCmd(a *app) *cobra.Command {
	var opts sortOptions
	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort newline-separated values read from file or stdin",
		Long: `Sort reads one value per line, sorts the values in place and writes them
one per line. Blank lines are skipped. With --type float the default
algorithm orders -Inf < ... < -0 < +0 < ... < +Inf < NaN.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.runSort(cmd, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.valueType, "type", "t", "int", "value type: int, float or string")
	f.StringVarP(&opts.algo, "algo", "a", "", "algorithm: intro, heap, insertion or floats (default intro, floats for --type float)")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "sort in descending order")
	f.StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) runSort(cmd *cobra.Command, path string, opts sortOptions) error {
	lines, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	algo := opts.algo
	if algo == "" {
		algo = algoIntro
		if opts.valueType == "float" {
			algo = algoFloats
		}
	}
	if algo == algoFloats && opts.valueType != "float" {
		return errors.Errorf("--algo floats requires --type float, got %q", opts.valueType)
	}

	start := time.Now()
	var out []string
	switch opts.valueType {
	case "int":
		out, err = sortParsed(lines, parseInt, algo, opts.reverse, formatInt)
	case "float":
		out, err = sortParsed(lines, parseFloat, algo, opts.reverse, formatFloat)
	case "string":
		out, err = sortParsed(lines, parseString, algo, opts.reverse, formatString)
	default:
		return errors.Errorf("unknown --type %q", opts.valueType)
	}
	if err != nil {
		return err
	}
	a.log.Debug("sorted",
		zap.String("input", path),
		zap.Int("values", len(out)),
		zap.String("algo", algo),
		zap.Bool("reverse", opts.reverse),
		zap.Duration("elapsed", time.Since(start)))

	return writeOutput(cmd, opts.output, out)
}

// line is one non-blank input line and its 1-based number.
type line struct {
	no   int
	text string
}

func readInput(cmd *cobra.Command, path string) ([]line, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r, name = f, path
	}

	var lines []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}

func writeOutput(cmd *cobra.Command, path string, values []string) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return errors.Wrap(createErr, "creating output")
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrapf(cerr, "closing %s", path)
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(v)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing output")
}

// sortParsed parses lines with parse, sorts them with algo and formats the
// result with format.
func sortParsed[E constraints.Ordered](lines []line, parse func(string) (E, error), algo string, reverse bool, format func(E) string) ([]string, error) {
	values := make([]E, len(lines))
	for i, l := range lines {
		v, err := parse(l.text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", l.no)
		}
		values[i] = v
	}

	if err := sortValues(values, algo, reverse); err != nil {
		return nil, err
	}
	return lo.Map(values, func(v E, _ int) string { return format(v) }), nil
}

// sortValues sorts x in place with the named algorithm.
func sortValues[E constraints.Ordered](x []E, algo string, reverse bool) error {
	compare := cmp.Compare[E]
	if reverse {
		compare = func(a, b E) int { return cmp.Compare(b, a) }
	}

	switch algo {
	case algoIntro:
		introsort.SortFunc(x, compare)
	case algoHeap:
		introsort.HeapSortFunc(x, compare)
	case algoInsertion:
		introsort.InsertionSortFunc(x, compare)
	case algoFloats:
		if !sortFloats(x) {
			return errors.Errorf("--algo floats cannot sort %T", x)
		}
		if reverse {
			slices.Reverse(x)
		}
	default:
		return errors.Errorf("unknown --algo %q", algo)
	}
	return nil
}

// sortFloats runs introsort.SortFloats if x holds floats.
func sortFloats[E constraints.Ordered](x []E) bool {
	switch x := any(x).(type) {
	case []float64:
		introsort.SortFloats(x)
	case []float32:
		introsort.SortFloats(x)
	default:
		return false
	}
	return true
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, errors.Wrapf(err, "parsing %q as int", s)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	return v, errors.Wrapf(err, "parsing %q as float", s)
}

func parseString(s string) (string, error) {
	return s, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatString(s string) string {
	return s
}
