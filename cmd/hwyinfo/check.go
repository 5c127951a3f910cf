// Copyright 2025 go-highway Authors
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
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vsimd/hwy"
	"github.com/ajroetker/go-vsimd/hwy/contrib/algo"
	"github.com/ajroetker/go-vsimd/hwy/contrib/workerpool"
)

var errCheckFailed = errors.New("self-check failed")

type checkOptions struct {
	size    int
	length  int
	unroll  int
	aligned bool
	halving bool
	seed    uint64
	workers int
}

func (o checkOptions) policy() algo.Policy {
	p := algo.Simd.PreferSize(o.size)
	if o.unroll > 1 {
		p = p.UnrollBy(o.unroll)
	}
	if o.aligned {
		p = p.PreferAligned()
	}
	if o.halving {
		p = p.HalvingEpilogue()
	}
	return p
}

type checkResult struct {
	name   string
	typ    string
	length int
	lanes  int
	ok     bool
	detail string
}

func newCheckCmd() *cobra.Command {
	var o checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare reduce, transform, count_if and find against scalar results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.length < 0 {
				return fmt.Errorf("--length must not be negative, got %d", o.length)
			}
			return runCheck(cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.size, "size", 0, "requested lanes per vector (0 = native)")
	f.IntVar(&o.length, "length", 1000, "number of elements")
	f.IntVar(&o.unroll, "unroll", 0, "unroll factor (values below 2 disable unrolling)")
	f.BoolVar(&o.aligned, "aligned", false, "enable the alignment prologue")
	f.BoolVar(&o.halving, "halving", false, "use the halving epilogue")
	f.Uint64Var(&o.seed, "seed", 1, "random seed for the input data")
	f.IntVar(&o.workers, "workers", 0, "goroutines running the checks (0 = GOMAXPROCS)")
	return cmd
}

func runCheck(w io.Writer, o checkOptions) error {
	p := o.policy()
	fmt.Fprintf(w, "target %s, policy %v\n", hwy.CurrentName(), p)

	pool := workerpool.New(o.workers)
	defer pool.Close()

	var results []checkResult
	results = append(results, checkType[float32](pool, p, "float32", o)...)
	results = append(results, checkType[float64](pool, p, "float64", o)...)
	results = append(results, checkType[int32](pool, p, "int32", o)...)
	results = append(results, checkType[uint16](pool, p, "uint16", o)...)

	for _, r := range results {
		status := lo.Ternary(r.ok, "PASS", "FAIL")
		fmt.Fprintf(w, "%s %-9s %-8s len=%-6d lanes=%d", status, r.name, r.typ, r.length, r.lanes)
		if r.detail != "" {
			fmt.Fprintf(w, " %s", r.detail)
		}
		fmt.Fprintln(w)
	}

	if failed := lo.CountBy(results, func(r checkResult) bool { return !r.ok }); failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(results))
	}
	fmt.Fprintf(w, "all %d checks passed\n", len(results))
	return nil
}

func randomData[T hwy.Lanes](n int, seed uint64) []T {
	r := rand.New(rand.NewPCG(seed, uint64(n)))
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.Float64() * 200)
	}
	return out
}

// checkType runs one suite per length on the pool. Each suite calls the
// algorithms on its own goroutine; results keep the order of lengths.
func checkType[T hwy.Lanes](pool *workerpool.Pool, p algo.Policy, name string, o checkOptions) []checkResult {
	lanes := algo.Tag[T](p).Lanes()
	lengths := lo.Uniq([]int{0, 1, max(lanes-1, 0), lanes, lanes + 1, o.length})

	perLength := make([][]checkResult, len(lengths))
	pool.ParallelForEach(len(lengths), func(i int) {
		n := lengths[i]
		data := randomData[T](n, o.seed)
		base := checkResult{typ: name, length: n, lanes: lanes}
		rs := []checkResult{
			checkReduce(p, data, base),
			checkTransform(p, data, base),
			checkCountIf(p, data, base),
		}
		if n > 0 {
			rs = append(rs, checkFind(p, data, base))
		}
		perLength[i] = rs
	})
	return lo.Flatten(perLength)
}

func checkReduce[T hwy.Lanes](p algo.Policy, data []T, r checkResult) checkResult {
	r.name = "reduce"
	got := algo.Reduce(p, data, 1, hwy.Add[T])
	want := algo.ReferenceReduce(data, r.lanes, 1, func(a, b T) T { return a + b })
	r.ok = got == want
	if !r.ok {
		r.detail = fmt.Sprintf("got %v, want %v", got, want)
	}
	return r
}

func checkTransform[T hwy.Lanes](p algo.Policy, data []T, r checkResult) checkResult {
	r.name = "transform"
	out := make([]T, len(data))
	algo.Transform(p, data, out, func(v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Add(hwy.Mul(v, v), v)
	})
	r.ok = true
	for i, x := range data {
		if want := T(x*x) + x; out[i] != want {
			r.ok = false
			r.detail = fmt.Sprintf("index %d: got %v, want %v", i, out[i], want)
			break
		}
	}
	return r
}

func checkCountIf[T hwy.Lanes](p algo.Policy, data []T, r checkResult) checkResult {
	r.name = "count_if"
	var threshold T = 100
	got := algo.CountIf(p, data, func(v hwy.Vec[T]) hwy.Mask[T] {
		return hwy.Greater(v, hwy.DFromV(v).Set(threshold))
	})
	want := lo.CountBy(data, func(x T) bool { return x > threshold })
	r.ok = got == want
	if !r.ok {
		r.detail = fmt.Sprintf("got %d, want %d", got, want)
	}
	return r
}

func checkFind[T hwy.Lanes](p algo.Policy, data []T, r checkResult) checkResult {
	r.name = "find"
	last := data[len(data)-1]
	got := algo.Find(p, data, last)
	want := lo.IndexOf(data, last)
	r.ok = got == want
	if !r.ok {
		r.detail = fmt.Sprintf("got %d, want %d", got, want)
	}
	return r
}
