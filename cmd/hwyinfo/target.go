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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vsimd/hwy"
)

var allLevels = []hwy.DispatchLevel{
	hwy.DispatchScalar,
	hwy.DispatchSSE2,
	hwy.DispatchAVX2,
	hwy.DispatchAVX512,
	hwy.DispatchNEON,
	hwy.DispatchSVE,
}

// laneRow describes native and emulated shapes of one lane type.
type laneRow struct {
	typ    string
	native int
	tag    string
	f128   int
	f512   int
}

func rowFor[T hwy.Lanes](name string) laneRow {
	d := hwy.ScalableTag[T]()
	return laneRow{
		typ:    name,
		native: d.Lanes(),
		tag:    d.Name(),
		f128:   hwy.FixedTag128[T]().Lanes(),
		f512:   hwy.FixedTag512[T]().Lanes(),
	}
}

func laneRows() []laneRow {
	return []laneRow{
		rowFor[float32]("float32"),
		rowFor[float64]("float64"),
		rowFor[int8]("int8"),
		rowFor[int16]("int16"),
		rowFor[int32]("int32"),
		rowFor[int64]("int64"),
		rowFor[uint8]("uint8"),
		rowFor[uint16]("uint16"),
		rowFor[uint32]("uint32"),
		rowFor[uint64]("uint64"),
	}
}

func newTargetCmd() *cobra.Command {
	var levels bool
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Print the selected SIMD level and lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if levels {
				return printLevels(cmd.OutOrStdout())
			}
			return printTarget(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&levels, "levels", false, "list every dispatch level and whether this CPU supports it")
	return cmd
}

func printTarget(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "level:\t%s\n", hwy.CurrentName())
	fmt.Fprintf(tw, "width:\t%d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(tw, "no-simd:\t%t\n\n", hwy.NoSimdEnv())

	fmt.Fprintln(tw, "TYPE\tLANES\tTAG\tFIXED128\tFIXED512")
	lines := lo.Map(laneRows(), func(r laneRow, _ int) string {
		return fmt.Sprintf("%s\t%d\t%s\t%d\t%d", r.typ, r.native, r.tag, r.f128, r.f512)
	})
	for _, l := range lines {
		fmt.Fprintln(tw, l)
	}
	return tw.Flush()
}

func printLevels(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tWIDTH\tAVAILABLE\tSELECTED")
	for _, level := range allLevels {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			level,
			level.Width(),
			lo.Ternary(hwy.LevelAvailable(level), "yes", "no"),
			lo.Ternary(level == hwy.CurrentLevel(), "*", ""),
		)
	}
	return tw.Flush()
}
