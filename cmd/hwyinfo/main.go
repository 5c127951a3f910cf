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

// Command hwyinfo reports the SIMD target selected at runtime and checks
// that the algorithm layer agrees with scalar reference results.
//
// Usage:
//
//	hwyinfo target            # level, register width, lanes per type
//	hwyinfo target --levels   # every level and whether the CPU has it
//	hwyinfo check --size 8 --length 1000 --unroll 4 --aligned --halving
//
// HWY_NO_SIMD=1 and HWY_TARGET=<level> change the selected target. Pass -v
// to log width fallbacks and ignored overrides to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
