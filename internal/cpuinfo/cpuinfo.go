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

// Package cpuinfo describes the host CPU for benchmark reports.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// feature is a named CPU capability flag.
type feature struct {
	name string
	ok   bool
}

// Features returns the names of the detected CPU features that affect scalar
// sort throughput: wide loads, bit manipulation and population counts.
func Features() []string {
	var fs []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		fs = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	var names []string
	for _, f := range fs {
		if f.ok {
			names = append(names, f.name)
		}
	}
	return names
}

// Describe returns a one-line description such as
// "linux/amd64 cpus=8 [sse4.2 popcnt bmi2 avx2]".
func Describe() string {
	return fmt.Sprintf("%s/%s cpus=%d [%s]",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), strings.Join(Features(), " "))
}
