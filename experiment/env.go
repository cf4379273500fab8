// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Environment describes the machine a run was measured on.
type Environment struct {
	GoVersion  string
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // SIMD/FMA features reported by golang.org/x/sys/cpu
}

// DetectEnvironment snapshots the runtime and CPU features of this process.
// Timings from different Environments are not comparable.
func DetectEnvironment() Environment {
	return Environment{
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// String renders a one-line summary, e.g.
// "go1.24.0 linux/amd64 cpus=8 procs=8 [sse4.2 avx avx2 fma]".
func (e Environment) String() string {
	return fmt.Sprintf("%s %s/%s cpus=%d procs=%d [%s]",
		e.GoVersion, e.GOOS, e.GOARCH, e.NumCPU, e.GOMAXPROCS, strings.Join(e.Features, " "))
}

// cpuFeatures lists the detected features relevant to float64 kernels.
// Only the flags for the running architecture can be true.
func cpuFeatures() []string {
	flags := []struct {
		name string
		has  bool
	}{
		{"sse4.1", cpu.X86.HasSSE41},
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"fp", cpu.ARM64.HasFP},
		{"sve", cpu.ARM64.HasSVE},
	}

	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.has {
			out = append(out, f.name)
		}
	}

	return out
}
