// SPDX-License-Identifier: MIT
package experiment_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strassen/experiment"
)

// ExampleClassify labels the overheads of the measured study (n=2..64).
func ExampleClassify() {
	sizes := []int{2, 4, 8, 16, 32, 64}
	overheads := []float64{1.70, 0.84, 0.90, 0.71, 0.74, 1.49}

	for i, r := range experiment.Classify(overheads, experiment.DefaultOverheadThreshold) {
		fmt.Printf("n=%d %s\n", sizes[i], r)
	}
	// Output:
	// n=2 suboptimal
	// n=4 optimal
	// n=8 optimal
	// n=16 optimal
	// n=32 optimal
	// n=64 degraded
}

// ExampleParseTimings reads a timing log and fits the cost model.
func ExampleParseTimings() {
	log := `size 2: 0.007000000 seconds
size 4: 0.049000000 seconds
size 8: 0.343000000 seconds`

	samples, err := experiment.ParseTimings(strings.NewReader(log))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, err := experiment.Analyze(samples)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d slope=%.3f mean overhead=%.2f\n", len(samples), a.Fit.Slope, a.Fit.MeanOverhead)
	// Output:
	// samples=3 slope=2.807 mean overhead=1.00
}
