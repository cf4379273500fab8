// SPDX-License-Identifier: MIT
package experiment_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/experiment"
)

// studyFactors are the per-size overheads of the measured study (n=2..64).
var studyFactors = []float64{1.70, 0.84, 0.90, 0.71, 0.74, 1.49}

func TestAnalyze_StudyRegimes(t *testing.T) {
	a, err := experiment.Analyze(modelSamples(1e-7, experiment.DefaultSizes(), studyFactors))
	require.NoError(t, err)

	require.Equal(t, []experiment.Regime{
		experiment.Suboptimal, experiment.Optimal, experiment.Optimal,
		experiment.Optimal, experiment.Optimal, experiment.Degraded,
	}, a.Regimes)
	assert.Equal(t, experiment.DefaultOverheadThreshold, a.Threshold)
	assert.Equal(t, experiment.DefaultWarningLevel, a.WarningLevel)
	assert.False(t, a.HighOverhead())
}

func TestAnalyze_Options(t *testing.T) {
	a, err := experiment.Analyze(
		modelSamples(1e-7, experiment.DefaultSizes(), studyFactors),
		experiment.WithOverheadThreshold(2), experiment.WithWarningLevel(1.01),
	)
	require.NoError(t, err)
	for _, r := range a.Regimes {
		assert.Equal(t, experiment.Optimal, r)
	}
	assert.True(t, a.HighOverhead())

	_, err = experiment.Analyze(nil)
	require.ErrorIs(t, err, experiment.ErrNoSamples)
	assert.True(t, strings.HasPrefix(err.Error(), "Analyze: Fit: "))
}

func TestWriteReport(t *testing.T) {
	a, err := experiment.Analyze(modelSamples(1e-3, []int{2, 4, 8}, []float64{100, 0.01, 1}))
	require.NoError(t, err)
	require.True(t, a.HighOverhead())

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteReport(&buf, a))
	out := buf.String()

	for _, want := range []string{
		"Measured (s)", "Theoretical (s)", "Overhead", "% Error", "Regime",
		"suboptimal", "optimal", "avg",
		"Final analysis:", "measured slope", "mean overhead",
		"predicted time n=1024", "WARNING: mean overhead",
	} {
		assert.Contains(t, out, want)
	}
	// header + 3 points + avg before the blank line
	table := strings.SplitN(out, "\n\n", 2)[0]
	assert.Len(t, strings.Split(table, "\n"), 5)
}

func TestWriteReport_NoWarning(t *testing.T) {
	a, err := experiment.Analyze(modelSamples(1e-3, []int{2, 4, 8}, nil))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteReport(&buf, a))
	assert.NotContains(t, buf.String(), "WARNING")
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

var errWrite = errors.New("write failed")

func TestWriteReport_PropagatesWriteError(t *testing.T) {
	a, err := experiment.Analyze(modelSamples(1e-3, []int{2, 4}, nil))
	require.NoError(t, err)
	require.ErrorIs(t, experiment.WriteReport(failWriter{}, a), errWrite)
}
