// SPDX-License-Identifier: MIT
package experiment_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/experiment"
)

func TestRun_SamplesPerSizeAndKernel(t *testing.T) {
	rep, err := experiment.Run(context.Background(),
		experiment.WithSizes(1, 3, 4),
		experiment.WithRepeats(2),
		experiment.WithWarmup(1),
		experiment.WithKernels(experiment.KernelStrassen, experiment.KernelNaive),
	)
	require.NoError(t, err)
	require.Len(t, rep.Samples, 6)

	want := []struct {
		size   int
		kernel experiment.Kernel
	}{
		{1, experiment.KernelStrassen}, {1, experiment.KernelNaive},
		{3, experiment.KernelStrassen}, {3, experiment.KernelNaive},
		{4, experiment.KernelStrassen}, {4, experiment.KernelNaive},
	}
	for i, s := range rep.Samples {
		assert.Equal(t, want[i].size, s.Size)
		assert.Equal(t, want[i].kernel, s.Kernel)
		assert.Equal(t, 2, s.Repeats)
		assert.GreaterOrEqual(t, int64(s.Mean), int64(0))
	}

	naive := rep.ForKernel(experiment.KernelNaive)
	require.Len(t, naive, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{naive[0].Size, naive[1].Size, naive[2].Size})
	assert.NotEmpty(t, rep.Environment.GoVersion)
	assert.False(t, rep.Started.IsZero())
}

func TestRun_InvalidOptions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		opts []experiment.Option
		want error
	}{
		{"no sizes", []experiment.Option{experiment.WithSizes()}, experiment.ErrNoSizes},
		{"zero size", []experiment.Option{experiment.WithSizes(2, 0)}, experiment.ErrBadSize},
		{"duplicate size", []experiment.Option{experiment.WithSizes(2, 2)}, experiment.ErrBadSize},
		{"zero repeats", []experiment.Option{experiment.WithRepeats(0)}, experiment.ErrBadRepeats},
		{"negative warmup", []experiment.Option{experiment.WithWarmup(-1)}, experiment.ErrBadRepeats},
		{"no kernels", []experiment.Option{experiment.WithKernels()}, experiment.ErrUnknownKernel},
		{"bad kernel", []experiment.Option{experiment.WithKernels("blocked")}, experiment.ErrUnknownKernel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := experiment.Run(ctx, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Empty(t, rep.Samples)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := experiment.Run(ctx, experiment.WithSizes(2), experiment.WithRepeats(1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Samples)
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := experiment.Run(context.Background(),
		experiment.WithSizes(2), experiment.WithRepeats(2), experiment.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "size measured")
	assert.Contains(t, out, "kernel=strassen")
	assert.Contains(t, out, "msg=repeat")
}
