// SPDX-License-Identifier: MIT

// Package experiment measures the pure Strassen multiplier from package matrix
// against its Θ(n^log2(7)) cost model.
//
// It covers the full measurement loop:
//
//   - Run: time the selected kernels (strassen, naive) on seeded random n×n
//     operands, averaging a fixed number of repeats per size.
//
//   - Fit: estimate c in t(n) = c·n^log2(7) from the mean of log residuals,
//     then derive per-size overhead (measured / theoretical), % error and the
//     measured log-log slope.
//
//   - Classify: label each size Suboptimal, Optimal or Degraded by overhead.
//
//   - WriteReport / WriteTimings / ParseTimings: the text table and the
//     "size <n>: <seconds> seconds" timing log, readable back for offline analysis.
//
//   - Verify: check Strassen against the conventional product and gonum's
//     mat.Dense product on square and padded rectangular shapes.
//
// The multiplier itself is never configured from here: advice such as a
// base-case threshold appears only in the report text.
//
// Determinism:
//   - Inputs come from math/rand seeded per run (seed 0 selects a fixed default),
//     so two runs with the same seed multiply the same matrices.
//   - Timings are wall-clock and naturally vary between runs.
//
// Logging:
//   - Progress is reported through a *slog.Logger supplied via WithLogger;
//     the default logger discards everything.
package experiment
