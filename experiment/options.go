// SPDX-License-Identifier: MIT

// Package experiment: functional configuration for runs, analysis and
// verification. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical programmer values),
//   - gatherOptions, which applies setters in order over the defaults.
//
// Notes:
//   - Sizes, repeats and kernels usually come from a command line, so they are
//     validated by the operations (sentinel errors), not by the setters.
//   - Thresholds and tolerances are programmer-chosen constants; a NaN or
//     negative value there is a bug and panics at construction.
package experiment

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// Kernel names a multiplication routine the runner can time.
type Kernel string

const (
	// KernelStrassen is matrix.Strassen: pad, pure recursion to 1×1, crop.
	KernelStrassen Kernel = "strassen"

	// KernelNaive is matrix.Mul, the conventional triple loop.
	KernelNaive Kernel = "naive"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRepeats is the number of timed calls averaged per size.
	DefaultRepeats = 10

	// DefaultWarmup is the number of untimed calls before timing starts.
	DefaultWarmup = 0

	// DefaultSeed selects defaultSeed for input generation (seed==0 policy).
	DefaultSeed int64 = 0

	// DefaultOverheadThreshold is the overhead at or below which a size is Optimal.
	DefaultOverheadThreshold = 1.0

	// DefaultWarningLevel is the mean overhead above which the report warns.
	DefaultWarningLevel = 3.0

	// DefaultVerifyTolerance is the relative and absolute tolerance of Verify.
	DefaultVerifyTolerance = 1e-9
)

// defaultSizes is the measured grid: powers of two, so no padding is timed.
var defaultSizes = []int{2, 4, 8, 16, 32, 64}

// DefaultSizes returns a copy of the default size grid.
func DefaultSizes() []int { return append([]int(nil), defaultSizes...) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "experiment: WithOverheadThreshold: threshold must be finite and > 0"
	panicWarningInvalid   = "experiment: WithWarningLevel: level must be finite and > 0"
	panicToleranceInvalid = "experiment: WithTolerance: tol must be finite and ≥ 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Later setters win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sizes   []int
	repeats int
	warmup  int
	seed    int64
	kernels []Kernel

	threshold    float64
	warningLevel float64
	tol          float64

	logger *slog.Logger
}

// WithSizes sets the matrix sizes to measure or verify, in the given order.
func WithSizes(sizes ...int) Option {
	cp := append([]int(nil), sizes...)

	return func(o *Options) { o.sizes = cp }
}

// WithRepeats sets how many timed calls are averaged per size.
func WithRepeats(n int) Option { return func(o *Options) { o.repeats = n } }

// WithWarmup sets how many untimed calls precede timing for each size.
func WithWarmup(n int) Option { return func(o *Options) { o.warmup = n } }

// WithSeed sets the input seed; 0 selects the fixed default seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.seed = seed } }

// WithKernels selects the kernels to time, in the given order.
func WithKernels(ks ...Kernel) Option {
	cp := append([]Kernel(nil), ks...)

	return func(o *Options) { o.kernels = cp }
}

// WithOverheadThreshold sets the overhead at or below which a size is Optimal.
// Panics if t is not finite or not positive.
func WithOverheadThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithWarningLevel sets the mean overhead above which the report warns.
// Panics if level is not finite or not positive.
func WithWarningLevel(level float64) Option {
	if math.IsNaN(level) || math.IsInf(level, 0) || level <= 0 {
		panic(panicWarningInvalid)
	}

	return func(o *Options) { o.warningLevel = level }
}

// WithTolerance sets the Verify tolerance, used both relative and absolute.
// Panics if tol is not finite or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithLogger routes progress records to l. A nil l restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// NewOptions resolves setters over the defaults. It never fails; operations
// validate the fields they consume.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{
		sizes:        DefaultSizes(),
		repeats:      DefaultRepeats,
		warmup:       DefaultWarmup,
		seed:         DefaultSeed,
		kernels:      []Kernel{KernelStrassen},
		threshold:    DefaultOverheadThreshold,
		warningLevel: DefaultWarningLevel,
		tol:          DefaultVerifyTolerance,
		logger:       discardLogger(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// ---------- Accessors ----------

// Sizes returns a copy of the configured sizes.
func (o Options) Sizes() []int { return append([]int(nil), o.sizes...) }

// Repeats returns the number of timed calls per size.
func (o Options) Repeats() int { return o.repeats }

// Warmup returns the number of untimed calls per size.
func (o Options) Warmup() int { return o.warmup }

// Seed returns the configured seed (0 means the default seed).
func (o Options) Seed() int64 { return o.seed }

// Kernels returns a copy of the selected kernels.
func (o Options) Kernels() []Kernel { return append([]Kernel(nil), o.kernels...) }

// OverheadThreshold returns the Optimal cut-off.
func (o Options) OverheadThreshold() float64 { return o.threshold }

// WarningLevel returns the mean-overhead warning level.
func (o Options) WarningLevel() float64 { return o.warningLevel }

// Tolerance returns the Verify tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// ---------- Validation ----------

// validateSizes requires a non-empty list of distinct positive sizes.
func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	seen := make(map[int]struct{}, len(sizes))
	for _, n := range sizes {
		if n < 1 {
			return fmt.Errorf("%d: %w", n, ErrBadSize)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%d repeated: %w", n, ErrBadSize)
		}
		seen[n] = struct{}{}
	}

	return nil
}

// validateRun checks everything Run consumes.
func (o Options) validateRun() error {
	if err := validateSizes(o.sizes); err != nil {
		return err
	}
	if o.repeats < 1 {
		return fmt.Errorf("repeats=%d: %w", o.repeats, ErrBadRepeats)
	}
	if o.warmup < 0 {
		return fmt.Errorf("warmup=%d: %w", o.warmup, ErrBadRepeats)
	}
	if len(o.kernels) == 0 {
		return fmt.Errorf("empty kernel list: %w", ErrUnknownKernel)
	}
	for _, k := range o.kernels {
		if _, err := ParseKernel(string(k)); err != nil {
			return err
		}
	}

	return nil
}

// ParseKernel maps a case-insensitive name onto a Kernel.
//
// Errors: ErrUnknownKernel.
func ParseKernel(name string) (Kernel, error) {
	switch Kernel(strings.ToLower(strings.TrimSpace(name))) {
	case KernelStrassen:
		return KernelStrassen, nil
	case KernelNaive:
		return KernelNaive, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownKernel)
	}
}
