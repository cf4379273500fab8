// SPDX-License-Identifier: MIT
// Package experiment: sentinel error set.
// Every message is prefixed with "experiment: "; call sites wrap with
// fmt.Errorf("<Op>: %w", ErrX) and callers match with errors.Is.

package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSizes is returned when a run or verification has an empty size list.
	ErrNoSizes = errors.New("experiment: no sizes")

	// ErrBadSize indicates a non-positive or duplicated matrix size.
	ErrBadSize = errors.New("experiment: invalid size")

	// ErrBadRepeats indicates a repeat count < 1 or a negative warmup count.
	ErrBadRepeats = errors.New("experiment: invalid repeat count")

	// ErrNoSamples is returned when there is nothing to fit or nothing was parsed.
	ErrNoSamples = errors.New("experiment: no samples")

	// ErrNonPositiveTiming indicates a timing ≤ 0, which has no logarithm.
	ErrNonPositiveTiming = errors.New("experiment: timing must be > 0")

	// ErrUnknownKernel is returned for a kernel name other than strassen or naive.
	ErrUnknownKernel = errors.New("experiment: unknown kernel")

	// ErrVerifyMismatch signals a Strassen product outside the verify tolerance.
	ErrVerifyMismatch = errors.New("experiment: product mismatch")
)

// experimentErrorf wraps err with an operation tag, preserving it for errors.Is.
func experimentErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
