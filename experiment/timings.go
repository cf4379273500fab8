// SPDX-License-Identifier: MIT
// Package experiment - timing log.
//
// Format, one sample per line:
//
//	size <n>: <seconds> seconds
//
// ParseTimings also accepts the Spanish-language lines of older runs
// ("Tamaño <n>: <seconds> segundos") and skips every line that matches neither,
// so a full console capture can be fed in unchanged.
package experiment

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"time"
)

const opParseTimings = "ParseTimings"

// timingLine captures the size and the seconds of one log line.
var timingLine = regexp.MustCompile(`^\s*(?:size|Tamaño)\s+(\d+)\s*:\s*([-+0-9.eE]+)\s+(?:seconds|segundos)\s*$`)

// WriteTimings writes one log line per sample with nanosecond precision,
// so ParseTimings restores Mean exactly.
func WriteTimings(w io.Writer, samples []Sample) error {
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "size %d: %.9f seconds\n", s.Size, s.Seconds()); err != nil {
			return err
		}
	}

	return nil
}

// ParseTimings reads timing lines from r. Parsed samples carry KernelStrassen
// and Repeats 0 (the log does not record either).
//
// Errors:
//   - ErrNoSamples when no line matched.
//   - ErrBadSize for a size < 1; ErrNonPositiveTiming for seconds ≤ 0 or unparsable.
//   - Any read error from r.
func ParseTimings(r io.Reader) ([]Sample, error) {
	var out []Sample
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		m := timingLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return nil, experimentErrorf(opParseTimings, fmt.Errorf("line %d: %q: %w", line, m[1], ErrBadSize))
		}
		sec, err := strconv.ParseFloat(m[2], 64)
		if err != nil || !(sec > 0) || math.IsInf(sec, 0) {
			return nil, experimentErrorf(opParseTimings, fmt.Errorf("line %d: %q: %w", line, m[2], ErrNonPositiveTiming))
		}
		out = append(out, Sample{
			Kernel: KernelStrassen,
			Size:   n,
			Mean:   time.Duration(math.Round(sec * float64(time.Second))),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, experimentErrorf(opParseTimings, err)
	}
	if len(out) == 0 {
		return nil, experimentErrorf(opParseTimings, ErrNoSamples)
	}

	return out, nil
}
