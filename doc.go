// Package strassen is a measurement-first implementation of Strassen's
// matrix multiplication in its pure form: the recursion never hands off to
// the conventional algorithm, it splits all the way down to 1×1 scalars.
//
// 🚀 What is inside?
//
//	• matrix/      - Dense storage, validators, Add/Sub/Mul, and the Strassen
//	                 multiplier with its shape normalizer (pad → recurse → crop)
//	• experiment/  - timing runner, c·n^log2(7) fit, overhead and regimes,
//	                 timing logs, and verification against matrix.Mul and gonum
//	• cmd/strassenbench - CLI: run, analyze, verify
//
// ✨ Why a pure recursion?
//
//   - Without a base-case threshold the recursion and allocation cost at small
//     n is fully visible, which is exactly what the experiment measures.
//   - Any shape works: operands are padded to one power-of-two size and the
//     product is cropped back, so callers never see the padding.
//
// Quick start:
//
//	c, err := matrix.Strassen(a, b) // a: m×k, b: k×n → c: m×n
//	if errors.Is(err, matrix.ErrDimensionMismatch) { ... }
//
//	go run ./cmd/strassenbench run --sizes 2,4,8,16,32,64 --repeats 10
package strassen
