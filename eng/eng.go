// eng/eng.go
// Engineering notation: scientific notation restricted to exponents that are
// multiples of 3, so the mantissa lies in [1, 1000).
//
// Rendering rules:
//  1) Decompose |v| = m × 1000^k with m in [1, 1000).
//  2) Round m to the requested decimals, half away from zero. A carry that
//     pushes m to 1000 rolls over into the next band (999.99996 → 1.0000e+03
//     at 4 digits).
//  3) Exponent 0 prints as plain fixed-point ("45.0000"); otherwise a
//     trailing e±NN ("785.3982e-03").
//
// Zero prints as fixed-point zero; NaN and ±Inf print as such.
package eng

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders v in engineering notation with 4 decimal digits.
func Format(v float64) string { return FormatDigits(v, 4) }

// FormatDigits renders v in engineering notation with the given number of
// decimal digits in the mantissa. Negative digit counts are treated as 0.
func FormatDigits(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return strconv.FormatFloat(0, 'f', digits, 64)
	}

	m := math.Abs(v)
	exp := 0
	for m >= 1000 {
		m /= 1000
		exp += 3
	}
	for m < 1 {
		m *= 1000
		exp -= 3
	}

	// Round half away from zero at the digit budget.
	p := math.Pow(10, float64(digits))
	m = math.Floor(m*p+0.5) / p
	if m >= 1000 {
		m /= 1000
		exp += 3
	}

	s := strconv.FormatFloat(m, 'f', digits, 64)
	if math.Signbit(v) {
		s = "-" + s
	}
	if exp == 0 {
		return s
	}
	return fmt.Sprintf("%se%+03d", s, exp)
}
