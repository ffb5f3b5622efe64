// polar/polar.go
// Phasor (magnitude/phase) ↔ rectangular (complex) conversions, element-wise
// over equal-length slices.
//
// Conventions:
//   - phasor→rect computes m·(cos θ + i·sin θ) with θ in radians.
//   - rect→phasor computes |z| and atan2(imag, real), so phases land in
//     (−π, π] before unit conversion.
//   - Magnitudes may be negative; m·e^{iθ} is total, and converting the
//     result back reports the canonical non-negative magnitude with the
//     phase shifted by π.
//
// This package has no app/output deps beyond the eng formatter.
package polar

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"phasor/angle"
	"phasor/eng"
)

// ErrShape flags magnitude/phase slices of different lengths.
var ErrShape = errors.New("magnitude and phase must be the same length")

// Phasor is a scalar magnitude/phase pair with its phase unit.
type Phasor struct {
	Mag   float64
	Angle float64
	Unit  angle.Unit
}

// Rect returns the rectangular (complex) value of p.
func (p Phasor) Rect() complex128 {
	th := p.Unit.ToRadians(p.Angle)
	return complex(p.Mag*math.Cos(th), p.Mag*math.Sin(th))
}

// FromRect builds the Phasor of z with the phase expressed in u.
func FromRect(z complex128, u angle.Unit) Phasor {
	return Phasor{Mag: cmplx.Abs(z), Angle: u.FromRadians(cmplx.Phase(z)), Unit: u}
}

// String renders p as "<mag> ∠ <phase><suffix>" in engineering notation
// with 4 decimal digits, e.g. "1.4142 ∠ 45.0000°".
func (p Phasor) String() string {
	return eng.Format(p.Mag) + " ∠ " + eng.Format(p.Angle) + p.Unit.Suffix()
}

// ToRect converts magnitude and phase slices to complex values. The slices
// must have the same length; phases are read in unit u. Inputs are left
// untouched and the result has the input length.
func ToRect(mag, phase []float64, u angle.Unit) ([]complex128, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("to rect: %w %d", angle.ErrUnknownUnit, int(u))
	}
	if len(mag) != len(phase) {
		return nil, fmt.Errorf("to rect: %w (%d vs %d)", ErrShape, len(mag), len(phase))
	}
	rad := append([]float64(nil), phase...)
	if u == angle.Degrees {
		floats.Scale(math.Pi/180, rad)
	}
	out := make([]complex128, len(mag))
	for i, m := range mag {
		out[i] = complex(m*math.Cos(rad[i]), m*math.Sin(rad[i]))
	}
	return out, nil
}

// ToPolar converts complex values to magnitude and phase slices, with the
// phase expressed in unit u. Both results have the input length.
func ToPolar(zs []complex128, u angle.Unit) ([]float64, []float64, error) {
	if !u.Valid() {
		return nil, nil, fmt.Errorf("to polar: %w %d", angle.ErrUnknownUnit, int(u))
	}
	mag := make([]float64, len(zs))
	ph := make([]float64, len(zs))
	for i, z := range zs {
		mag[i] = cmplx.Abs(z)
		ph[i] = cmplx.Phase(z)
	}
	if u == angle.Degrees {
		floats.Scale(180/math.Pi, ph)
	}
	return mag, ph, nil
}

// Format converts complex values to phasor strings, one per element, in the
// Phasor.String rendering with the phase expressed in unit u.
func Format(zs []complex128, u angle.Unit) ([]string, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("format: %w %d", angle.ErrUnknownUnit, int(u))
	}
	out := make([]string, len(zs))
	for i, z := range zs {
		out[i] = FromRect(z, u).String()
	}
	return out, nil
}
