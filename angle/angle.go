// angle/angle.go
// Phase-angle units shared by the polar/rectangular conversions.
package angle

import (
	"errors"
	"fmt"
	"math"
)

// Unit selects how phase angles are interpreted and rendered.
// The zero value is Degrees.
type Unit int

const (
	Degrees Unit = iota
	Radians
)

// ErrUnknownUnit flags a unit outside the recognized set.
var ErrUnknownUnit = errors.New("unknown angle unit")

// Parse maps a unit name to its Unit. Recognized: "degrees", "radians".
func Parse(name string) (Unit, error) {
	switch name {
	case "degrees":
		return Degrees, nil
	case "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("%w %q (want \"degrees\" or \"radians\")", ErrUnknownUnit, name)
}

// Valid reports whether u is one of the recognized units.
func (u Unit) Valid() bool { return u == Degrees || u == Radians }

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Suffix returns the text appended after a rendered angle: "°" or " rad".
func (u Unit) Suffix() string {
	if u == Radians {
		return " rad"
	}
	return "°"
}

// ToRadians converts v, expressed in u, to radians.
func (u Unit) ToRadians(v float64) float64 {
	if u == Degrees {
		return v * math.Pi / 180
	}
	return v
}

// FromRadians converts v, in radians, to u.
func (u Unit) FromRadians(v float64) float64 {
	if u == Degrees {
		return v * 180 / math.Pi
	}
	return v
}
