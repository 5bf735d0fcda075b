// Package unit converts acceleration records between common unit systems.
//
// The canonical unit for all computation in this module is m/s². Conversion
// is a pure per-sample scaling; both directions allocate a new slice and
// leave the input untouched.
package unit

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Conversion factors to m/s².
const (
	// GalFactor converts gal (cm/s²) to m/s².
	GalFactor = 0.01
	// GravityFactor converts standard gravity (g) to m/s².
	GravityFactor = 9.80665
)

// Unit identifies the acceleration unit of a record.
//
// Values outside the defined constants behave as already-SI: Factor reports 1
// and conversion degenerates to a copy. Strict validation belongs at the
// string boundary, see [Parse].
type Unit int

const (
	// MetersPerSecondSquared is the canonical SI unit.
	MetersPerSecondSquared Unit = iota
	// Gal is cm/s², the customary unit of strong-motion networks.
	Gal
	// StandardGravity is the conventional g = 9.80665 m/s².
	StandardGravity
)

// String returns the conventional short name of the unit.
func (u Unit) String() string {
	switch u {
	case Gal:
		return "gal"
	case StandardGravity:
		return "g"
	default:
		return "m/s2"
	}
}

// Factor returns the number of m/s² in one unit of u.
func (u Unit) Factor() float64 {
	switch u {
	case Gal:
		return GalFactor
	case StandardGravity:
		return GravityFactor
	default:
		return 1
	}
}

// Parse maps a unit name to a Unit. Recognized spellings (case-insensitive):
// "m/s2", "m/s^2", "mps2", "gal", "cm/s2", "cm/s^2", "g".
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m/s2", "m/s^2", "mps2":
		return MetersPerSecondSquared, nil
	case "gal", "cm/s2", "cm/s^2":
		return Gal, nil
	case "g":
		return StandardGravity, nil
	default:
		return MetersPerSecondSquared, fmt.Errorf("unknown acceleration unit: %q", s)
	}
}

// ToSI converts samples expressed in u to m/s². A new slice is returned.
func ToSI(samples []float64, u Unit) []float64 {
	return scaled(samples, u.Factor())
}

// FromSI converts samples expressed in m/s² to u. A new slice is returned.
func FromSI(samples []float64, u Unit) []float64 {
	return scaled(samples, 1/u.Factor())
}

func scaled(samples []float64, factor float64) []float64 {
	out := make([]float64, len(samples))
	vecmath.ScaleBlock(out, samples, factor)
	return out
}
