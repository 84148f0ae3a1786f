// SPDX-License-Identifier: MIT

package resistance

import (
	"fmt"
	"math"
)

// Tubing returns the Hagen–Poiseuille resistance of a round tube.
// Returns ErrInvalidResistance if any argument is non-positive or non-finite.
func Tubing(lengthM, innerRadiusM, viscosityPaS float64) (float64, error) {
	if err := positive("length", lengthM); err != nil {
		return 0, err
	}
	if err := positive("radius", innerRadiusM); err != nil {
		return 0, err
	}
	if err := positive("viscosity", viscosityPaS); err != nil {
		return 0, err
	}

	r4 := innerRadiusM * innerRadiusM * innerRadiusM * innerRadiusM
	R := poiseuilleFactor * viscosityPaS * lengthM / (math.Pi * r4)

	// tiny radii can push r⁴ to zero
	return R, Validate(R)
}

// TubingFromDiameter is Tubing for callers that know the bore, not the radius.
func TubingFromDiameter(lengthM, innerDiameterM, viscosityPaS float64) (float64, error) {
	return Tubing(lengthM, innerDiameterM/2, viscosityPaS)
}

// HydraulicDiameter returns Dh = 4A/P = 2wd/(w+d) for a w×d rectangle.
func HydraulicDiameter(widthM, depthM float64) (float64, error) {
	if err := positive("width", widthM); err != nil {
		return 0, err
	}
	if err := positive("depth", depthM); err != nil {
		return 0, err
	}

	return 2 * widthM * depthM / (widthM + depthM), nil
}

// Channel approximates the resistance of a rectangular microchannel by
// substituting its hydraulic radius into the circular formula.
func Channel(lengthM, widthM, depthM, viscosityPaS float64) (float64, error) {
	dh, err := HydraulicDiameter(widthM, depthM)
	if err != nil {
		return 0, err
	}

	return Tubing(lengthM, dh/2, viscosityPaS)
}

// Validate reports whether R can be stamped into a conductance matrix.
func Validate(R float64) error {
	if math.IsNaN(R) || math.IsInf(R, 0) || R <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidResistance, R)
	}

	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidResistance, name, v)
	}

	return nil
}
