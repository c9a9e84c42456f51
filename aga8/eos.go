package aga8

import (
	"math"
)

//--------------------------------------
// compressibility and density
//--------------------------------------

// DefaultZ is the compressibility factor (ideal gas) used when the reduced
// properties are degenerate.
const DefaultZ = 1.0

const (
	minZ         = 0.1
	maxZGERG     = 1.5
	maxZDetailed = 2.0
)

// Model is one correlation path.
type Model interface {
	// Method identifies the path in results.
	Method() Method
	// Registry resolves component names for the path.
	Registry() *Registry
	// ValidateComposition normalizes raw and reports the outcome.
	ValidateComposition(raw RawComposition) Validation
	// CalculateProperties validates raw and evaluates it at pKPa, tC.
	CalculateProperties(pKPa, tC float64, raw RawComposition) (*PropertyResult, error)
	// Evaluate computes the properties of an already normalized composition.
	Evaluate(pKPa, tC float64, comp Composition) *PropertyResult
}

// simpleZ is the simple fluid term shared by both paths:
//
//	Z0 = 1 + Pr(0.083 - 0.422/Tr^1.6) + Pr²(0.139 - 0.172/Tr^4.2)
func simpleZ(pr, tr float64) float64 {
	return 1.0 + pr*(0.083-0.422/math.Pow(tr, 1.6)) + pr*pr*(0.139-0.172/math.Pow(tr, 4.2))
}

// acentricZ is the Lee-Kesler style acentric correction:
//
//	Z1 = Pr(0.675 - 1.050/Tr + 0.407/Tr³) + Pr²(-0.045 + 0.042/Tr²)
func acentricZ(pr, tr float64) float64 {
	return pr*(0.675-1.050/tr+0.407/math.Pow(tr, 3)) + pr*pr*(-0.045+0.042/(tr*tr))
}

// clampZ limits z to [minZ, upper]. NaN falls back to DefaultZ.
func clampZ(z, upper float64) float64 {
	if math.IsNaN(z) {
		logger().Debugf("compressibility is NaN, using %g", DefaultZ)
		return DefaultZ
	}
	return math.Max(minZ, math.Min(upper, z))
}

// validReduced reports whether the reduced properties can be fed to the
// correlations.
func validReduced(pr, tr float64) bool {
	return tr > 0 && !math.IsInf(tr, 0) && !math.IsNaN(pr) && !math.IsInf(pr, 0)
}

// Kelvin converts °C to K.
func Kelvin(tC float64) float64 {
	return tC + 273.15
}

// MassDensity returns ρ = P·M/(Z·R·T) [kg/m³] with P in kPa, M in g/mol and
// T in °C. It is 0 when Z·T is not positive.
func MassDensity(pKPa, tC, molarMass, z float64) float64 {
	return MolarDensity(pKPa, tC, z) * molarMass
}

// MolarDensity returns P/(Z·R·T) [mol/L] with P in kPa and T in °C. It is 0
// when Z·T is not positive.
func MolarDensity(pKPa, tC, z float64) float64 {
	den := z * R * Kelvin(tC)
	if den <= 0 || math.IsNaN(den) {
		return 0
	}
	return pKPa / den
}
