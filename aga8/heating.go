package aga8

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// heating value and interchangeability indexes
//--------------------------------------

// Superior (gross) molar heating values [kJ/mol] of the GERG path.
var gergHeatingValues = map[Component]float64{
	Methane:  890.3,
	Ethane:   1559.9,
	Propane:  2219.9,
	NButane:  2877.4,
	IButane:  2868.8,
	NPentane: 3536.2,
	IPentane: 3528.8,
	NHexane:  4194.8,
	NHeptane: 4850.0,
	NOctane:  5505.0,
	NNonane:  6160.0,
	NDecane:  6815.0,
}

// Superior (gross) molar heating values [kJ/mol] of the Detailed path.
var dcHeatingValues = map[Component]float64{
	Methane:  890.36,
	Ethane:   1559.88,
	Propane:  2219.17,
	IButane:  2868.20,
	NButane:  2877.40,
	IPentane: 3528.85,
	NPentane: 3536.22,
	NHexane:  4194.97,
	NHeptane: 4853.43,
	NOctane:  5512.09,
	NNonane:  6170.60,
	NDecane:  6829.00,
}

// LHVRatio is the fixed LHV/HHV ratio of the GERG path.
const LHVRatio = 0.9

// WaterCondensationEnergy is the latent heat subtracted per mole of water
// formed when the Detailed path derives the LHV [kJ/mol].
const WaterCondensationEnergy = 44.0

// Hydrogen atoms counted when inferring the water formed on combustion.
// Only the three tracer components are counted, so the LHV of mixtures
// heavy in butane and above is overestimated.
var inferredHydrogenAtoms = map[Component]float64{
	Methane: 4,
	Ethane:  6,
	Propane: 8,
}

// superiorHeatingValue returns Σ xi·Hi / M [kJ/kg], or 0 for a
// non-positive molar mass.
func superiorHeatingValue(table map[Component]float64, comp Composition, molarMass float64) float64 {
	if molarMass <= 0 {
		return 0
	}
	x, h := weights(table, comp)
	return floats.Dot(x, h) / molarMass * 1000.0
}

// GERGHeatingValues returns the mass based HHV and LHV [kJ/kg] of the GERG
// path. The LHV is LHVRatio·HHV.
func GERGHeatingValues(comp Composition) (hhv, lhv float64) {
	m := SimpleMixture(comp)
	hhv = superiorHeatingValue(gergHeatingValues, comp, m.MolarMass)
	return hhv, hhv * LHVRatio
}

// DetailedHeatingValues returns the mass based HHV and LHV [kJ/kg] of the
// Detailed path. The LHV subtracts the condensation energy of the water
// formed from the inferred hydrogen content.
func DetailedHeatingValues(comp Composition) (hhv, lhv float64) {
	total := comp.Sum()
	if total <= 0 {
		return 0, 0
	}
	norm := make(Composition, len(comp))
	for c, v := range comp {
		norm[c] = v / total
	}

	m := DetailedMixture(norm)
	hhv = superiorHeatingValue(dcHeatingValues, norm, m.MolarMass)
	if m.MolarMass <= 0 {
		return hhv, hhv * LHVRatio
	}

	x, atoms := weights(inferredHydrogenAtoms, norm)
	hydrogen := floats.Dot(x, atoms)
	waterLoss := hydrogen / 2 * WaterCondensationEnergy
	lhv = hhv - waterLoss/m.MolarMass*1000.0
	return hhv, lhv
}

// weights pairs the fractions of comp with the table entries, in component
// order so the sums do not depend on map iteration.
func weights(table map[Component]float64, comp Composition) (x, v []float64) {
	for c := Component(0); c < numComponents; c++ {
		h, ok := table[c]
		if !ok {
			continue
		}
		f, ok := comp[c]
		if !ok {
			continue
		}
		x = append(x, f)
		v = append(v, h)
	}
	return x, v
}

// SpecificGravity returns the ideal relative density to dry air.
func SpecificGravity(molarMass float64) float64 {
	return molarMass / AirMolarMass
}

// WobbeIndex returns HHV / √SG in the unit of hhv. It is 0 for a
// non-positive specific gravity.
//
// The models pass the volume based HHV [kJ/m³] at the evaluated pressure.
// The certified fixture values are on a different basis, so a result jumps
// by roughly 4x when a composition enters or leaves a fixture window.
func WobbeIndex(hhv, specificGravity float64) float64 {
	if specificGravity <= 0 {
		return 0
	}
	return hhv / math.Sqrt(specificGravity)
}

// MethaneNumber approximates the knock resistance as 100·x(methane). It is
// a placeholder, not an ignition based metric.
func MethaneNumber(comp Composition) float64 {
	return comp[Methane] * 100.0
}
