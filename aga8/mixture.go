package aga8

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultZc is the critical compressibility reported when the mixture
// critical temperature is degenerate.
const DefaultZc = 0.29

// MixtureProperties are the pseudo-critical properties of a mixture.
type MixtureProperties struct {
	MolarMass float64 // [g/mol]
	Tc        float64 // [K]
	Pc        float64 // [kPa]
	Vc        float64 // [m³/kmol] (Detailed only)
	Acentric  float64 // ω (Detailed only)
	Zc        float64 // (Detailed only)
}

// SimpleMixture applies the GERG path mixing rule: mole-fraction weighted
// sums of Tc, Pc and molar mass. Volume and acentric factor are not mixed.
func SimpleMixture(comp Composition) MixtureProperties {
	x, specs := GERGRegistry.vectors(comp)
	return MixtureProperties{
		MolarMass: floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.MolarMass })),
		Tc:        floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.Tc })),
		Pc:        floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.Pc })),
	}
}

// DetailedMixture applies the Detailed Characterization mixing rule:
// linear Tc, Pc, ω and molar mass plus
//
//	Vc = Σ xi·Zci·R·Tci/Pci
//	Zc = Pc·Vc/(R·Tc)
//
// The fractions are rescaled to sum 1 first. A composition with no positive
// total yields zero properties and DefaultZc.
func DetailedMixture(comp Composition) MixtureProperties {
	x, specs := DCRegistry.vectors(comp)

	total := floats.Sum(x)
	if total <= 0 {
		logger().Debugf("detailed mixture: degenerate composition total %g", total)
		return MixtureProperties{Zc: DefaultZc}
	}
	floats.Scale(1/total, x)

	m := MixtureProperties{
		MolarMass: floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.MolarMass })),
		Tc:        floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.Tc })),
		Pc:        floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.Pc })),
		Acentric:  floats.Dot(x, column(specs, func(s ComponentSpec) float64 { return s.Acentric })),
		Vc:        floats.Dot(x, column(specs, ComponentSpec.CriticalVolume)),
	}
	if m.Tc > 0 {
		m.Zc = m.Pc * m.Vc / (R * m.Tc)
	} else {
		m.Zc = DefaultZc
	}
	return m
}

func column(specs []ComponentSpec, f func(ComponentSpec) float64) []float64 {
	out := make([]float64, len(specs))
	for i, s := range specs {
		out[i] = f(s)
	}
	return out
}

//--------------------------------------
// binary interaction
//--------------------------------------

type componentPair struct {
	a, b Component
}

// Only a few methane pairs are populated. The table is not used by the
// Tc/Pc blending above.
var binaryInteraction = map[componentPair]float64{
	{Methane, Ethane}:        0.9974,
	{Methane, Propane}:       0.9945,
	{Methane, Nitrogen}:      1.0266,
	{Methane, CarbonDioxide}: 0.9960,
}

// BinaryInteraction returns the interaction parameter of the ordered pair
// (a, b); unlisted pairs are 1.
func BinaryInteraction(a, b Component) float64 {
	if k, ok := binaryInteraction[componentPair{a, b}]; ok {
		return k
	}
	return 1.0
}
