package aga8

// GERG2008 is a simplified GERG-2008 style correlation. It averages the
// reduced properties component by component instead of reducing with a
// mixture Tc/Pc. It is an engineering approximation, not the AGA 8 Part 2
// equation of state.
type GERG2008 struct{}

// NewGERG2008 returns the GERG-2008 path.
func NewGERG2008() *GERG2008 {
	return &GERG2008{}
}

func (*GERG2008) Method() Method { return MethodGERG2008 }

func (*GERG2008) Registry() *Registry { return GERGRegistry }

// ValidateComposition normalizes raw with the GERG registry.
func (*GERG2008) ValidateComposition(raw RawComposition) Validation {
	v, _ := GERGRegistry.Normalize(raw)
	return v
}

// ReducedProperties returns the mole-fraction weighted averages of P/Pci
// and T/Tci over the components the path knows.
func (*GERG2008) ReducedProperties(pKPa, tC float64, comp Composition) (pr, tr float64) {
	tK := Kelvin(tC)
	var total float64
	x, specs := GERGRegistry.vectors(comp)
	for i, s := range specs {
		pr += x[i] * (pKPa / s.Pc)
		tr += x[i] * (tK / s.Tc)
		total += x[i]
	}
	if total > 0 {
		pr /= total
		tr /= total
	}
	return pr, tr
}

// CompressibilityFactor returns Z in [0.1, 1.5].
func (g *GERG2008) CompressibilityFactor(pKPa, tC float64, comp Composition) float64 {
	pr, tr := g.ReducedProperties(pKPa, tC, comp)
	if !validReduced(pr, tr) {
		logger().Debugf("GERG-2008: degenerate reduced properties Pr=%g Tr=%g", pr, tr)
		return DefaultZ
	}
	return clampZ(simpleZ(pr, tr), maxZGERG)
}

// Density returns the mass density [kg/m³].
func (g *GERG2008) Density(pKPa, tC float64, comp Composition) float64 {
	m := SimpleMixture(comp)
	z := g.CompressibilityFactor(pKPa, tC, comp)
	return MassDensity(pKPa, tC, m.MolarMass, z)
}

// Evaluate computes every property of a normalized composition.
func (g *GERG2008) Evaluate(pKPa, tC float64, comp Composition) *PropertyResult {
	m := SimpleMixture(comp)
	z := g.CompressibilityFactor(pKPa, tC, comp)
	density := MassDensity(pKPa, tC, m.MolarMass, z)
	hhv, lhv := GERGHeatingValues(comp)
	sg := SpecificGravity(m.MolarMass)
	wobbe := WobbeIndex(hhv*density, sg)

	return &PropertyResult{
		Method:                MethodGERG2008,
		PressureKPa:           pKPa,
		Temperature:           tC,
		CompressibilityFactor: z,
		MolarMass:             m.MolarMass,
		Density:               density,
		MolarDensity:          MolarDensity(pKPa, tC, z),
		HHVMass:               hhv,
		LHVMass:               lhv,
		HHVVolume:             hhv * density,
		LHVVolume:             lhv * density,
		WobbeIndex:            wobbe,
		WobbeIndexLHV:         wobbe * LHVRatio,
		MethaneNumber:         MethaneNumber(comp),
		SpecificGravity:       sg,
		CriticalPressure:      m.Pc,
		CriticalTemperature:   m.Tc,
	}
}

// CalculateProperties validates raw and evaluates it. The error is an
// *InvalidCompositionError when the composition is rejected.
func (g *GERG2008) CalculateProperties(pKPa, tC float64, raw RawComposition) (*PropertyResult, error) {
	v, err := GERGRegistry.Normalize(raw)
	if err != nil {
		return nil, err
	}
	res := g.Evaluate(pKPa, tC, v.Composition)
	res.Message = v.Message
	return res, nil
}
