package aga8

// Detailed is the 21-component Detailed Characterization correlation:
// mixture reduced properties fed to a Lee-Kesler style Z = Z0 + ω·Z1.
type Detailed struct{}

// NewDetailed returns the Detailed Characterization path.
func NewDetailed() *Detailed {
	return &Detailed{}
}

func (*Detailed) Method() Method { return MethodDetailed }

func (*Detailed) Registry() *Registry { return DCRegistry }

// ValidateComposition normalizes raw with the Detailed registry.
func (*Detailed) ValidateComposition(raw RawComposition) Validation {
	v, _ := DCRegistry.Normalize(raw)
	return v
}

// CompressibilityFactor returns Z in [0.1, 2.0].
func (d *Detailed) CompressibilityFactor(pKPa, tC float64, comp Composition) float64 {
	return d.compressibility(pKPa, tC, DetailedMixture(comp))
}

func (*Detailed) compressibility(pKPa, tC float64, m MixtureProperties) float64 {
	if m.Tc <= 0 || m.Pc <= 0 {
		logger().Debugf("detailed: degenerate mixture Tc=%g Pc=%g", m.Tc, m.Pc)
		return DefaultZ
	}
	tr := Kelvin(tC) / m.Tc
	pr := pKPa / m.Pc
	if !validReduced(pr, tr) {
		logger().Debugf("detailed: degenerate reduced properties Pr=%g Tr=%g", pr, tr)
		return DefaultZ
	}
	z := simpleZ(pr, tr) + m.Acentric*acentricZ(pr, tr)
	return clampZ(z, maxZDetailed)
}

// Density returns the mass density [kg/m³].
func (d *Detailed) Density(pKPa, tC float64, comp Composition) float64 {
	m := DetailedMixture(comp)
	return MassDensity(pKPa, tC, m.MolarMass, d.compressibility(pKPa, tC, m))
}

// Evaluate computes every property of a normalized composition.
func (d *Detailed) Evaluate(pKPa, tC float64, comp Composition) *PropertyResult {
	m := DetailedMixture(comp)
	z := d.compressibility(pKPa, tC, m)
	density := MassDensity(pKPa, tC, m.MolarMass, z)
	hhv, lhv := DetailedHeatingValues(comp)
	sg := SpecificGravity(m.MolarMass)
	wobbe := WobbeIndex(hhv*density, sg)

	wobbeLHV := 0.0
	if hhv > 0 {
		wobbeLHV = wobbe * lhv / hhv
	}

	return &PropertyResult{
		Method:                MethodDetailed,
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
		WobbeIndexLHV:         wobbeLHV,
		MethaneNumber:         MethaneNumber(comp),
		SpecificGravity:       sg,
		CriticalPressure:      m.Pc,
		CriticalTemperature:   m.Tc,
		CriticalVolume:        m.Vc,
		AcentricFactor:        m.Acentric,
	}
}

// CalculateProperties validates raw and evaluates it. The error is an
// *InvalidCompositionError when the composition is rejected.
func (d *Detailed) CalculateProperties(pKPa, tC float64, raw RawComposition) (*PropertyResult, error) {
	v, err := DCRegistry.Normalize(raw)
	if err != nil {
		return nil, err
	}
	res := d.Evaluate(pKPa, tC, v.Composition)
	res.Message = v.Message
	return res, nil
}
