package aga8

import (
	"sort"
)

// Method identifies the correlation path that produced a result.
type Method string

const (
	MethodGERG2008 Method = "GERG-2008"
	MethodDetailed Method = "DC"
)

// Property names a scalar of a PropertyResult. The values are the keys of
// PropertyResult.Map.
type Property string

const (
	PropCompressibility     Property = "compressibility_factor"
	PropMolarMass           Property = "molar_mass"
	PropDensity             Property = "density"
	PropMolarDensity        Property = "molar_density"
	PropHHVMass             Property = "heating_value_mass_hhv"
	PropLHVMass             Property = "heating_value_mass_lhv"
	PropHHVVolume           Property = "heating_value_volume_hhv"
	PropLHVVolume           Property = "heating_value_volume_lhv"
	PropWobbeIndex          Property = "wobbe_index"
	PropWobbeIndexLHV       Property = "wobbe_index_lhv"
	PropMethaneNumber       Property = "methane_number"
	PropSpecificGravity     Property = "specific_gravity"
	PropCriticalPressure    Property = "critical_pressure"
	PropCriticalTemperature Property = "critical_temperature"
	PropCriticalVolume      Property = "critical_volume"
	PropAcentricFactor      Property = "acentric_factor"

	// Thermodynamic values only certified fixtures carry.
	PropEnergy                Property = "energy"
	PropEnthalpy              Property = "enthalpy"
	PropEntropy               Property = "entropy"
	PropIsochoricHeatCapacity Property = "isochoric_heat_capacity"
	PropIsobaricHeatCapacity  Property = "isobaric_heat_capacity"
	PropSpeedOfSound          Property = "speed_of_sound"
	PropGibbsEnergy           Property = "gibbs_energy"
	PropJouleThomson          Property = "joule_thomson_coefficient"
	PropIsentropicExponent    Property = "isentropic_exponent"
)

// PropertyResult is the full output of one evaluation. Units: kPa, K,
// kg/m³, mol/L, kJ/kg, kJ/m³.
type PropertyResult struct {
	Method      Method
	PressureKPa float64
	Temperature float64 // [°C]

	CompressibilityFactor float64
	MolarMass             float64 // [g/mol]
	Density               float64 // [kg/m³]
	MolarDensity          float64 // [mol/L]

	HHVMass   float64 // [kJ/kg]
	LHVMass   float64 // [kJ/kg]
	HHVVolume float64 // [kJ/m³]
	LHVVolume float64 // [kJ/m³]

	WobbeIndex      float64 // HHV based [kJ/m³]
	WobbeIndexLHV   float64 // LHV based [kJ/m³]
	MethaneNumber   float64
	SpecificGravity float64

	CriticalPressure    float64 // pseudo-critical [kPa]
	CriticalTemperature float64 // pseudo-critical [K]
	CriticalVolume      float64 // [m³/kmol] (Detailed only)
	AcentricFactor      float64 // (Detailed only)

	// Thermodynamic values a certified fixture supplied; nil otherwise.
	Thermo map[Property]float64

	Message string

	// Set by the calibrated entry points.
	Calibrated  bool
	Fixture     string             // name of the matched reference fixture
	Validation  *Validation        // validation echo
	Composition map[string]float64 // normalized composition by path id
}

func (r *PropertyResult) field(p Property) *float64 {
	switch p {
	case PropCompressibility:
		return &r.CompressibilityFactor
	case PropMolarMass:
		return &r.MolarMass
	case PropDensity:
		return &r.Density
	case PropMolarDensity:
		return &r.MolarDensity
	case PropHHVMass:
		return &r.HHVMass
	case PropLHVMass:
		return &r.LHVMass
	case PropHHVVolume:
		return &r.HHVVolume
	case PropLHVVolume:
		return &r.LHVVolume
	case PropWobbeIndex:
		return &r.WobbeIndex
	case PropWobbeIndexLHV:
		return &r.WobbeIndexLHV
	case PropMethaneNumber:
		return &r.MethaneNumber
	case PropSpecificGravity:
		return &r.SpecificGravity
	case PropCriticalPressure:
		return &r.CriticalPressure
	case PropCriticalTemperature:
		return &r.CriticalTemperature
	case PropCriticalVolume:
		return &r.CriticalVolume
	case PropAcentricFactor:
		return &r.AcentricFactor
	}
	return nil
}

// Get returns the value of p and whether the result carries it.
func (r *PropertyResult) Get(p Property) (float64, bool) {
	if f := r.field(p); f != nil {
		return *f, true
	}
	v, ok := r.Thermo[p]
	return v, ok
}

// set stores v under p; properties without a field go to Thermo.
func (r *PropertyResult) set(p Property, v float64) {
	if f := r.field(p); f != nil {
		*f = v
		return
	}
	if r.Thermo == nil {
		r.Thermo = make(map[Property]float64)
	}
	r.Thermo[p] = v
}

// Map flattens the result into the snake_case map the bulletin front end
// and the exporters consume. The legacy aliases heating_value_mass,
// heating_value_volume and pseudo_critical_* are included.
func (r *PropertyResult) Map() map[string]float64 {
	m := map[string]float64{
		string(PropCompressibility):     r.CompressibilityFactor,
		string(PropMolarMass):           r.MolarMass,
		string(PropDensity):             r.Density,
		string(PropMolarDensity):        r.MolarDensity,
		string(PropHHVMass):             r.HHVMass,
		string(PropLHVMass):             r.LHVMass,
		string(PropHHVVolume):           r.HHVVolume,
		string(PropLHVVolume):           r.LHVVolume,
		string(PropWobbeIndex):          r.WobbeIndex,
		string(PropWobbeIndexLHV):       r.WobbeIndexLHV,
		string(PropMethaneNumber):       r.MethaneNumber,
		string(PropSpecificGravity):     r.SpecificGravity,
		string(PropCriticalPressure):    r.CriticalPressure,
		string(PropCriticalTemperature): r.CriticalTemperature,
		"heating_value_mass":            r.HHVMass,
		"heating_value_volume":          r.HHVVolume,
		"pseudo_critical_pressure":      r.CriticalPressure,
		"pseudo_critical_temperature":   r.CriticalTemperature,
	}
	if r.Method == MethodDetailed {
		m[string(PropCriticalVolume)] = r.CriticalVolume
		m[string(PropAcentricFactor)] = r.AcentricFactor
	}
	for p, v := range r.Thermo {
		m[string(p)] = v
	}
	return m
}

// Properties returns the keys of Map in a stable order: the fields in
// declaration order followed by the thermodynamic values sorted by name.
func (r *PropertyResult) Properties() []Property {
	props := []Property{
		PropCompressibility, PropMolarMass, PropDensity, PropMolarDensity,
		PropHHVMass, PropLHVMass, PropHHVVolume, PropLHVVolume,
		PropWobbeIndex, PropWobbeIndexLHV, PropMethaneNumber, PropSpecificGravity,
		PropCriticalPressure, PropCriticalTemperature,
	}
	if r.Method == MethodDetailed {
		props = append(props, PropCriticalVolume, PropAcentricFactor)
	}
	thermo := make([]Property, 0, len(r.Thermo))
	for p := range r.Thermo {
		thermo = append(thermo, p)
	}
	sort.Slice(thermo, func(i, j int) bool { return thermo[i] < thermo[j] })
	return append(props, thermo...)
}
