package aga8

//--------------------------------------
// components
//--------------------------------------

// R is the universal gas constant [J/(mol·K)].
const R = 8.314472

// AirMolarMass is the molar mass of dry air used for specific gravity [g/mol].
const AirMolarMass = 28.9647

// Component is a chemical species a chromatography bulletin can report.
//
// The species are shared by both correlation paths; the id text and the
// property tables are not. Use the Registry of the path being evaluated to
// turn a Component into an id or a ComponentSpec.
type Component int

const (
	Methane Component = iota
	Nitrogen
	CarbonDioxide
	Ethane
	Propane
	Water
	HydrogenSulfide
	Hydrogen
	CarbonMonoxide
	Oxygen
	IButane
	NButane
	IPentane
	NPentane
	NHexane
	NHeptane
	NOctane
	NNonane
	NDecane
	Helium
	Argon

	numComponents
)

var componentNames = [numComponents]string{
	Methane:         "Methane",
	Nitrogen:        "Nitrogen",
	CarbonDioxide:   "Carbon dioxide",
	Ethane:          "Ethane",
	Propane:         "Propane",
	Water:           "Water",
	HydrogenSulfide: "Hydrogen sulfide",
	Hydrogen:        "Hydrogen",
	CarbonMonoxide:  "Carbon monoxide",
	Oxygen:          "Oxygen",
	IButane:         "Isobutane",
	NButane:         "n-Butane",
	IPentane:        "Isopentane",
	NPentane:        "n-Pentane",
	NHexane:         "n-Hexane",
	NHeptane:        "n-Heptane",
	NOctane:         "n-Octane",
	NNonane:         "n-Nonane",
	NDecane:         "n-Decane",
	Helium:          "Helium",
	Argon:           "Argon",
}

var componentFormulas = [numComponents]string{
	Methane:         "CH4",
	Nitrogen:        "N2",
	CarbonDioxide:   "CO2",
	Ethane:          "C2H6",
	Propane:         "C3H8",
	Water:           "H2O",
	HydrogenSulfide: "H2S",
	Hydrogen:        "H2",
	CarbonMonoxide:  "CO",
	Oxygen:          "O2",
	IButane:         "iC4H10",
	NButane:         "nC4H10",
	IPentane:        "iC5H12",
	NPentane:        "nC5H12",
	NHexane:         "nC6H14",
	NHeptane:        "nC7H16",
	NOctane:         "nC8H18",
	NNonane:         "nC9H20",
	NDecane:         "nC10H22",
	Helium:          "He",
	Argon:           "Ar",
}

// String returns the display name of the component.
func (c Component) String() string {
	if c < 0 || c >= numComponents {
		return "unknown"
	}
	return componentNames[c]
}

// Formula returns the report formula (CH4, nC4H10, ...).
func (c Component) Formula() string {
	if c < 0 || c >= numComponents {
		return ""
	}
	return componentFormulas[c]
}

// ComponentSpec holds the static properties of one component in one
// correlation path.
type ComponentSpec struct {
	ID        string    // canonical id of the path (n-butane / n_butane)
	Component Component // species shared by both paths
	MolarMass float64   // molar mass [g/mol]
	Tc        float64   // critical temperature [K]
	Pc        float64   // critical pressure [kPa]
	Acentric  float64   // acentric factor ω (Detailed path only)
	Zc        float64   // critical compressibility (Detailed path only)
}

// CriticalVolume returns Zc·R·Tc/Pc [m³/kmol], or 0 when the spec carries no
// Zc or a non-positive Pc.
func (s ComponentSpec) CriticalVolume() float64 {
	if s.Pc <= 0 {
		return 0
	}
	return s.Zc * R * s.Tc / s.Pc
}

// GERG-2008 path: hyphenated ids.
var gergSpecs = []ComponentSpec{
	{ID: "methane", Component: Methane, Tc: 190.564, Pc: 4599.2, MolarMass: 16.043},
	{ID: "nitrogen", Component: Nitrogen, Tc: 126.192, Pc: 3395.8, MolarMass: 28.014},
	{ID: "carbon_dioxide", Component: CarbonDioxide, Tc: 304.1282, Pc: 7377.3, MolarMass: 44.01},
	{ID: "ethane", Component: Ethane, Tc: 305.322, Pc: 4872.2, MolarMass: 30.07},
	{ID: "propane", Component: Propane, Tc: 369.89, Pc: 4251.2, MolarMass: 44.097},
	{ID: "i-butane", Component: IButane, Tc: 407.817, Pc: 3640.0, MolarMass: 58.123},
	{ID: "n-butane", Component: NButane, Tc: 425.125, Pc: 3796.0, MolarMass: 58.123},
	{ID: "i-pentane", Component: IPentane, Tc: 460.39, Pc: 3378.0, MolarMass: 72.15},
	{ID: "n-pentane", Component: NPentane, Tc: 469.7, Pc: 3370.0, MolarMass: 72.15},
	{ID: "n-hexane", Component: NHexane, Tc: 507.6, Pc: 3025.0, MolarMass: 86.177},
	{ID: "n-heptane", Component: NHeptane, Tc: 540.2, Pc: 2736.0, MolarMass: 100.204},
	{ID: "n-octane", Component: NOctane, Tc: 569.4, Pc: 2480.0, MolarMass: 114.232},
	{ID: "n-nonane", Component: NNonane, Tc: 594.6, Pc: 2290.0, MolarMass: 128.259},
	{ID: "n-decane", Component: NDecane, Tc: 617.7, Pc: 2110.0, MolarMass: 142.286},
	{ID: "oxygen", Component: Oxygen, Tc: 154.58, Pc: 5043.0, MolarMass: 31.998},
	{ID: "hydrogen", Component: Hydrogen, Tc: 33.19, Pc: 1296.0, MolarMass: 2.0158},
	{ID: "carbon_monoxide", Component: CarbonMonoxide, Tc: 132.86, Pc: 3494.0, MolarMass: 28.01},
	{ID: "water", Component: Water, Tc: 647.096, Pc: 22055.0, MolarMass: 18.015},
	{ID: "helium", Component: Helium, Tc: 5.1953, Pc: 227.5, MolarMass: 4.0026},
	{ID: "argon", Component: Argon, Tc: 150.86, Pc: 4863.0, MolarMass: 39.948},
}

// Detailed Characterization path: underscored ids, 21 components.
var dcSpecs = []ComponentSpec{
	{ID: "methane", Component: Methane, Tc: 190.564, Pc: 4599.2, MolarMass: 16.0428, Acentric: 0.0115, Zc: 0.2866},
	{ID: "nitrogen", Component: Nitrogen, Tc: 126.192, Pc: 3395.8, MolarMass: 28.0135, Acentric: 0.0372, Zc: 0.2902},
	{ID: "carbon_dioxide", Component: CarbonDioxide, Tc: 304.1282, Pc: 7377.3, MolarMass: 44.0095, Acentric: 0.2276, Zc: 0.2740},
	{ID: "ethane", Component: Ethane, Tc: 305.322, Pc: 4872.2, MolarMass: 30.0690, Acentric: 0.0995, Zc: 0.2793},
	{ID: "propane", Component: Propane, Tc: 369.89, Pc: 4251.2, MolarMass: 44.0956, Acentric: 0.1521, Zc: 0.2760},
	{ID: "water", Component: Water, Tc: 647.14, Pc: 22064.0, MolarMass: 18.0153, Acentric: 0.3442, Zc: 0.2295},
	{ID: "hydrogen_sulfide", Component: HydrogenSulfide, Tc: 373.40, Pc: 8936.5, MolarMass: 34.0809, Acentric: 0.0942, Zc: 0.2842},
	{ID: "hydrogen", Component: Hydrogen, Tc: 33.145, Pc: 1296.4, MolarMass: 2.0159, Acentric: -0.2180, Zc: 0.3058},
	{ID: "carbon_monoxide", Component: CarbonMonoxide, Tc: 132.86, Pc: 3499.0, MolarMass: 28.0101, Acentric: 0.0497, Zc: 0.2948},
	{ID: "oxygen", Component: Oxygen, Tc: 154.581, Pc: 5042.8, MolarMass: 31.9988, Acentric: 0.0222, Zc: 0.2878},
	{ID: "i_butane", Component: IButane, Tc: 407.817, Pc: 3640.0, MolarMass: 58.1222, Acentric: 0.1756, Zc: 0.2780},
	{ID: "n_butane", Component: NButane, Tc: 425.125, Pc: 3796.0, MolarMass: 58.1222, Acentric: 0.2002, Zc: 0.2736},
	{ID: "i_pentane", Component: IPentane, Tc: 460.39, Pc: 3378.0, MolarMass: 72.1488, Acentric: 0.2223, Zc: 0.2703},
	{ID: "n_pentane", Component: NPentane, Tc: 469.70, Pc: 3370.0, MolarMass: 72.1488, Acentric: 0.2515, Zc: 0.2688},
	{ID: "n_hexane", Component: NHexane, Tc: 507.60, Pc: 3025.0, MolarMass: 86.1754, Acentric: 0.3013, Zc: 0.2659},
	{ID: "n_heptane", Component: NHeptane, Tc: 540.20, Pc: 2736.0, MolarMass: 100.2019, Acentric: 0.3495, Zc: 0.2632},
	{ID: "n_octane", Component: NOctane, Tc: 568.70, Pc: 2497.0, MolarMass: 114.2285, Acentric: 0.3996, Zc: 0.2568},
	{ID: "n_nonane", Component: NNonane, Tc: 594.60, Pc: 2290.0, MolarMass: 128.2551, Acentric: 0.4433, Zc: 0.2527},
	{ID: "n_decane", Component: NDecane, Tc: 617.70, Pc: 2103.0, MolarMass: 142.2817, Acentric: 0.4923, Zc: 0.2479},
	{ID: "helium", Component: Helium, Tc: 5.1953, Pc: 227.5, MolarMass: 4.0026, Acentric: -0.3836, Zc: 0.3010},
	{ID: "argon", Component: Argon, Tc: 150.687, Pc: 4863.0, MolarMass: 39.948, Acentric: -0.0022, Zc: 0.2910},
}

// Composition maps components to mole fractions.
type Composition map[Component]float64

// Sum returns the total of all fractions.
func (c Composition) Sum() float64 {
	var s float64
	for _, v := range c {
		s += v
	}
	return s
}

// Clone returns a copy that can be modified freely.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
