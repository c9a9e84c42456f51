package aga8

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folded alias → component. Keys are the output of foldName: ASCII only,
// lower case, no spaces, hyphens or underscores. English, Portuguese and
// formula spellings are accepted.
var componentAliases = map[string]Component{
	"methane": Methane, "metano": Methane, "ch4": Methane, "c1": Methane,

	"nitrogen": Nitrogen, "nitrogenio": Nitrogen, "nitrogeno": Nitrogen, "n2": Nitrogen,

	"carbondioxide": CarbonDioxide, "dioxidocarbono": CarbonDioxide,
	"dioxidodecarbono": CarbonDioxide, "co2": CarbonDioxide,

	"ethane": Ethane, "etano": Ethane, "c2h6": Ethane, "c2": Ethane,

	"propane": Propane, "propano": Propane, "c3h8": Propane, "c3": Propane,

	"isobutane": IButane, "isobutano": IButane, "ibutane": IButane, "ibutano": IButane,
	"ic4h10": IButane, "ic4": IButane,

	"nbutane": NButane, "nbutano": NButane, "butane": NButane, "butano": NButane,
	"nc4h10": NButane, "nc4": NButane,

	"isopentane": IPentane, "isopentano": IPentane, "ipentane": IPentane, "ipentano": IPentane,
	"ic5h12": IPentane, "ic5": IPentane,

	"npentane": NPentane, "npentano": NPentane, "pentane": NPentane, "pentano": NPentane,
	"nc5h12": NPentane, "nc5": NPentane,

	"nhexane": NHexane, "hexane": NHexane, "nhexano": NHexane, "hexano": NHexane,
	"nc6h14": NHexane, "c6h14": NHexane, "nc6": NHexane, "c6": NHexane,

	"nheptane": NHeptane, "heptane": NHeptane, "nheptano": NHeptane, "heptano": NHeptane,
	"nc7h16": NHeptane, "c7h16": NHeptane, "nc7": NHeptane, "c7": NHeptane,

	"noctane": NOctane, "octane": NOctane, "noctano": NOctane, "octano": NOctane,
	"nc8h18": NOctane, "c8h18": NOctane, "nc8": NOctane, "c8": NOctane,

	"nnonane": NNonane, "nonane": NNonane, "nnonano": NNonane, "nonano": NNonane,
	"nc9h20": NNonane, "c9h20": NNonane, "nc9": NNonane, "c9": NNonane,

	"ndecane": NDecane, "decane": NDecane, "ndecano": NDecane, "decano": NDecane,
	"nc10h22": NDecane, "c10h22": NDecane, "nc10": NDecane, "c10": NDecane,

	"oxygen": Oxygen, "oxigenio": Oxygen, "oxigeno": Oxygen, "o2": Oxygen,

	"hydrogen": Hydrogen, "hidrogenio": Hydrogen, "h2": Hydrogen,

	"carbonmonoxide": CarbonMonoxide, "monoxido": CarbonMonoxide,
	"monoxidodecarbono": CarbonMonoxide, "co": CarbonMonoxide,

	"water": Water, "agua": Water, "h2o": Water,

	"hydrogensulfide": HydrogenSulfide, "hydrogensulphide": HydrogenSulfide,
	"sulfetodehidrogenio": HydrogenSulfide, "gassulfidrico": HydrogenSulfide, "h2s": HydrogenSulfide,

	"helium": Helium, "helio": Helium, "he": Helium,

	"argon": Argon, "argonio": Argon, "argao": Argon, "ar": Argon,
}

// foldName reduces a component name to its alias-table key.
//
// The transformer chain keeps state, so a new one is built per call; a
// shared chain would race under concurrent callers.
func foldName(name string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// Registry resolves free-form component names into the components of one
// correlation path and holds that path's property table.
//
// The GERG-2008 and Detailed Characterization registries are not
// interchangeable: their ids and their numbers differ.
type Registry struct {
	name    string
	order   []Component
	specs   map[Component]ComponentSpec
	ids     map[string]Component
	aliases map[string]Component
}

func newRegistry(name string, specs []ComponentSpec) *Registry {
	r := &Registry{
		name:    name,
		order:   make([]Component, 0, len(specs)),
		specs:   make(map[Component]ComponentSpec, len(specs)),
		ids:     make(map[string]Component, len(specs)),
		aliases: make(map[string]Component),
	}
	for _, s := range specs {
		r.order = append(r.order, s.Component)
		r.specs[s.Component] = s
		r.ids[s.ID] = s.Component
	}
	for alias, c := range componentAliases {
		if _, ok := r.specs[c]; ok {
			r.aliases[alias] = c
		}
	}
	// the canonical ids of the path always resolve to themselves
	for id, c := range r.ids {
		r.aliases[foldName(id)] = c
	}
	return r
}

var (
	// GERGRegistry is the hyphenated-id registry of the GERG-2008 path.
	GERGRegistry = newRegistry("GERG-2008", gergSpecs)

	// DCRegistry is the underscored 21-component registry of the Detailed
	// Characterization path.
	DCRegistry = newRegistry("Detailed Characterization", dcSpecs)
)

// Name returns the name of the correlation path the registry serves.
func (r *Registry) Name() string {
	return r.name
}

// Resolve returns the component a free-form name refers to. Case,
// diacritics, spaces, hyphens and underscores are ignored. ok is false when
// the name is unrecognized or the component is not part of this path.
func (r *Registry) Resolve(name string) (c Component, ok bool) {
	if name == "" {
		return 0, false
	}
	c, ok = r.aliases[foldName(name)]
	return c, ok
}

// ResolveID returns the canonical id of name in this registry.
func (r *Registry) ResolveID(name string) (string, bool) {
	c, ok := r.Resolve(name)
	if !ok {
		return "", false
	}
	return r.specs[c].ID, true
}

// Spec returns the property table entry of c.
func (r *Registry) Spec(c Component) (ComponentSpec, bool) {
	s, ok := r.specs[c]
	return s, ok
}

// ID returns the canonical id of c, or "" when c is not part of the path.
func (r *Registry) ID(c Component) string {
	return r.specs[c].ID
}

// Components returns the components of the path in table order.
func (r *Registry) Components() []Component {
	return append([]Component(nil), r.order...)
}

// Formula returns the report formula of id, or id itself when it is not a
// canonical id of the path.
func (r *Registry) Formula(id string) string {
	if c, ok := r.ids[id]; ok {
		return c.Formula()
	}
	return id
}

// Named converts a composition to a map keyed by the canonical ids of the
// path. Components the path does not know are skipped.
func (r *Registry) Named(comp Composition) map[string]float64 {
	out := make(map[string]float64, len(comp))
	for c, x := range comp {
		if s, ok := r.specs[c]; ok {
			out[s.ID] = x
		}
	}
	return out
}

// vectors returns the mole fractions of comp and the matching specs in
// table order, skipping components the path does not know.
func (r *Registry) vectors(comp Composition) ([]float64, []ComponentSpec) {
	x := make([]float64, 0, len(comp))
	specs := make([]ComponentSpec, 0, len(comp))
	for _, c := range r.order {
		v, ok := comp[c]
		if !ok {
			continue
		}
		x = append(x, v)
		specs = append(specs, r.specs[c])
	}
	return x, specs
}
