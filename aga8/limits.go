package aga8

import (
	"sort"
)

// Limit is an accepted range of a component [mol %].
type Limit struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Limits are the AGA #8 component ranges a bulletin is checked against.
type Limits map[Component]Limit

// DefaultLimits returns the AGA #8 ranges of the bulletin workflow.
func DefaultLimits() Limits {
	return Limits{
		Methane:       {0, 100},
		Ethane:        {0, 100},
		Propane:       {0, 12},
		IButane:       {0, 6},
		NButane:       {0, 6},
		IPentane:      {0, 4},
		NPentane:      {0, 4},
		NHexane:       {0, 100},
		NHeptane:      {0, 100},
		NOctane:       {0, 100},
		NNonane:       {0, 100},
		NDecane:       {0, 100},
		Oxygen:        {0, 21},
		Nitrogen:      {0, 100},
		CarbonDioxide: {0, 100},
	}
}

// LimitViolation is a component outside its range.
type LimitViolation struct {
	Component Component
	Value     float64 // as reported [mol %]
	Limit     Limit
}

// Check compares the as-reported composition of v, in mol %, with the
// limits. Components without a limit always pass. Violations are sorted by
// component.
func (l Limits) Check(v Validation) []LimitViolation {
	var out []LimitViolation
	for c, x := range v.Reported {
		lim, ok := l[c]
		if !ok {
			continue
		}
		percent := x * 100
		if percent < lim.Min || percent > lim.Max {
			out = append(out, LimitViolation{Component: c, Value: percent, Limit: lim})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Component < out[j].Component })
	return out
}
