package aga8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SimpleMixture_PureMethane(t *testing.T) {
	m := SimpleMixture(Composition{Methane: 1})
	assert.InDelta(t, 16.043, m.MolarMass, 1e-12)
	assert.InDelta(t, 190.564, m.Tc, 1e-12)
	assert.InDelta(t, 4599.2, m.Pc, 1e-12)
	assert.Equal(t, 0.0, m.Vc)
	assert.Equal(t, 0.0, m.Acentric)
}

// A single component mixture reproduces the component's own Zc.
func Test_DetailedMixture_SingleComponent(t *testing.T) {
	m := DetailedMixture(Composition{Methane: 2})
	assert.InDelta(t, 16.0428, m.MolarMass, 1e-12)
	assert.InDelta(t, 0.0115, m.Acentric, 1e-12)
	assert.InDelta(t, 0.2866, m.Zc, 1e-12)

	s, _ := DCRegistry.Spec(Methane)
	assert.InDelta(t, s.CriticalVolume(), m.Vc, 1e-12)
}

func Test_DetailedMixture_Reference(t *testing.T) {
	m := DetailedMixture(ReferenceComposition())
	assert.InDelta(t, 16.80335792, m.MolarMass, 1e-9)
	assert.InDelta(t, 0.10064936880772114, m.Vc, 1e-12)
	assert.InDelta(t, 0.965*190.564+0.003*126.192+0.006*304.1282+0.018*305.322+
		0.0045*369.89+0.001*407.817+0.001*425.125+0.0005*460.39+0.0003*469.70+0.0007*507.60, m.Tc, 1e-9)
	assert.Greater(t, m.Vc, 0.0)
	assert.Greater(t, m.Zc, 0.2)
	assert.Less(t, m.Zc, 0.3)
}

func Test_DetailedMixture_Degenerate(t *testing.T) {
	m := DetailedMixture(Composition{})
	assert.Equal(t, MixtureProperties{Zc: DefaultZc}, m)

	m = DetailedMixture(Composition{Methane: 0})
	assert.Equal(t, DefaultZc, m.Zc)
}

func Test_CriticalVolume_ZeroPc(t *testing.T) {
	assert.Equal(t, 0.0, ComponentSpec{Tc: 100, Zc: 0.3}.CriticalVolume())
}

// The interaction table does not take part in the blending.
func Test_BinaryInteraction(t *testing.T) {
	assert.Equal(t, 0.9974, BinaryInteraction(Methane, Ethane))
	assert.Equal(t, 1.0266, BinaryInteraction(Methane, Nitrogen))
	assert.Equal(t, 1.0, BinaryInteraction(Ethane, Methane))
	assert.Equal(t, 1.0, BinaryInteraction(Propane, NButane))

	comp := Composition{Methane: 0.9, Ethane: 0.1}
	m := DetailedMixture(comp)
	g, _ := DCRegistry.Spec(Methane)
	e, _ := DCRegistry.Spec(Ethane)
	assert.InDelta(t, 0.9*g.Tc+0.1*e.Tc, m.Tc, 1e-9)
}
