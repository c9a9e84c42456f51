package aga8

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Case, formula and Portuguese spellings resolve to one component.
func Test_Resolve_Aliases(t *testing.T) {
	for _, name := range []string{"Metano", "METANO", "metano", "CH4", "c1", "methane", " Methane "} {
		c, ok := GERGRegistry.Resolve(name)
		assert.True(t, ok, name)
		assert.Equal(t, Methane, c, name)
	}
}

func Test_Resolve_Diacritics(t *testing.T) {
	c, ok := DCRegistry.Resolve("Nitrogênio")
	assert.True(t, ok)
	assert.Equal(t, Nitrogen, c)

	c, ok = DCRegistry.Resolve("Dióxido de Carbono")
	assert.True(t, ok)
	assert.Equal(t, CarbonDioxide, c)

	c, ok = DCRegistry.Resolve("Sulfeto de Hidrogênio")
	assert.True(t, ok)
	assert.Equal(t, HydrogenSulfide, c)
}

func Test_Resolve_Unknown(t *testing.T) {
	_, ok := GERGRegistry.Resolve("xenon")
	assert.False(t, ok)
	_, ok = GERGRegistry.Resolve("")
	assert.False(t, ok)
}

// The two paths differ in ids and in numbers.
func Test_Registry_Paths(t *testing.T) {
	id, ok := GERGRegistry.ResolveID("n_butane")
	assert.True(t, ok)
	assert.Equal(t, "n-butane", id)

	id, ok = DCRegistry.ResolveID("n-butane")
	assert.True(t, ok)
	assert.Equal(t, "n_butane", id)

	id, ok = GERGRegistry.ResolveID("CO2")
	assert.True(t, ok)
	assert.Equal(t, "carbon_dioxide", id)

	// hydrogen sulfide only exists on the Detailed path
	_, ok = GERGRegistry.Resolve("H2S")
	assert.False(t, ok)
	_, ok = DCRegistry.Resolve("H2S")
	assert.True(t, ok)

	assert.Len(t, GERGRegistry.Components(), 20)
	assert.Len(t, DCRegistry.Components(), 21)

	g, _ := GERGRegistry.Spec(Methane)
	d, _ := DCRegistry.Spec(Methane)
	assert.Equal(t, 16.043, g.MolarMass)
	assert.Equal(t, 16.0428, d.MolarMass)
}

func Test_Registry_Formula(t *testing.T) {
	assert.Equal(t, "iC4H10", GERGRegistry.Formula("i-butane"))
	assert.Equal(t, "nC10H22", DCRegistry.Formula("n_decane"))
	assert.Equal(t, "unknown_id", DCRegistry.Formula("unknown_id"))
}

func Test_Registry_Named(t *testing.T) {
	named := DCRegistry.Named(Composition{Methane: 0.9, IButane: 0.1})
	assert.Equal(t, map[string]float64{"methane": 0.9, "i_butane": 0.1}, named)

	named = GERGRegistry.Named(Composition{Methane: 0.9, HydrogenSulfide: 0.1})
	assert.Equal(t, map[string]float64{"methane": 0.9}, named)
}

func Test_Resolve_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, ok := DCRegistry.Resolve("Isobutano")
			if !ok || c != IButane {
				errs <- "isobutano"
			}
		}()
	}
	wg.Wait()
	close(errs)
	assert.Empty(t, errs)
}

func Test_Component_String(t *testing.T) {
	assert.Equal(t, "Methane", Methane.String())
	assert.Equal(t, "CH4", Methane.Formula())
	assert.Equal(t, "unknown", Component(-1).String())
	assert.Equal(t, "", numComponents.Formula())
}
