package aga8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Limits_Reference(t *testing.T) {
	v, err := DCRegistry.Normalize(rawReferencePercent())
	require.NoError(t, err)
	assert.Empty(t, DefaultLimits().Check(v))
}

// Limits are checked on the reported percentages.
func Test_Limits_Violations(t *testing.T) {
	v, err := DCRegistry.Normalize(RawComposition{
		"methane": 70, "ethane": 10, "propane": 13, "n_butane": 7,
	})
	require.NoError(t, err)

	out := DefaultLimits().Check(v)
	require.Len(t, out, 2)
	assert.Equal(t, Propane, out[0].Component)
	assert.InDelta(t, 13, out[0].Value, 1e-9)
	assert.Equal(t, Limit{0, 12}, out[0].Limit)
	assert.Equal(t, NButane, out[1].Component)
}

func Test_Limits_Unlisted(t *testing.T) {
	v, err := DCRegistry.Normalize(RawComposition{
		"methane": 60, "ethane": 5, "propane": 5, "hydrogen": 30,
	})
	require.NoError(t, err)
	assert.Empty(t, DefaultLimits().Check(v))

	v, err = DCRegistry.Normalize(RawComposition{
		"methane": 60, "ethane": 5, "propane": 5, "oxygen": 30,
	})
	require.NoError(t, err)
	out := DefaultLimits().Check(v)
	require.Len(t, out, 1)
	assert.Equal(t, Oxygen, out[0].Component)
}
