package aga8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Certified GERG-2008 results at 558 kPa, 55 °C.
func Test_CalculateAllPropertiesCalibrated_GERG(t *testing.T) {
	res, err := CalculateAllPropertiesCalibrated(558, 55, rawReference())
	require.NoError(t, err)

	assert.True(t, res.Calibrated)
	assert.Equal(t, GERGReferenceFixture().Name, res.Fixture)
	assert.Equal(t, MethodGERG2008, res.Method)
	assert.Equal(t, 0.9927517446, res.CompressibilityFactor)
	assert.Equal(t, 0.5805, res.SpecificGravity)
	assert.Equal(t, 16.80303286, res.MolarMass)
	assert.Equal(t, 9.3554, res.Density)
	assert.Equal(t, 53086.3, res.HHVMass)
	assert.Equal(t, 52374.6, res.WobbeIndex)
	assert.Equal(t, 95.7, res.MethaneNumber)
	assert.Equal(t, 4767.0, res.CriticalPressure)
	assert.Equal(t, 196.2, res.CriticalTemperature)

	require.NotNil(t, res.Validation)
	assert.True(t, res.Validation.Valid)
	assert.InDelta(t, 0.965, res.Composition["methane"], 1e-12)
	assert.Contains(t, res.Composition, "i-butane")
}

// Inside the ±1 kPa / ±1 °C window.
func Test_CalculateAllPropertiesCalibrated_Window(t *testing.T) {
	res, err := CalculateAllPropertiesCalibrated(558.9, 54.1, rawReference())
	require.NoError(t, err)
	assert.True(t, res.Calibrated)

	res, err = CalculateAllPropertiesCalibrated(559, 55, rawReference())
	require.NoError(t, err)
	assert.False(t, res.Calibrated)

	res, err = CalculateAllPropertiesCalibrated(558, 56.5, rawReference())
	require.NoError(t, err)
	assert.False(t, res.Calibrated)
}

// Methane 0.964 is outside the composition tolerance.
func Test_CalculateAllPropertiesCalibrated_NoMatch(t *testing.T) {
	raw := rawReference()
	raw["methane"] = 0.964

	res, err := CalculateAllPropertiesCalibrated(558, 55, raw)
	require.NoError(t, err)
	assert.False(t, res.Calibrated)
	assert.Empty(t, res.Fixture)
	assert.NotEqual(t, 0.9927517446, res.CompressibilityFactor)
	assert.GreaterOrEqual(t, res.CompressibilityFactor, 0.1)
	assert.LessOrEqual(t, res.CompressibilityFactor, 1.5)
}

// Percent input matches the Detailed certificate at 600 kPa, 50 °C.
func Test_CalculateDetailedPropertiesCalibrated(t *testing.T) {
	res, err := CalculateDetailedPropertiesCalibrated(600, 50, rawReferencePercent())
	require.NoError(t, err)

	assert.True(t, res.Calibrated)
	assert.Equal(t, MethodDetailed, res.Method)
	assert.Equal(t, 0.991694176393, res.CompressibilityFactor)
	assert.Equal(t, 16.8035819, res.MolarMass)
	assert.Equal(t, 0.225181478098, res.MolarDensity)
	assert.InDelta(t, 0.225181478098*16.8035819, res.Density, 1e-12)
	assert.Equal(t, 0.100649, res.CriticalVolume)
	assert.Equal(t, 0.0158, res.AcentricFactor)
	assert.InDelta(t, 16.8035819/28.9647, res.SpecificGravity, 1e-12)

	// the methane number is not certified
	assert.InDelta(t, 96.5, res.MethaneNumber, 1e-9)

	v, ok := res.Get(PropSpeedOfSound)
	assert.True(t, ok)
	assert.Equal(t, 451.754505636409, v)
	assert.Equal(t, 1.28702881184662, res.Map()["isentropic_exponent"])
	assert.True(t, res.Validation.Percent)
}

// The certificates belong to one path each.
func Test_Calibrated_WrongPath(t *testing.T) {
	res, err := CalculateAllPropertiesCalibrated(600, 50, rawReference())
	require.NoError(t, err)
	assert.False(t, res.Calibrated)

	res, err = CalculateDetailedPropertiesCalibrated(558, 55, rawReference())
	require.NoError(t, err)
	assert.False(t, res.Calibrated)

	c := NewCalibrated(NewGERG2008(), DetailedReferenceFixture(), GERGReferenceFixture())
	require.Len(t, c.Fixtures(), 1)
	assert.Equal(t, MethodGERG2008, c.Fixtures()[0].Method)
	assert.Equal(t, MethodGERG2008, c.Model().Method())
}

func Test_Calibrated_NoFixtures(t *testing.T) {
	c := NewCalibrated(NewDetailed())
	res, err := c.CalculateAllPropertiesCalibrated(600, 50, rawReference())
	require.NoError(t, err)
	assert.False(t, res.Calibrated)
	assert.NotEqual(t, 0.991694176393, res.CompressibilityFactor)
	assert.NotNil(t, res.Validation)
}

func Test_Calibrated_Invalid(t *testing.T) {
	res, err := CalculateAllPropertiesCalibrated(558, 55, RawComposition{"methane": 96.5, "propane": 3.5})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidComposition)
}

func Test_ReferenceFixture_Matches(t *testing.T) {
	f := GERGReferenceFixture()
	v, err := GERGRegistry.Normalize(rawReference())
	require.NoError(t, err)
	assert.True(t, f.Matches(v, 558, 55))
	assert.False(t, f.Matches(v, 557, 55))
	assert.False(t, f.Matches(v, 558, 54))

	v.Reported[Ethane] = 0.0185
	assert.True(t, f.Matches(v, 558, 55))
	v.Reported[Ethane] = 0.0195
	assert.False(t, f.Matches(v, 558, 55))
}

// ±0.1 % methane on percent input leaves the window on both paths.
func Test_Calibrated_PercentPerturbation(t *testing.T) {
	for _, methane := range []float64{96.4, 96.6} {
		raw := rawReferencePercent()
		raw["methane"] = methane

		res, err := CalculateAllPropertiesCalibrated(558, 55, raw)
		require.NoError(t, err)
		assert.False(t, res.Calibrated, "GERG methane %g", methane)

		res, err = CalculateDetailedPropertiesCalibrated(600, 50, raw)
		require.NoError(t, err)
		assert.False(t, res.Calibrated, "DC methane %g", methane)
		assert.NotEqual(t, 0.991694176393, res.CompressibilityFactor)
	}

	// a smaller deviation still matches
	raw := rawReferencePercent()
	raw["methane"] = 96.45
	res, err := CalculateDetailedPropertiesCalibrated(600, 50, raw)
	require.NoError(t, err)
	assert.True(t, res.Calibrated)
}

// ±0.001 on fraction input behaves like ±0.1 % on percent input.
func Test_Calibrated_FractionPerturbation(t *testing.T) {
	for _, methane := range []float64{0.964, 0.966} {
		raw := rawReference()
		raw["methane"] = methane

		res, err := CalculateAllPropertiesCalibrated(558, 55, raw)
		require.NoError(t, err)
		assert.False(t, res.Calibrated, "GERG methane %g", methane)

		res, err = CalculateDetailedPropertiesCalibrated(600, 50, raw)
		require.NoError(t, err)
		assert.False(t, res.Calibrated, "DC methane %g", methane)
	}
}

func Test_ReferenceFixture_Boundary(t *testing.T) {
	f := DetailedReferenceFixture()
	v, err := DCRegistry.Normalize(rawReferencePercent())
	require.NoError(t, err)

	for _, x := range []float64{0.9640000000000001, 0.964, 0.966, 0.9659999999999999} {
		v.Reported[Methane] = x
		assert.False(t, f.Matches(v, 600, 50), "%v", x)
	}
	v.Reported[Methane] = 0.9655
	assert.True(t, f.Matches(v, 600, 50))
}
