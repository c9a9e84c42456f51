package aga8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToKPa(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		kPa   float64
	}{
		{558, "kPa", 558},
		{558000, "Pa", 558},
		{0.558, "MPa", 558},
		{5.58, "bar", 558},
		{1, "atm", 101.325},
		{1, "psi", 6.89476},
		{1, " BAR ", 100},
	}
	for _, c := range cases {
		v, err := ToKPa(c.value, c.unit)
		require.NoError(t, err, c.unit)
		assert.InDelta(t, c.kPa, v, 1e-9, c.unit)
	}

	_, err := ToKPa(1, "mmHg")
	assert.ErrorIs(t, err, ErrUnit)
	_, err = ToKPa(-1, "kPa")
	assert.ErrorIs(t, err, ErrUnit)
}

func Test_FromKPa(t *testing.T) {
	v, err := FromKPa(558, UnitBar)
	require.NoError(t, err)
	assert.InDelta(t, 5.58, v, 1e-12)

	_, err = FromKPa(558, "torr")
	assert.ErrorIs(t, err, ErrUnit)
}

func Test_ToCelsius(t *testing.T) {
	v, err := ToCelsius(328.15, "K")
	require.NoError(t, err)
	assert.InDelta(t, 55, v, 1e-9)

	v, err = ToCelsius(131, "°F")
	require.NoError(t, err)
	assert.InDelta(t, 55, v, 1e-9)

	v, err = ToCelsius(55, "")
	require.NoError(t, err)
	assert.Equal(t, 55.0, v)

	_, err = ToCelsius(-1, "K")
	assert.ErrorIs(t, err, ErrUnit)
	_, err = ToCelsius(20, "R")
	assert.ErrorIs(t, err, ErrUnit)
}

func Test_BarometricPressure(t *testing.T) {
	assert.InDelta(t, 101.325, BarometricPressure(0), 1e-12)
	// standard atmosphere at 1000 m
	assert.InDelta(t, 89.87, BarometricPressure(1000), 0.05)
	assert.InDelta(t, 558+101.325, GaugeToAbsolute(558, 0), 1e-12)
}
