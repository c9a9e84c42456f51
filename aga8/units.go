package aga8

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

//--------------------------------------
// units
//--------------------------------------

// ErrUnit is matched by unknown unit names and physically impossible
// pressures or temperatures.
var ErrUnit = errors.New("invalid unit value")

// Pressure units accepted on bulletins.
const (
	UnitPa  = "Pa"
	UnitKPa = "kPa"
	UnitMPa = "MPa"
	UnitBar = "bar"
	UnitAtm = "atm"
	UnitPsi = "psi"
)

// Temperature units accepted on bulletins.
const (
	UnitCelsius    = "C"
	UnitKelvin     = "K"
	UnitFahrenheit = "F"
)

// Pa per unit.
var pascalsPer = map[string]float64{
	"pa":  1,
	"kpa": 1000,
	"mpa": 1e6,
	"bar": 100000,
	"atm": 101325,
	"psi": 6894.76,
}

// StandardPressure is the sea level atmospheric pressure [kPa].
const StandardPressure = 101.325

// ToKPa converts an absolute pressure in unit to kPa.
func ToKPa(value float64, unit string) (float64, error) {
	f, ok := pascalsPer[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("%w: pressure unit %q", ErrUnit, unit)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative pressure %g %s", ErrUnit, value, unit)
	}
	return value * f / 1000, nil
}

// FromKPa converts a pressure in kPa to unit.
func FromKPa(kPa float64, unit string) (float64, error) {
	f, ok := pascalsPer[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("%w: pressure unit %q", ErrUnit, unit)
	}
	return kPa * 1000 / f, nil
}

// ToCelsius converts a temperature in unit to °C.
func ToCelsius(value float64, unit string) (float64, error) {
	var c float64
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(unit), "°")) {
	case UnitCelsius, "":
		c = value
	case UnitKelvin:
		c = value - 273.15
	case UnitFahrenheit:
		c = (value - 32) * 5 / 9
	default:
		return 0, fmt.Errorf("%w: temperature unit %q", ErrUnit, unit)
	}
	if c < -273.15 {
		return 0, fmt.Errorf("%w: %g %s is below absolute zero", ErrUnit, value, unit)
	}
	return c, nil
}

// BarometricPressure estimates the atmospheric pressure [kPa] at an
// elevation [m] above sea level from the standard atmosphere, with a mean
// lapse rate of 0.0065 K/m and a 15 °C sea level temperature.
func BarometricPressure(elevation float64) float64 {
	return CorrectPressure(StandardPressure, elevation, 15)
}

// CorrectPressure moves a pressure measured at temperature tC to a point
// elevation [m] higher.
func CorrectPressure(p, elevation, tC float64) float64 {
	return p * math.Pow(1-(elevation*0.0065)/Kelvin(tC), 5.257)
}

// GaugeToAbsolute adds the atmospheric pressure at elevation [m] to a
// gauge reading [kPa].
func GaugeToAbsolute(gaugeKPa, elevation float64) float64 {
	return gaugeKPa + BarometricPressure(elevation)
}
