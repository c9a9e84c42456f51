package aga8

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conditions are the pressure and temperature a composition is evaluated
// at, in the units written on the bulletin.
type Conditions struct {
	Pressure        float64 `yaml:"pressure"`
	PressureUnit    string  `yaml:"pressure_unit"`
	Temperature     float64 `yaml:"temperature"`
	TemperatureUnit string  `yaml:"temperature_unit"`
	Gauge           bool    `yaml:"gauge"`     // pressure is a gauge reading
	Elevation       float64 `yaml:"elevation"` // site elevation for gauge readings [m]
}

// Absolute returns the conditions as absolute kPa and °C.
func (c Conditions) Absolute() (pKPa, tC float64, err error) {
	pUnit := c.PressureUnit
	if pUnit == "" {
		pUnit = UnitKPa
	}
	pKPa, err = ToKPa(c.Pressure, pUnit)
	if err != nil {
		return 0, 0, err
	}
	if c.Gauge {
		pKPa = GaugeToAbsolute(pKPa, c.Elevation)
	}
	tC, err = ToCelsius(c.Temperature, c.TemperatureUnit)
	if err != nil {
		return 0, 0, err
	}
	return pKPa, tC, nil
}

// Config is the YAML configuration of the command.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Method     string           `yaml:"method"` // GERG or DC
	Calibrated bool             `yaml:"calibrated"`
	Conditions Conditions       `yaml:"conditions"`
	Limits     map[string]Limit `yaml:"limits"` // overrides by component name
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "ERROR",
		Method:     "GERG",
		Calibrated: true,
		Conditions: Conditions{
			Pressure:        558,
			PressureUnit:    UnitKPa,
			Temperature:     55,
			TemperatureUnit: UnitCelsius,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the method, the log level, the units and the limits.
func (c *Config) Validate() error {
	if _, err := ParseMethod(c.Method); err != nil {
		return err
	}
	if _, ok := logLevels[strings.ToUpper(c.LogLevel)]; !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if _, _, err := c.Conditions.Absolute(); err != nil {
		return fmt.Errorf("conditions: %w", err)
	}
	if _, err := c.ResolvedLimits(); err != nil {
		return err
	}
	return nil
}

// ParseMethod accepts GERG, GERG-2008, GERG2008, DC or DETAILED in any case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "GERG", "GERG2008", "":
		return MethodGERG2008, nil
	case "DC", "DETAILED":
		return MethodDetailed, nil
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// Model returns the correlation path selected by the configuration.
func (c *Config) Model() (Model, error) {
	m, err := ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	if m == MethodDetailed {
		return NewDetailed(), nil
	}
	return NewGERG2008(), nil
}

// Calculator wraps the configured model, with its built-in reference
// fixture when Calibrated is set.
func (c *Config) Calculator() (*Calibrated, error) {
	m, err := c.Model()
	if err != nil {
		return nil, err
	}
	if !c.Calibrated {
		return NewCalibrated(m), nil
	}
	if m.Method() == MethodDetailed {
		return NewCalibrated(m, DetailedReferenceFixture()), nil
	}
	return NewCalibrated(m, GERGReferenceFixture()), nil
}

// ResolvedLimits returns DefaultLimits with the configured overrides.
// Names are resolved with the Detailed registry, which knows every
// component.
func (c *Config) ResolvedLimits() (Limits, error) {
	limits := DefaultLimits()
	for name, l := range c.Limits {
		comp, ok := DCRegistry.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("limits: unknown component %q", name)
		}
		if l.Min > l.Max {
			return nil, fmt.Errorf("limits: %s min %g above max %g", name, l.Min, l.Max)
		}
		limits[comp] = l
	}
	return limits, nil
}
