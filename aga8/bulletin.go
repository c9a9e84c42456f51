package aga8

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//--------------------------------------
// chromatography bulletins
//--------------------------------------

// Bulletin status values, as the bulletin workflow stores them.
const (
	StatusValid   = "VALIDADO"
	StatusInvalid = "INVALIDADO"
)

// Sample is one analysed gas of a bulletin file. Missing conditions are
// taken from the configuration.
type Sample struct {
	ID              string         `yaml:"id"`
	Pressure        *float64       `yaml:"pressure"`
	PressureUnit    string         `yaml:"pressure_unit"`
	Temperature     *float64       `yaml:"temperature"`
	TemperatureUnit string         `yaml:"temperature_unit"`
	Gauge           *bool          `yaml:"gauge"`
	Elevation       *float64       `yaml:"elevation"`
	Composition     RawComposition `yaml:"composition"`
}

// Bulletin is the content of a bulletin file.
type Bulletin struct {
	Samples []Sample `yaml:"samples"`
}

// LoadBulletin reads a bulletin YAML file. Files ending in .gz are
// decompressed.
func LoadBulletin(path string) (*Bulletin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read bulletin: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("read bulletin: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bulletin: %w", err)
	}
	b, err := ParseBulletin(data)
	if err != nil {
		return nil, fmt.Errorf("bulletin %s: %w", path, err)
	}
	return b, nil
}

// ParseBulletin decodes a bulletin. Samples without an id get a random one
// so reports can still be told apart.
func ParseBulletin(data []byte) (*Bulletin, error) {
	var b Bulletin
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if len(b.Samples) == 0 {
		return nil, errors.New("no samples")
	}
	for i := range b.Samples {
		if b.Samples[i].ID == "" {
			b.Samples[i].ID = uuid.NewString()
		}
	}
	return &b, nil
}

// Conditions merges the sample conditions over def.
func (s *Sample) Conditions(def Conditions) Conditions {
	c := def
	if s.Pressure != nil {
		c.Pressure = *s.Pressure
		if s.PressureUnit != "" {
			c.PressureUnit = s.PressureUnit
		}
	}
	if s.Temperature != nil {
		c.Temperature = *s.Temperature
		if s.TemperatureUnit != "" {
			c.TemperatureUnit = s.TemperatureUnit
		}
	}
	if s.Gauge != nil {
		c.Gauge = *s.Gauge
	}
	if s.Elevation != nil {
		c.Elevation = *s.Elevation
	}
	return c
}

// Report is the evaluation of one sample.
type Report struct {
	ID          string
	Status      string
	PressureKPa float64
	Temperature float64 // [°C]
	Result      *PropertyResult
	Violations  []LimitViolation
	Error       string
}

// Evaluator evaluates bulletin samples with one calculator and one set of
// limits.
type Evaluator struct {
	Calculator *Calibrated
	Limits     Limits
	Defaults   Conditions
}

// NewEvaluator builds an evaluator from a configuration.
func NewEvaluator(cfg *Config) (*Evaluator, error) {
	calc, err := cfg.Calculator()
	if err != nil {
		return nil, err
	}
	limits, err := cfg.ResolvedLimits()
	if err != nil {
		return nil, err
	}
	return &Evaluator{Calculator: calc, Limits: limits, Defaults: cfg.Conditions}, nil
}

type reportAndIndex struct {
	Index  int
	Report Report
}

// Evaluate computes one report per sample, in sample order. A sample is
// INVALIDADO when its conditions or composition are rejected or a
// component is out of range; the remaining samples are still evaluated.
func (e *Evaluator) Evaluate(b *Bulletin) []Report {
	reports := make([]Report, len(b.Samples))
	c := make(chan reportAndIndex, 4)
	for i := range b.Samples {
		go func(index int) {
			c <- reportAndIndex{Index: index, Report: e.EvaluateSample(&b.Samples[index])}
		}(i)
	}

	for i := 0; i < len(b.Samples); i++ {
		ret := <-c
		reports[ret.Index] = ret.Report
		logger().Infof("sample %s: %s", ret.Report.ID, ret.Report.Status)
	}
	return reports
}

// EvaluateSample computes the report of s.
func (e *Evaluator) EvaluateSample(s *Sample) Report {
	r := Report{ID: s.ID, Status: StatusInvalid}

	pKPa, tC, err := s.Conditions(e.Defaults).Absolute()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.PressureKPa, r.Temperature = pKPa, tC

	res, err := e.Calculator.CalculateAllPropertiesCalibrated(pKPa, tC, s.Composition)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Result = res
	r.Violations = e.Limits.Check(*res.Validation)
	if len(r.Violations) == 0 {
		r.Status = StatusValid
	}
	return r
}
