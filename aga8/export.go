package aga8

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CSV columns after id,status,method,calibrated,pressure_kpa,temperature_c.
var csvProperties = []Property{
	PropCompressibility,
	PropMolarMass,
	PropDensity,
	PropMolarDensity,
	PropHHVMass,
	PropLHVMass,
	PropHHVVolume,
	PropLHVVolume,
	PropWobbeIndex,
	PropWobbeIndexLHV,
	PropMethaneNumber,
	PropSpecificGravity,
	PropCriticalPressure,
	PropCriticalTemperature,
	PropCriticalVolume,
	PropAcentricFactor,
}

// ToCSV writes one line per report. Failed samples leave the property
// columns empty and carry the reason in the last column.
func ToCSV(buf *bytes.Buffer, reports []Report) {
	buf.WriteString("id,status,method,calibrated,pressure_kpa,temperature_c")
	for _, p := range csvProperties {
		buf.WriteString(",")
		buf.WriteString(string(p))
	}
	buf.WriteString(",message\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, r := range reports {
		buf.WriteString(csvField(r.ID))
		buf.WriteString(",")
		buf.WriteString(r.Status)
		if r.Result == nil {
			buf.WriteString(",,")
			writeFloat(r.PressureKPa)
			writeFloat(r.Temperature)
			buf.WriteString(strings.Repeat(",", len(csvProperties)))
			buf.WriteString(",")
			buf.WriteString(csvField(r.Error))
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(",")
		buf.WriteString(string(r.Result.Method))
		buf.WriteString(",")
		buf.WriteString(strconv.FormatBool(r.Result.Calibrated))
		writeFloat(r.PressureKPa)
		writeFloat(r.Temperature)
		values := r.Result.Map()
		for _, p := range csvProperties {
			v, ok := values[string(p)]
			if !ok {
				// not produced by this method
				buf.WriteString(",")
				continue
			}
			writeFloat(v)
		}
		buf.WriteString(",")
		buf.WriteString(csvField(reportMessage(r)))
		buf.WriteString("\n")
	}
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func reportMessage(r Report) string {
	msg := r.Result.Message
	for _, v := range r.Violations {
		msg += fmt.Sprintf("; %s %.4f%% outside [%g, %g]", v.Component, v.Value, v.Limit.Min, v.Limit.Max)
	}
	return msg
}

// reportDocument is the JSON / YAML shape of a report.
type reportDocument struct {
	ID          string             `json:"id" yaml:"id"`
	Status      string             `json:"status" yaml:"status"`
	Method      string             `json:"method,omitempty" yaml:"method,omitempty"`
	Calibrated  bool               `json:"calibrated" yaml:"calibrated"`
	Fixture     string             `json:"fixture,omitempty" yaml:"fixture,omitempty"`
	PressureKPa float64            `json:"pressure_kpa" yaml:"pressure_kpa"`
	Temperature float64            `json:"temperature_c" yaml:"temperature_c"`
	Properties  map[string]float64 `json:"properties,omitempty" yaml:"properties,omitempty"`
	Composition map[string]float64 `json:"composition_normalized,omitempty" yaml:"composition_normalized,omitempty"`
	Validation  *validationDoc     `json:"validation,omitempty" yaml:"validation,omitempty"`
	Violations  []violationDoc     `json:"violations,omitempty" yaml:"violations,omitempty"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
}

type validationDoc struct {
	Valid    bool    `json:"valid" yaml:"valid"`
	Message  string  `json:"message" yaml:"message"`
	RawTotal float64 `json:"raw_total" yaml:"raw_total"`
	Percent  bool    `json:"percent" yaml:"percent"`
}

type violationDoc struct {
	Component string  `json:"component" yaml:"component"`
	Value     float64 `json:"value" yaml:"value"`
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
}

func documents(reports []Report) []reportDocument {
	docs := make([]reportDocument, 0, len(reports))
	for _, r := range reports {
		d := reportDocument{
			ID:          r.ID,
			Status:      r.Status,
			PressureKPa: r.PressureKPa,
			Temperature: r.Temperature,
			Error:       r.Error,
		}
		if res := r.Result; res != nil {
			d.Method = string(res.Method)
			d.Calibrated = res.Calibrated
			d.Fixture = res.Fixture
			d.Properties = res.Map()
			d.Composition = res.Composition
			if v := res.Validation; v != nil {
				d.Validation = &validationDoc{Valid: v.Valid, Message: v.Message, RawTotal: v.RawTotal, Percent: v.Percent}
			}
		}
		for _, v := range r.Violations {
			d.Violations = append(d.Violations, violationDoc{
				Component: v.Component.String(),
				Value:     v.Value,
				Min:       v.Limit.Min,
				Max:       v.Limit.Max,
			})
		}
		docs = append(docs, d)
	}
	return docs
}

// ToJSON writes the reports as an indented JSON array.
func ToJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents(reports))
}

// ToYAML writes the reports as a YAML sequence.
func ToYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documents(reports)); err != nil {
		return err
	}
	return enc.Close()
}
