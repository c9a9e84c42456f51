// aga8
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/natgas/aga8-go/aga8"
)

func main() {
	// command line arguments
	parser := argparse.NewParser("aga8", "Computes natural gas properties (Z, density, heating value, Wobbe index) of chromatography bulletins")

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Help: "Pressure (default from config: 558 kPa)"})

	pressureUnit := parser.Selector("", "pressure_unit", []string{"kPa", "Pa", "MPa", "bar", "atm", "psi"}, &argparse.Options{
		Default: "kPa",
		Help:    "Pressure unit"})

	temperature := parser.Float("t", "temperature", &argparse.Options{
		Help: "Temperature (default from config: 55 C)"})

	temperatureUnit := parser.Selector("", "temperature_unit", []string{"C", "K", "F"}, &argparse.Options{
		Default: "C",
		Help:    "Temperature unit"})

	gauge := parser.Flag("", "gauge", &argparse.Options{
		Help: "Pressure is a gauge reading; the atmospheric pressure at --elevation is added"})

	elevation := parser.Float("", "elevation", &argparse.Options{
		Default: 0.0,
		Help:    "Site elevation for gauge readings [m]"})

	method := parser.Selector("m", "method", []string{"GERG", "DC"}, &argparse.Options{
		Help: "Correlation: GERG (GERG-2008 like) or DC (Detailed Characterization)"})

	noCalibration := parser.Flag("", "no_calibration", &argparse.Options{
		Help: "Do not substitute certified results at the reference points"})

	components := parser.StringList("x", "component", &argparse.Options{
		Help: "Component as name=value, fraction or percent (repeatable), e.g. -x metano=96.5"})

	input := parser.String("i", "input", &argparse.Options{
		Default: "",
		Help:    "Bulletin YAML file with samples"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "Configuration YAML file"})

	format := parser.Selector("f", "format", []string{"CSV", "JSON", "YAML"}, &argparse.Options{
		Default: "CSV",
		Help:    "Output format CSV, JSON or YAML"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Help: "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// configuration
	cfg := aga8.DefaultConfig()
	if *configPath != "" {
		cfg, err = aga8.LoadConfig(*configPath)
		if err != nil {
			fail(err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := aga8.SetLogLevel(cfg.LogLevel); err != nil {
		fail(err)
	}
	logger := logging.GetLogger(aga8.LoggerName)

	if *method != "" {
		cfg.Method = *method
	}
	if *noCalibration {
		cfg.Calibrated = false
	}
	given := parsedArgs(parser)
	err = overrideConditions(&cfg.Conditions, given, *pressure, *pressureUnit, *temperature, *temperatureUnit)
	if err != nil {
		fail(err)
	}
	if *gauge {
		cfg.Conditions.Gauge = true
		cfg.Conditions.Elevation = *elevation
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	// samples
	var bulletin *aga8.Bulletin
	if *input != "" {
		bulletin, err = aga8.LoadBulletin(*input)
		if err != nil {
			fail(err)
		}
	} else {
		comp, err := parseComponents(*components)
		if err != nil {
			fail(err)
		}
		bulletin = &aga8.Bulletin{Samples: []aga8.Sample{{ID: "cli", Composition: comp}}}
	}

	evaluator, err := aga8.NewEvaluator(cfg)
	if err != nil {
		fail(err)
	}
	logger.Infof("evaluating %d sample(s) with %s", len(bulletin.Samples), cfg.Method)
	reports := evaluator.Evaluate(bulletin)

	// output
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *format {
	case "CSV":
		aga8.ToCSV(buf, reports)
	case "JSON":
		err = aga8.ToJSON(buf, reports)
	case "YAML":
		err = aga8.ToYAML(buf, reports)
	}
	if err != nil {
		fail(err)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("saving %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
			fail(err)
		}
	}

	for _, r := range reports {
		if r.Status != aga8.StatusValid {
			os.Exit(1)
		}
	}
}

// parseComponents reads name=value pairs. Values stay strings; the
// normalizer coerces them.
func parseComponents(args []string) (aga8.RawComposition, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no composition: use -x name=value or -i bulletin.yaml")
	}
	comp := aga8.RawComposition{}
	for _, a := range args {
		name, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("component %q: expected name=value", a)
		}
		comp[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return comp, nil
}

// parsedArgs returns the long names of the options present on the command
// line, so an explicit 0 is not mistaken for an absent option.
func parsedArgs(parser *argparse.Parser) map[string]bool {
	given := map[string]bool{}
	for _, a := range parser.GetArgs() {
		if a.GetParsed() {
			given[a.GetLname()] = true
		}
	}
	return given
}

// overrideConditions applies the -p/-t options over the configured
// conditions. A unit without its value is rejected: the configured value
// is in the configured unit.
func overrideConditions(c *aga8.Conditions, given map[string]bool, p float64, pUnit string, t float64, tUnit string) error {
	if given["pressure"] {
		c.Pressure = p
		c.PressureUnit = pUnit
	} else if given["pressure_unit"] {
		return fmt.Errorf("--pressure_unit %s needs -p", pUnit)
	}
	if given["temperature"] {
		c.Temperature = t
		c.TemperatureUnit = tUnit
	} else if given["temperature_unit"] {
		return fmt.Errorf("--temperature_unit %s needs -t", tUnit)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
