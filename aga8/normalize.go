package aga8

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawComposition is a composition as typed on a bulletin: free-form names
// mapped to fractions or percentages. Values may be any Go number or a
// numeric string.
type RawComposition map[string]any

// Components that must be present with a non-zero fraction.
var mandatoryComponents = []Component{Methane, Ethane, Propane}

const (
	percentThreshold  = 1.5  // a raw total above this is read as percent
	percentTolerance  = 5.0  // accepted |total-100| before the advisory
	fractionTolerance = 0.05 // accepted |total-1| before the advisory
)

// Validation is the outcome of normalizing a raw composition.
type Validation struct {
	Valid       bool
	Message     string
	Composition Composition // normalized mole fractions, sum 1
	Reported    Composition // as reported, on the fraction scale (percent / 100)
	RawTotal    float64
	Percent     bool
}

// Normalize validates raw against the registry and scales it to mole
// fractions summing to 1.
//
// Unknown names and non-numeric values are dropped, negative values count
// as zero and aliases of the same component are summed. The returned error
// is an *InvalidCompositionError when nothing usable remains, the total is
// not positive, or methane, ethane or propane is missing.
func (r *Registry) Normalize(raw RawComposition) (Validation, error) {
	accumulated := make(Composition)
	var total float64

	for name, value := range raw {
		c, ok := r.Resolve(name)
		if !ok {
			logger().Debugf("component dropped: %q not recognized by %s", name, r.name)
			continue
		}
		fraction, ok := toFloat(value)
		if !ok {
			logger().Debugf("component dropped: %q has non-numeric value %v", name, value)
			continue
		}
		if fraction < 0 {
			fraction = 0
		}
		accumulated[c] += fraction
		total += fraction
	}

	if len(accumulated) == 0 {
		return invalid(errNoComponents())
	}
	if total <= 0 {
		return invalid(errZeroTotal())
	}

	normalized := make(Composition, len(accumulated))
	for c, v := range accumulated {
		normalized[c] = v / total
	}

	var missing []string
	for _, c := range mandatoryComponents {
		if normalized[c] <= 0 {
			missing = append(missing, r.ID(c))
		}
	}
	if len(missing) > 0 {
		return invalid(errMissingComponents(missing))
	}

	percent := total > percentThreshold
	expected, tolerance, scale, unit := 1.0, fractionTolerance, 1.0, ""
	if percent {
		expected, tolerance, scale, unit = 100.0, percentTolerance, 100.0, "%"
	}

	reported := make(Composition, len(accumulated))
	for c, v := range accumulated {
		reported[c] = v / scale
	}

	message := "composition normalized"
	if math.Abs(total-expected) > tolerance {
		message = fmt.Sprintf("composition normalized; original total %.2f%s", total, unit)
		logger().Infof("composition total %.4f deviates from %.0f%s", total, expected, unit)
	}

	return Validation{
		Valid:       true,
		Message:     message,
		Composition: normalized,
		Reported:    reported,
		RawTotal:    total,
		Percent:     percent,
	}, nil
}

func invalid(err error) (Validation, error) {
	return Validation{Valid: false, Message: err.Error()}, err
}

// toFloat coerces the value types a decoded bulletin can carry.
func toFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		p, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		s := strings.TrimSpace(x)
		if !strings.Contains(s, ".") {
			// bulletins written with a decimal comma
			s = strings.Replace(s, ",", ".", 1)
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
