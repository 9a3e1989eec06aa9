package protocol

import (
	"errors"
	"fmt"
	"math"
)

// ErrParse reports a timing-line token that matches no known unit spelling.
var ErrParse = errors.New("metric prefix parse error")

// MetricPrefix is the SI magnitude a timing line is expressed in. The raw
// integer magnitude and its unit are kept separate so nothing is normalized
// through floating point until a human-readable value is needed.
type MetricPrefix int

const (
	Nano  MetricPrefix = -9
	Micro MetricPrefix = -6
	Milli MetricPrefix = -3
	Unit  MetricPrefix = 0
)

// Scale returns the multiplicative factor converting a magnitude in this unit
// to the base unit.
func (p MetricPrefix) Scale() float64 {
	return math.Pow(10, float64(p))
}

// Suffix returns the canonical textual suffix for this prefix, composed with
// the base unit suffix ("s" gives ns, us, ms, s).
func (p MetricPrefix) Suffix(baseSuffix string) string {
	switch p {
	case Nano:
		return "n" + baseSuffix
	case Micro:
		return "u" + baseSuffix
	case Milli:
		return "m" + baseSuffix
	default:
		return baseSuffix
	}
}

// ParseMetricPrefix interprets a unit token against a fixed whitelist of
// spellings, composed with the caller-supplied base unit name and suffix
// ("second"/"s" for timing lines). The micro sign is accepted alongside "u".
// Any other token is a hard parse failure.
func ParseMetricPrefix(token, baseName, baseSuffix string) (MetricPrefix, error) {
	switch token {
	case "n" + baseSuffix, "nano" + baseName:
		return Nano, nil
	case "u" + baseSuffix, "µ" + baseSuffix, "micro" + baseName:
		return Micro, nil
	case "m" + baseSuffix, "milli" + baseName:
		return Milli, nil
	case baseSuffix, baseName:
		return Unit, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrParse, token)
}
