// Package numeric converts the heterogeneous scalar encodings returned by the
// ETF data provider into canonical float64 values. Upstream responses mix
// plain numbers, abbreviated strings ("1.2B", "500M") and wrapper objects
// ({"value": "..."}); every such shape funnels through Normalize so the rest
// of the pipeline only ever sees numbers.
package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize converts an arbitrary upstream scalar into a canonical float64.
// It is pure and total: it never fails, and unparseable input maps to 0.
func Normalize(v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return parseMagnitudeString(value.String())
		}
		return parsed
	case map[string]any:
		// wrapper object, e.g. {"value": "1.2B", "lastUpdateDate": "..."}
		inner, ok := value["value"]
		if !ok || inner == nil {
			return 0
		}
		return Normalize(inner)
	case string:
		return parseMagnitudeString(value)
	case bool:
		// booleans have no numeric meaning upstream
		return 0
	default:
		return parseMagnitudeString(fmt.Sprint(value))
	}
}

// parseMagnitudeString parses a decimal string with an optional trailing
// K/M/B magnitude suffix (case-insensitive). Any other characters are noise
// from upstream formatting ("$", ",", whitespace) and are stripped.
func parseMagnitudeString(s string) float64 {
	cleaned := stripNonNumeric(s)
	if cleaned == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(strings.ToUpper(cleaned), "B"):
		multiplier = 1e9
	case strings.HasSuffix(strings.ToUpper(cleaned), "M"):
		multiplier = 1e6
	case strings.HasSuffix(strings.ToUpper(cleaned), "K"):
		multiplier = 1e3
	}

	digits := stripSuffixLetters(cleaned)
	parsed, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsNaN(parsed) {
		return 0
	}

	return parsed * multiplier
}

// stripNonNumeric keeps digits, '.', '-' and the magnitude letters K/M/B.
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == 'K', r == 'M', r == 'B', r == 'k', r == 'm', r == 'b':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripSuffixLetters removes the magnitude letters, leaving the decimal part.
func stripSuffixLetters(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'K', 'M', 'B', 'k', 'm', 'b':
			return -1
		}
		return r
	}, s)
}
