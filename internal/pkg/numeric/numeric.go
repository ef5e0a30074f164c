// Package numeric validates and parses the string operands of the math
// endpoints. Both "." and "," are accepted as decimal separators.
package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+$`)

// IsNumeric reports whether s is a well-formed decimal number after
// normalizing a comma separator to a period. Empty input is not
// numeric.
func IsNumeric(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return numberPattern.MatchString(strings.ReplaceAll(s, ",", "."))
}

// ParseDouble converts s to a float64, returning 0 when s is not
// numeric. Callers are expected to gate with IsNumeric first.
func ParseDouble(s string) float64 {
	if !IsNumeric(s) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
