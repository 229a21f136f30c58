package exportparse

import (
	"strconv"
	"strings"
)

// notApplicableMarkers collapse a unit to the "not applicable" sentinel.
var notApplicableMarkers = []string{"n.a. -", "not defined - not defined"}

// NotApplicableUnit is the unit name used when the export has no unit.
const NotApplicableUnit = "n.a."

// normalizeResolution turns "0,01" into "0.01" and bare "0"/"1" into "0.0"/"1.0".
func normalizeResolution(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	switch s {
	case "0":
		return "0.0"
	case "1":
		return "1.0"
	}
	return s
}

// normalizeBound applies the display range rules to one bound: comma to point,
// hexadecimal to decimal, empty to "0.0" and a decimal point on integers.
func normalizeBound(s string) (string, error) {
	s = strings.TrimRight(s, "\r\n")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return "0.0", nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return "", err
		}
		s = strconv.FormatUint(v, 10)
	}
	if !strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
		s += ".0"
	}
	return s, nil
}

// splitUnit splits "mm³/m² - Capacity per area unit" into symbol and name.
func splitUnit(s string) (symbol, name string, ok bool) {
	s = strings.TrimSpace(s)
	for _, m := range notApplicableMarkers {
		if strings.Contains(s, m) {
			return "", NotApplicableUnit, true
		}
	}
	if s == NotApplicableUnit {
		return "", NotApplicableUnit, true
	}
	symbol, name, ok = strings.Cut(s, " - ")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(symbol), strings.TrimSpace(name), true
}
