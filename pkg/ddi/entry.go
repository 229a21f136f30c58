package ddi

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDDI is the identifier of DefaultEntry.
const DefaultDDI uint16 = 65535

// Range is the display range of a DDI.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Entry describes a single data dictionary identifier.
type Entry struct {
	// DDI is the data dictionary identifier.
	DDI uint16 `json:"ddi"`

	// Name is the human-readable label.
	Name string `json:"name"`

	// UnitSymbol is the short unit symbol, empty when the unit is not defined.
	UnitSymbol string `json:"unit_symbol"`

	// UnitName is the long unit description, "n.a." when the unit is not defined.
	UnitName string `json:"unit_name"`

	// Resolution is the scale factor applied to raw values.
	Resolution float64 `json:"resolution"`

	// DisplayRange holds the display bounds.
	DisplayRange Range `json:"display_range"`
}

// DefaultEntry is returned by lookups that do not match any entry.
var DefaultEntry = Entry{
	DDI:        DefaultDDI,
	Name:       "Unknown",
	UnitSymbol: "",
	UnitName:   "",
	Resolution: 0.0,
}

// IsDefault reports whether e is the synthetic "Unknown" entry.
func (e Entry) IsDefault() bool {
	return e == DefaultEntry
}

// String returns the entry name.
func (e Entry) String() string {
	return e.Name
}

// Units returns the unit in "symbol - name" form, or the unit name alone
// when there is no symbol.
func (e Entry) Units() string {
	if e.UnitSymbol == "" {
		return e.UnitName
	}
	return e.UnitSymbol + " - " + e.UnitName
}

// FormatFloat renders v with at least one digit after the decimal point,
// e.g. 1 -> "1.0", 0.01 -> "0.01", 2147483647 -> "2147483647.0".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// scaled applies the resolution to a raw value and trims trailing zeros.
func (e Entry) scaled(value int32) string {
	v := float64(value) * e.Resolution
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// GoString returns a compact description used by debug output.
func (e Entry) GoString() string {
	return fmt.Sprintf("ddi.Entry{%d %q %q %q %s [%s, %s]}",
		e.DDI, e.Name, e.UnitSymbol, e.UnitName,
		FormatFloat(e.Resolution), FormatFloat(e.DisplayRange.Min), FormatFloat(e.DisplayRange.Max))
}
