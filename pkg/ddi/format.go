package ddi

import (
	"fmt"
	"strconv"
	"strings"
)

// valueFormatter renders a raw process data value for DDIs whose values are
// enumerations or bit fields rather than scaled quantities.
type valueFormatter func(value int32) string

var stateNames = [4]string{"Off", "On", "Error", "Not installed"}

func formatTwoBitState(value int32) string {
	return stateNames[value&0x03]
}

func formatCondensedState(value int32) string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int((uint32(value) >> (i * 2)) & 0x03)))
	}
	return b.String()
}

var connectorTypes = []string{
	"unknown (default)",
	"ISO 6489-3 Tractor drawbar",
	"ISO 730 Three-point-hitch semi-mounted",
	"ISO 730 Three-point-hitch mounted",
	"ISO 6489-1 Hitch-hook",
	"ISO 6489-2 Clevis coupling 40",
	"ISO 6489-4 Piton type coupling",
	"ISO 6489-5 CUNA hitch",
	"ISO 24347 Ball type hitch",
	"Chassis Mounted - Self-Propelled",
	"ISO 5692-2 Pivot wagon hitch",
}

func formatConnectorType(value int32) string {
	if value == -1 {
		return "Not available"
	}
	if value >= 0 && int(value) < len(connectorTypes) {
		return connectorTypes[value]
	}
	return "reserved for future assignments"
}

var culturalPractices = []string{
	"Unknown",
	"Fertilizing",
	"Sowing and Planting",
	"Crop Protection",
	"Tillage",
	"Baling (Pressing)",
	"Mowing",
	"Wrapping",
	"Harvesting",
	"Forage Harvesting",
	"Transport",
	"Swathing",
	"Slurry/Manure Application",
	"Self-Loading Wagon",
	"Tedding",
	"Measuring",
	"Irrigation",
	"Feeding/Mixing",
	"Mulching",
}

func formatCulturalPractice(value int32) string {
	if value >= 0 && int(value) < len(culturalPractices) {
		return culturalPractices[value]
	}
	return "Reserved for future Assignment"
}

var skyConditions = map[string]string{
	"CLR": "Clear",
	"NSC": "Mostly Sunny",
	"FEW": "Partly Sunny",
	"SCT": "Partly Cloudy",
	"BKN": "Mostly Cloudy",
	"OVC": "Overcast/Cloudy",
}

// formatSkyConditions decodes a METAR code packed big-endian into four bytes.
func formatSkyConditions(value int32) string {
	switch uint32(value) {
	case 0x00000000:
		return "Error: Sky condition data invalid"
	case 0xFFFFFFFF:
		return "Not available"
	}
	var code strings.Builder
	for i := 3; i >= 0; i-- {
		c := byte(uint32(value) >> (i * 8))
		if c != ' ' {
			code.WriteByte(c)
		}
	}
	if desc, ok := skyConditions[code.String()]; ok {
		return desc
	}
	return "Unknown sky condition"
}

var weightStates = [4]string{"unstable measurement", "stable measurement", "measuring error", "unknown"}

func formatWeightState(value int32) string {
	return weightStates[value&0x03]
}

var dropletSizes = []string{
	"Unknown",
	"Extremely fine",
	"Very fine",
	"Fine",
	"Medium",
	"Coarse",
	"Very coarse",
	"Extremely coarse",
	"Ultra coarse",
}

func formatDropletSize(value int32) string {
	if value >= 0 && int(value) < len(dropletSizes) {
		return dropletSizes[value]
	}
	return "Reserved"
}

// enumFormatter maps values 0..len(names)-1 to names and everything else
// to fallback.
func enumFormatter(fallback string, names ...string) valueFormatter {
	return func(value int32) string {
		if value >= 0 && int(value) < len(names) {
			return names[value]
		}
		return fallback
	}
}

// formatLoadingStatus decodes the unloading state from bits 0-1 and the
// loading state from bits 8-9.
func formatLoadingStatus(value int32) string {
	return "Unloading: " + formatTwoBitState(value) + ", Loading: " + formatTwoBitState(value>>8)
}

var functionTypes = []string{"Unknown", "Header", "Auger", "Separator", "Sensor", "Tillage", "Baling (Pressing)"}

// functionSubTypes lists the named sub types per function. Sub type 0 is
// always "Unknown (default)".
var functionSubTypes = map[uint16][]string{
	1: {"Unknown (default)", "Row-independent", "Row-crop", "Crop-pick-up"},
	2: {"Unknown (default)"},
	3: {"Unknown (default)"},
	4: {"Unknown (default)", "Yield", "Moisture", "Humidity", "Temperature", "Wind", "Height", "Load"},
	5: {"Unknown (default)", "Disk", "Ripper", "Closing Disk", "Shank", "Opener", "Basket", "Coulter", "Harrow", "Roller"},
	6: {"Unknown (default)", "Square Bale", "Round Bale", "Pellets"},
}

func functionTypeName(fn uint16) string {
	switch {
	case int(fn) < len(functionTypes):
		return functionTypes[fn]
	case fn <= 57343:
		return "Reserved (ISO)"
	case fn <= 65534:
		return "Manufacturer Proprietary"
	default:
		return "Reserved"
	}
}

// formatFunctionTechnique decodes the function enumeration from the low
// word and its sub type from the high word.
func formatFunctionTechnique(value int32) string {
	fn := uint16(value)
	sub := uint16(uint32(value) >> 16)

	var subName string
	if names, ok := functionSubTypes[fn]; ok {
		switch {
		case int(sub) < len(names):
			subName = names[sub]
		case sub <= 57343:
			subName = "Reserved"
		default:
			subName = "Out of Range"
		}
	} else if fn == 0 {
		subName = "N/A"
	} else {
		subName = functionTypeName(fn)
	}
	return fmt.Sprintf("Function: %s, SubType: %d (%s)", functionTypeName(fn), sub, subName)
}

var speedSources = []string{
	"Unknown",
	"Wheel-based speed",
	"Ground-based speed",
	"Navigation-based speed",
	"Blended speed",
	"Simulated speed",
	"Machine Selected speed",
	"Machine measured speed",
}

// formatSpeedSource only looks at the low byte.
func formatSpeedSource(value int32) string {
	b := uint8(value)
	switch {
	case int(b) < len(speedSources):
		return speedSources[b]
	case b == 0xFF:
		return "No Source available"
	default:
		return "Reserved"
	}
}

var gnssQualities = []string{
	"No GNSS",
	"GNSS Fix",
	"DGNSS Fix",
	"Precise GNSS",
	"RTK Fixed Integer",
	"RTK Float",
	"Estimated Mode",
	"Manual Input",
	"Simulate Mode",
}

func formatGNSSQuality(value int32) string {
	if value == 0x0F {
		return "Null"
	}
	return enumFormatter("Reserved", gnssQualities...)(value)
}

var valueFormatters = buildValueFormatters()

func buildValueFormatters() map[uint16]valueFormatter {
	m := map[uint16]valueFormatter{
		157: formatConnectorType,
		179: formatCulturalPractice,
		471: formatCulturalPractice,
		210: formatSkyConditions,
		230: formatWeightState,
		233: formatWeightState,
	}
	// Actual/setpoint work state, prescription and section control state,
	// header status, yield hold status and tramline control state.
	for _, id := range []uint16{141, 158, 160, 237, 238, 239, 289, 515} {
		m[id] = formatTwoBitState
	}
	addRange := func(first, last uint16) {
		for id := first; id <= last; id++ {
			m[id] = formatCondensedState
		}
	}
	addRange(161, 176) // actual condensed work state
	addRange(290, 305) // setpoint condensed work state
	addRange(367, 382) // condensed section override state
	addRange(517, 518) // first tramline condensed work states
	addRange(603, 632) // remaining tramline condensed work states
	for _, id := range []uint16{32768, 36864, 40960, 45056, 49152} {
		m[id] = formatDropletSize
	}

	m[240] = formatLoadingStatus
	m[350] = formatFunctionTechnique
	m[400] = formatSpeedSource
	m[468] = enumFormatter("Reserved", "Not defined", "Not frozen or snow-covered", "Frozen", "Snow-covered")
	m[469] = enumFormatter("Unknown", "Not defined", "Dry", "Moist", "Very wet", "Saturated", "Saturated", "Inundated")
	m[470] = enumFormatter("Reserved", "Not defined", "Loose", "Slightly compacted", "Compacted", "Very compacted")
	tramline := enumFormatter("Reserved", "Level 1", "Level 2", "Level 3")
	m[505] = tramline
	m[506] = tramline
	m[514] = formatGNSSQuality
	m[521] = enumFormatter("Reserved",
		"Unknown",
		"Tractor integrated antenna",
		"Tractor universal antenna (removable)",
		"First implement antenna",
		"Second implement antenna",
		"Display integrated antenna")
	m[556] = enumFormatter("reserved", "not defined", "sunny", "partly cloudy", "overcast", "rain", "sleet", "snow")
	m[587] = enumFormatter("reserved",
		"not defined",
		"no rain in the last month",
		"no rain in the last week",
		"no rain in the last 24 hours",
		"rainy without heavy rain in the last 24 hours",
		"heavier rain for some days or rainstorm in the last 24 hours",
		"prolonged rainfall or snowmelt")
	m[593] = enumFormatter("Reserved", "Unknown", "Two track", "Four track", "Wheel", "Front Track, Rear wheel", "Front Wheel, Rear Track")
	m[594] = enumFormatter("Reserved",
		"Unknown",
		"Articulated",
		"Differential",
		"Front wheel",
		"Rear wheel",
		"Four wheel",
		"Differential Front with Active Rear support",
		"Dog-walk Machine")
	m[595] = enumFormatter("Reserved",
		"Unknown / Not defined",
		"Idle",
		"Field Mode",
		"Street Mode",
		"Maintenance",
		"Filling",
		"Emptying",
		"Cleaning")
	m[644] = enumFormatter("Reserved", "Unknown", "Mesh", "Twine", "Film", "Twine & Mesh", "Twine & Film")
	m[666] = enumFormatter("reserved", "unknown", "left to right", "right to left")
	return m
}

// FormatValue formats a raw process data value for this entry. Enumerated
// DDIs are rendered as text; everything else is scaled by the resolution and
// suffixed with the unit symbol. The default entry renders the raw value.
func (e Entry) FormatValue(value int32) string {
	if e.IsDefault() {
		return strconv.FormatInt(int64(value), 10)
	}
	if f, ok := valueFormatters[e.DDI]; ok {
		return f(value)
	}
	return e.scaled(value) + e.UnitSymbol
}

// FormatValue formats value using the entry for id.
func (d *Dictionary) FormatValue(id uint16, value int32) string {
	return d.Lookup(id).FormatValue(value)
}
