// Package exportparse parses the plaintext ISO 11783-11 export published by
// isobus.net into ddi.Entry values.
//
// The export is line-oriented prose. A record starts with a "DD Entity:" line
// and is followed, among other lines, by its "Unit:", "Resolution:" and
// "Display Range:" lines in that order. The display range line completes the
// record. Records missing a field are reported as diagnostics and never
// emitted.
package exportparse
