// Package ddi provides the ISO 11783-11 data dictionary: the DDI entry type,
// a lookup table generated from the isobus.net export, and helpers that turn
// raw process data values into human-readable text.
//
// # Lookup
//
// Lookups never fail. An identifier that is not in the table resolves to
// DefaultEntry:
//
//	entry := ddi.Standard().Lookup(229)
//	fmt.Println(entry.Name) // "Actual Net Weight"
//
// # Regenerating the table
//
// table_gen.go is written by the ddi-gen command:
//
//	ddi-gen -out-go pkg/ddi/table_gen.go
package ddi
