package render

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

var sampleEntries = []ddi.Entry{
	{DDI: 1, Name: "Setpoint Volume Per Area Application Rate as [mm3/m2]", UnitSymbol: "mm³/m²", UnitName: "Capacity per area unit", Resolution: 0.01, DisplayRange: ddi.Range{Min: 0, Max: 21474836.47}},
	{DDI: 141, Name: "Actual Work State", UnitSymbol: "", UnitName: "n.a.", Resolution: 1, DisplayRange: ddi.Range{Min: 0, Max: 3}},
	{DDI: 57342, Name: "PGN Based Data", UnitSymbol: "", UnitName: "n.a.", Resolution: 1, DisplayRange: ddi.Range{Min: -2147483648, Max: 2147483647}},
}

func fixedRenderer(day int) *Renderer {
	return New(Options{
		Authors: []string{"Adrian Del Grosso", "Daan Steenbergen"},
		Now:     func() time.Time { return time.Date(2025, time.January, day, 9, 0, 0, 0, time.UTC) },
	})
}

func mustContain(t *testing.T, got []byte, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(string(got), w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestHeader(t *testing.T) {
	out, err := fixedRenderer(16).Header(sampleEntries)
	require.NoError(t, err)

	mustContain(t, out,
		"/// @file isobus_data_dictionary.hpp\n",
		"/// This file was generated January 16, 2025.\n///\n/// @author Adrian Del Grosso\n/// @author Daan Steenbergen\n/// @copyright 2025 The Open-Agriculture Developers\n",
		"#ifndef ISOBUS_DATA_DICTIONARY_HPP\n",
		"namespace isobus\n{",
		"static const Entry DDI_ENTRIES[3];",
		"static const Entry DEFAULT_ENTRY;",
		"static const Entry &get_entry(std::uint16_t dataDictionaryIdentifier);",
		"#endif // ISOBUS_DATA_DICTIONARY_HPP\n",
	)
}

func TestSource(t *testing.T) {
	out, err := fixedRenderer(16).Source(sampleEntries)
	require.NoError(t, err)

	mustContain(t, out,
		"/// @file isobus_data_dictionary.cpp\n",
		`#include "isobus/isobus/isobus_data_dictionary.hpp"`,
		`const DataDictionary::Entry DataDictionary::DEFAULT_ENTRY = { 65535, "Unknown", "", "", 0.0f, std::make_pair(0.0f, 0.0f) };`,
		"const DataDictionary::Entry DataDictionary::DDI_ENTRIES[3] = {\n"+
			`		{ 1, "Setpoint Volume Per Area Application Rate as [mm3/m2]", "mm³/m²", "Capacity per area unit", 0.01f, std::make_pair(0.0f, 21474836.47f) },`+"\n"+
			`		{ 141, "Actual Work State", "", "n.a.", 1.0f, std::make_pair(0.0f, 3.0f) },`+"\n"+
			`		{ 57342, "PGN Based Data", "", "n.a.", 1.0f, std::make_pair(-2147483648.0f, 2147483647.0f) },`+"\n"+
			"\t};\n",
		"return DEFAULT_ENTRY;",
		"// clang-format on\n",
	)
}

func TestCountMatchesEntries(t *testing.T) {
	r := fixedRenderer(16)
	for n := 1; n <= len(sampleEntries); n++ {
		src, err := r.Source(sampleEntries[:n])
		require.NoError(t, err)
		hdr, err := r.Header(sampleEntries[:n])
		require.NoError(t, err)

		decl := "DDI_ENTRIES[" + strconv.Itoa(n) + "]"
		assert.Contains(t, string(src), decl)
		assert.Contains(t, string(hdr), decl)
		assert.Equal(t, n, strings.Count(string(src), "std::make_pair(")-1, "rows plus default entry")
	}
}

func TestRenderIsIdempotentApartFromDate(t *testing.T) {
	a, b := fixedRenderer(16), fixedRenderer(17)
	for _, fn := range []func(*Renderer) ([]byte, error){
		func(r *Renderer) ([]byte, error) { return r.Header(sampleEntries) },
		func(r *Renderer) ([]byte, error) { return r.Source(sampleEntries) },
		func(r *Renderer) ([]byte, error) { return r.GoTable(sampleEntries) },
	} {
		x, err := fn(a)
		require.NoError(t, err)
		y, err := fn(b)
		require.NoError(t, err)
		assert.NotEqual(t, string(x), string(y))
		assert.Equal(t, string(StripDate(x)), string(StripDate(y)))
	}
}

func TestEmptyEntries(t *testing.T) {
	r := fixedRenderer(16)
	_, err := r.Header(nil)
	assert.ErrorIs(t, err, ErrNoEntries)
	_, err = r.Source([]ddi.Entry{})
	assert.ErrorIs(t, err, ErrNoEntries)
	_, err = r.GoTable(nil)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestGoTable(t *testing.T) {
	out, err := fixedRenderer(16).GoTable(sampleEntries[1:2])
	require.NoError(t, err)

	want := `// Code generated by ddi-gen. DO NOT EDIT.

// ISO 11783-11 data dictionary exported from isobus.net.
// This file was generated January 16, 2025.

package ddi

// tableSize is the number of entries in table.
const tableSize = 1

// table is the ISO 11783-11 lookup table in export order.
var table = [tableSize]Entry{
	{DDI: 141, Name: "Actual Work State", UnitSymbol: "", UnitName: "n.a.", Resolution: 1.0, DisplayRange: Range{Min: 0.0, Max: 3.0}},
}
`
	assert.Equal(t, want, string(out))
}

func TestGoTableOtherPackage(t *testing.T) {
	r := New(Options{GoPackage: "ddidata"})
	out, err := r.GoTable(sampleEntries[:1])
	require.NoError(t, err)
	mustContain(t, out,
		"package ddidata\n",
		`import "github.com/open-agriculture/isobus-ddi/pkg/ddi"`,
		"[tableSize]ddi.Entry{",
		"DisplayRange: ddi.Range{Min: 0.0, Max: 21474836.47}",
	)
}

// The checked-in table must be exactly what the generator produces for it.
func TestGoTableReproducesCheckedInTable(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("..", "ddi", "table_gen.go"))
	require.NoError(t, err)

	out, err := fixedRenderer(16).GoTable(ddi.Standard().Entries())
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(out))
}

func TestCustomNamespaceAndInclude(t *testing.T) {
	r := New(Options{
		Namespace:   "agisostack",
		IncludePath: "ddi/data_dictionary.hpp",
		Copyright:   "2024 Example Corp",
		Now:         func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) },
	})
	hdr, err := r.Header(sampleEntries)
	require.NoError(t, err)
	mustContain(t, hdr,
		"/// @file data_dictionary.hpp\n",
		"This file was generated March 5, 2024.",
		"/// @copyright 2024 Example Corp\n",
		"#define DATA_DICTIONARY_HPP\n",
		"} // namespace agisostack\n",
	)
	assert.NotContains(t, string(hdr), "@author")

	src, err := r.Source(sampleEntries)
	require.NoError(t, err)
	mustContain(t, src, "/// @file data_dictionary.cpp\n", `#include "ddi/data_dictionary.hpp"`)
}

func TestCppString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"tab\there", `"tab\there"`},
		{"what??!", `"what\??!"`},
		{"bell\x07", `"bell\007"`},
		{"m²", `"m²"`},
	}
	for _, tt := range tests {
		if got := cppString(tt.in); got != tt.want {
			t.Errorf("cppString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "isobus_data_dictionary.cpp")
	require.NoError(t, WriteFile(context.Background(), path, []byte("first")))
	require.NoError(t, WriteFile(context.Background(), path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteGoTableBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table_gen.go")
	renderErr := assert.AnError
	err := WriteGoTable(context.Background(), path, []byte("package ddi\nvar = "), renderErr)
	require.ErrorIs(t, err, renderErr)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	broken, err := os.ReadFile(path + ".broken")
	require.NoError(t, err)
	assert.Contains(t, string(broken), "var = ")
}
