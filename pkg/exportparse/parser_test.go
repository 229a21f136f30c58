package exportparse

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

func openExport(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "export.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestParseAllSample(t *testing.T) {
	entries, diags, err := ParseAll(openExport(t))
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, entries, 5)

	assert.Equal(t, ddi.Entry{
		DDI:          0,
		Name:         "Internal Data Base DDI",
		UnitSymbol:   "",
		UnitName:     "n.a.",
		Resolution:   1.0,
		DisplayRange: ddi.Range{Min: 0, Max: 2147483647},
	}, entries[0])

	assert.Equal(t, ddi.Entry{
		DDI:          1,
		Name:         "Setpoint Volume Per Area Application Rate as [mm³/m²]",
		UnitSymbol:   "mm³/m²",
		UnitName:     "Capacity per area unit",
		Resolution:   0.01,
		DisplayRange: ddi.Range{Min: 0, Max: 21474836.47},
	}, entries[1])

	assert.Equal(t, "", entries[2].UnitSymbol)
	assert.Equal(t, "n.a.", entries[2].UnitName)

	assert.Equal(t, ddi.Range{Min: -2147483648, Max: 2147483647}, entries[3].DisplayRange)

	// Empty bounds default to zero.
	assert.Equal(t, ddi.Range{}, entries[4].DisplayRange)
	assert.Equal(t, 0.0, entries[4].Resolution)
}

func TestCountMatchesEmitted(t *testing.T) {
	n, err := CountRecords(openExport(t))
	require.NoError(t, err)

	entries, _, err := ParseAll(openExport(t))
	require.NoError(t, err)
	assert.Equal(t, n, len(entries))
}

func TestNextIsNotRestartable(t *testing.T) {
	p := NewParser(openExport(t))
	for {
		_, err := p.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 5, p.Emitted())

	_, err := p.Next()
	assert.Equal(t, io.EOF, err)
}

func TestUnitWithoutSeparatorIsSkipped(t *testing.T) {
	input := strings.Join([]string{
		"DD Entity: 7 Broken Unit",
		"Unit: mm per second",
		"Unit: mm - Length",
		"Resolution: 1",
		"Display Range: 0 - 10",
		"DD Entity: 8 Fine",
		"Unit: mm - Length",
		"Resolution: 1",
		"Display Range: 0 - 10",
	}, "\n")

	var seen []Diagnostic
	entries, diags, err := ParseAll(strings.NewReader(input), WithDiagnosticHandler(func(d Diagnostic) {
		seen = append(seen, d)
	}))
	require.NoError(t, err)

	// The second unit line is not used: only one unit section per record.
	require.Len(t, entries, 1)
	assert.Equal(t, uint16(8), entries[0].DDI)

	require.Len(t, diags, 2)
	assert.Equal(t, KindUnparseableUnit, diags[0].Kind)
	assert.Equal(t, 2, diags[0].Line)
	require.NotNil(t, diags[0].DDI)
	assert.Equal(t, uint16(7), *diags[0].DDI)
	assert.Equal(t, KindIncompleteRecord, diags[1].Kind)
	assert.Equal(t, diags, seen)
}

func TestMissingDisplayRangeReportsIncompleteRecord(t *testing.T) {
	input := strings.Join([]string{
		"DD Entity: 10 No Range",
		"Unit: mm - Length",
		"Resolution: 1",
		"DD Entity: 11 Complete",
		"Unit: mm - Length",
		"Resolution: 0,5",
		"Display Range: 0 - 0xFF",
		"DD Entity: 12 Truncated",
		"Unit: mm - Length",
	}, "\n")

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint16(11), entries[0].DDI)
	assert.Equal(t, 0.5, entries[0].Resolution)
	assert.Equal(t, 255.0, entries[0].DisplayRange.Max)

	require.Len(t, diags, 2)
	assert.Equal(t, KindIncompleteRecord, diags[0].Kind)
	assert.Equal(t, uint16(10), *diags[0].DDI)
	assert.Contains(t, diags[0].Message, "display range")
	assert.Equal(t, KindIncompleteRecord, diags[1].Kind)
	assert.Equal(t, uint16(12), *diags[1].DDI)
	assert.Contains(t, diags[1].Message, "resolution")
}

func TestMissingResolutionDropsRecord(t *testing.T) {
	input := "DD Entity: 3 No Resolution\nUnit: mm - Length\nDisplay Range: 0 - 1\n"

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Equal(t, KindIncompleteRecord, diags[0].Kind)
	assert.Equal(t, 3, diags[0].Line)
}

func TestCommentLinesDoNotStartRecords(t *testing.T) {
	input := strings.Join([]string{
		"DD Entity: 5 Real",
		"Comment: replaces DD Entity 4",
		"Unit: mm - Length",
		"Resolution: 1",
		"Display Range: 0 - 1",
	}, "\n")

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, entries, 1)
	assert.Equal(t, "Real", entries[0].Name)

	n, err := CountRecords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDuplicateDDIIsReported(t *testing.T) {
	rec := "DD Entity: 9 Twice\nUnit: mm - Length\nResolution: 1\nDisplay Range: 0 - 1\n"

	entries, diags, err := ParseAll(strings.NewReader(rec + rec))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	require.Len(t, diags, 1)
	assert.Equal(t, KindDuplicateDDI, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "line 4")
}

func TestInvalidEntityLine(t *testing.T) {
	input := "DD Entity: abc Bad\nUnit: mm - Length\nResolution: 1\nDisplay Range: 0 - 1\n"

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.Len(t, diags, 4)
	assert.Equal(t, KindUnparseableEntity, diags[0].Kind)
	assert.Nil(t, diags[0].DDI)

	// Unit, resolution and display range have no record to attach to.
	for _, d := range diags[1:] {
		assert.Equal(t, KindOrphanField, d.Kind)
		assert.Nil(t, d.DDI)
	}
	assert.Contains(t, diags[1].Message, "unit")
}

func TestUnitBeforeFirstRecordIsOrphan(t *testing.T) {
	input := "Unit: mm - Length\nDD Entity: 6 Late\nUnit: g - Mass\nResolution: 1\nDisplay Range: 0 - 1\n"

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "g", entries[0].UnitSymbol)
	require.Len(t, diags, 1)
	assert.Equal(t, KindOrphanField, diags[0].Kind)
	assert.Equal(t, 1, diags[0].Line)
}

func TestFieldDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		entries int
		kinds   []DiagnosticKind
	}{
		{
			name:  "unparseable resolution",
			input: "DD Entity: 7 Bad Resolution\nUnit: mm - Length\nResolution: one\nDisplay Range: 0 - 1\n",
			kinds: []DiagnosticKind{KindUnparseableResolution, KindIncompleteRecord},
		},
		{
			name:  "unparseable hex bound",
			input: "DD Entity: 8 Bad Range\nUnit: mm - Length\nResolution: 1\nDisplay Range: 0 - 0xZZ\n",
			kinds: []DiagnosticKind{KindUnparseableRange, KindIncompleteRecord},
		},
		{
			name:  "range without separator",
			input: "DD Entity: 8 Bad Range\nUnit: mm - Length\nResolution: 1\nDisplay Range: 0 to 1\n",
			kinds: []DiagnosticKind{KindUnparseableRange, KindIncompleteRecord},
		},
		{
			name:    "duplicate resolution keeps the first",
			input:   "DD Entity: 10 Twice Resolved\nUnit: mm - Length\nResolution: 0,5\nResolution: 2\nDisplay Range: 0 - 1\n",
			entries: 1,
			kinds:   []DiagnosticKind{KindDuplicateField},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, diags, err := ParseAll(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Len(t, entries, tc.entries)

			var kinds []DiagnosticKind
			for _, d := range diags {
				kinds = append(kinds, d.Kind)
				require.NotNil(t, d.DDI)
			}
			assert.Equal(t, tc.kinds, kinds)
		})
	}
}

func TestDuplicateResolutionKeepsFirstValue(t *testing.T) {
	input := "DD Entity: 10 Twice Resolved\nUnit: mm - Length\nResolution: 0,5\nResolution: 2\nDisplay Range: 0 - 1\n"

	entries, diags, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.5, entries[0].Resolution)
	require.Len(t, diags, 1)
	assert.Equal(t, uint16(10), *diags[0].DDI)
	assert.Equal(t, 4, diags[0].Line)
}

func TestDiagnosticString(t *testing.T) {
	id := uint16(42)
	d := Diagnostic{Line: 3, Kind: KindUnparseableUnit, DDI: &id, Message: "oops"}
	assert.Equal(t, "line 3: unparseable-unit (DDI 42): oops", d.String())

	d.DDI = nil
	assert.Equal(t, "line 3: unparseable-unit: oops", d.String())
}
