package exportparse

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

// Field markers recognized in the export.
const (
	MarkerEntity       = "DD Entity"
	MarkerComment      = "Comment:"
	MarkerUnit         = "Unit:"
	MarkerResolution   = "Resolution:"
	MarkerDisplayRange = "Display Range:"
)

const maxLineSize = 1 << 20

type parserState uint8

const (
	stateAwaitingRecord parserState = iota
	stateRecordOpen
)

// record is the record in progress. Optional fields stay nil until their
// line has been seen.
type record struct {
	line         int
	ddi          uint16
	name         string
	unitConsumed bool
	unit         *[2]string
	resolution   *float64
	displayRange *ddi.Range
}

func (r *record) complete() bool {
	return r.unit != nil && r.resolution != nil && r.displayRange != nil
}

func (r *record) missing() []string {
	var m []string
	if r.unit == nil {
		m = append(m, "unit")
	}
	if r.resolution == nil {
		m = append(m, "resolution")
	}
	if r.displayRange == nil {
		m = append(m, "display range")
	}
	return m
}

func (r *record) entry() ddi.Entry {
	return ddi.Entry{
		DDI:          r.ddi,
		Name:         r.name,
		UnitSymbol:   r.unit[0],
		UnitName:     r.unit[1],
		Resolution:   *r.resolution,
		DisplayRange: *r.displayRange,
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithDiagnosticHandler registers a callback invoked for every diagnostic as
// soon as it is produced.
func WithDiagnosticHandler(fn func(Diagnostic)) Option {
	return func(p *Parser) {
		p.onDiag = fn
	}
}

// Parser reads entries from an export one record at a time. It makes a single
// forward pass over its input and cannot be restarted.
type Parser struct {
	scanner *bufio.Scanner
	line    int
	state   parserState
	current *record
	seen    map[uint16]int
	diags   []Diagnostic
	onDiag  func(Diagnostic)
	err     error
	emitted int
}

// NewParser creates a parser reading from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	p := &Parser{
		scanner: sc,
		seen:    make(map[uint16]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next returns the next complete entry. It returns io.EOF once the input is
// exhausted; any other error is a read error of the underlying reader.
func (p *Parser) Next() (ddi.Entry, error) {
	if p.err != nil {
		return ddi.Entry{}, p.err
	}
	for p.scanner.Scan() {
		p.line++
		if e, ok := p.consume(p.scanner.Text()); ok {
			p.emitted++
			return e, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		p.err = err
		return ddi.Entry{}, err
	}
	if p.state == stateRecordOpen {
		p.dropCurrent()
	}
	p.err = io.EOF
	return ddi.Entry{}, io.EOF
}

// All returns an iterator over the remaining entries. Iteration stops after
// the first read error, which is yielded with a zero entry.
func (p *Parser) All() iter.Seq2[ddi.Entry, error] {
	return func(yield func(ddi.Entry, error) bool) {
		for {
			e, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Diagnostics returns the diagnostics produced so far.
func (p *Parser) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diags))
	copy(out, p.diags)
	return out
}

// Emitted returns the number of entries returned by Next so far.
func (p *Parser) Emitted() int {
	return p.emitted
}

// Line returns the number of lines consumed so far.
func (p *Parser) Line() int {
	return p.line
}

// ParseAll reads every entry from r.
func ParseAll(r io.Reader, opts ...Option) ([]ddi.Entry, []Diagnostic, error) {
	p := NewParser(r, opts...)
	var entries []ddi.Entry
	for e, err := range p.All() {
		if err != nil {
			return nil, p.Diagnostics(), err
		}
		entries = append(entries, e)
	}
	return entries, p.Diagnostics(), nil
}

// IsRecordStart reports whether line opens a new record.
func IsRecordStart(line string) bool {
	return strings.Contains(line, MarkerEntity) && !strings.Contains(line, MarkerComment)
}

// CountRecords counts the record start lines in r.
func CountRecords(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		if IsRecordStart(sc.Text()) {
			n++
		}
	}
	return n, sc.Err()
}

// consume feeds one line to the state machine and reports whether it
// completed a record.
func (p *Parser) consume(line string) (ddi.Entry, bool) {
	switch {
	case IsRecordStart(line):
		p.openRecord(line)
	case strings.Contains(line, MarkerUnit):
		p.unitLine(line)
	case strings.Contains(line, MarkerResolution):
		p.resolutionLine(line)
	case strings.Contains(line, MarkerDisplayRange):
		return p.rangeLine(line)
	}
	return ddi.Entry{}, false
}

func (p *Parser) openRecord(line string) {
	if p.state == stateRecordOpen {
		p.dropCurrent()
	}

	idx := strings.Index(line, MarkerEntity)
	parts := strings.SplitN(strings.TrimSpace(line[idx:]), " ", 4)
	if len(parts) < 3 {
		p.diag(KindUnparseableEntity, nil, "missing identifier in %q", strings.TrimSpace(line))
		return
	}
	id, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		p.diag(KindUnparseableEntity, nil, "invalid identifier %q", parts[2])
		return
	}

	var name string
	if len(parts) == 4 {
		name = strings.TrimSpace(parts[3])
	}
	p.current = &record{line: p.line, ddi: uint16(id), name: name}
	p.state = stateRecordOpen
}

func (p *Parser) unitLine(line string) {
	if p.state != stateRecordOpen {
		p.diag(KindOrphanField, nil, "unit outside of a record")
		return
	}
	// Only the first unit line of a record counts.
	if p.current.unitConsumed {
		return
	}
	p.current.unitConsumed = true

	symbol, name, ok := splitUnit(valueAfter(line, MarkerUnit))
	if !ok {
		p.diag(KindUnparseableUnit, &p.current.ddi, "cannot split unit %q", strings.TrimSpace(line))
		return
	}
	p.current.unit = &[2]string{symbol, name}
}

func (p *Parser) resolutionLine(line string) {
	if p.state != stateRecordOpen {
		p.diag(KindOrphanField, nil, "resolution outside of a record")
		return
	}
	if p.current.resolution != nil {
		p.diag(KindDuplicateField, &p.current.ddi, "resolution already set, ignoring %q", strings.TrimSpace(line))
		return
	}
	text := normalizeResolution(valueAfter(line, MarkerResolution))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.diag(KindUnparseableResolution, &p.current.ddi, "invalid resolution %q", text)
		return
	}
	p.current.resolution = &v
}

func (p *Parser) rangeLine(line string) (ddi.Entry, bool) {
	if p.state != stateRecordOpen {
		p.diag(KindOrphanField, nil, "display range outside of a record")
		return ddi.Entry{}, false
	}

	if r, ok := p.parseRange(rawValueAfter(line, MarkerDisplayRange)); ok {
		p.current.displayRange = &r
	}

	// The display range line completes the record either way.
	if !p.current.complete() {
		p.dropCurrent()
		return ddi.Entry{}, false
	}

	e := p.current.entry()
	p.current = nil
	p.state = stateAwaitingRecord

	if first, dup := p.seen[e.DDI]; dup {
		p.diag(KindDuplicateDDI, &e.DDI, "identifier already defined on line %d", first)
	} else {
		p.seen[e.DDI] = p.line
	}
	return e, true
}

func (p *Parser) parseRange(text string) (ddi.Range, bool) {
	lo, hi, ok := strings.Cut(text, " - ")
	if !ok {
		p.diag(KindUnparseableRange, &p.current.ddi, "missing \" - \" separator in %q", strings.TrimSpace(text))
		return ddi.Range{}, false
	}

	var bounds [2]float64
	for i, raw := range [2]string{lo, hi} {
		s, err := normalizeBound(raw)
		if err == nil {
			bounds[i], err = strconv.ParseFloat(s, 64)
		}
		if err != nil {
			p.diag(KindUnparseableRange, &p.current.ddi, "invalid bound %q", strings.TrimSpace(raw))
			return ddi.Range{}, false
		}
	}
	return ddi.Range{Min: bounds[0], Max: bounds[1]}, true
}

// dropCurrent discards the record in progress and reports what it lacked.
func (p *Parser) dropCurrent() {
	r := p.current
	p.current = nil
	p.state = stateAwaitingRecord
	if r == nil {
		return
	}
	p.diag(KindIncompleteRecord, &r.ddi, "record from line %d dropped, missing %s",
		r.line, strings.Join(r.missing(), ", "))
}

func (p *Parser) diag(kind DiagnosticKind, id *uint16, format string, args ...any) {
	d := Diagnostic{Line: p.line, Kind: kind, Message: fmt.Sprintf(format, args...)}
	if id != nil {
		v := *id
		d.DDI = &v
	}
	p.diags = append(p.diags, d)
	if p.onDiag != nil {
		p.onDiag(d)
	}
}

// valueAfter returns the text following marker with line endings and the
// single separating space removed.
func valueAfter(line, marker string) string {
	return strings.TrimPrefix(rawValueAfter(line, marker), " ")
}

// rawValueAfter returns the text following marker with line endings removed.
// Empty display range bounds rely on the surrounding spaces being kept.
func rawValueAfter(line, marker string) string {
	idx := strings.Index(line, marker)
	return strings.TrimRight(line[idx+len(marker):], "\r\n")
}
