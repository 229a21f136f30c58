package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects trace events. Zero-valued fields match everything.
type Filter struct {
	// RunID filters by exact run ID match.
	RunID string

	// Stage filters by pipeline stage.
	Stage *Stage

	// Category filters by event category.
	Category *Category

	// DDI filters record and diagnostic events by entry identifier.
	DDI *uint16

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Matches reports whether the event satisfies all criteria.
func (f *Filter) Matches(event Event) bool {
	if f.RunID != "" && event.RunID != f.RunID {
		return false
	}
	if f.Stage != nil && event.Stage != *f.Stage {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.DDI != nil {
		id, ok := event.DDI()
		if !ok || id != *f.DDI {
			return false
		}
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// DDI returns the entry identifier the event refers to, if any.
func (e Event) DDI() (uint16, bool) {
	switch {
	case e.Record != nil:
		return e.Record.DDI, true
	case e.Diagnostic != nil && e.Diagnostic.DDI != nil:
		return *e.Diagnostic.DDI, true
	}
	return 0, false
}

// Reader streams events from a trace file.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a trace file and reads all events.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a trace file and reads events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		closer:  f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// NewStreamReader reads events from r. Close is a no-op unless r is an
// io.Closer.
func NewStreamReader(r io.Reader, filter Filter) *Reader {
	c, _ := r.(io.Closer)
	return &Reader{closer: c, decoder: NewDecoder(r), filter: filter}
}

// Next returns the next matching event, or io.EOF at the end of the trace.
// A trace truncated mid-event also ends with io.EOF.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
