package ddi

import (
	"sort"
	"strings"
	"sync"
)

// Dictionary is an ordered, read-only table of DDI entries.
// Lookups scan the table in order; the first match wins.
type Dictionary struct {
	entries []Entry
}

// NewDictionary creates a dictionary over a copy of entries.
// Table order is preserved.
func NewDictionary(entries []Entry) *Dictionary {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Dictionary{entries: cp}
}

// Lookup returns the entry for id, or DefaultEntry if id is not in the table.
func (d *Dictionary) Lookup(id uint16) Entry {
	if d != nil {
		for i := range d.entries {
			if d.entries[i].DDI == id {
				return d.entries[i]
			}
		}
	}
	return DefaultEntry
}

// Contains reports whether id has an entry in the table.
func (d *Dictionary) Contains(id uint16) bool {
	return !d.Lookup(id).IsDefault()
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of all entries in table order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	cp := make([]Entry, len(d.entries))
	copy(cp, d.entries)
	return cp
}

// Name returns the name of the entry for id ("Unknown" on a miss).
func (d *Dictionary) Name(id uint16) string {
	return d.Lookup(id).Name
}

// Search returns all entries whose name contains q, case-insensitively.
func (d *Dictionary) Search(q string) []Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || d == nil {
		return nil
	}
	var out []Entry
	for _, e := range d.entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// Duplicates returns identifiers that occur more than once, sorted.
// Lookup only ever returns the first occurrence of such an identifier.
func (d *Dictionary) Duplicates() []uint16 {
	if d == nil {
		return nil
	}
	seen := make(map[uint16]int, len(d.entries))
	for _, e := range d.entries {
		seen[e.DDI]++
	}
	var dups []uint16
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}

var (
	standardOnce sync.Once
	standard     *Dictionary
)

// Standard returns the dictionary built from the generated ISO 11783-11 table.
func Standard() *Dictionary {
	standardOnce.Do(func() {
		standard = NewDictionary(table[:])
	})
	return standard
}

// Lookup looks up id in the standard dictionary.
func Lookup(id uint16) Entry {
	return Standard().Lookup(id)
}
