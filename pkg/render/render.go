// Package render turns parsed DDI entries into the generated lookup table
// artifacts: a C++ header and source pair and a Go table for package ddi.
//
// Every artifact is regenerated in full from embedded templates. The entry
// count and the generation date are derived from the same entry slice that
// fills the array, so they can never disagree.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/tools/imports"

	"github.com/open-agriculture/isobus-ddi/internal/atomicfile"
	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

// DateLayout is the layout of the "This file was generated" line.
const DateLayout = "January 2, 2006"

// Default artifact settings.
const (
	DefaultNamespace   = "isobus"
	DefaultIncludePath = "isobus/isobus/isobus_data_dictionary.hpp"
	DefaultGoPackage   = "ddi"
	DefaultOrg         = "The Open-Agriculture Developers"
)

// ErrNoEntries is returned when asked to render an empty table. A zero-sized
// C++ array does not compile.
var ErrNoEntries = errors.New("no entries to render")

// Options controls the artifact banners and names.
type Options struct {
	// Authors listed in the C++ file banners.
	Authors []string

	// Copyright line. Defaults to "<year> The Open-Agriculture Developers".
	Copyright string

	// Namespace wrapping the C++ DataDictionary class.
	Namespace string

	// IncludePath the source uses to include the header. Its base name also
	// names the header file in its banner.
	IncludePath string

	// GoPackage is the package clause of the Go table.
	GoPackage string

	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// Renderer produces artifact contents.
type Renderer struct {
	opts Options
}

// New creates a Renderer, filling unset options with defaults.
func New(opts Options) *Renderer {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.IncludePath == "" {
		opts.IncludePath = DefaultIncludePath
	}
	if opts.GoPackage == "" {
		opts.GoPackage = DefaultGoPackage
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{opts: opts}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

type tableData struct {
	Date        string
	Copyright   string
	Authors     []string
	Namespace   string
	IncludePath string
	HeaderFile  string
	SourceFile  string
	Guard       string
	GoPackage   string
	Qualifier   string
	Count       int
	Entries     []ddi.Entry
	Default     ddi.Entry
}

func (r *Renderer) data(entries []ddi.Entry) (*tableData, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	now := r.opts.Now()
	copyright := r.opts.Copyright
	if copyright == "" {
		copyright = fmt.Sprintf("%d %s", now.Year(), DefaultOrg)
	}
	header := path.Base(r.opts.IncludePath)
	stem := strings.TrimSuffix(header, path.Ext(header))

	d := &tableData{
		Date:        now.Format(DateLayout),
		Copyright:   copyright,
		Authors:     r.opts.Authors,
		Namespace:   r.opts.Namespace,
		IncludePath: r.opts.IncludePath,
		HeaderFile:  header,
		SourceFile:  stem + ".cpp",
		Guard:       includeGuard(header),
		GoPackage:   r.opts.GoPackage,
		Count:       len(entries),
		Entries:     entries,
		Default:     ddi.DefaultEntry,
	}
	if d.GoPackage != DefaultGoPackage {
		d.Qualifier = "ddi."
	}
	return d, nil
}

// Header renders the C++ header declaring DataDictionary.
func (r *Renderer) Header(entries []ddi.Entry) ([]byte, error) {
	d, err := r.data(entries)
	if err != nil {
		return nil, err
	}
	return renderTemplate("header.hpp.tmpl", d)
}

// Source renders the C++ source defining the entry array and get_entry.
func (r *Renderer) Source(entries []ddi.Entry) ([]byte, error) {
	d, err := r.data(entries)
	if err != nil {
		return nil, err
	}
	return renderTemplate("source.cpp.tmpl", d)
}

// GoTable renders the Go lookup table, formatted by goimports. When
// formatting fails the unformatted text is returned alongside the error.
func (r *Renderer) GoTable(entries []ddi.Entry) ([]byte, error) {
	d, err := r.data(entries)
	if err != nil {
		return nil, err
	}
	code, err := renderTemplate("table.go.tmpl", d)
	if err != nil {
		return nil, err
	}
	formatted, err := imports.Process("table_gen.go", code, nil)
	if err != nil {
		return code, fmt.Errorf("goimports table_gen.go: %w", err)
	}
	return formatted, nil
}

// WriteFile atomically replaces path with data.
func WriteFile(ctx context.Context, path string, data []byte) error {
	return atomicfile.WriteBytes(ctx, path, data, 0o644)
}

// WriteGoTable writes a GoTable result. If code could not be formatted, the
// raw text is left next to path with a .broken suffix for debugging.
func WriteGoTable(ctx context.Context, path string, code []byte, renderErr error) error {
	if renderErr != nil {
		if code != nil {
			_ = os.WriteFile(path+".broken", code, 0o644)
		}
		return renderErr
	}
	return WriteFile(ctx, path, code)
}

func includeGuard(file string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(file) {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// StripDate removes the generation date line so two renders of the same
// entries can be compared.
func StripDate(b []byte) []byte {
	lines := strings.Split(string(b), "\n")
	out := lines[:0]
	for _, l := range lines {
		if strings.Contains(l, "This file was generated ") {
			continue
		}
		out = append(out, l)
	}
	return []byte(strings.Join(out, "\n"))
}
