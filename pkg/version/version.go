// Package version provides the tool version and helpers for comparing the
// "major.minor" versions recorded in history databases.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the version of the DDI tooling.
const Current = "1.0"

// Product is the name used in User-Agent headers and service advertisements.
const Product = "isobus-ddi"

// ToolVersion represents a parsed "major.minor" version.
type ToolVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (ToolVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return ToolVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return ToolVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return ToolVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return ToolVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v ToolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
// Stores written by an incompatible major version are refused.
func (v ToolVersion) Compatible(other ToolVersion) bool {
	return v.Major == other.Major
}

// UserAgent returns the HTTP User-Agent for requests made by the tooling:
// "isobus-ddi/<version>".
func UserAgent() string {
	return Product + "/" + Current
}

// ProductFromUserAgent extracts the version from a User-Agent produced by
// UserAgent.
func ProductFromUserAgent(ua string) (ToolVersion, error) {
	prefix := Product + "/"
	if !strings.HasPrefix(ua, prefix) {
		return ToolVersion{}, fmt.Errorf("not an %s user agent: %q", Product, ua)
	}
	suffix := ua[len(prefix):]
	if suffix == "" {
		return ToolVersion{}, fmt.Errorf("empty version in user agent: %q", ua)
	}
	return Parse(suffix)
}
