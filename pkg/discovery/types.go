package discovery

import (
	"errors"
	"time"
)

const (
	// ServiceType is the DNS-SD service type of DDI lookup servers.
	ServiceType = "_isobus-ddi._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is used when Info.Port is zero.
	DefaultPort = 8080

	// DefaultAPIPath is the API base path advertised when Info.APIPath is empty.
	DefaultAPIPath = "/api/v1"

	// MaxInstanceNameLen is the DNS label limit for instance names.
	MaxInstanceNameLen = 63

	// DefaultTTL of the advertised records.
	DefaultTTL = 120 * time.Second
)

// TXT record keys.
const (
	TXTKeyVersion     = "ver"
	TXTKeyPath        = "path"
	TXTKeyEntries     = "n"
	TXTKeyFingerprint = "fp"
)

var (
	// ErrMissingRequired is returned when a required TXT key is absent.
	ErrMissingRequired = errors.New("missing required TXT record")

	// ErrInvalidInstanceName is returned for empty or overlong instance names.
	ErrInvalidInstanceName = errors.New("invalid instance name")
)

// Info describes an advertised server.
type Info struct {
	Instance    string
	Port        int
	Version     string
	APIPath     string
	Entries     int
	Fingerprint string
}

// Service is a server found while browsing.
type Service struct {
	Info
	Host      string
	Addresses []string
}
