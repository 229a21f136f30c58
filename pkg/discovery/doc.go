// Package discovery announces and finds DDI lookup servers over mDNS/DNS-SD.
//
// Servers register the service type _isobus-ddi._tcp in the local domain.
// The instance name is user-chosen. TXT records carry:
//
//	ver   tool version (major.minor)
//	path  base path of the HTTP API
//	n     number of entries in the served table
//	fp    fingerprint of the export the table was generated from (optional)
//
// Browsers aggregate answers per instance, merging the addresses reported on
// different interfaces.
package discovery
