package discovery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeTXT creates the TXT records for info.
func EncodeTXT(info *Info) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyVersion: info.Version,
		TXTKeyPath:    info.APIPath,
		TXTKeyEntries: strconv.Itoa(info.Entries),
	}
	if txt[TXTKeyPath] == "" {
		txt[TXTKeyPath] = DefaultAPIPath
	}
	if info.Fingerprint != "" {
		txt[TXTKeyFingerprint] = info.Fingerprint
	}
	return txt
}

// DecodeTXT parses TXT records into an Info. Instance and Port are left for
// the caller to fill in.
func DecodeTXT(txt TXTRecordMap) (*Info, error) {
	info := &Info{}

	var ok bool
	if info.Version, ok = txt[TXTKeyVersion]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}
	if info.APIPath, ok = txt[TXTKeyPath]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyPath)
	}
	n, ok := txt[TXTKeyEntries]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyEntries)
	}
	entries, err := strconv.Atoi(n)
	if err != nil || entries < 0 {
		return nil, fmt.Errorf("invalid entry count %q", n)
	}
	info.Entries = entries
	info.Fingerprint = txt[TXTKeyFingerprint]
	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to sorted "key=value" strings.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, found := strings.Cut(s, "=")
		if found {
			txt[k] = v
		} else if k != "" {
			// Key without value (boolean flag)
			txt[k] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInstanceName)
	}
	if len(name) > MaxInstanceNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidInstanceName, MaxInstanceNameLen)
	}
	return nil
}
