package exportparse

import "testing"

func TestNormalizeResolution(t *testing.T) {
	tests := map[string]string{
		"0":      "0.0",
		"1":      "1.0",
		" 1 ":    "1.0",
		"0,01":   "0.01",
		"0.001":  "0.001",
		"1.0E-7": "1.0E-7",
		"10":     "10",
	}
	for in, want := range tests {
		if got := normalizeResolution(in); got != want {
			t.Errorf("normalizeResolution(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeBound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0x0", "0.0"},
		{"0x7FFFFFFF", "2147483647.0"},
		{"0xFFFFFFFF", "4294967295.0"},
		{"", "0.0"},
		{"  ", "0.0"},
		{"21474836,47\n", "21474836.47"},
		{"-2147483648", "-2147483648.0"},
		{"100.00", "100.00"},
	}
	for _, tt := range tests {
		got, err := normalizeBound(tt.in)
		if err != nil {
			t.Errorf("normalizeBound(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeBound(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := normalizeBound("0xZZ"); err == nil {
		t.Error("normalizeBound(0xZZ) succeeded, want error")
	}
}

func TestSplitUnit(t *testing.T) {
	tests := []struct {
		in           string
		symbol, name string
		ok           bool
	}{
		{"mm³/m² - Capacity per area unit", "mm³/m²", "Capacity per area unit", true},
		{"n.a. - ", "", "n.a.", true},
		{"n.a.", "", "n.a.", true},
		{"not defined - not defined", "", "n.a.", true},
		{"% - Percent", "%", "Percent", true},
		{"mm per second", "", "", false},
	}
	for _, tt := range tests {
		symbol, name, ok := splitUnit(tt.in)
		if symbol != tt.symbol || name != tt.name || ok != tt.ok {
			t.Errorf("splitUnit(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, symbol, name, ok, tt.symbol, tt.name, tt.ok)
		}
	}
}
