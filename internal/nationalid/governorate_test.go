package nationalid

import "testing"

func TestGovernorateName(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"01", "Cairo", true},
		{"32", "New Valley", true},
		{"88", "Foreign", true},
		{"00", "", false},
		{"05", "", false},
		{"10", "", false},
		{"20", "", false},
		{"30", "", false},
		{"36", "", false},
		{"99", "", false},
		{"1", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := GovernorateName(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("GovernorateName(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("GovernorateName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestGovernorates(t *testing.T) {
	entries := Governorates()

	if len(entries) != 27 {
		t.Fatalf("len(Governorates()) = %d, want 27", len(entries))
	}

	// sorted by code, Cairo first, Foreign last
	if entries[0].Code != "01" || entries[0].Name != "Cairo" {
		t.Errorf("first entry = %+v, want 01 Cairo", entries[0])
	}
	last := entries[len(entries)-1]
	if last.Code != "88" || last.Name != "Foreign" {
		t.Errorf("last entry = %+v, want 88 Foreign", last)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Code >= entries[i].Code {
			t.Fatalf("entries not sorted at %d: %s >= %s", i, entries[i-1].Code, entries[i].Code)
		}
	}

	// every listed code resolves through the lookup
	for _, e := range entries {
		name, ok := GovernorateName(e.Code)
		if !ok || name != e.Name {
			t.Errorf("lookup mismatch for %s: got %q %v", e.Code, name, ok)
		}
	}
}
