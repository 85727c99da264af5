package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeControlID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ac-2", "AC-2"},
		{"AC-2", "AC-2"},
		{"ac-02", "AC-2"},
		{"AC 2", "AC-2"},
		{"sc 7 (5)", "SC-7(5)"},
		{"SC-7(5)", "SC-7(5)"},
		{"  au-06  ", "AU-6"},
		{"not a control", "NOT A CONTROL"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeControlID(tt.input); got != tt.want {
			t.Errorf("NormalizeControlID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeControlID_Idempotent(t *testing.T) {
	inputs := []string{"ac-2", "SC 7 (5)", "AU-06", "weird id", "PL-2"}
	for _, input := range inputs {
		once := NormalizeControlID(input)
		twice := NormalizeControlID(once)
		if once != twice {
			t.Errorf("NormalizeControlID not idempotent: %q → %q → %q", input, once, twice)
		}
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AC-3", "AC"},
		{"sc-7(5)", "SC"},
		{"AU-2", "AU"},
		{"7", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.input); got != tt.want {
			t.Errorf("FamilyOf(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	if c.Len() == 0 {
		t.Fatal("Builtin catalog is empty")
	}

	entry, ok := c.Lookup("sc-7")
	if !ok {
		t.Fatal("SC-7 missing from builtin catalog")
	}
	if entry.Title != "Boundary Protection" || entry.Family != "SC" {
		t.Errorf("SC-7 = %+v", entry)
	}
	if entry.DefaultText == "" {
		t.Error("Builtin entries must carry default narrative text")
	}
}

func TestCatalog_BaselineFiltering(t *testing.T) {
	c := Builtin()

	low := c.Controls(BaselineLow)
	moderate := c.Controls(BaselineModerate)
	if len(low) == 0 || len(moderate) == 0 {
		t.Fatal("Baseline filtering returned nothing")
	}
	// AC-4 is moderate and high only
	for _, e := range low {
		if e.ID == "AC-4" {
			t.Error("AC-4 should not appear in the low baseline")
		}
	}

	// Unknown baselines degrade to the full catalog
	all := c.Controls(Baseline("custom"))
	if len(all) != c.Len() {
		t.Errorf("Unknown baseline returned %d entries, want %d", len(all), c.Len())
	}
}

func TestCatalog_DuplicateIDsKeepFirst(t *testing.T) {
	c := New([]Entry{
		{ID: "AC-2", Title: "First"},
		{ID: "ac-02", Title: "Second"},
	})
	if c.Len() != 1 {
		t.Fatalf("Catalog len = %d, want 1", c.Len())
	}
	entry, _ := c.Lookup("AC-2")
	if entry.Title != "First" {
		t.Errorf("Duplicate resolution kept %q, want First", entry.Title)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.yaml")
	content := `controls:
  - id: ac-2
    title: Account Management
    baselines: [low, moderate, high]
    defaultText: Accounts are managed.
  - id: SC-7
    title: Boundary Protection
    baselines: [moderate]
    defaultText: Boundaries are protected.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Loaded %d controls, want 2", c.Len())
	}
	entry, ok := c.Lookup("AC-2")
	if !ok || entry.Family != "AC" {
		t.Errorf("AC-2 entry = %+v, ok = %v", entry, ok)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/no/such/catalog.yaml"); err == nil {
		t.Error("LoadFile on a missing path should fail")
	}
}

func TestBuiltinDeviceTypes(t *testing.T) {
	dt := BuiltinDeviceTypes()
	records := dt.DeviceTypes()
	if len(records) == 0 {
		t.Fatal("Builtin device types empty")
	}

	// Returned slice is a copy: mutating it must not affect the catalog
	records[0].DisplayName = "Mutated"
	if dt.DeviceTypes()[0].DisplayName == "Mutated" {
		t.Error("DeviceTypes must return a defensive copy")
	}
}
