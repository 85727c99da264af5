package catalog

import (
	"regexp"
	"strings"
)

// Baseline is a NIST SP 800-53 impact baseline
type Baseline string

const (
	BaselineLow      Baseline = "low"
	BaselineModerate Baseline = "moderate"
	BaselineHigh     Baseline = "high"
)

// Entry is one control catalog record: a NIST SP 800-53 rev 5 control with
// its default narrative text
type Entry struct {
	ID          string     `json:"id" yaml:"id"`
	Family      string     `json:"family" yaml:"family"`
	Title       string     `json:"title" yaml:"title"`
	Baselines   []Baseline `json:"baselines" yaml:"baselines"`
	DefaultText string     `json:"defaultText" yaml:"defaultText"`
}

// InBaseline reports whether the control belongs to the given baseline
func (e Entry) InBaseline(b Baseline) bool {
	for _, candidate := range e.Baselines {
		if candidate == b {
			return true
		}
	}
	return false
}

var controlIDPattern = regexp.MustCompile(`^([A-Za-z]+)[\s-]*0*(\d+)(?:\s*\(\s*0*(\d+)\s*\))?$`)

// NormalizeControlID canonicalizes a control identifier: uppercase family,
// stripped leading zeroes, single hyphen, enhancement in parentheses.
// "ac-02" → "AC-2", "SC 7 (5)" → "SC-7(5)". Idempotent: normalizing an
// already-normalized id returns the same value. Unrecognized ids come back
// uppercased and trimmed but otherwise untouched.
func NormalizeControlID(id string) string {
	trimmed := strings.TrimSpace(id)
	m := controlIDPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return strings.ToUpper(trimmed)
	}
	normalized := strings.ToUpper(m[1]) + "-" + m[2]
	if m[3] != "" {
		normalized += "(" + m[3] + ")"
	}
	return normalized
}

// FamilyOf extracts the family code from a control id: "AC-3" → "AC".
// Returns "" when no leading family letters are present.
func FamilyOf(controlID string) string {
	upper := strings.ToUpper(strings.TrimSpace(controlID))
	for i, r := range upper {
		if r < 'A' || r > 'Z' {
			return upper[:i]
		}
	}
	return upper
}

// FamilyName returns the human name of a NIST 800-53 family code
func FamilyName(family string) string {
	if name, ok := familyNames[strings.ToUpper(family)]; ok {
		return name
	}
	return family
}

var familyNames = map[string]string{
	"AC": "Access Control",
	"AT": "Awareness and Training",
	"AU": "Audit and Accountability",
	"CA": "Assessment, Authorization, and Monitoring",
	"CM": "Configuration Management",
	"CP": "Contingency Planning",
	"IA": "Identification and Authentication",
	"IR": "Incident Response",
	"MA": "Maintenance",
	"MP": "Media Protection",
	"PE": "Physical and Environmental Protection",
	"PL": "Planning",
	"PM": "Program Management",
	"PS": "Personnel Security",
	"RA": "Risk Assessment",
	"SA": "System and Services Acquisition",
	"SC": "System and Communications Protection",
	"SI": "System and Information Integrity",
	"SR": "Supply Chain Risk Management",
}
