package devicematch

import (
	"strings"
)

// Record is one device-type catalog entry. IconKey is the identity key: a
// stable path-like identifier (e.g. "aws/compute/ec2-instance") whose exact
// match always outranks heuristic scoring.
type Record struct {
	IconKey     string `json:"iconKey" yaml:"iconKey"`
	Type        string `json:"type" yaml:"type"`
	Subtype     string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// Request describes an incoming device to match against the catalog
type Request struct {
	IconKey    string `json:"iconKey,omitempty"`
	Type       string `json:"type,omitempty"`
	Subtype    string `json:"subtype,omitempty"`
	Category   string `json:"category,omitempty"`
	Provider   string `json:"provider,omitempty"`   // source ecosystem, e.g. "aws", "azure"
	Descriptor string `json:"descriptor,omitempty"` // free-text device description
}

// Result is the declared-shape output of a match. Matched is never true
// with a normalized score below 0.2.
type Result struct {
	Matched bool    `json:"matched"`
	Score   float64 `json:"score"` // normalized to [0, 1]
	Record  Record  `json:"record"`
	Reason  string  `json:"reason"`
}

// Scoring weights on the informal 100-point scale
const (
	weightTypeExact      = 50.0
	weightTypeSimilar    = 40.0
	weightSubtypeExact   = 30.0
	weightSubtypeSimilar = 20.0
	weightCategory       = 20.0
	weightProviderPath   = 15.0
	weightKeyword        = 10.0
	weightDisplayName    = 15.0

	// acceptThreshold is the minimum raw score for a heuristic match
	acceptThreshold = 20.0

	// fallback confidence markers
	categoryFallbackScore = 0.3
	firstEntryScore       = 0.1
)

// genericPlaceholder is returned for an empty catalog so downstream
// consumers always receive a result of the declared shape
var genericPlaceholder = Record{
	IconKey:     "generic/device",
	Type:        "device",
	Category:    "compute",
	DisplayName: "Generic Device",
}

// categoryKeywords maps fallback categories to the type keywords that
// select them when heuristic scoring comes up short
var categoryKeywords = map[string][]string{
	"compute":    {"server", "vm", "instance", "compute", "container", "host"},
	"networking": {"router", "switch", "gateway", "network", "dns", "cdn", "lb"},
	"storage":    {"storage", "disk", "bucket", "volume", "backup", "archive"},
	"databases":  {"database", "db", "sql", "cache", "table"},
	"security":   {"firewall", "vpn", "waf", "ids", "security", "vault"},
}

// fallbackCategoryOrder keeps category fallback deterministic
var fallbackCategoryOrder = []string{"compute", "networking", "storage", "databases", "security"}

// FindBestMatch scores the request against every catalog entry and returns
// the best result. Pure function: no shared state, safe to call in parallel
// across independent inputs.
//
// An exact identity-key match returns immediately with score 1.0, bypassing
// heuristic scoring entirely. Otherwise the highest additive weighted score
// wins, ties broken by catalog iteration order (first seen). Scores below
// the acceptance threshold fall back to the category-keyword table, then to
// the first catalog entry with a very low confidence marker.
func FindBestMatch(req Request, catalog []Record) Result {
	if len(catalog) == 0 {
		return Result{
			Matched: false,
			Score:   0,
			Record:  genericPlaceholder,
			Reason:  "empty catalog; returned generic placeholder",
		}
	}

	// Identity fast path
	if req.IconKey != "" {
		for _, record := range catalog {
			if record.IconKey == req.IconKey {
				return Result{
					Matched: true,
					Score:   1.0,
					Record:  record,
					Reason:  "exact identity key match",
				}
			}
		}
	}

	best := Result{Score: -1}
	for _, record := range catalog {
		score := scoreRecord(req, record)
		// Strict greater-than keeps the first-seen entry on ties
		if score > best.Score {
			best = Result{Score: score, Record: record}
		}
	}

	if best.Score >= acceptThreshold {
		normalized := best.Score / 100.0
		if normalized > 1.0 {
			normalized = 1.0
		}
		return Result{
			Matched: true,
			Score:   normalized,
			Record:  best.Record,
			Reason:  "heuristic score match",
		}
	}

	return fallbackMatch(req, catalog)
}

// scoreRecord computes the additive weighted score of one catalog entry
func scoreRecord(req Request, record Record) float64 {
	score := 0.0

	if req.Type != "" {
		if strings.EqualFold(req.Type, record.Type) {
			score += weightTypeExact
		} else if sim := Similarity(req.Type, record.Type); sim > 0.7 {
			score += sim * weightTypeSimilar
		}
	}

	if req.Subtype != "" && record.Subtype != "" {
		if strings.EqualFold(req.Subtype, record.Subtype) {
			score += weightSubtypeExact
		} else if sim := Similarity(req.Subtype, record.Subtype); sim > 0.7 {
			score += sim * weightSubtypeSimilar
		}
	}

	if req.Category != "" && strings.EqualFold(req.Category, record.Category) {
		score += weightCategory
	}

	// Source-ecosystem path heuristic: a request tagged with a provider
	// prefers entries whose identity key lives under that namespace
	if req.Provider != "" && strings.HasPrefix(strings.ToLower(record.IconKey), strings.ToLower(req.Provider)+"/") {
		score += weightProviderPath
	}

	if req.Descriptor != "" {
		reqWords := keywords(req.Descriptor)
		nameWords := keywords(record.DisplayName)
		for _, rw := range reqWords {
			for _, nw := range nameWords {
				if Similarity(rw, nw) > 0.8 {
					score += weightKeyword
					break
				}
			}
		}

		if sim := Similarity(req.Descriptor, record.DisplayName); sim > 0.6 {
			score += sim * weightDisplayName
		}
	}

	return score
}

// fallbackMatch handles requests nothing scored acceptably against
func fallbackMatch(req Request, catalog []Record) Result {
	hint := strings.ToLower(req.Type + " " + req.Category + " " + req.Descriptor)

	for _, category := range fallbackCategoryOrder {
		if !anyKeyword(hint, categoryKeywords[category]) {
			continue
		}
		for _, record := range catalog {
			if strings.EqualFold(record.Category, category) {
				return Result{
					Matched: true,
					Score:   categoryFallbackScore,
					Record:  record,
					Reason:  "category fallback (" + category + ")",
				}
			}
		}
	}

	return Result{
		Matched: false,
		Score:   firstEntryScore,
		Record:  catalog[0],
		Reason:  "no suitable match; defaulted to first catalog entry",
	}
}

func anyKeyword(s string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// MatchAll is a pure map over FindBestMatch, one result per request in
// input order
func MatchAll(reqs []Request, catalog []Record) []Result {
	results := make([]Result, len(reqs))
	for i, req := range reqs {
		results[i] = FindBestMatch(req, catalog)
	}
	return results
}
