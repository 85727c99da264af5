package recommend

import (
	"sort"
	"strings"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/metrics"
)

// Confidence is the coarse trust tier attached to a recommendation. The
// trigger tables currently encode a single tier; the field exists so a
// future source (e.g. heuristic inference) can rank below table hits.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
)

// MaxRecommendations caps the output: precision over recall, anything past
// the cap is silently dropped
const MaxRecommendations = 10

// Recommendation is one recommended control. TriggerIDs is the deduplicated
// union of every entity id that matched a trigger for this control, in
// first-seen order; Reason is retained from the first trigger encountered.
type Recommendation struct {
	ControlID  string     `json:"controlId"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	TriggerIDs []string   `json:"triggerIds"`
}

// Recommend computes the ranked control recommendations for a diagram.
//
// Every device type and zone type string is tested against the trigger
// tables by case-insensitive substring match. Matches for the same control
// merge: trigger ids union, first reason wins. Ranking is by confidence,
// then control id ascending — the explicit secondary key that makes the
// hard truncation to MaxRecommendations deterministic.
func Recommend(g *diagram.Graph) []Recommendation {
	recommendations, _ := recommend(g)
	return recommendations
}

// recommend also reports whether the candidate set exceeded the cap
func recommend(g *diagram.Graph) ([]Recommendation, bool) {
	merged := make(map[string]*Recommendation)
	order := make([]string, 0)

	record := func(entityID string, tr trigger) {
		for _, rawID := range tr.controls {
			controlID := catalog.NormalizeControlID(rawID)
			rec, exists := merged[controlID]
			if !exists {
				rec = &Recommendation{
					ControlID:  controlID,
					Confidence: ConfidenceHigh,
					Reason:     tr.reason,
				}
				merged[controlID] = rec
				order = append(order, controlID)
			}
			if !containsID(rec.TriggerIDs, entityID) {
				rec.TriggerIDs = append(rec.TriggerIDs, entityID)
			}
		}
	}

	for _, device := range g.Devices() {
		deviceType := strings.ToLower(device.Type)
		if deviceType == "" {
			continue
		}
		for _, tr := range deviceTriggers {
			if strings.Contains(deviceType, tr.substring) {
				record(device.ID, tr)
			}
		}
	}

	for _, boundary := range g.Boundaries() {
		zoneType := strings.ToLower(boundary.ZoneType)
		if zoneType == "" {
			continue
		}
		for _, tr := range zoneTriggers {
			if strings.Contains(zoneType, tr.substring) {
				record(boundary.ID, tr)
			}
		}
	}

	recommendations := make([]Recommendation, 0, len(order))
	for _, controlID := range order {
		recommendations = append(recommendations, *merged[controlID])
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Confidence != recommendations[j].Confidence {
			// Single tier today; high sorts first if more tiers appear
			return recommendations[i].Confidence == ConfidenceHigh
		}
		return recommendations[i].ControlID < recommendations[j].ControlID
	})

	truncated := len(recommendations) > MaxRecommendations
	if truncated {
		recommendations = recommendations[:MaxRecommendations]
	}
	return recommendations, truncated
}

// Engine wraps the pure recommendation functions with metrics recording.
// Metrics is optional; a nil registry leaves the engine equivalent to the
// package-level Recommend.
type Engine struct {
	Metrics *metrics.Registry
}

// Recommend runs the engine and records the run
func (e *Engine) Recommend(g *diagram.Graph) []Recommendation {
	recommendations, truncated := recommend(g)
	if e.Metrics != nil {
		e.Metrics.RecordRecommendationRun(len(recommendations), truncated)
	}
	return recommendations
}

// IsRecommended recomputes the full recommendation set and checks
// membership, returning the recommendation's reason when present
func IsRecommended(controlID string, g *diagram.Graph) (bool, string) {
	normalized := catalog.NormalizeControlID(controlID)
	for _, rec := range Recommend(g) {
		if rec.ControlID == normalized {
			return true, rec.Reason
		}
	}
	return false, ""
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
