package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider returns the ordered control list for a chosen baseline.
// Implementations are read-only to the pipeline.
type Provider interface {
	Controls(baseline Baseline) []Entry
	Lookup(controlID string) (Entry, bool)
}

// Catalog is an in-memory, ordered control catalog
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New builds a catalog over the given entries, preserving order. Control
// ids are normalized on the way in; duplicates keep the first occurrence.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.ID = NormalizeControlID(e.ID)
		if e.Family == "" {
			e.Family = FamilyOf(e.ID)
		}
		if _, exists := c.byID[e.ID]; exists {
			continue
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Builtin returns the seed catalog shipped with the binary
func Builtin() *Catalog {
	return New(builtinEntries)
}

// LoadFile reads a YAML control catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read control catalog: %w", err)
	}
	var doc struct {
		Controls []Entry `yaml:"controls"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse control catalog: %w", err)
	}
	if len(doc.Controls) == 0 {
		return nil, fmt.Errorf("control catalog %s contains no controls", path)
	}
	return New(doc.Controls), nil
}

// Controls returns the ordered entries for a baseline. An unknown baseline
// returns the full catalog rather than nothing, so downstream consumers
// always receive a usable list.
func (c *Catalog) Controls(baseline Baseline) []Entry {
	if baseline != BaselineLow && baseline != BaselineModerate && baseline != BaselineHigh {
		out := make([]Entry, len(c.entries))
		copy(out, c.entries)
		return out
	}
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.InBaseline(baseline) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by control id, normalizing the id first
func (c *Catalog) Lookup(controlID string) (Entry, bool) {
	idx, ok := c.byID[NormalizeControlID(controlID)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
