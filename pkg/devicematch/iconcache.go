package devicematch

import (
	"sync"

	"github.com/dd0wney/cluso-compliance/pkg/metrics"
)

// IconCache indexes catalog records by identity key. It replaces what used
// to be a process-wide singleton populated once at startup: instances are
// explicit and disposable, so tests run against isolated caches and a
// refreshed catalog just means Warm on a new or Reset instance.
type IconCache struct {
	mu      sync.RWMutex
	byKey   map[string]Record
	records []Record
}

// NewIconCache returns an empty cache
func NewIconCache() *IconCache {
	return &IconCache{byKey: make(map[string]Record)}
}

// Warm loads catalog records into the cache, replacing prior contents.
// Duplicate identity keys keep the first occurrence.
func (c *IconCache) Warm(records []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byKey = make(map[string]Record, len(records))
	c.records = make([]Record, len(records))
	copy(c.records, records)
	for _, r := range records {
		if _, exists := c.byKey[r.IconKey]; !exists {
			c.byKey[r.IconKey] = r
		}
	}
}

// Lookup returns the record for an identity key
func (c *IconCache) Lookup(iconKey string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.byKey[iconKey]
	return r, ok
}

// Records returns the cached catalog in load order
func (c *IconCache) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of cached records
func (c *IconCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Reset empties the cache
func (c *IconCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey = make(map[string]Record)
	c.records = nil
}

// Matcher binds a warmed icon cache to the match functions. The zero-value
// cacheless form degrades to plain catalog scans. Metrics is optional; when
// set, every match outcome and score is recorded.
type Matcher struct {
	cache   *IconCache
	Metrics *metrics.Registry
}

// NewMatcher returns a matcher backed by the given cache
func NewMatcher(cache *IconCache) *Matcher {
	return &Matcher{cache: cache}
}

// Match runs FindBestMatch against the cached catalog
func (m *Matcher) Match(req Request) Result {
	var catalog []Record
	if m.cache != nil {
		catalog = m.cache.Records()
	}
	result := FindBestMatch(req, catalog)
	if m.Metrics != nil {
		m.Metrics.RecordMatch(result.Matched, result.Score)
	}
	return result
}

// MatchBatch runs the pure batch map against the cached catalog
func (m *Matcher) MatchBatch(reqs []Request) []Result {
	var catalog []Record
	if m.cache != nil {
		catalog = m.cache.Records()
	}
	results := MatchAll(reqs, catalog)
	if m.Metrics != nil {
		for _, result := range results {
			m.Metrics.RecordMatch(result.Matched, result.Score)
		}
	}
	return results
}
