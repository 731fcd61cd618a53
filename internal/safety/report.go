package safety

// Report is a point-in-time summary of the engine's configuration and cache
// performance.
type Report struct {
	PatternCounts      map[Category]int `json:"per_category_pattern_counts"`
	CacheHits          uint64           `json:"cache_hits"`
	CacheMisses        uint64           `json:"cache_misses"`
	CacheHitRate       float64          `json:"cache_hit_rate"`
	CacheSize          int              `json:"cache_size"`
	WhitelistSize      int              `json:"whitelist_size"`
	CustomPatternCount int              `json:"custom_pattern_count"`
}

// Report returns current pattern counts, cache statistics and exception
// list sizes.
func (v *Validator) Report() Report {
	r := Report{PatternCounts: v.registry.Counts()}

	v.cacheMu.Lock()
	r.CacheHits = v.hits
	r.CacheMisses = v.misses
	r.CacheSize = v.cache.Len()
	v.cacheMu.Unlock()
	if total := r.CacheHits + r.CacheMisses; total > 0 {
		r.CacheHitRate = float64(r.CacheHits) / float64(total)
	}

	v.listMu.RLock()
	r.WhitelistSize = len(v.whitelist)
	r.CustomPatternCount = len(v.custom)
	v.listMu.RUnlock()

	return r
}
