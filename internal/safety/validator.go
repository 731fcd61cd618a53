package safety

import (
	"log"
	"regexp"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sundeepg98/computer-use-guard/internal/telemetry"
)

// DefaultCacheCapacity bounds the verdict cache when no capacity is
// configured.
const DefaultCacheCapacity = 500

type customPattern struct {
	raw string
	re  *regexp.Regexp // nil when the pattern is matched as a literal substring
}

func (cp customPattern) matches(s string) bool {
	if cp.re != nil {
		return cp.re.MatchString(s)
	}
	return len(cp.raw) > 0 && containsFold(s, cp.raw)
}

// Validator produces one Verdict per input string by checking the whitelist,
// the verdict cache, operator-supplied custom patterns and the built-in
// registry, in that order. It is safe for concurrent use.
type Validator struct {
	registry *Registry
	tel      *telemetry.Provider

	// listMu guards the whitelist map and the custom pattern slice. The
	// slice is copy-on-write so readers can evaluate against a snapshot
	// without holding the lock.
	listMu    sync.RWMutex
	whitelist map[string]struct{}
	custom    []customPattern

	// cacheMu guards the cache, the generation counter and the hit/miss
	// counters. It is never held together with listMu.
	cacheMu sync.Mutex
	cache   *lru.Cache[string, Verdict]
	gen     uint64
	hits    uint64
	misses  uint64
}

// Options seeds a Validator. Zero values select defaults.
type Options struct {
	CacheCapacity  int
	Whitelist      []string
	CustomPatterns []string
	Telemetry      *telemetry.Provider
}

// NewValidator builds the registry and cache and seeds the whitelist and
// custom pattern list from opts.
func NewValidator(opts Options) *Validator {
	capacity := opts.CacheCapacity
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	cache, err := lru.New[string, Verdict](capacity)
	if err != nil {
		// Only reachable with a non-positive capacity, which is
		// clamped above.
		panic(err)
	}
	v := &Validator{
		registry:  NewRegistry(),
		tel:       opts.Telemetry,
		whitelist: make(map[string]struct{}, len(opts.Whitelist)),
		cache:     cache,
	}
	for _, text := range opts.Whitelist {
		v.whitelist[text] = struct{}{}
	}
	for _, pattern := range opts.CustomPatterns {
		v.custom = append(v.custom, compileCustom(pattern))
	}
	return v
}

// Registry exposes the built-in pattern registry, e.g. for reporting.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// ValidateText checks a single string against the layered pattern set and
// returns a verdict. Results are cached per exact raw input; any whitelist
// or custom pattern mutation clears the cache, so a cached verdict is always
// consistent with the current configuration.
func (v *Validator) ValidateText(text string) Verdict {
	if text == "" {
		return Verdict{Safe: true}
	}
	verdict, gen, ok := v.cacheGet(text)
	if ok {
		v.tel.RecordValidation(verdict.Safe)
		return verdict
	}
	verdict = v.evaluate(text)
	v.cachePut(text, verdict, gen)
	v.tel.RecordValidation(verdict.Safe)
	return verdict
}

func (v *Validator) evaluate(text string) Verdict {
	v.listMu.RLock()
	_, whitelisted := v.whitelist[text]
	custom := v.custom
	v.listMu.RUnlock()

	if whitelisted {
		return Verdict{Safe: true}
	}

	canonical, blocked := Normalize(text)
	if blocked != nil {
		return *blocked
	}

	// Both the raw and canonical forms are checked at every stage:
	// normalization can reveal a payload hidden by compatibility
	// characters, but it can also erase a raw-form match.
	for _, cp := range custom {
		if cp.matches(text) || cp.matches(canonical) {
			return Verdict{
				Safe:           false,
				Category:       CategoryCustom,
				Reason:         "custom pattern matched",
				MatchedPattern: cp.raw,
			}
		}
	}
	for _, p := range v.registry.InOrder() {
		if p.matches(text) || p.matches(canonical) {
			return Verdict{
				Safe:           false,
				Category:       p.Category,
				Reason:         p.Description,
				MatchedPattern: p.Expr,
			}
		}
	}
	return Verdict{Safe: true}
}

// cacheGet looks up a cached verdict and returns the configuration
// generation the lookup observed, so a later cachePut can be dropped if a
// mutation purged the cache in between.
func (v *Validator) cacheGet(text string) (Verdict, uint64, bool) {
	v.cacheMu.Lock()
	defer v.cacheMu.Unlock()
	verdict, ok := v.cache.Get(text)
	if ok {
		v.hits++
		v.tel.RecordCacheHit()
	} else {
		v.misses++
	}
	return verdict, v.gen, ok
}

// cachePut stores a verdict computed against generation gen. A verdict
// evaluated under a configuration that has since been mutated is discarded
// rather than cached stale.
func (v *Validator) cachePut(text string, verdict Verdict, gen uint64) {
	v.cacheMu.Lock()
	if v.gen == gen {
		v.cache.Add(text, verdict)
	}
	v.cacheMu.Unlock()
}

// invalidate drops every cached verdict and advances the configuration
// generation. Called after any whitelist or custom pattern mutation;
// hit/miss counters are cumulative and survive.
func (v *Validator) invalidate() {
	v.cacheMu.Lock()
	v.cache.Purge()
	v.gen++
	v.cacheMu.Unlock()
}

// AddWhitelist marks text as always safe and clears the cache.
func (v *Validator) AddWhitelist(text string) {
	v.listMu.Lock()
	v.whitelist[text] = struct{}{}
	v.listMu.Unlock()
	v.invalidate()
}

// RemoveWhitelist removes a whitelist entry and clears the cache.
func (v *Validator) RemoveWhitelist(text string) {
	v.listMu.Lock()
	delete(v.whitelist, text)
	v.listMu.Unlock()
	v.invalidate()
}

// AddCustomPattern registers an operator-supplied blocking rule and clears
// the cache. A pattern that does not compile as a regular expression is kept
// as a literal substring matcher.
func (v *Validator) AddCustomPattern(pattern string) {
	cp := compileCustom(pattern)
	v.listMu.Lock()
	next := make([]customPattern, 0, len(v.custom)+1)
	next = append(next, v.custom...)
	next = append(next, cp)
	v.custom = next
	v.listMu.Unlock()
	v.invalidate()
}

// RemoveCustomPattern removes a custom rule by its original pattern string
// and clears the cache.
func (v *Validator) RemoveCustomPattern(pattern string) {
	v.listMu.Lock()
	next := make([]customPattern, 0, len(v.custom))
	for _, cp := range v.custom {
		if cp.raw != pattern {
			next = append(next, cp)
		}
	}
	v.custom = next
	v.listMu.Unlock()
	v.invalidate()
}

func compileCustom(pattern string) customPattern {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Printf("custom pattern %q is not a valid regex, matching as literal substring: %v", pattern, err)
		return customPattern{raw: pattern}
	}
	return customPattern{raw: pattern, re: re}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
