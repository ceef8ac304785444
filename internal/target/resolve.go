package target

import "strings"

// Resolve maps a raw identifier to a target using the built-in registry.
func Resolve(raw string) Target {
	return defaultRegistry.Resolve(raw)
}

// Match says which resolution step produced a target.
type Match string

const (
	MatchExact    Match = "exact"
	MatchFuzzy    Match = "fuzzy"
	MatchFallback Match = "fallback"
)

// Resolve never fails: exact match, then fuzzy rules in priority order, then the fallback.
func (r *Registry) Resolve(raw string) Target {
	t, _ := r.Explain(raw)
	return t
}

// Explain resolves raw like Resolve and reports which step matched.
// Exact matching runs first so a name that is exactly a known target is never captured
// by an earlier substring rule.
func (r *Registry) Explain(raw string) (Target, Match) {
	key := normalize(raw)
	if key == "" {
		return r.Fallback(), MatchFallback
	}

	if t, ok := r.Lookup(key); ok {
		return t, MatchExact
	}

	for _, rule := range r.rules {
		for _, needle := range rule.Needles {
			if strings.Contains(key, needle) {
				if t, ok := r.Get(rule.ID); ok {
					return t, MatchFuzzy
				}
			}
		}
	}

	return r.Fallback(), MatchFallback
}
