package usecase

import (
	"log"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// ResolverConfig holds configuration for the ingredient resolver
type ResolverConfig struct {
	MinTokenLength     int
	EnableDebugLogging bool
}

// Resolver matches free-text ingredient names against an ordered cost
// catalog. Matching is tiered: exact normalized match, then substring
// containment, then per-token containment. Ties are broken by catalog row
// order, so the catalog must stay an ordered slice.
type Resolver struct {
	minTokenLength     int
	enableDebugLogging bool
}

// NewResolver creates a resolver with the given configuration
func NewResolver(config ResolverConfig) *Resolver {
	minLen := config.MinTokenLength
	if minLen <= 0 {
		minLen = 3 // Tokens shorter than 3 chars are too noisy to match on
	}

	return &Resolver{
		minTokenLength:     minLen,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Resolve returns every catalog entry matching name under the first
// succeeding tier, or an empty slice when all tiers fail. Callers take the
// first returned entry; the resolver deliberately does not disambiguate
// further, favoring a matched-but-possibly-wrong ingredient over refusing
// to estimate a cost.
func (r *Resolver) Resolve(name string, catalog []domain.CostEntry) []domain.CostEntry {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return nil
	}

	// Tier 1: exact normalized match
	var matches []domain.CostEntry
	for _, entry := range catalog {
		if entry.NormalizedName == normalized {
			matches = append(matches, entry)
		}
	}
	if len(matches) > 0 {
		r.debugf("exact match for %q: %d entries", name, len(matches))
		return matches
	}

	// Tier 2: catalog name contains the full search text
	matches = containsMatches(normalized, catalog)
	if len(matches) > 0 {
		r.debugf("substring match for %q: %d entries", name, len(matches))
		return matches
	}

	// Tier 3: per-token containment, tokens in original order
	for _, token := range strings.Fields(normalized) {
		if len(token) < r.minTokenLength {
			continue
		}
		matches = containsMatches(token, catalog)
		if len(matches) > 0 {
			r.debugf("token match for %q via %q: %d entries", name, token, len(matches))
			return matches
		}
	}

	return nil
}

// containsMatches returns catalog entries whose normalized name contains
// needle as a literal substring, preserving row order.
func containsMatches(needle string, catalog []domain.CostEntry) []domain.CostEntry {
	var matches []domain.CostEntry
	for _, entry := range catalog {
		if strings.Contains(entry.NormalizedName, needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func (r *Resolver) debugf(format string, args ...interface{}) {
	if r.enableDebugLogging {
		log.Printf("[RESOLVE] "+format, args...)
	}
}

// KnownCosts is an insertion-ordered map of already-computed menu item costs,
// keyed by lowercased menu item name. Pass 2 of the GP engine resolves
// composite-item references against it.
type KnownCosts struct {
	order []string
	costs map[string]float64
}

// NewKnownCosts creates an empty known-costs table
func NewKnownCosts() *KnownCosts {
	return &KnownCosts{costs: make(map[string]float64)}
}

// Add records the unrounded food cost for a menu item. Re-adding the same
// item overwrites the cost but keeps its original position.
func (k *KnownCosts) Add(menuItem string, cost float64) {
	key := domain.NormalizeName(menuItem)
	if _, exists := k.costs[key]; !exists {
		k.order = append(k.order, key)
	}
	k.costs[key] = cost
}

// Len returns the number of recorded items
func (k *KnownCosts) Len() int {
	return len(k.costs)
}

// Lookup resolves name against the known items: exact normalized match
// first, then bidirectional substring containment over insertion order.
func (k *KnownCosts) Lookup(name string) (float64, bool) {
	needle := domain.NormalizeName(name)

	if cost, ok := k.costs[needle]; ok {
		return cost, true
	}

	for _, key := range k.order {
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return k.costs[key], true
		}
	}

	return 0, false
}
