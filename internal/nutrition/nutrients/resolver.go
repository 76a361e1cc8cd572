package nutrients

import (
	"context"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Tier is one step of the lookup chain. Resolve returns:
//   - (macros, true, nil): authoritative hit, chain stops
//   - (nil, true, nil): authoritative "not found", chain stops (e.g. a
//     cached failed lookup - the name is never re-queried in this process)
//   - (nil, false, _): no answer from this tier, chain continues
type Tier interface {
	Name() string
	Resolve(ctx context.Context, normalizedName string) (m *Macros, conclusive bool, err error)
}

// Resolver walks an ordered list of tiers and takes the first conclusive
// answer. New tiers (e.g. a second nutrient provider) slot in without
// touching existing ones.
type Resolver struct {
	tiers []Tier
}

func NewResolver(tiers ...Tier) *Resolver {
	return &Resolver{
		tiers: tiers,
	}
}

// NewDefaultResolver wires the production chain: static table, then the
// process-local cache, then the external nutrient API (which writes its
// results, hits and misses both, through the cache).
func NewDefaultResolver(cache *Cache, api *API) *Resolver {
	return NewResolver(
		NewStaticTable(),
		cache,
		api,
	)
}

// Resolve returns per-100g macros for a free-text ingredient name, or nil
// when every tier fails. A nil result is not an error - the caller keeps
// the generator-provided values for that ingredient.
func (r *Resolver) Resolve(ctx context.Context, rawName string) *Macros {
	name := NormalizeName(rawName)
	if name == "" {
		return nil
	}

	for _, tier := range r.tiers {
		m, conclusive, err := tier.Resolve(ctx, name)
		if err != nil {
			// a failing tier is treated the same as a miss
			log.Debugf("nutrient tier [%s] failed for [%s]: %s", tier.Name(), name, err)
			continue
		}
		if conclusive {
			return m
		}
	}

	return nil
}

var punctuationPattern = regexp.MustCompile(`[^a-z0-9 ]+`)
var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeName lowercases, strips punctuation and collapses whitespace,
// so "Chicken Breast, raw" and "chicken breast raw" resolve identically.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = punctuationPattern.ReplaceAllString(n, " ")
	n = whitespacePattern.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}
