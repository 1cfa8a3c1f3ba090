package pokedex

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit candidates closest to name by edit distance
// between their lookup keys. Ties keep the candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	target := key(name)
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{name: c, dist: levenshtein.ComputeDistance(target, key(c))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	limit = min(limit, len(ranked))
	out := make([]string, limit)
	for i := range out {
		out[i] = ranked[i].name
	}
	return out
}
