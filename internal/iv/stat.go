// Package iv provides the stat formula, hidden power classification and the
// constraint engine that narrows a creature's individual values.
package iv

import (
	"fmt"
	"strings"
)

// Stat identifies one of the six stat categories.
type Stat uint8

const (
	HP Stat = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed

	StatCount
)

// IV and EV domain limits.
const (
	MinIV    = 0
	MaxIV    = 31
	MaxEV    = 252
	MinLevel = 1
	MaxLevel = 100
)

// AllStats lists every stat in canonical order.
var AllStats = [StatCount]Stat{HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed}

var statNames = [StatCount]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

// statAliases maps every accepted spelling (lowercase) to its stat.
var statAliases = map[string]Stat{
	"hp":              HP,
	"atk":             Attack,
	"attack":          Attack,
	"def":             Defense,
	"defense":         Defense,
	"spa":             SpecialAttack,
	"spatk":           SpecialAttack,
	"special attack":  SpecialAttack,
	"special-attack":  SpecialAttack,
	"specialattack":   SpecialAttack,
	"spd":             SpecialDefense,
	"spdef":           SpecialDefense,
	"special defense": SpecialDefense,
	"special-defense": SpecialDefense,
	"specialdefense":  SpecialDefense,
	"spe":             Speed,
	"speed":           Speed,
}

// String returns the short display name (HP, Atk, Def, SpA, SpD, Spe).
func (s Stat) String() string {
	if s >= StatCount {
		return fmt.Sprintf("Stat(%d)", uint8(s))
	}
	return statNames[s]
}

// ParseStat resolves a short or long stat name, ignoring case.
func ParseStat(name string) (Stat, error) {
	s, ok := statAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown stat %q", name)
	}
	return s, nil
}

// Stats holds one integer per stat in canonical order.
type Stats [StatCount]int

// StatsFromSlice converts a six element slice into Stats.
func StatsFromSlice(values []int) (Stats, error) {
	var s Stats
	if len(values) != int(StatCount) {
		return s, fmt.Errorf("expected %d values, got %d", StatCount, len(values))
	}
	copy(s[:], values)
	return s, nil
}

// String renders the values separated by slashes, e.g. "31/31/31/31/31/31".
func (s Stats) String() string {
	parts := make([]string, StatCount)
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "/")
}
