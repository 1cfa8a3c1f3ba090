package iv

// Nature multipliers applied to non-HP stats.
const (
	RaisedModifier  = 1.1
	NeutralModifier = 1.0
	LoweredModifier = 0.9
)

// CalcStat returns the displayed stat for the given parameters.
//
// The nature multiplication happens in float64 and is truncated toward zero
// afterwards, so 0.9 and 1.1 carry their usual binary rounding. Which IVs are
// consistent with a displayed stat depends on that truncation.
func CalcStat(level, base, iv, ev int, modifier float64, isHP bool) int {
	x := (2*base + iv + ev/4) * level / 100
	if isHP {
		return x + level + 10
	}
	return int(float64(x+5) * modifier)
}
