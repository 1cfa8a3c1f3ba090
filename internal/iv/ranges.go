package iv

// StatRange is the spread of displayed values a stat can take at some level.
type StatRange struct {
	Min       int // IV 0, no EVs, hindering nature
	MaxNoEV   int // IV 31, no EVs, beneficial nature
	MaxFullEV int // IV 31, 252 EVs, beneficial nature
}

// EstimateRanges computes the theoretical bounds of every stat for the base stats
// at the given level. HP ignores the nature modifier.
func EstimateRanges(base Stats, level int) [StatCount]StatRange {
	var out [StatCount]StatRange
	for _, s := range AllStats {
		isHP := s == HP
		low, high := LoweredModifier, RaisedModifier
		if isHP {
			low, high = NeutralModifier, NeutralModifier
		}
		out[s] = StatRange{
			Min:       CalcStat(level, base[s], MinIV, 0, low, isHP),
			MaxNoEV:   CalcStat(level, base[s], MaxIV, 0, high, isHP),
			MaxFullEV: CalcStat(level, base[s], MaxIV, MaxEV, high, isHP),
		}
	}
	return out
}
