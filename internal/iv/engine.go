package iv

// Query carries everything the engine needs to narrow the IVs of one creature.
type Query struct {
	Base      Stats
	Displayed Stats
	Level     int
	EVs       Stats
	Nature    Nature

	// Optional hints; nil when unknown.
	Characteristic *Characteristic
	HiddenPower    *HiddenPowerType
}

// Resolve narrows each stat from 0-31 down to the IVs consistent with the query.
// A stat with no candidates is a valid result and means the inputs contradict
// each other; Resolve never fails.
func Resolve(q Query) CandidateSet {
	cs, _ := resolve(q, false)
	return cs
}

// ResolveStrict behaves like Resolve but stops with an *UnsatisfiableError as soon
// as a stage leaves some stat without candidates. The partial set is returned
// alongside the error.
func ResolveStrict(q Query) (CandidateSet, error) {
	return resolve(q, true)
}

func resolve(q Query, strict bool) (CandidateSet, error) {
	cs := filterByStats(q)
	if err := check(cs, strict, StageStats); err != nil {
		return cs, err
	}

	// Later stages only run on consistent input so a contradiction is not
	// hidden behind a bogus cap.
	if q.Characteristic != nil && cs.Complete() {
		cs = filterByCharacteristic(cs, *q.Characteristic)
		if err := check(cs, strict, StageCharacteristic); err != nil {
			return cs, err
		}
	}

	if q.HiddenPower != nil && cs.Complete() {
		cs = filterByHiddenPower(cs, *q.HiddenPower)
		if err := check(cs, strict, StageHiddenPower); err != nil {
			return cs, err
		}
	}

	return cs, nil
}

func check(cs CandidateSet, strict bool, stage Stage) error {
	if !strict {
		return nil
	}
	if s, empty := cs.Empty(); empty {
		return &UnsatisfiableError{Stat: s, Stage: stage}
	}
	return nil
}

// filterByStats keeps, per stat, the IVs that reproduce the displayed stat.
func filterByStats(q Query) CandidateSet {
	var cs CandidateSet
	for _, s := range AllStats {
		mod := q.Nature.Modifier(s)
		cs[s] = FullRange().Filter(func(iv int) bool {
			return CalcStat(q.Level, q.Base[s], iv, q.EVs[s], mod, s == HP) == q.Displayed[s]
		})
	}
	return cs
}

// filterByCharacteristic applies the residue to the high stat and caps every
// other stat at the high stat's largest candidate.
func filterByCharacteristic(cs CandidateSet, c Characteristic) CandidateSet {
	cs[c.HighStat] = cs[c.HighStat].Filter(func(iv int) bool {
		return iv%5 == c.Residue
	})
	if len(cs[c.HighStat]) == 0 {
		return cs
	}

	limit := cs[c.HighStat].Max()
	for _, s := range AllStats {
		if s == c.HighStat {
			continue
		}
		cs[s] = cs[s].Filter(func(iv int) bool {
			return iv <= limit
		})
	}
	return cs
}

// filterByHiddenPower keeps the IVs whose parity takes part in at least one
// parity combination that classifies as the wanted type. Classification only
// reads the lowest bit of each IV, so at most 64 combinations are checked no
// matter how many candidates remain.
func filterByHiddenPower(cs CandidateSet, want HiddenPowerType) CandidateSet {
	var present [StatCount][2]bool
	for _, s := range AllStats {
		present[s] = cs[s].Parities()
	}

	var matching [StatCount][2]bool
	for bits := 0; bits < 1<<StatCount; bits++ {
		var ivs Stats
		ok := true
		for _, s := range AllStats {
			ivs[s] = (bits >> s) & 1
			if !present[s][ivs[s]] {
				ok = false
				break
			}
		}
		if !ok || HiddenPower(ivs) != want {
			continue
		}
		for _, s := range AllStats {
			matching[s][ivs[s]] = true
		}
	}

	for _, s := range AllStats {
		m := matching[s]
		cs[s] = cs[s].Filter(func(iv int) bool {
			return m[iv&1]
		})
	}
	return cs
}
