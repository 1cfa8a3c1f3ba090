package iv

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var garchomp = Stats{108, 130, 95, 80, 85, 102}

var adamant = Nature{Name: "Adamant", Raised: Attack, Lowered: SpecialAttack}

// level 20 Adamant Garchomp with IVs 14/27/9/20/31/6 and no EVs
var level20Query = Query{
	Base:      garchomp,
	Displayed: Stats{76, 68, 44, 36, 45, 47},
	Level:     20,
	Nature:    adamant,
}

func TestResolveGolden(t *testing.T) {
	q := Query{
		Base:      garchomp,
		Displayed: Stats{280, 230, 177, 152, 160, 188},
		Level:     78,
		Nature:    NeutralNature("Hardy"),
	}

	got := Resolve(q)

	ivs, ok := got.Exact()
	require.True(t, ok, "expected a single IV per stat, got %v", got.Strings())
	assert.Equal(t, Stats{31, 29, 31, 29, 29, 31}, ivs)
}

func TestResolveStatsAboveCeilingAreErrors(t *testing.T) {
	// HP 289 is above the 280 a level 78 Garchomp reaches with no EVs.
	q := Query{
		Base:      garchomp,
		Displayed: Stats{289, 278, 190, 188, 190, 203},
		Level:     78,
		Nature:    NeutralNature("Hardy"),
	}

	got := Resolve(q)

	assert.Equal(t, [StatCount]string{"ERROR", "ERROR", "ERROR", "ERROR", "ERROR", "ERROR"}, got.Strings())
}

func TestResolveStatsOnly(t *testing.T) {
	got := Resolve(level20Query)

	assert.Equal(t, CandidateSet{
		{14, 15, 16, 17, 18},
		{25, 26, 27, 28, 29},
		{5, 6, 7, 8, 9},
		{15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
		{30, 31},
		{6, 7, 8, 9, 10},
	}, got)
}

func TestResolveCharacteristic(t *testing.T) {
	tests := []struct {
		name string
		char Characteristic
		want CandidateSet
	}{
		{
			name: "residue narrows high stat without capping others",
			char: Characteristic{Description: "Somewhat vain", HighStat: SpecialDefense, Residue: 1},
			want: CandidateSet{
				{14, 15, 16, 17, 18},
				{25, 26, 27, 28, 29},
				{5, 6, 7, 8, 9},
				{15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
				{31},
				{6, 7, 8, 9, 10},
			},
		},
		{
			name: "cap below another stat empties it",
			char: Characteristic{Description: "Proud of its power", HighStat: Attack, Residue: 0},
			want: CandidateSet{
				{14, 15, 16, 17, 18},
				{25},
				{5, 6, 7, 8, 9},
				{15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
				{},
				{6, 7, 8, 9, 10},
			},
		},
		{
			name: "residue with no match leaves other stats alone",
			char: Characteristic{Description: "Strongly defiant", HighStat: SpecialDefense, Residue: 2},
			want: CandidateSet{
				{14, 15, 16, 17, 18},
				{25, 26, 27, 28, 29},
				{5, 6, 7, 8, 9},
				{15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
				{},
				{6, 7, 8, 9, 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := level20Query
			q.Characteristic = &tt.char
			assert.Equal(t, tt.want, Resolve(q))
		})
	}
}

func TestResolveHiddenPower(t *testing.T) {
	dark := Dark
	q := level20Query
	q.HiddenPower = &dark

	assert.Equal(t, CandidateSet{
		{15, 17},
		{25, 27, 29},
		{5, 7, 9},
		{15, 17, 19, 21, 23},
		{31},
		{7, 9},
	}, Resolve(q))
}

func TestResolveCharacteristicAndHiddenPower(t *testing.T) {
	water := Water
	q := level20Query
	q.Characteristic = &Characteristic{Description: "Somewhat vain", HighStat: SpecialDefense, Residue: 1}
	q.HiddenPower = &water

	got := Resolve(q)

	assert.Equal(t, CandidateSet{
		{14, 15, 16, 17, 18},
		{25, 26, 27, 28, 29},
		{5, 6, 7, 8, 9},
		{16, 18, 20, 22, 24},
		{31},
		{6, 7, 8, 9, 10},
	}, got)
	assert.Equal(t, "16-24 (even)", FormatCandidates(got[SpecialAttack]))
}

func TestResolveSkipsHintsOnInconsistentStats(t *testing.T) {
	fire := Fire
	q := level20Query
	q.Displayed[Defense] = 999
	q.Characteristic = &Characteristic{Description: "Likes to run", HighStat: Speed, Residue: 0}
	q.HiddenPower = &fire

	got := Resolve(q)

	assert.Empty(t, got[Defense])
	// no cap or parity filter was applied to the remaining stats
	assert.Equal(t, Candidates{14, 15, 16, 17, 18}, got[HP])
	assert.Equal(t, Candidates{6, 7, 8, 9, 10}, got[Speed])
	assert.Equal(t, Candidates{30, 31}, got[SpecialDefense])
}

func TestResolveStrict(t *testing.T) {
	t.Run("consistent input", func(t *testing.T) {
		got, err := ResolveStrict(level20Query)
		require.NoError(t, err)
		assert.Equal(t, Resolve(level20Query), got)
	})

	t.Run("stats stage", func(t *testing.T) {
		q := level20Query
		q.Displayed[Speed] = 1
		_, err := ResolveStrict(q)

		var uerr *UnsatisfiableError
		require.ErrorAs(t, err, &uerr)
		assert.ErrorIs(t, err, ErrUnsatisfiable)
		assert.Equal(t, Speed, uerr.Stat)
		assert.Equal(t, StageStats, uerr.Stage)
	})

	t.Run("characteristic stage", func(t *testing.T) {
		q := level20Query
		q.Characteristic = &Characteristic{Description: "Strongly defiant", HighStat: SpecialDefense, Residue: 2}
		got, err := ResolveStrict(q)

		var uerr *UnsatisfiableError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, SpecialDefense, uerr.Stat)
		assert.Equal(t, StageCharacteristic, uerr.Stage)
		assert.Equal(t, Candidates{14, 15, 16, 17, 18}, got[HP])
		assert.Contains(t, err.Error(), "SpD has no candidates after characteristic filter")
	})

	t.Run("hidden power stage", func(t *testing.T) {
		// a single even HP IV can never be Dark
		dark := Dark
		q := Query{
			Base:      garchomp,
			Displayed: Stats{280, 230, 177, 152, 160, 188},
			Level:     78,
			Nature:    NeutralNature("Hardy"),
		}
		q.Displayed[HP] = CalcStat(78, garchomp[HP], 26, 0, NeutralModifier, true)
		q.HiddenPower = &dark

		_, err := ResolveStrict(q)

		var uerr *UnsatisfiableError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, StageHiddenPower, uerr.Stage)
	})
}

func TestResolveContainsTrueIVs(t *testing.T) {
	natures := []Nature{
		NeutralNature("Hardy"),
		adamant,
		{Name: "Timid", Raised: Speed, Lowered: Attack},
		{Name: "Calm", Raised: SpecialDefense, Lowered: Attack},
	}
	levels := []int{1, 5, 36, 50, 78, 100}
	bases := []int{1, 45, 108, 255}
	evs := []int{0, 4, 85, 252}

	for _, nature := range natures {
		for _, level := range levels {
			for _, base := range bases {
				for _, ev := range evs {
					for want := MinIV; want <= MaxIV; want++ {
						q := Query{Level: level, Nature: nature}
						for _, s := range AllStats {
							q.Base[s] = base
							q.EVs[s] = ev
							q.Displayed[s] = CalcStat(level, base, want, ev, nature.Modifier(s), s == HP)
						}

						got := Resolve(q)
						for _, s := range AllStats {
							if !got[s].Contains(want) {
								t.Fatalf("%s: iv %d missing for level=%d base=%d ev=%d nature=%s: %v",
									s, want, level, base, ev, nature, got[s])
							}
						}
					}
				}
			}
		}
	}
}

func TestCharacteristicCapInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		var truth Stats
		for _, s := range AllStats {
			truth[s] = rng.IntN(MaxIV + 1)
		}
		high := AllStats[rng.IntN(int(StatCount))]
		for _, s := range AllStats {
			truth[high] = max(truth[high], truth[s])
		}

		q := Query{Base: garchomp, Level: 1 + rng.IntN(MaxLevel), Nature: adamant}
		for _, s := range AllStats {
			q.Displayed[s] = CalcStat(q.Level, q.Base[s], truth[s], 0, adamant.Modifier(s), s == HP)
		}
		q.Characteristic = &Characteristic{HighStat: high, Residue: truth[high] % 5}

		got := Resolve(q)
		require.True(t, got.Complete(), "true IVs %v were filtered out: %v", truth, got.Strings())
		for _, s := range AllStats {
			assert.True(t, got[s].Contains(truth[s]))
			assert.GreaterOrEqual(t, got[high].Max(), got[s].Max())
		}
	}
}

// filterByHiddenPowerExhaustive classifies every combination of actual candidates.
func filterByHiddenPowerExhaustive(cs CandidateSet, want HiddenPowerType) CandidateSet {
	var keep [StatCount]map[int]bool
	for _, s := range AllStats {
		keep[s] = map[int]bool{}
	}

	var ivs Stats
	var walk func(i int)
	walk = func(i int) {
		if i == int(StatCount) {
			if HiddenPower(ivs) == want {
				for _, s := range AllStats {
					keep[s][ivs[s]] = true
				}
			}
			return
		}
		for _, v := range cs[i] {
			ivs[i] = v
			walk(i + 1)
		}
	}
	walk(0)

	var out CandidateSet
	for _, s := range AllStats {
		out[s] = cs[s].Filter(func(v int) bool { return keep[s][v] })
	}
	return out
}

func TestHiddenPowerFilterMatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	for i := 0; i < 300; i++ {
		var cs CandidateSet
		for _, s := range AllStats {
			n := 1 + rng.IntN(4)
			picked := map[int]bool{}
			for len(picked) < n {
				picked[rng.IntN(MaxIV+1)] = true
			}
			cs[s] = FullRange().Filter(func(v int) bool { return picked[v] })
		}

		for _, want := range HiddenPowerTypes() {
			assert.Equal(t, filterByHiddenPowerExhaustive(cs, want), filterByHiddenPower(cs, want),
				"type %s on %v", want, cs)
		}
	}
}
