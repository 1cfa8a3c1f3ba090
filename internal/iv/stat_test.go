package iv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStat(t *testing.T) {
	tests := []struct {
		in   string
		want Stat
	}{
		{"HP", HP},
		{"atk", Attack},
		{"Defense", Defense},
		{"SpA", SpecialAttack},
		{"special-defense", SpecialDefense},
		{" Spe ", Speed},
	}
	for _, tt := range tests {
		got, err := ParseStat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStat("luck")
	assert.Error(t, err)
}

func TestStatOrder(t *testing.T) {
	names := make([]string, 0, StatCount)
	for _, s := range AllStats {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}, names)
}

func TestStatsFromSlice(t *testing.T) {
	s, err := StatsFromSlice([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Stats{1, 2, 3, 4, 5, 6}, s)
	assert.Equal(t, "1/2/3/4/5/6", s.String())

	_, err = StatsFromSlice([]int{1, 2, 3})
	assert.Error(t, err)
}

func TestNatureModifier(t *testing.T) {
	adamant := Nature{Name: "Adamant", Raised: Attack, Lowered: SpecialAttack}
	assert.Equal(t, RaisedModifier, adamant.Modifier(Attack))
	assert.Equal(t, LoweredModifier, adamant.Modifier(SpecialAttack))
	assert.Equal(t, NeutralModifier, adamant.Modifier(HP))
	assert.Equal(t, NeutralModifier, adamant.Modifier(Speed))
	assert.False(t, adamant.IsNeutral())
	assert.Equal(t, "Adamant (+Atk/-SpA)", adamant.String())

	hardy := NeutralNature("Hardy")
	assert.True(t, hardy.IsNeutral())
	for _, s := range AllStats {
		assert.Equal(t, NeutralModifier, hardy.Modifier(s))
	}
	assert.Equal(t, "Hardy (±)", hardy.String())
}
