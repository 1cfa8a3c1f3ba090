package iv

import (
	"fmt"
	"strings"
)

// HiddenPowerType is the elemental type of the move Hidden Power.
type HiddenPowerType uint8

const (
	Fighting HiddenPowerType = iota
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark

	hiddenPowerTypeCount
)

var hiddenPowerNames = [hiddenPowerTypeCount]string{
	"Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

// hiddenPowerOrder is the stat order the hidden power bits are packed in.
var hiddenPowerOrder = [StatCount]Stat{HP, Attack, Defense, Speed, SpecialAttack, SpecialDefense}

func (t HiddenPowerType) String() string {
	if t >= hiddenPowerTypeCount {
		return fmt.Sprintf("HiddenPowerType(%d)", uint8(t))
	}
	return hiddenPowerNames[t]
}

// HiddenPowerTypes returns all 16 types in canonical order.
func HiddenPowerTypes() []HiddenPowerType {
	types := make([]HiddenPowerType, hiddenPowerTypeCount)
	for i := range types {
		types[i] = HiddenPowerType(i)
	}
	return types
}

// ParseHiddenPowerType resolves a type name, ignoring case.
func ParseHiddenPowerType(name string) (HiddenPowerType, error) {
	name = strings.TrimSpace(name)
	for i, n := range hiddenPowerNames {
		if strings.EqualFold(n, name) {
			return HiddenPowerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hidden power type %q", name)
}

// HiddenPower classifies six IVs (canonical order) into a hidden power type.
// Only the least significant bit of each IV matters.
func HiddenPower(ivs Stats) HiddenPowerType {
	n := packBits(ivs, 0)
	return HiddenPowerType(n * 15 / 63)
}

// HiddenPowerPower returns the base power of Hidden Power in generations 3 to 5,
// which depends on the second lowest bit of each IV.
func HiddenPowerPower(ivs Stats) int {
	n := packBits(ivs, 1)
	return n*40/63 + 30
}

// packBits collects bit b of each IV in hidden power order.
func packBits(ivs Stats, b uint) int {
	n := 0
	for i, s := range hiddenPowerOrder {
		n |= ((ivs[s] >> b) & 1) << i
	}
	return n
}
