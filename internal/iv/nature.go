package iv

import "fmt"

// Nature raises one stat by 10% and lowers another by 10%.
// A nature that raises and lowers the same stat is neutral.
type Nature struct {
	Name    string
	Raised  Stat
	Lowered Stat
}

// NeutralNature returns a nature with every modifier at 1.0.
func NeutralNature(name string) Nature {
	return Nature{Name: name, Raised: Attack, Lowered: Attack}
}

// IsNeutral reports whether the nature leaves every stat unchanged.
func (n Nature) IsNeutral() bool {
	return n.Raised == n.Lowered
}

// Modifier returns the multiplier this nature applies to the stat.
func (n Nature) Modifier(s Stat) float64 {
	switch {
	case n.IsNeutral():
		return NeutralModifier
	case s == n.Raised:
		return RaisedModifier
	case s == n.Lowered:
		return LoweredModifier
	default:
		return NeutralModifier
	}
}

func (n Nature) String() string {
	if n.IsNeutral() {
		return fmt.Sprintf("%s (±)", n.Name)
	}
	return fmt.Sprintf("%s (+%s/-%s)", n.Name, n.Raised, n.Lowered)
}

// Characteristic reveals the highest IV (or one tied for highest) and that IV
// modulo 5.
type Characteristic struct {
	Description string
	HighStat    Stat
	Residue     int
}
