package iv

import "fmt"

// Candidates is an ascending list of IVs still consistent with the inputs.
type Candidates []int

// FullRange returns every legal IV.
func FullRange() Candidates {
	c := make(Candidates, 0, MaxIV-MinIV+1)
	for v := MinIV; v <= MaxIV; v++ {
		c = append(c, v)
	}
	return c
}

// Max returns the largest candidate. It panics on an empty list.
func (c Candidates) Max() int {
	return c[len(c)-1]
}

// Min returns the smallest candidate. It panics on an empty list.
func (c Candidates) Min() int {
	return c[0]
}

// Contains reports whether v is a candidate.
func (c Candidates) Contains(v int) bool {
	for _, x := range c {
		if x == v {
			return true
		}
	}
	return false
}

// Filter returns the candidates for which keep is true, preserving order.
func (c Candidates) Filter(keep func(int) bool) Candidates {
	out := make(Candidates, 0, len(c))
	for _, v := range c {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Parities returns which parities (index 0 even, 1 odd) occur among the candidates.
func (c Candidates) Parities() [2]bool {
	var p [2]bool
	for _, v := range c {
		p[v&1] = true
	}
	return p
}

func (c Candidates) String() string {
	return FormatCandidates(c)
}

// CandidateSet holds the candidates for each stat in canonical order.
type CandidateSet [StatCount]Candidates

// Complete reports whether every stat still has at least one candidate.
func (cs CandidateSet) Complete() bool {
	for _, c := range cs {
		if len(c) == 0 {
			return false
		}
	}
	return true
}

// Empty returns the first stat without candidates.
func (cs CandidateSet) Empty() (Stat, bool) {
	for _, s := range AllStats {
		if len(cs[s]) == 0 {
			return s, true
		}
	}
	return 0, false
}

// Exact returns the IVs when every stat is narrowed to a single value.
func (cs CandidateSet) Exact() (Stats, bool) {
	var ivs Stats
	for _, s := range AllStats {
		if len(cs[s]) != 1 {
			return ivs, false
		}
		ivs[s] = cs[s][0]
	}
	return ivs, true
}

// Strings formats every stat's candidates.
func (cs CandidateSet) Strings() [StatCount]string {
	var out [StatCount]string
	for _, s := range AllStats {
		out[s] = FormatCandidates(cs[s])
	}
	return out
}

// FormatCandidates renders candidates compactly:
//
//	[]        -> "ERROR"
//	[5]       -> "5"
//	[4 5 6]   -> "4-6"
//	[0 2 4]   -> "0-4 (even)"
//	[1 3 5]   -> "1-5 (odd)"
func FormatCandidates(c Candidates) string {
	switch len(c) {
	case 0:
		return "ERROR"
	case 1:
		return fmt.Sprint(c[0])
	}

	lo, hi := c[0], c[0]
	for _, v := range c {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	s := fmt.Sprintf("%d-%d", lo, hi)

	switch c.Parities() {
	case [2]bool{true, false}:
		s += " (even)"
	case [2]bool{false, true}:
		s += " (odd)"
	}
	return s
}
