package pokedex

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// key folds a name into its lookup form: accents, punctuation, spacing and
// case are dropped, so "Flabébé", "flabebe" and "FLABEBE" share a key, as do
// "Farfetch'd" and "farfetchd". The gender signs become letters so
// "Nidoran♀" and "Nidoran♂" stay apart.
func key(name string) string {
	t := transform.Chain(
		runes.Map(genderSign),
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})),
		cases.Fold(),
		norm.NFC,
	)
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}

func genderSign(r rune) rune {
	switch r {
	case '♀':
		return 'f'
	case '♂':
		return 'm'
	}
	return r
}
