package almanac

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips tone marks and other diacritics from pinyin, so Guǐ-Mǎo
// becomes Gui-Mao and Lǜ becomes Lu.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ASCII returns a copy of t with folded pinyin.
func (t Term) ASCII() Term {
	t.Pinyin = Fold(t.Pinyin)
	return t
}

// ASCII returns a copy of d with folded pinyin.
func (d Day) ASCII() Day {
	d.YearName = Fold(d.YearName)
	d.DayName = Fold(d.DayName)
	d.MajorTerm = d.MajorTerm.ASCII()
	if d.Term != nil {
		t := d.Term.ASCII()
		d.Term = &t
	}
	return d
}

// ASCII returns a copy of y with folded pinyin.
func (y Year) ASCII() Year {
	y.Name = Fold(y.Name)
	return y
}

// ASCII returns a copy of e with folded pinyin.
func (e SolarEvent) ASCII() SolarEvent {
	e.Term = e.Term.ASCII()
	return e
}
