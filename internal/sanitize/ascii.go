// Package sanitize reduces text to printable ASCII.
package sanitize

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuation = strings.NewReplacer(
	"—", "--", // em dash
	"–", "-", // en dash
	"−", "-", // minus sign
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	"\u00a0", " ",
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
)

// combiningMarks is the Combining Diacritical Marks block, U+0300..U+036F.
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// ASCII replaces typographic punctuation with ASCII equivalents, strips
// diacritics through NFKD decomposition and turns any remaining rune outside
// tab, newline, carriage return and 0x20..0x7E into '?'. The result is
// stable under a second application.
func ASCII(input string) string {
	s := punctuation.Replace(input)

	t := transform.Chain(norm.NFKD, runes.Remove(combiningMarks))
	if decomposed, _, err := transform.String(t, s); err == nil {
		s = decomposed
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case r >= 0x20 && r <= 0x7E:
			return r
		default:
			return '?'
		}
	}, s)
}
