// Package normalize folds person names into a comparable form and cleans free text
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chainPool holds name folding chains: decompose, strip marks and format runes,
// recompose, case fold, width fold
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,                          // decompose so umlauts lose their marks below
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			norm.NFKC,
			cases.Fold(),
			width.Fold,
		)
	},
}

// Name returns the normalized form of a person name
// "  Jürgen   MÜLLER-Lüdenscheidt " and "jurgen muller ludenscheidt" normalize alike
func Name(s string) string {
	if s == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, Sanitize(s))
	tr.Reset()
	chainPool.Put(tr)

	ns = strings.Map(func(r rune) rune {
		switch r {
		case '-', '\'', '’', '.', ',':
			return ' '
		}
		return r
	}, ns)

	return strings.Join(strings.Fields(ns), " ")
}

// Key is the name reduced to letters and digits, for use as a cache or lookup key
func Key(s string) string {
	n := Name(s)
	if n == "" {
		return n
	}
	b := make([]rune, 0, len(n))
	for _, r := range n {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b = append(b, r)
		}
	}
	return string(b)
}

// Sanitize drops invalid UTF-8 and control characters other than tab, CR and LF
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}
