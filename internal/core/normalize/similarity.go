package normalize

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity scores two names in [0,1] after normalization
// 1 means equal, 0 means nothing in common. Two empty names score 0
func Similarity(a, b string) float64 {
	na, nb := Name(a), Name(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	return 1 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}

// Matches reports whether typed is close enough to stored
// typed is compared to the full stored name and to its last word,
// students often only know their partner's surname
func Matches(typed, stored string, threshold float64) bool {
	if Similarity(typed, stored) >= threshold {
		return true
	}
	ns := Name(stored)
	for i := len(ns) - 1; i >= 0; i-- {
		if ns[i] == ' ' {
			return Similarity(typed, ns[i+1:]) >= threshold
		}
	}
	return false
}
