// Package fuzzy scores how closely a free-text query matches a name.
//
// Scores are integers in 0..100. Ratio, PartialRatio and the token variants
// compare their arguments as given; WeightedRatio normalises both sides first
// and is the score used to resolve user queries.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio is the edit-distance similarity of a and b scaled to 0..100.
// Either side empty scores 0.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return scale(1 - float64(dist)/float64(max(la, lb)))
}

// PartialRatio is the best Ratio of the shorter string against every window
// of the same length in the longer one.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	s := string(short)
	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		r := Ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares a and b with their words sorted.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// PartialTokenSortRatio is TokenSortRatio using PartialRatio.
func PartialTokenSortRatio(a, b string) int {
	return PartialRatio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the shared words of a and b against each side's
// shared-plus-remaining words, so extra words on one side cost little.
func TokenSetRatio(a, b string) int {
	return tokenSet(a, b, Ratio)
}

// PartialTokenSetRatio is TokenSetRatio using PartialRatio.
func PartialTokenSetRatio(a, b string) int {
	return tokenSet(a, b, PartialRatio)
}

func tokenSet(a, b string, score func(string, string) int) int {
	ta, tb := tokenSetOf(a), tokenSetOf(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	var inter, onlyA, onlyB []string
	for t := range ta {
		if tb[t] {
			inter = append(inter, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if !ta[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(inter, " ")
	combA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	return max(score(sect, combA), score(sect, combB), score(combA, combB))
}

// WeightedRatio normalises a and b and returns the best of the plain, token
// and (for strings of very different length) partial scores, each scaled
// down by how much it forgives. Either side empty after normalising scores 0.
func WeightedRatio(a, b string) int {
	a, b = Normalize(a), Normalize(b)
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	base := float64(Ratio(a, b))
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	const unbase = 0.95
	if lenRatio < 1.5 {
		tsor := float64(TokenSortRatio(a, b)) * unbase
		tser := float64(TokenSetRatio(a, b)) * unbase
		return int(math.Round(max(base, tsor, tser)))
	}

	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	partial := float64(PartialRatio(a, b)) * partialScale
	ptsor := float64(PartialTokenSortRatio(a, b)) * unbase * partialScale
	ptser := float64(PartialTokenSetRatio(a, b)) * unbase * partialScale
	return int(math.Round(max(base, partial, ptsor, ptser)))
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSetOf(s string) map[string]bool {
	out := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		out[t] = true
	}
	return out
}

func scale(f float64) int {
	return int(math.Round(f * 100))
}
