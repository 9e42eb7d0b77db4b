package harmony

import "strings"

type pair struct{ a, b string }

// strongPairs and weakPairs are the adjacency sets from spec.md §4.3.
var strongPairs = map[pair]bool{
	{"I", "V"}: true, {"I", "V7"}: true, {"I", "vi"}: true, {"I", "IV"}: true,
	{"ii", "V"}: true, {"ii", "V7"}: true, {"ii7", "V7"}: true,
	{"IV", "V"}: true, {"IV", "V7"}: true, {"IV", "I"}: true,
	{"V", "I"}: true, {"V7", "I"}: true, {"V", "vi"}: true,
	{"vi", "IV"}: true, {"vi", "ii"}: true, {"vi", "V"}: true,
	{"iii", "vi"}: true, {"iii", "IV"}: true,
}

var weakPairs = map[pair]bool{
	{"V", "IV"}: true, {"I", "ii"}: true, {"iii", "ii"}: true,
	{"vii°", "vi"}: true, {"V7", "IV"}: true, {"iii", "IV"}: true,
	{"iii", "V"}: true, {"iii", "vi"}: true, {"I", "iii"}: true,
	{"IV", "iii"}: true, {"vi", "iii"}: true,
}

// Score implements the progression scorer C6 of spec.md §4.3. It
// returns the clipped score and the detected style.
func Score(progression []string) (score int, style string) {
	score = 100
	n := len(progression)

	for i := 0; i+1 < n; i++ {
		p := pair{progression[i], progression[i+1]}
		if strongPairs[p] {
			score += 20
		}
		if weakPairs[p] {
			score -= 10
		}
	}

	if n > 0 {
		if isTonic(progression[0]) {
			score += 15
		}
		if isTonic(progression[n-1]) {
			score += 25
		}
	}

	for _, numeral := range progression {
		if strings.Contains(numeral, "iii") || strings.Contains(numeral, "III") {
			score -= 30
		}
	}

	if n > 0 {
		distinct := map[string]bool{}
		for _, numeral := range progression {
			distinct[numeral] = true
		}
		if float64(len(distinct)) < 0.6*float64(n) {
			score -= 15
		}
	}

	if n >= 2 {
		last, prev := progression[n-1], progression[n-2]
		switch {
		case isDominant(prev) && isTonic(last):
			score += 30
		case prev == "IV" && isTonic(last):
			score += 20
		}
	}

	if score < 0 {
		score = 0
	}

	return score, detectStyle(progression)
}

func isTonic(numeral string) bool { return numeral == "I" || numeral == "i" }
func isDominant(numeral string) bool { return numeral == "V" || numeral == "V7" }

func detectStyle(progression []string) string {
	hasSeven := false
	hasVI, hasIV := false, false
	for _, numeral := range progression {
		if strings.Contains(numeral, "7") {
			hasSeven = true
		}
		if numeral == "vi" {
			hasVI = true
		}
		if numeral == "IV" {
			hasIV = true
		}
	}
	switch {
	case hasSeven:
		return "Jazz/Extended"
	case hasVI && hasIV:
		return "Popular"
	default:
		return "Classical"
	}
}
