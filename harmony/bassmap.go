// Package harmony implements the bass-to-chord map (C4), the
// progression enumerator (C5), and the progression scorer (C6) of
// spec.md §4.1-§4.3.
package harmony

import "harmonizer/key"

// candidateTable is the authoritative scale-degree -> candidate-numeral
// table from spec.md §4.1, truncated to the first 3 entries in table
// order by the caller.
var candidateTable = map[key.Mode]map[int][]string{
	key.Major: {
		1: {"I", "vi6"},
		2: {"ii", "vii°6", "V7"},
		3: {"I6"},
		4: {"IV", "ii6", "I6/4"},
		5: {"V", "V7", "I6/4"},
		6: {"vi", "IV6"},
		7: {"vii°", "V7", "V6/5"},
	},
	key.Minor: {
		1: {"i", "VI6"},
		2: {"ii°", "vii°6", "V7"},
		3: {"i6"},
		4: {"iv", "ii°6", "i6/4"},
		5: {"V", "v"},
		6: {"VI", "iv6"},
		7: {"vii°", "V7"},
	},
}

const maxCandidatesPerDegree = 3

// CandidatesForDegree returns the candidate numeral set for a bass note
// at the given scale degree, mode and position, applying the
// positional overrides and fail mode of spec.md §4.1.
//
// exact must be the exactness flag key.Key.ScaleDegree returned for the
// bass pitch; when false, §4.1's fail mode applies and only the tonic
// numeral is returned.
func CandidatesForDegree(degree int, exact bool, mode key.Mode, position, total int) []string {
	if !exact {
		return []string{tonicNumeral(mode)}
	}

	if position == 0 {
		switch degree {
		case 1:
			return []string{tonicNumeral(mode)}
		case 5:
			return []string{"V", "V7"}
		}
	}
	if position == total-1 {
		switch degree {
		case 1:
			return []string{tonicNumeral(mode)}
		case 5:
			return []string{"V7"}
		}
	}

	set := candidateTable[mode][degree]
	if len(set) > maxCandidatesPerDegree {
		set = set[:maxCandidatesPerDegree]
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

func tonicNumeral(mode key.Mode) string {
	if mode == key.Minor {
		return "i"
	}
	return "I"
}
