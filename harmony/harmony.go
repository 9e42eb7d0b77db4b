package harmony

import (
	"fmt"
	"sort"
	"strings"

	"harmonizer/key"
	"harmonizer/pitch"
)

// ScoredProgression is a numeral sequence with its scorer output, per
// spec.md §3.
type ScoredProgression struct {
	Numerals    []string
	Score       int
	Style       string
	Description string
}

// TopK is the number of progressions analyze_bassline returns (spec.md §4.3, §8 property 7).
const TopK = 5

// AnalyzeBassline runs C4 -> C5 -> C6 over a bass line and returns the
// top TopK scored progressions, highest score first, ties broken by
// enumeration order.
func AnalyzeBassline(bassPitches []pitch.Pitch, k key.Key) []ScoredProgression {
	n := len(bassPitches)
	if n == 0 {
		return nil
	}

	candidateSets := make([][]string, n)
	for i, bp := range bassPitches {
		degree, exact := k.ScaleDegree(bp.PitchClass())
		candidateSets[i] = CandidatesForDegree(degree, exact, k.Mode, i, n)
	}

	progressions := Enumerate(candidateSets)

	scored := make([]ScoredProgression, len(progressions))
	for i, p := range progressions {
		score, style := Score(p)
		scored[i] = ScoredProgression{
			Numerals:    p,
			Score:       score,
			Style:       style,
			Description: Describe(p, k),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > TopK {
		scored = scored[:TopK]
	}
	return scored
}

// Describe composes a human-readable sentence for a progression,
// grounded on the original's get_progression_description.
func Describe(progression []string, k key.Key) string {
	style := detectStyle(progression)
	shown := progression
	if len(shown) > 4 {
		shown = shown[:4]
	}
	return fmt.Sprintf("%s progression in %s: %s", style, k.Name(), strings.Join(shown, " - "))
}
