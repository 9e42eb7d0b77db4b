package satb

import (
	"fmt"

	"harmonizer/key"
	"harmonizer/roman"
	"harmonizer/voicing"
)

// Validate independently re-derives violations from the final
// realization (C10, spec.md §4.7). compromises is the C9 analyzer's
// output for this realization; it is folded into the score and echoed
// back on the report ("mirrored compromises") rather than
// re-discovered, since the compromise analyzer alone has access to the
// DP's marginal costs.
func Validate(realization Realization, progression []string, k key.Key, compromises []Compromise) ValidationReport {
	var errors, warnings []string
	var hints []string
	seenHints := map[string]bool{}
	addHint := func(h string) {
		if !seenHints[h] {
			seenHints[h] = true
			hints = append(hints, h)
		}
	}

	expansions := make([]roman.Expansion, len(progression))
	for i, numeral := range progression {
		exp, err := roman.Expand(numeral, k)
		if err == nil {
			expansions[i] = exp
		}
	}

	for i, v := range realization {
		midis := v.MIDIs()
		for idx, m := range midis {
			if !voicing.InRange(idx, m) {
				errors = append(errors, fmt.Sprintf("voice_range: %s out of range in chord %d", voiceName(idx), i))
				addHint("keep each voice within its declared range")
			}
		}

		b, t, a, s := midis[0], midis[1], midis[2], midis[3]
		if !(b <= t && t <= a && a <= s) {
			errors = append(errors, fmt.Sprintf("voice_crossing: voices out of order in chord %d", i))
			addHint("avoid voice crossings")
		}

		if s-a > 12 || a-t > 12 {
			warnings = append(warnings, fmt.Sprintf("wide_spacing: gap exceeds an octave in chord %d", i))
			addHint("keep adjacent upper voices within an octave")
		}

		if i < len(expansions) {
			counts := v.PitchClassCounts()
			exp := expansions[i]
			if counts[exp.Root] == 0 || counts[exp.Third] == 0 || counts[exp.Fifth] == 0 {
				errors = append(errors, fmt.Sprintf("incomplete_chord: chord %d is missing a chord tone", i))
				addHint("include root, third and fifth in every chord")
			}
		}
	}

	for i := 0; i+1 < len(realization); i++ {
		p, c := realization[i].MIDIs(), realization[i+1].MIDIs()

		for idx := 0; idx < 4; idx++ {
			d := c[idx] - p[idx]
			if d < 0 {
				d = -d
			}
			switch idx {
			case voicing.IdxBass:
				if d > 12 {
					errors = append(errors, fmt.Sprintf("large_leap: bass leaps %d semitones between chords %d-%d", d, i, i+1))
					addHint("avoid bass leaps larger than an octave")
				}
			default:
				if d > 12 {
					errors = append(errors, fmt.Sprintf("large_leap: %s leaps %d semitones between chords %d-%d", voiceName(idx), d, i, i+1))
					addHint("avoid large leaps in the upper voices")
				} else if d >= 7 {
					warnings = append(warnings, fmt.Sprintf("large_leap: %s leaps %d semitones between chords %d-%d", voiceName(idx), d, i, i+1))
					addHint("avoid large leaps in the upper voices")
				}
			}
		}

		for a := 0; a < 4; a++ {
			for bIdx := a + 1; bIdx < 4; bIdx++ {
				fifth, octave, unison := IsParallelPerfect(p, c, a, bIdx)
				switch {
				case fifth:
					errors = append(errors, fmt.Sprintf("parallel_fifths: %s and %s, chords %d-%d", voiceName(a), voiceName(bIdx), i, i+1))
					addHint("eliminate parallel fifths")
				case octave:
					errors = append(errors, fmt.Sprintf("parallel_octaves: %s and %s, chords %d-%d", voiceName(a), voiceName(bIdx), i, i+1))
					addHint("eliminate parallel octaves")
				case unison:
					errors = append(errors, fmt.Sprintf("parallel_unisons: %s and %s, chords %d-%d", voiceName(a), voiceName(bIdx), i, i+1))
					addHint("eliminate parallel unisons")
				}
			}
		}

		if i+1 < len(progression) {
			if isDominantTriadOrSeventh(progression[i]) && isTonicNumeral(progression[i+1]) {
				if idx, ok := voiceHolding(p, k.LeadingTone()); ok {
					if c[idx]-p[idx] != 1 {
						warnings = append(warnings, fmt.Sprintf("tendency_tone: leading tone does not resolve to tonic between chords %d-%d", i, i+1))
						addHint("resolve the leading tone up to the tonic")
					}
				}
			}
		}
	}

	score := 100 - 20*len(errors) - 5*len(warnings)
	for _, comp := range compromises {
		score -= compromisePenalty(comp.Severity)
	}
	if score < 0 {
		score = 0
	}

	suggestions := []string{summarySentence(len(errors), len(warnings))}
	suggestions = append(suggestions, hints...)

	return ValidationReport{
		Errors:      errors,
		Warnings:    warnings,
		Compromises: compromises,
		Score:       score,
		Suggestions: suggestions,
	}
}

// isDominantTriadOrSeventh and isTonicNumeral scope the tendency_tone
// check to exactly V(7)->I/i, the literal rule of spec.md §4.7. This
// is deliberately narrower than leadingToneShouldResolve (cost.go),
// which also treats V/vii°->vi (deceptive motion) and vii°->I as
// leading-tone-resolving for the DP's cost surface; the validator
// must not warn on those transitions.
func isDominantTriadOrSeventh(numeral string) bool {
	return numeral == "V" || numeral == "V7"
}

func isTonicNumeral(numeral string) bool {
	return numeral == "I" || numeral == "i"
}

func summarySentence(errorCount, warningCount int) string {
	switch {
	case errorCount == 0 && warningCount == 0:
		return "This realization follows standard voice-leading conventions."
	case errorCount == 0:
		return fmt.Sprintf("This realization has %d warning(s) but no hard errors.", warningCount)
	default:
		return fmt.Sprintf("This realization has %d error(s) and %d warning(s) to address.", errorCount, warningCount)
	}
}
