package satb

import "fmt"

// AnalyzeCompromises summarizes DP cost spikes and forced parallels
// into structured notes (C9, spec.md §4.6). It never fails: a pure
// summary pass over the chosen realization and the DP's own costs.
func AnalyzeCompromises(realization Realization, marginalCosts []int, total int) []Compromise {
	n := len(realization)
	if n == 0 {
		return nil
	}

	var out []Compromise

	switch {
	case total > 100*n:
		out = append(out, Compromise{
			Type:        "overall_quality",
			Severity:    SeverityHigh,
			Description: "the realization carries a high total voice-leading cost",
			Explanation: fmt.Sprintf("total cost %d exceeds 100 per chord across %d chords", total, n),
		})
	case total > 50*n:
		out = append(out, Compromise{
			Type:        "overall_quality",
			Severity:    SeverityMedium,
			Description: "the realization carries an elevated total voice-leading cost",
			Explanation: fmt.Sprintf("total cost %d exceeds 50 per chord across %d chords", total, n),
		})
	}

	for i, v := range realization {
		if !v.Fallback {
			continue
		}
		loc := i
		out = append(out, Compromise{
			Type:        "fallback_used",
			Severity:    SeverityHigh,
			Location:    &loc,
			Description: fmt.Sprintf("chord %d had no admissible voicing and used the degenerate fallback", i),
			Explanation: "the voicing generator found no admissible four-voice arrangement for this chord over its fixed bass, so the root-third-fifth fallback voicing was used instead",
		})
	}

	for i, m := range marginalCosts {
		loc := i
		switch {
		case m > 100:
			out = append(out, Compromise{
				Type:        "chord_compromise",
				Severity:    SeverityHigh,
				Location:    &loc,
				Description: fmt.Sprintf("chord %d required a costly compromise", i),
				Explanation: fmt.Sprintf("marginal cost %d exceeds 100", m),
			})
		case m > 50:
			out = append(out, Compromise{
				Type:        "chord_compromise",
				Severity:    SeverityMedium,
				Location:    &loc,
				Description: fmt.Sprintf("chord %d required a moderate compromise", i),
				Explanation: fmt.Sprintf("marginal cost %d exceeds 50", m),
			})
		}
	}

	for i := 0; i+1 < n; i++ {
		p, c := realization[i].MIDIs(), realization[i+1].MIDIs()
		for a := 0; a < 4; a++ {
			for b := a + 1; b < 4; b++ {
				fifth, octave, _ := IsParallelPerfect(p, c, a, b)
				if !fifth && !octave {
					continue
				}
				kind := "fifths"
				if octave {
					kind = "octaves"
				}
				loc := i
				out = append(out, Compromise{
					Type:        "forced_parallels",
					Severity:    SeverityHigh,
					Location:    &loc,
					Description: fmt.Sprintf("parallel %s between %s and %s", kind, voiceName(a), voiceName(b)),
					Explanation: fmt.Sprintf("chords %d-%d: %s and %s move in parallel perfect motion", i, i+1, voiceName(a), voiceName(b)),
				})
			}
		}
	}

	return out
}
