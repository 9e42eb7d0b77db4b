package satb

import (
	"fmt"

	"harmonizer/key"
	"harmonizer/pitch"
	"harmonizer/roman"
	"harmonizer/voicing"
)

// Realization is an ordered sequence of voicings, one per chord in the progression.
type Realization []voicing.Voicing

// Voice runs the shortest-path DP (C8) of spec.md §4.5 over the
// voicing lattice generated by C7, with the bass line held fixed. It
// returns the chosen realization, the marginal cost of each chord
// position (used by the compromise analyzer, C9), and the total path
// cost.
func Voice(progression []string, bassPitches []pitch.Pitch, k key.Key) (Realization, []int, int, error) {
	n := len(progression)
	if n != len(bassPitches) {
		return nil, nil, 0, fmt.Errorf("satb: progression length %d != bass length %d", n, len(bassPitches))
	}
	if n == 0 {
		return nil, nil, 0, nil
	}

	expansions := make([]roman.Expansion, n)
	for i, numeral := range progression {
		exp, err := roman.Expand(numeral, k)
		if err != nil {
			return nil, nil, 0, err
		}
		expansions[i] = exp
	}

	lattice := make([][]voicing.Voicing, n)
	fallbackFromEmpty := false
	for i := range progression {
		lattice[i] = voicing.Generate(expansions[i], bassPitches[i], k.LeadingTone())
		if len(lattice[i]) == 0 {
			fallbackFromEmpty = true
		}
	}
	if fallbackFromEmpty {
		return degenerateRealization(expansions, bassPitches), marginalsAllFallback(n), highFallbackCost(n), nil
	}

	cost := make([]int, len(lattice[0]))
	for vi, v := range lattice[0] {
		cost[vi] = ChordCost(v, expansions[0], k)
	}
	pred := make([][]int, n)
	pred[0] = make([]int, len(lattice[0]))
	for i := range pred[0] {
		pred[0][i] = -1
	}

	for i := 1; i < n; i++ {
		cur := lattice[i]
		prev := lattice[i-1]
		newCost := make([]int, len(cur))
		newPred := make([]int, len(cur))
		for vi, v := range cur {
			best := -1
			bestCost := 0
			cc := ChordCost(v, expansions[i], k)
			for ui, u := range prev {
				candidate := cost[ui] + TransitionCost(u, v, expansions[i-1], expansions[i], k) + cc
				if best == -1 || candidate < bestCost {
					best, bestCost = ui, candidate
				}
			}
			newCost[vi] = bestCost
			newPred[vi] = best
		}
		cost, pred[i] = newCost, newPred
	}

	bestFinal, bestCost := 0, cost[0]
	for vi, c := range cost {
		if c < bestCost {
			bestFinal, bestCost = vi, c
		}
	}

	chosen := make([]int, n)
	chosen[n-1] = bestFinal
	for i := n - 1; i > 0; i-- {
		chosen[i-1] = pred[i][chosen[i]]
	}

	realization := make(Realization, n)
	for i, idx := range chosen {
		realization[i] = lattice[i][idx]
	}

	marginals := make([]int, n)
	marginals[0] = ChordCost(realization[0], expansions[0], k)
	total := marginals[0]
	for i := 1; i < n; i++ {
		m := TransitionCost(realization[i-1], realization[i], expansions[i-1], expansions[i], k) + ChordCost(realization[i], expansions[i], k)
		marginals[i] = m
		total += m
	}

	return realization, marginals, total, nil
}

// degenerateRealization is emitted when some Vi in the lattice is
// empty (spec.md §4.5); every chord of the progression, including
// those before the first empty stage, gets the degenerate voicing of
// §4.4.
func degenerateRealization(expansions []roman.Expansion, bassPitches []pitch.Pitch) Realization {
	out := make(Realization, len(expansions))
	for i, exp := range expansions {
		out[i] = voicing.Fallback(exp, bassPitches[i])
	}
	return out
}

func marginalsAllFallback(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = 1000
	}
	return m
}

func highFallbackCost(n int) int {
	return 1000 * n
}
