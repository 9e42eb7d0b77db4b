// Package satb implements the voicing DP (C8), the compromise analyzer
// (C9), and the SATB validator (C10) of spec.md §4.5-§4.7.
package satb

import (
	"harmonizer/key"
	"harmonizer/roman"
	"harmonizer/voicing"
)

// ChordCost is C(v), the one-chord term of spec.md §4.5.
func ChordCost(v voicing.Voicing, exp roman.Expansion, k key.Key) int {
	counts := v.PitchClassCounts()
	cost := 0

	if counts[exp.Root] == 0 {
		cost += 500
	}
	if counts[exp.Third] == 0 {
		cost += 300
	}
	if counts[exp.Fifth] == 0 {
		cost += 200
	}

	if exp.Inversion == 0 && counts[exp.Root] == 1 {
		cost += 10
	}

	if counts[k.LeadingTone()] > 1 {
		cost += 100
	}

	return cost
}

// TransitionCost is T(v, v'), the edge term of spec.md §4.5.
func TransitionCost(prev, cur voicing.Voicing, prevExp, curExp roman.Expansion, k key.Key) int {
	p, c := prev.MIDIs(), cur.MIDIs()
	cost := 0

	if overlaps(p, c) {
		cost += 40
	}

	cost += leapCost(p, c)
	cost += parallelsCost(p, c)

	if prevExp.ContainsSeventh {
		if idx, ok := voiceHolding(p, prevExp.Seventh); ok {
			delta := c[idx] - p[idx]
			if !(delta == 0 || delta == -1 || delta == -2) {
				cost += 100
			}
		}
	}

	if leadingToneShouldResolve(prevExp, curExp, k) {
		if idx, ok := voiceHolding(p, k.LeadingTone()); ok {
			delta := c[idx] - p[idx]
			resolved := delta == 1
			if !resolved && (idx == voicing.IdxTenor || idx == voicing.IdxAlto) {
				resolved = delta == -4
			}
			if !resolved {
				cost += 100
			}
		}
	}

	return cost
}

func overlaps(p, c [4]int) bool {
	pb, pt, pa, ps := p[voicing.IdxBass], p[voicing.IdxTenor], p[voicing.IdxAlto], p[voicing.IdxSoprano]
	cb, ct, ca, cs := c[voicing.IdxBass], c[voicing.IdxTenor], c[voicing.IdxAlto], c[voicing.IdxSoprano]
	_ = pb
	_ = cb
	switch {
	case ct > pa:
		return true
	case ca < pt:
		return true
	case ca > ps:
		return true
	case cs < pa:
		return true
	case ct < p[voicing.IdxBass]:
		return true
	}
	return false
}

func leapCost(p, c [4]int) int {
	total := 0.0
	for idx := 0; idx < 4; idx++ {
		d := c[idx] - p[idx]
		if d < 0 {
			d = -d
		}
		df := float64(d)
		switch idx {
		case voicing.IdxSoprano:
			if d == 0 {
				total += 1
			} else {
				total += (df / 3) * (df / 3)
			}
		case voicing.IdxAlto, voicing.IdxTenor:
			total += (df * df) / 3
		case voicing.IdxBass:
			if d != 12 {
				total += (df * df) / 50
			}
		}
	}
	return int(total)
}

func parallelsCost(p, c [4]int) int {
	cost := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			di, dj := c[i]-p[i], c[j]-p[j]
			if di == 0 && dj == 0 {
				continue
			}
			i1, i2 := p[j]-p[i], c[j]-c[i]
			m1, m2 := mod12(i1), mod12(i2)

			if m1 == 7 && m2 == 7 {
				cost += 200
			}
			if m1 == 0 && m2 == 0 && i1 != 0 && i2 != 0 {
				cost += 300
			}
			if i1 == 0 && i2 == 0 {
				cost += 250
			}

			if i == voicing.IdxBass && j == voicing.IdxSoprano {
				sameDirection := di != 0 && dj != 0 && sameSign(di, dj)
				if sameDirection {
					if m2 == 0 || m2 == 7 {
						cost += 50
					} else {
						cost += 2
					}
				}
			}
		}
	}
	return cost
}

// IsParallelPerfect reports whether the transition from p to c contains a
// parallel perfect fifth, octave or unison on voice pair (i, j); used by
// the compromise analyzer and the validator. parallelsCost applies the
// same interval tests to the DP's cost surface (spec.md §8 property 9).
func IsParallelPerfect(p, c [4]int, i, j int) (fifth, octave, unison bool) {
	di, dj := c[i]-p[i], c[j]-p[j]
	if di == 0 && dj == 0 {
		return false, false, false
	}
	i1, i2 := p[j]-p[i], c[j]-c[i]
	m1, m2 := mod12(i1), mod12(i2)
	fifth = m1 == 7 && m2 == 7
	octave = m1 == 0 && m2 == 0 && i1 != 0 && i2 != 0
	unison = i1 == 0 && i2 == 0
	return
}

func voiceHolding(midis [4]int, pc int) (int, bool) {
	for idx, m := range midis {
		if mod12(m) == mod12(pc) {
			return idx, true
		}
	}
	return 0, false
}

func leadingToneShouldResolve(prevExp, curExp roman.Expansion, k key.Key) bool {
	prevDegree := rootDegree(prevExp.Root, k)
	curDegree := rootDegree(curExp.Root, k)
	return (prevDegree == 5 || prevDegree == 7) && (curDegree == 1 || curDegree == 6)
}

// rootDegree identifies which scale degree (1..7) a chord root
// corresponds to, or 0 if it matches none (chromatic root).
func rootDegree(root int, k key.Key) int {
	for d := 1; d <= 6; d++ {
		if k.ScaleDegreePC(d) == root {
			return d
		}
	}
	if k.LeadingTone() == root {
		return 7
	}
	return 0
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}

func sameSign(a, b int) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
