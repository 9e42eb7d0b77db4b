// Package voicing implements the four-voice voicing generator (C7) of
// spec.md §4.4: every admissible SATB voicing of a chord given a fixed
// bass pitch.
package voicing

import (
	"harmonizer/pitch"
	"harmonizer/roman"
)

// Voice index order used throughout the DP (C8) for componentwise costs.
const (
	IdxBass = iota
	IdxTenor
	IdxAlto
	IdxSoprano
)

// voiceRange is an inclusive MIDI range.
type voiceRange struct{ Low, High int }

var (
	sopranoRange = voiceRange{noteMIDI("C4"), noteMIDI("G5")}
	altoRange    = voiceRange{noteMIDI("G3"), noteMIDI("C5")}
	tenorRange   = voiceRange{noteMIDI("C3"), noteMIDI("G4")}
	bassRange    = voiceRange{noteMIDI("E2"), noteMIDI("C4")}
)

func noteMIDI(s string) int {
	p, err := pitch.ParseNote(s)
	if err != nil {
		panic(err)
	}
	return p.MIDI()
}

// InRange reports whether a MIDI pitch lies in voice's declared range.
func InRange(voiceIdx int, midi int) bool {
	r := rangeFor(voiceIdx)
	return midi >= r.Low && midi <= r.High
}

func rangeFor(voiceIdx int) voiceRange {
	switch voiceIdx {
	case IdxSoprano:
		return sopranoRange
	case IdxAlto:
		return altoRange
	case IdxTenor:
		return tenorRange
	default:
		return bassRange
	}
}

// Voicing is a complete four-voice chord realization over a fixed bass.
type Voicing struct {
	Bass, Tenor, Alto, Soprano pitch.Pitch
	Fallback                  bool
}

// MIDIs returns the voicing's MIDI numbers in bass,tenor,alto,soprano order.
func (v Voicing) MIDIs() [4]int {
	return [4]int{v.Bass.MIDI(), v.Tenor.MIDI(), v.Alto.MIDI(), v.Soprano.MIDI()}
}

// PitchClassCounts returns how many times each pitch class (0..11) appears.
func (v Voicing) PitchClassCounts() map[int]int {
	counts := map[int]int{}
	for _, m := range v.MIDIs() {
		pc := ((m % 12) + 12) % 12
		counts[pc]++
	}
	return counts
}

const maxVoicings = 10

// Generate enumerates every admissible voicing of exp over the fixed
// bass pitch, capped at 10, per spec.md §4.4. leadingTonePC is the
// key's leading tone pitch class, which may never be doubled.
func Generate(exp roman.Expansion, bass pitch.Pitch, leadingTonePC int) []Voicing {
	bassPC := bass.PitchClass()

	var out []Voicing
	for _, doubled := range doublingCandidates(exp, leadingTonePC) {
		tones := chordTones(exp, doubled)
		upper := removeOne(tones, bassPC)
		if len(upper) != 3 {
			continue
		}
		for _, perm := range permutations3 {
			roleTones := [3]int{upper[perm[0]], upper[perm[1]], upper[perm[2]]}
			for _, tenorP := range pitchesInRange(roleTones[0], tenorRange) {
				for _, altoP := range pitchesInRange(roleTones[1], altoRange) {
					if altoP.MIDI()-tenorP.MIDI() < 0 || altoP.MIDI()-tenorP.MIDI() > 12 {
						continue
					}
					for _, sopP := range pitchesInRange(roleTones[2], sopranoRange) {
						v := Voicing{Bass: bass, Tenor: tenorP, Alto: altoP, Soprano: sopP}
						if !admissible(v) {
							continue
						}
						out = append(out, v)
						if len(out) >= maxVoicings {
							return out
						}
					}
				}
			}
		}
	}

	if len(out) == 0 {
		return []Voicing{Fallback(exp, bass)}
	}
	return out
}

func admissible(v Voicing) bool {
	b, t, a, s := v.Bass.MIDI(), v.Tenor.MIDI(), v.Alto.MIDI(), v.Soprano.MIDI()
	if !(b < t && t < a && a < s) {
		return false
	}
	if s-a > 12 || a-t > 12 {
		return false
	}
	return true
}

// doublingCandidates returns, in deterministic order, the extra tone
// (beyond root/third/fifth[/seventh]) to double for each voicing
// attempt the generator makes.
func doublingCandidates(exp roman.Expansion, leadingTonePC int) []int {
	if exp.ContainsSeventh {
		return []int{-1} // sentinel: no extra doubling, four distinct tones already
	}
	if exp.Inversion == 2 {
		return []int{exp.Fifth}
	}
	var out []int
	for _, candidate := range []int{exp.Root, exp.Fifth, exp.Third} {
		if candidate == leadingTonePC {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func chordTones(exp roman.Expansion, doubled int) []int {
	if exp.ContainsSeventh {
		return []int{exp.Root, exp.Third, exp.Fifth, exp.Seventh}
	}
	return []int{exp.Root, exp.Third, exp.Fifth, doubled}
}

// removeOne removes a single occurrence of pc from tones and returns the rest.
func removeOne(tones []int, pc int) []int {
	out := make([]int, 0, len(tones)-1)
	removed := false
	for _, t := range tones {
		if !removed && t == pc {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out
}

// permutations3 lists the 6 assignments of 3 multiset slots to
// (tenor, alto, soprano), in a fixed deterministic order.
var permutations3 = [][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// pitchesInRange enumerates, in ascending-octave order, the pitches
// carrying pc whose MIDI number lies within r.
func pitchesInRange(pc int, r voiceRange) []pitch.Pitch {
	var out []pitch.Pitch
	for octave := -1; octave <= 9; octave++ {
		p := pitch.WithPitchClass(pc, octave)
		if m := p.MIDI(); m >= r.Low && m <= r.High {
			out = append(out, p)
		}
	}
	return out
}

// Fallback builds the single degenerate voicing of spec.md §4.4 when no
// admissible voicing survives, flagged so the compromise analyzer (C9)
// can report it.
func Fallback(exp roman.Expansion, bass pitch.Pitch) Voicing {
	tenorP := pitch.WithPitchClass(exp.Third, 4)
	altoP := pitch.WithPitchClass(exp.Fifth, 4)
	sopranoP := pitch.WithPitchClass(exp.Root, 5)
	if tenorP.MIDI() > altoP.MIDI() {
		tenorP, altoP = altoP, tenorP
	}
	return Voicing{Bass: bass, Tenor: tenorP, Alto: altoP, Soprano: sopranoP, Fallback: true}
}
