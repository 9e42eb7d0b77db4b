// Package key models a diatonic key (tonic + mode) and exposes scale
// degrees, the leading tone, and scale-degree lookup by pitch class.
package key

import (
	"fmt"
	"strings"

	"harmonizer/pitch"
)

// Mode is the key's mode.
type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// majorIntervals and naturalMinorIntervals are semitone offsets from the
// tonic for scale degrees 1..7.
var majorIntervals = [7]int{0, 2, 4, 5, 7, 9, 11}
var naturalMinorIntervals = [7]int{0, 2, 3, 5, 7, 8, 10}

// Key is a tonic pitch class plus a mode.
type Key struct {
	TonicName string
	TonicPC   int
	Mode      Mode
}

// New builds a Key from a tonic note name (octave-less, e.g. "C", "F#",
// "Bb", or the music21-style "B-" flat spelling) and a mode.
func New(tonicName string, mode Mode) (Key, error) {
	p, err := pitch.ParseNote(strings.TrimSpace(tonicName) + "0")
	if err != nil {
		return Key{}, fmt.Errorf("key: bad tonic %q: %w", tonicName, err)
	}
	if mode != Major && mode != Minor {
		return Key{}, fmt.Errorf("key: bad mode %q", mode)
	}
	return Key{TonicName: tonicName, TonicPC: p.PitchClass(), Mode: mode}, nil
}

// MustNew is New but panics on error; used for package-level fixtures/tests.
func MustNew(tonicName string, mode Mode) Key {
	k, err := New(tonicName, mode)
	if err != nil {
		panic(err)
	}
	return k
}

// intervals returns the degree-to-semitone table for this key's mode.
func (k Key) intervals() [7]int {
	if k.Mode == Minor {
		return naturalMinorIntervals
	}
	return majorIntervals
}

// ScaleDegreePC returns the natural (unaltered) pitch class of the given
// scale degree (1..7).
func (k Key) ScaleDegreePC(degree int) int {
	iv := k.intervals()
	return ((k.TonicPC+iv[(degree-1+7)%7])%12 + 12) % 12
}

// ScalePitchClasses returns the seven natural scale degrees in order.
func (k Key) ScalePitchClasses() [7]int {
	var out [7]int
	for d := 1; d <= 7; d++ {
		out[d-1] = k.ScaleDegreePC(d)
	}
	return out
}

// LeadingTone returns the pitch class a major seventh above the tonic.
// In major this equals ScaleDegreePC(7); in minor it is the raised
// (harmonic-minor) seventh used whenever V, V7 or vii° resolve to the
// tonic, per spec.md §3.
func (k Key) LeadingTone() int {
	return ((k.TonicPC+11)%12 + 12) % 12
}

// ScaleDegree looks up the scale degree of a pitch class. exact is true
// when pc matches one of the seven natural degrees or the (possibly
// raised) leading tone; when false, degree is the nearest scale degree
// by circular semitone distance (spec.md §9(d)) and callers that must
// honor §4.1's literal fail mode should not use the returned degree
// directly.
func (k Key) ScaleDegree(pc int) (degree int, exact bool) {
	pc = ((pc % 12) + 12) % 12
	scale := k.ScalePitchClasses()
	for d, spc := range scale {
		if spc == pc {
			return d + 1, true
		}
	}
	if lt := k.LeadingTone(); lt == pc {
		return 7, true
	}

	best, bestDist := 1, 13
	for d, spc := range scale {
		dist := pc - spc
		if dist < 0 {
			dist = -dist
		}
		if dist > 6 {
			dist = 12 - dist
		}
		if dist < bestDist {
			bestDist, best = dist, d+1
		}
	}
	return best, false
}

// TonicNumeral returns "I" for major, "i" for minor.
func (k Key) TonicNumeral() string {
	if k.Mode == Minor {
		return "i"
	}
	return "I"
}

// Name renders the key the way the transport layer reports it, e.g. "C major".
func (k Key) Name() string {
	return fmt.Sprintf("%s %s", k.TonicName, k.Mode)
}
