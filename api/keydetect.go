package api

import (
	"fmt"
	"strings"

	"harmonizer/key"
	"harmonizer/pitch"
)

// allowedDetectedKeys is the set spec.md §6 restricts auto-detection to.
var allowedDetectedKeys = []struct {
	tonic string
	mode  key.Mode
}{
	{"C", key.Major}, {"G", key.Major}, {"F", key.Major}, {"D", key.Major},
	{"A", key.Major}, {"E", key.Major}, {"B-", key.Major},
	{"A", key.Minor}, {"E", key.Minor}, {"B", key.Minor},
	{"D", key.Minor}, {"F#", key.Minor},
}

// ParseKeyString resolves a transport key string ("C major", "F# minor",
// "Bb major", "auto") into a Key, per spec.md §6. A malformed key
// string falls back silently to C major (the KeyParseFallback taxonomy
// entry of spec.md §7); callers should log the fallback, not surface it.
func ParseKeyString(s string, bassPitches []pitch.Pitch) (key.Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return DetectKey(bassPitches), true
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return key.MustNew("C", key.Major), false
	}

	tonic := strings.ReplaceAll(fields[0], "b", "-")
	var mode key.Mode
	switch strings.ToLower(fields[1]) {
	case "major":
		mode = key.Major
	case "minor":
		mode = key.Minor
	default:
		return key.MustNew("C", key.Major), false
	}

	k, err := key.New(tonic, mode)
	if err != nil {
		return key.MustNew("C", key.Major), false
	}
	return k, true
}

// DetectKey implements the "auto" key-detection fallback chain of
// spec.md §6: score each allowed key by how many bass pitches are
// exactly diatonic to it, falling back to "same first/last pitch
// class -> major on that class", and finally to C major.
func DetectKey(bassPitches []pitch.Pitch) key.Key {
	if len(bassPitches) == 0 {
		return key.MustNew("C", key.Major)
	}

	bestScore := -1
	best := key.MustNew("C", key.Major)
	for _, candidate := range allowedDetectedKeys {
		k := key.MustNew(candidate.tonic, candidate.mode)
		score := 0
		for _, p := range bassPitches {
			if _, exact := k.ScaleDegree(p.PitchClass()); exact {
				score++
			}
		}
		if score > bestScore {
			bestScore, best = score, k
		}
	}
	if bestScore > 0 {
		return best
	}

	first, last := bassPitches[0], bassPitches[len(bassPitches)-1]
	if first.PitchClass() == last.PitchClass() {
		return key.MustNew(fmt.Sprintf("%c", first.Step), key.Major)
	}
	return key.MustNew("C", key.Major)
}
