// Package roman expands a Roman-numeral chord symbol into its pitch
// classes given a key, per spec.md §3 (Numeral) and §4.1's authoritative
// vocabulary.
package roman

import (
	"fmt"
	"strings"

	"harmonizer/key"
)

// Quality is the triad/seventh-chord quality a numeral expands to.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	DominantSeventh
)

type base struct {
	degree  int
	quality Quality
}

// bases is the fixed vocabulary from spec.md §3: "I, i, ii, ii°, III,
// iii, IV, iv, V, v, V7, vi, VI, vii°".
var bases = map[string]base{
	"I":    {1, Major},
	"i":    {1, Minor},
	"ii":   {2, Minor},
	"ii°":  {2, Diminished},
	"III":  {3, Major},
	"iii":  {3, Minor},
	"IV":   {4, Major},
	"iv":   {4, Minor},
	"V":    {5, Major},
	"v":    {5, Minor},
	"V7":   {5, DominantSeventh},
	"vi":   {6, Minor},
	"VI":   {6, Major},
	"vii°": {7, Diminished},
}

// Expansion is the result of expanding a numeral in a key.
type Expansion struct {
	Numeral         string
	Root            int // pitch class
	Third           int
	Fifth           int
	Seventh         int // only valid if ContainsSeventh
	ContainsSeventh bool
	Inversion       int // 0=root,1=third,2=fifth,3=seventh
}

// PitchClasses returns the chord tone pitch classes (3 or 4 of them).
func (e Expansion) PitchClasses() []int {
	if e.ContainsSeventh {
		return []int{e.Root, e.Third, e.Fifth, e.Seventh}
	}
	return []int{e.Root, e.Third, e.Fifth}
}

// Expand parses numeral (e.g. "V7", "ii°6", "I6/4") and yields its
// expansion in k.
func Expand(numeral string, k key.Key) (Expansion, error) {
	figure, baseToken := splitFigure(numeral)

	b, ok := bases[baseToken]
	if !ok {
		return Expansion{}, fmt.Errorf("roman: unknown numeral %q", numeral)
	}

	var root int
	if b.degree == 7 {
		root = k.LeadingTone()
	} else {
		root = k.ScaleDegreePC(b.degree)
	}

	containsSeventh := b.quality == DominantSeventh || figure == "6/5"

	var third, fifth, seventh int
	switch {
	case b.quality == DominantSeventh || containsSeventh:
		third = mod12(root + 4)
		fifth = mod12(root + 7)
		seventh = mod12(root + 10)
	case b.quality == Major:
		third = mod12(root + 4)
		fifth = mod12(root + 7)
	case b.quality == Minor:
		third = mod12(root + 3)
		fifth = mod12(root + 7)
	case b.quality == Diminished:
		third = mod12(root + 3)
		fifth = mod12(root + 6)
	}

	inversion := 0
	switch figure {
	case "6":
		inversion = 1
	case "6/4":
		inversion = 2
	case "6/5":
		inversion = 3
	}

	return Expansion{
		Numeral:         numeral,
		Root:            root,
		Third:           third,
		Fifth:           fifth,
		Seventh:         seventh,
		ContainsSeventh: containsSeventh,
		Inversion:       inversion,
	}, nil
}

func splitFigure(numeral string) (figure, baseToken string) {
	switch {
	case strings.HasSuffix(numeral, "6/4"):
		return "6/4", strings.TrimSuffix(numeral, "6/4")
	case strings.HasSuffix(numeral, "6/5"):
		return "6/5", strings.TrimSuffix(numeral, "6/5")
	case strings.HasSuffix(numeral, "6"):
		return "6", strings.TrimSuffix(numeral, "6")
	default:
		return "", numeral
	}
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}

// ContainsThirdDegree reports whether numeral's base token is "iii" or
// "III". The progression scorer does not call it; it matches "iii" and
// "III" as substrings itself.
func ContainsThirdDegree(numeral string) bool {
	_, b := splitFigure(numeral)
	return b == "iii" || b == "III"
}
