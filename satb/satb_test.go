package satb

import (
	"strings"
	"testing"

	"harmonizer/key"
	"harmonizer/pitch"
	"harmonizer/voicing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePitches(t *testing.T, names ...string) []pitch.Pitch {
	t.Helper()
	out := make([]pitch.Pitch, len(names))
	for i, n := range names {
		p, err := pitch.ParseNote(n)
		require.NoError(t, err)
		out[i] = p
	}
	return out
}

func TestVoiceProducesOneVoicingPerChord(t *testing.T) {
	k := key.MustNew("C", key.Major)
	progression := []string{"I", "IV", "V", "I"}
	bassPitches := parsePitches(t, "C3", "F3", "G3", "C3")

	realization, marginals, total, err := Voice(progression, bassPitches, k)
	require.NoError(t, err)
	require.Len(t, realization, 4)
	require.Len(t, marginals, 4)
	assert.GreaterOrEqual(t, total, 0)

	sum := 0
	for _, m := range marginals {
		sum += m
	}
	assert.Equal(t, total, sum)

	for i, v := range realization {
		assert.Equal(t, bassPitches[i].MIDI(), v.Bass.MIDI())
	}
}

func TestVoiceRejectsMismatchedLengths(t *testing.T) {
	k := key.MustNew("C", key.Major)
	_, _, _, err := Voice([]string{"I", "V"}, parsePitches(t, "C3"), k)
	require.Error(t, err)
}

func TestVoiceRejectsUnknownNumeral(t *testing.T) {
	k := key.MustNew("C", key.Major)
	_, _, _, err := Voice([]string{"N7"}, parsePitches(t, "C3"), k)
	require.Error(t, err)
}

func TestValidateCleanCadenceHasNoErrors(t *testing.T) {
	k := key.MustNew("C", key.Major)
	progression := []string{"I", "IV", "V", "I"}
	bassPitches := parsePitches(t, "C3", "F3", "G3", "C3")

	realization, marginals, total, err := Voice(progression, bassPitches, k)
	require.NoError(t, err)

	compromises := AnalyzeCompromises(realization, marginals, total)
	report := Validate(realization, progression, k, compromises)

	assert.Empty(t, report.Errors)
	assert.Equal(t, compromises, report.Compromises)
}

func TestValidateDetectsParallelFifths(t *testing.T) {
	k := key.MustNew("C", key.Major)
	progression := []string{"I", "I"}

	v0 := mustVoicing(t, "C3", "C4", "E4", "G4")
	v1 := mustVoicing(t, "D3", "D4", "F4", "A4") // all voices up a step: fifths bass/soprano and tenor/soprano

	realization := Realization{v0, v1}
	compromises := AnalyzeCompromises(realization, []int{0, 0}, 0)
	report := Validate(realization, progression, k, compromises)

	assert.NotEmpty(t, report.Errors)
	foundFifths := false
	for _, e := range report.Errors {
		if strings.HasPrefix(e, "parallel_fifths") {
			foundFifths = true
		}
	}
	assert.True(t, foundFifths)
}

func TestAnalyzeCompromisesEmptyRealization(t *testing.T) {
	assert.Nil(t, AnalyzeCompromises(nil, nil, 0))
}

func TestAnalyzeCompromisesFlagsFallbackVoicing(t *testing.T) {
	v0 := mustVoicing(t, "C3", "C4", "E4", "G4")
	fallback := mustVoicing(t, "D3", "D4", "F4", "A4")
	fallback.Fallback = true

	realization := Realization{v0, fallback}
	compromises := AnalyzeCompromises(realization, []int{0, 0}, 0)

	var found *Compromise
	for i := range compromises {
		if compromises[i].Type == "fallback_used" {
			found = &compromises[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, SeverityHigh, found.Severity)
	require.NotNil(t, found.Location)
	assert.Equal(t, 1, *found.Location)
}

func TestValidateDoesNotWarnTendencyToneOnDeceptiveCadence(t *testing.T) {
	k := key.MustNew("C", key.Major)
	progression := []string{"V", "vi"}

	// Leading tone B held in the soprano, moving down to A instead of up to C:
	// a deceptive V->vi resolution, which spec.md §4.7's literal rule never flags.
	v0 := mustVoicing(t, "G2", "D4", "G4", "B4")
	v1 := mustVoicing(t, "A2", "C4", "E4", "A4")

	realization := Realization{v0, v1}
	compromises := AnalyzeCompromises(realization, []int{0, 0}, 0)
	report := Validate(realization, progression, k, compromises)

	for _, w := range report.Warnings {
		assert.NotContains(t, w, "tendency_tone")
	}
}

func mustVoicing(t *testing.T, bass, tenor, alto, soprano string) voicing.Voicing {
	t.Helper()
	b, err := pitch.ParseNote(bass)
	require.NoError(t, err)
	te, err := pitch.ParseNote(tenor)
	require.NoError(t, err)
	al, err := pitch.ParseNote(alto)
	require.NoError(t, err)
	s, err := pitch.ParseNote(soprano)
	require.NoError(t, err)
	return voicing.Voicing{Bass: b, Tenor: te, Alto: al, Soprano: s}
}
