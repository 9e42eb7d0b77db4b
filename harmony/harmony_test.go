package harmony

import (
	"testing"

	"harmonizer/key"
	"harmonizer/pitch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesForDegreeNonExactIsTonicOnly(t *testing.T) {
	out := CandidatesForDegree(3, false, key.Major, 1, 4)
	assert.Equal(t, []string{"I"}, out)

	out = CandidatesForDegree(3, false, key.Minor, 1, 4)
	assert.Equal(t, []string{"i"}, out)
}

func TestCandidatesForDegreeFirstPosition(t *testing.T) {
	out := CandidatesForDegree(1, true, key.Major, 0, 4)
	assert.Equal(t, []string{"I"}, out)

	out = CandidatesForDegree(5, true, key.Major, 0, 4)
	assert.Equal(t, []string{"V", "V7"}, out)
}

func TestCandidatesForDegreeLastPosition(t *testing.T) {
	out := CandidatesForDegree(5, true, key.Major, 3, 4)
	assert.Equal(t, []string{"V7"}, out)

	out = CandidatesForDegree(1, true, key.Major, 3, 4)
	assert.Equal(t, []string{"I"}, out)
}

func TestCandidatesForDegreeInteriorTableLookup(t *testing.T) {
	out := CandidatesForDegree(4, true, key.Major, 1, 4)
	assert.Equal(t, []string{"IV", "ii6", "I6/4"}, out)
}

func TestEnumerateRespectsCombinationCap(t *testing.T) {
	sets := make([][]string, 8)
	for i := range sets {
		sets[i] = []string{"I", "ii", "IV", "V"}
	}
	out := Enumerate(sets)
	assert.LessOrEqual(t, len(out), 100)
	assert.NotEmpty(t, out)
}

func TestEnumerateEmptyInput(t *testing.T) {
	assert.Nil(t, Enumerate(nil))
}

func TestScoreRewardsAuthenticCadence(t *testing.T) {
	score, style := Score([]string{"I", "IV", "V", "I"})
	assert.Greater(t, score, 100)
	assert.Equal(t, "Classical", style)
}

func TestScorePenalizesThirdDegree(t *testing.T) {
	withThird, _ := Score([]string{"I", "iii", "IV", "I"})
	without, _ := Score([]string{"I", "ii", "IV", "I"})
	assert.Less(t, withThird, without)
}

func TestScoreDetectsJazzStyle(t *testing.T) {
	_, style := Score([]string{"ii", "V7", "I"})
	assert.Equal(t, "Jazz/Extended", style)
}

func TestScoreDetectsPopularStyle(t *testing.T) {
	_, style := Score([]string{"I", "V", "vi", "IV"})
	assert.Equal(t, "Popular", style)
}

func TestScoreDoesNotDetectPopularStyleForMinorModeVIAndIv(t *testing.T) {
	_, style := Score([]string{"i", "VI", "iv", "V"})
	assert.NotEqual(t, "Popular", style)
}

func TestAnalyzeBasslineReturnsRankedTopK(t *testing.T) {
	k := key.MustNew("C", key.Major)
	notes := []string{"C3", "F3", "G3", "C3"}
	bassPitches := make([]pitch.Pitch, len(notes))
	for i, n := range notes {
		p, err := pitch.ParseNote(n)
		require.NoError(t, err)
		bassPitches[i] = p
	}

	scored := AnalyzeBassline(bassPitches, k)
	require.NotEmpty(t, scored)
	assert.LessOrEqual(t, len(scored), TopK)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestDescribeMentionsKeyAndStyle(t *testing.T) {
	k := key.MustNew("C", key.Major)
	desc := Describe([]string{"I", "IV", "V", "I"}, k)
	assert.Contains(t, desc, "C major")
}
