package midiexport

import (
	"testing"

	"harmonizer/key"
	"harmonizer/pitch"
	"harmonizer/satb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProducesNonEmptyBytes(t *testing.T) {
	k := key.MustNew("C", key.Major)
	progression := []string{"I", "IV", "V", "I"}
	bassNames := []string{"C3", "F3", "G3", "C3"}
	bassPitches := make([]pitch.Pitch, len(bassNames))
	for i, n := range bassNames {
		p, err := pitch.ParseNote(n)
		require.NoError(t, err)
		bassPitches[i] = p
	}

	realization, _, _, err := satb.Voice(progression, bassPitches, k)
	require.NoError(t, err)

	data, err := Encode(realization, 96)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// Standard MIDI Files begin with the "MThd" chunk header.
	assert.Equal(t, "MThd", string(data[:4]))
}
