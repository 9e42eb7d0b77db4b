package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMIDI   int
		wantErr    bool
	}{
		{name: "C default octave", input: "C", wantMIDI: Pitch{Step: 'C', Octave: DefaultOctave}.MIDI()},
		{name: "explicit octave", input: "C4", wantMIDI: 60},
		{name: "sharp", input: "F#4", wantMIDI: 66},
		{name: "flat letter b", input: "Bb3", wantMIDI: 58},
		{name: "flat dash spelling", input: "B-3", wantMIDI: 58},
		{name: "lowercase step", input: "c4", wantMIDI: 60},
		{name: "bad step", input: "H4", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseNote(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIDI, p.MIDI())
		})
	}
}

func TestPitchClass(t *testing.T) {
	p, err := ParseNote("C4")
	require.NoError(t, err)
	assert.Equal(t, 0, p.PitchClass())

	p, err = ParseNote("B3")
	require.NoError(t, err)
	assert.Equal(t, 11, p.PitchClass())
}

func TestWithPitchClassRoundTrips(t *testing.T) {
	for pc := 0; pc < 12; pc++ {
		p := WithPitchClass(pc, 4)
		assert.Equal(t, pc, p.PitchClass())
	}
}

func TestBetween(t *testing.T) {
	c4, _ := ParseNote("C4")
	g4, _ := ParseNote("G4")
	iv := Between(c4, g4)
	assert.True(t, iv.IsPerfectFifth())
	assert.Equal(t, 7, iv.DirectedSemitones)

	c5, _ := ParseNote("C5")
	iv = Between(c4, c5)
	assert.True(t, iv.IsPerfectOctave())

	iv = Between(c4, c4)
	assert.True(t, iv.IsPerfectUnison())
}

func TestEqual(t *testing.T) {
	a, _ := ParseNote("C#4")
	b, _ := ParseNote("Db4")
	assert.True(t, a.Equal(b))
}
