package harmonyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bassline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSpaceSeparatedString(t *testing.T) {
	path := writeTemp(t, "key: C major\nbass_notes: \"C3 F3 G3 C3\"\n")

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "C major", b.Key)
	assert.Equal(t, NoteList{"C3", "F3", "G3", "C3"}, b.BassNotes)
	assert.Empty(t, b.ChordProgression)
}

func TestLoadYAMLList(t *testing.T) {
	path := writeTemp(t, "key: C major\nbass_notes:\n  - C3\n  - F3\n  - G3\n  - C3\nchord_progression:\n  - I\n  - IV\n  - V\n  - I\n")

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NoteList{"C3", "F3", "G3", "C3"}, b.BassNotes)
	assert.Equal(t, NoteList{"I", "IV", "V", "I"}, b.ChordProgression)
}

func TestLoadDefaultsKeyToAuto(t *testing.T) {
	path := writeTemp(t, "bass_notes: \"C3 F3 G3 C3\"\n")

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "auto", b.Key)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
