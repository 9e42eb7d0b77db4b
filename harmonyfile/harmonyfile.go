// Package harmonyfile loads a bass-line description from a YAML file
// for the bassline CLI companion, using the StringOrList custom
// UnmarshalYAML idiom of the ako-backing-tracks reference
// (parser.StringOrList) so a bass line can be written either as one
// space-separated string or as a YAML list.
package harmonyfile

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoteList can be unmarshaled from either a single space-separated
// string or a YAML list of note names.
type NoteList []string

// UnmarshalYAML implements the flexible-shape decoding.
func (n *NoteList) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err == nil {
		*n = NoteList(strings.Fields(str))
		return nil
	}

	var list []string
	if err := node.Decode(&list); err == nil {
		*n = NoteList(list)
		return nil
	}

	return nil
}

// Bassline is the on-disk shape of a bassline file: the key (or
// "auto"), the bass notes, and an optional pre-chosen chord
// progression for direct SATB realization.
type Bassline struct {
	Key              string   `yaml:"key"`
	BassNotes        NoteList `yaml:"bass_notes"`
	ChordProgression NoteList `yaml:"chord_progression,omitempty"`
}

// Load reads and parses a bassline YAML file.
func Load(filename string) (*Bassline, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var b Bassline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if b.Key == "" {
		b.Key = "auto"
	}
	return &b, nil
}
