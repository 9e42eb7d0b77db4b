// Package midiexport renders a chosen SATB realization to a Standard
// MIDI File, one track per voice, grounded on the ako-backing-tracks
// reference's midi.GenerateFromTrack (absolute-tick event collection,
// sorted, then re-expressed as deltas before being added to an smf.Track).
package midiexport

import (
	"bytes"
	"sort"

	"harmonizer/satb"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ticksPerBar is one 4/4 bar at 480 ticks per quarter note; each chord fills one bar.
const ticksPerBar = uint32(1920)

type event struct {
	tick    uint32
	message midi.Message
}

// voiceTrack is grounded on the teacher's program-change-then-notes
// pattern, one instrument per SATB voice.
type voiceTrack struct {
	channel uint8
	program uint8
	pick    func(satb.Realization, int) uint8 // extracts this voice's MIDI note at index i
}

var voiceTracks = []voiceTrack{
	{channel: 0, program: 73, pick: func(r satb.Realization, i int) uint8 { return uint8(r[i].Soprano.MIDI()) }}, // flute
	{channel: 1, program: 40, pick: func(r satb.Realization, i int) uint8 { return uint8(r[i].Alto.MIDI()) }},   // violin
	{channel: 2, program: 42, pick: func(r satb.Realization, i int) uint8 { return uint8(r[i].Tenor.MIDI()) }},  // cello
	{channel: 3, program: 43, pick: func(r satb.Realization, i int) uint8 { return uint8(r[i].Bass.MIDI()) }},   // contrabass
}

// Export renders a realization as a Standard MIDI File at path.
func Export(realization satb.Realization, tempoBPM float64, path string) error {
	s := build(realization, tempoBPM)
	return s.WriteFile(path)
}

// Encode renders a realization as an in-memory Standard MIDI File,
// for the realize_satb?format=midi transport path (SPEC_FULL.md §6).
func Encode(realization satb.Realization, tempoBPM float64) ([]byte, error) {
	s := build(realization, tempoBPM)
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(realization satb.Realization, tempoBPM float64) smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(tempoBPM))
	tempoTrack.Close(0)
	s.Add(tempoTrack)

	for _, vt := range voiceTracks {
		var track smf.Track
		track.Add(0, midi.ProgramChange(vt.channel, vt.program))

		var events []event
		tick := uint32(0)
		for i := range realization {
			note := vt.pick(realization, i)
			events = append(events, event{tick, midi.NoteOn(vt.channel, note, 80)})
			events = append(events, event{tick + ticksPerBar - 10, midi.NoteOff(vt.channel, note)})
			tick += ticksPerBar
		}
		sort.Slice(events, func(i, j int) bool { return events[i].tick < events[j].tick })

		prev := uint32(0)
		for _, evt := range events {
			track.Add(evt.tick-prev, evt.message)
			prev = evt.tick
		}
		track.Close(0)
		s.Add(track)
	}

	return s
}
