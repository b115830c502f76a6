package processor

import (
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Payload is what an event carries. The set of payloads is closed: NoteOn, TempoChange or Other.
type Payload interface {
	isPayload()
}

// NoteOn is a note on message. Velocity zero is kept as is.
type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

// TempoChange sets the tempo in microseconds per quarter note.
type TempoChange struct {
	MicrosecondsPerQuarter uint32
}

// Other is any message the converter does not interpret.
// Message may be nil for synthetic events that only carry time.
type Other struct {
	Message smf.Message
}

func (NoteOn) isPayload()      {}
func (TempoChange) isPayload() {}
func (Other) isPayload()       {}

func (p NoteOn) String() string {
	return fmt.Sprintf("NoteOn ch=%d key=%d vel=%d", p.Channel, p.Key, p.Velocity)
}

func (p TempoChange) String() string {
	return fmt.Sprintf("Tempo %dus/quarter", p.MicrosecondsPerQuarter)
}

func (p Other) String() string {
	if p.Message == nil {
		return "Other"
	}
	return fmt.Sprintf("Other %v", p.Message)
}

// RawEvent is a track event with its delta in MIDI ticks.
type RawEvent struct {
	Delta   uint32
	Payload Payload
}

// TimedEvent is a stream event with its delta in seconds.
type TimedEvent struct {
	Delta   float64
	Payload Payload
}

// payloadOf classifies a message.
func payloadOf(msg smf.Message) Payload {
	var ch, key, vel uint8
	if msg.GetNoteOn(&ch, &key, &vel) {
		return NoteOn{Channel: ch, Key: key, Velocity: vel}
	}
	var bpm float64
	if msg.GetMetaTempo(&bpm) && bpm > 0 {
		// The library reports BPM; the file stores an integer, so this is exact after rounding.
		return TempoChange{MicrosecondsPerQuarter: uint32(math.Round(60000000 / bpm))}
	}
	return Other{Message: msg}
}

// ReadTrack converts one SMF track. Reading stops at the end of track event, whose delta is not counted.
func ReadTrack(t smf.Track) []RawEvent {
	events := make([]RawEvent, 0, len(t))
	for _, ev := range t {
		if ev.Message.Is(smf.MetaEndOfTrackMsg) {
			break
		}
		events = append(events, RawEvent{
			Delta:   ev.Delta,
			Payload: payloadOf(ev.Message),
		})
	}
	return events
}

// ReadTracks converts all tracks of a MIDI file.
func ReadTracks(mid *smf.SMF) [][]RawEvent {
	tracks := make([][]RawEvent, len(mid.Tracks))
	for i, t := range mid.Tracks {
		tracks[i] = ReadTrack(t)
	}
	return tracks
}

// Resolution returns the ticks per quarter note of the file.
func Resolution(mid *smf.SMF) (uint16, error) {
	ticks, ok := mid.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, fmt.Errorf("unsupported time format %v", mid.TimeFormat)
	}
	// Resolution() reports 960 for zero, so check the raw value.
	if ticks == 0 {
		return 0, fmt.Errorf("invalid resolution of zero ticks per quarter note")
	}
	return ticks.Resolution(), nil
}
