package processor

import (
	"iter"
)

// DefaultTempo is the tempo assumed before the first tempo event, in microseconds per quarter note.
const DefaultTempo = 250000

// ScaleToSeconds converts deltas from MIDI ticks to seconds.
// Each delta is converted at the tempo in effect before its event; a tempo event only affects later deltas.
func ScaleToSeconds(events iter.Seq[RawEvent], ppq uint16, defaultTempo uint32) iter.Seq[TimedEvent] {
	return func(yield func(TimedEvent) bool) {
		tempo := defaultTempo
		for ev := range events {
			seconds := float64(ev.Delta) * float64(tempo) / (float64(ppq) * 1e6)
			if tc, ok := ev.Payload.(TempoChange); ok {
				tempo = tc.MicrosecondsPerQuarter
			}
			if !yield(TimedEvent{Delta: seconds, Payload: ev.Payload}) {
				return
			}
		}
	}
}

// CancelTempoEvents removes tempo events, which ScaleToSeconds already applied.
// Their deltas are added to the next remaining event. If the stream ends with tempo events,
// their time is emitted as an Other event without a message.
func CancelTempoEvents(events iter.Seq[TimedEvent]) iter.Seq[TimedEvent] {
	return func(yield func(TimedEvent) bool) {
		var carry float64
		pending := false
		for ev := range events {
			if _, ok := ev.Payload.(TempoChange); ok {
				carry += ev.Delta
				pending = true
				continue
			}
			ev.Delta += carry
			carry = 0
			pending = false
			if !yield(ev) {
				return
			}
		}
		if pending {
			yield(TimedEvent{Delta: carry, Payload: Other{}})
		}
	}
}
