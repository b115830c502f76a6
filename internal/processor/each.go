package processor

import (
	"iter"
)

// MergeTracks interleaves the given tracks into one stream ordered by absolute time.
// Events at the same time are taken from the track with the lowest index first.
// Deltas of the result are relative to the previously emitted event.
func MergeTracks(tracks [][]RawEvent) iter.Seq[RawEvent] {
	return func(yield func(RawEvent) bool) {
		// trackPos is the index of the NEXT event from each track.
		trackPos := make([]int, len(tracks))
		// trackTime is the time of the LAST event from each track.
		trackTime := make([]int64, len(tracks))
		var lastTime int64
		for {
			earliestTrack := -1
			var earliestTime int64
			for i, t := range tracks {
				p := trackPos[i]
				if p >= len(t) {
					// End of track.
					continue
				}
				time := trackTime[i] + int64(t[p].Delta)
				if earliestTrack < 0 || time < earliestTime {
					earliestTime = time
					earliestTrack = i
				}
			}
			if earliestTrack < 0 {
				// End of MIDI.
				return
			}
			ev := tracks[earliestTrack][trackPos[earliestTrack]]
			trackPos[earliestTrack]++
			trackTime[earliestTrack] = earliestTime
			// Never negative: the chosen track's previous event was emitted at or before lastTime.
			ev.Delta = uint32(earliestTime - lastTime)
			lastTime = earliestTime
			if !yield(ev) {
				return
			}
		}
	}
}
