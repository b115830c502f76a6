package processor

import (
	"iter"
	"log"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Stream returns the merged event stream of the file with deltas in seconds and tempo events removed.
func Stream(mid *smf.SMF, config *Config) (iter.Seq[TimedEvent], error) {
	ppq, err := Resolution(mid)
	if err != nil {
		return nil, err
	}
	tracks := ReadTracks(mid)
	merged := MergeTracks(tracks)
	timed := ScaleToSeconds(merged, ppq, config.DefaultTempo)
	return CancelTempoEvents(timed), nil
}

// Process converts the MIDI file into a song with the given title.
func Process(mid *smf.SMF, title string, config *Config) (*Song, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	events, err := Stream(mid, config)
	if err != nil {
		return nil, err
	}
	song := Quantize(events, config.TicksPerSecond, config.Rounding)
	song.SetTitle(title)
	log.Printf("Converted %d tracks: %d notes on %d ticks, max tick %d.", len(mid.Tracks), song.NumNotes(), len(song.Data), song.MaxTick)
	return song, nil
}
