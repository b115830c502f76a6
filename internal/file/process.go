package file

import (
	"fmt"
	"log"

	"github.com/shiromc/midiconverter/internal/processor"
)

// Process reads the MIDI file and converts it into a song.
func Process(in, passphrase, title string, config *processor.Config) (*processor.Song, error) {
	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	mid, err := ReadMIDI(in, passphrase)
	if err != nil {
		return nil, err
	}
	log.Printf("Read %v: %d tracks, time format %v.", in, len(mid.Tracks), mid.TimeFormat)
	song, err := processor.Process(mid, title, config)
	if err != nil {
		return nil, fmt.Errorf("%w: could not process %v: %v", ErrMalformedMIDI, in, err)
	}
	return song, nil
}

// Convert reads the MIDI file, converts it and writes the song to out.
func Convert(in, out, passphrase, title string, config *processor.Config) error {
	song, err := Process(in, passphrase, title, config)
	if err != nil {
		return err
	}
	err = WriteSong(out, song, config.Format, Pretty(config))
	if err != nil {
		return err
	}
	log.Printf("Wrote %v.", out)
	return nil
}
