package file

import (
	"errors"
)

var (
	// ErrInputNotFound is returned when the input file cannot be read.
	ErrInputNotFound = errors.New("input not readable")
	// ErrMalformedMIDI is returned when the input is not a usable MIDI file.
	ErrMalformedMIDI = errors.New("malformed MIDI")
	// ErrOutputWrite is returned when the output cannot be written.
	ErrOutputWrite = errors.New("output not writable")
)
