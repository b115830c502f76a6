package processor

import (
	"fmt"
	"iter"
	"math"
)

// DefaultTicksPerSecond is the game simulation rate.
const DefaultTicksPerSecond = 20

// Rounding selects how a time in ticks is mapped to an integer tick.
type Rounding string

const (
	// RoundHalfAwayFromZero rounds to nearest, with x.5 going up.
	RoundHalfAwayFromZero Rounding = "half_away_from_zero"
	// RoundHalfEven rounds to nearest, with x.5 going to the even neighbor.
	RoundHalfEven Rounding = "half_even"
	// RoundDown truncates.
	RoundDown Rounding = "down"
)

// Validate returns an error for unknown rounding modes.
func (r Rounding) Validate() error {
	switch r {
	case RoundHalfAwayFromZero, RoundHalfEven, RoundDown:
		return nil
	}
	return fmt.Errorf("unknown rounding %q", string(r))
}

// Tick converts an absolute time in seconds to a grid tick, saturating at math.MaxUint32.
func (r Rounding) Tick(seconds, ticksPerSecond float64) uint32 {
	t := seconds * ticksPerSecond
	switch r {
	case RoundHalfEven:
		t = math.RoundToEven(t)
	case RoundDown:
		t = math.Floor(t)
	default:
		t = math.Round(t)
	}
	if t < 0 {
		return 0
	}
	if t > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(t)
}

// Quantize accumulates the stream onto the tick grid, collecting note on events per tick.
func Quantize(events iter.Seq[TimedEvent], ticksPerSecond float64, rounding Rounding) *Song {
	song := NewSong("")
	var time float64
	for ev := range events {
		if ev.Delta != 0 {
			time += ev.Delta
		}
		p, ok := ev.Payload.(NoteOn)
		if !ok {
			continue
		}
		tick := rounding.Tick(time, ticksPerSecond)
		song.Data[tick] = append(song.Data[tick], Note{
			Channel:  p.Channel,
			Note:     p.Key,
			Velocity: p.Velocity,
		})
	}
	song.MaxTick = rounding.Tick(time, ticksPerSecond)
	return song
}
