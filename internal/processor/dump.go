package processor

import (
	"fmt"
	"io"
	"iter"
)

// Dump prints each event of the stream with its absolute time and grid tick.
func Dump(w io.Writer, events iter.Seq[TimedEvent], config *Config) error {
	var time float64
	for ev := range events {
		time += ev.Delta
		tick := config.Rounding.Tick(time, config.TicksPerSecond)
		_, err := fmt.Fprintf(w, "%10.4fs  tick %6d  +%.4fs  %v\n", time, tick, ev.Delta, ev.Payload)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "end: %.4fs, max tick %d\n", time, config.Rounding.Tick(time, config.TicksPerSecond))
	return err
}
