package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Note is a note on event in the output document.
type Note struct {
	Channel  uint8 `json:"channel" yaml:"channel"`
	Note     uint8 `json:"note" yaml:"note"`
	Velocity uint8 `json:"velocity" yaml:"velocity"`
}

// TickMap maps a tick to the notes starting there, in stream order.
// It always encodes with ticks in increasing order.
type TickMap map[uint32][]Note

// Ticks returns the ticks that have notes, sorted.
func (m TickMap) Ticks() []uint32 {
	return slices.Sorted(maps.Keys(m))
}

func (m TickMap) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, tick := range m.Ticks() {
		if i > 0 {
			b.WriteByte(',')
		}
		notes, err := json.Marshal(m[tick])
		if err != nil {
			return nil, fmt.Errorf("could not encode tick %d: %w", tick, err)
		}
		fmt.Fprintf(&b, "\"%d\":", tick)
		b.Write(notes)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (m TickMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, tick := range m.Ticks() {
		var notes yaml.Node
		err := notes.Encode(m[tick])
		if err != nil {
			return nil, fmt.Errorf("could not encode tick %d: %w", tick, err)
		}
		key := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(uint64(tick), 10),
		}
		node.Content = append(node.Content, key, &notes)
	}
	return node, nil
}

// Song is the output document.
type Song struct {
	MaxTick uint32 `json:"maxtick" yaml:"maxtick"`
	// PitchInt is reserved by the consumer and always 0.
	PitchInt uint32  `json:"pitchint" yaml:"pitchint"`
	Title    string  `json:"title" yaml:"title"`
	Data     TickMap `json:"data" yaml:"data"`
}

// NewSong returns an empty song with the title in NFC form.
func NewSong(title string) *Song {
	return &Song{
		Title: norm.NFC.String(title),
		Data:  TickMap{},
	}
}

// SetTitle sets the title in NFC form.
func (s *Song) SetTitle(title string) {
	s.Title = norm.NFC.String(title)
}

// NumNotes returns the total number of notes.
func (s *Song) NumNotes() int {
	n := 0
	for _, notes := range s.Data {
		n += len(notes)
	}
	return n
}

// Format is an output document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Validate returns an error for unknown formats.
func (f Format) Validate() error {
	switch f {
	case FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q", string(f))
}

// Ext returns the file name extension for the format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yml"
	}
	return ".json"
}

// Encode writes the song to w. pretty only affects JSON.
func (s *Song) Encode(w io.Writer, format Format, pretty bool) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) // Match yq.
		err := enc.Encode(s)
		if err != nil {
			return fmt.Errorf("could not encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if pretty {
			enc.SetIndent("", "  ")
		}
		err := enc.Encode(s)
		if err != nil {
			return fmt.Errorf("could not encode JSON: %w", err)
		}
		return nil
	}
	return format.Validate()
}
