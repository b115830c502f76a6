package processor

import (
	"testing"
)

func note(key uint8) NoteOn {
	return NoteOn{Channel: 0, Key: key, Velocity: 100}
}

func collectKeys(t *testing.T, events []RawEvent) ([]uint8, []uint32) {
	t.Helper()
	var keys []uint8
	var deltas []uint32
	for _, ev := range events {
		n, ok := ev.Payload.(NoteOn)
		if !ok {
			t.Fatalf("unexpected payload %v", ev.Payload)
		}
		keys = append(keys, n.Key)
		deltas = append(deltas, ev.Delta)
	}
	return keys, deltas
}

func TestMergeTracks(t *testing.T) {
	tests := []struct {
		name       string
		tracks     [][]RawEvent
		wantKeys   []uint8
		wantDeltas []uint32
	}{
		{
			name: "interleaved",
			tracks: [][]RawEvent{
				{{0, note(1)}, {10, note(3)}, {10, note(5)}},
				{{5, note(2)}, {10, note(4)}},
			},
			wantKeys:   []uint8{1, 2, 3, 4, 5},
			wantDeltas: []uint32{0, 5, 5, 5, 5},
		},
		{
			name: "ties by track index",
			tracks: [][]RawEvent{
				{{10, note(2)}},
				{{10, note(3)}},
				{{0, note(1)}, {10, note(4)}},
			},
			wantKeys:   []uint8{1, 2, 3, 4},
			wantDeltas: []uint32{0, 10, 0, 0},
		},
		{
			name: "empty track",
			tracks: [][]RawEvent{
				{},
				{{7, note(1)}, {0, note(2)}},
			},
			wantKeys:   []uint8{1, 2},
			wantDeltas: []uint32{7, 0},
		},
		{
			name:   "no tracks",
			tracks: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []RawEvent
			for ev := range MergeTracks(tc.tracks) {
				got = append(got, ev)
			}
			keys, deltas := collectKeys(t, got)
			if len(keys) != len(tc.wantKeys) {
				t.Fatalf("got %d events, want %d", len(keys), len(tc.wantKeys))
			}
			for i := range keys {
				if keys[i] != tc.wantKeys[i] || deltas[i] != tc.wantDeltas[i] {
					t.Errorf("event %d: got key %d delta %d, want key %d delta %d", i, keys[i], deltas[i], tc.wantKeys[i], tc.wantDeltas[i])
				}
			}
		})
	}
}

func TestMergeTracksNonDecreasing(t *testing.T) {
	tracks := [][]RawEvent{
		{{3, note(0)}, {1, note(0)}, {4, note(0)}, {1, note(0)}, {5, note(0)}},
		{{9, note(1)}, {2, note(1)}, {6, note(1)}},
		{{5, note(2)}, {3, note(2)}, {5, note(2)}, {8, note(2)}},
	}
	var abs, total uint32
	var n int
	for ev := range MergeTracks(tracks) {
		// A backwards step would wrap around.
		if ev.Delta > 1<<16 {
			t.Fatalf("event %d goes back in time: delta %d", n, ev.Delta)
		}
		abs += ev.Delta
		n++
		total = abs
	}
	if n != 12 {
		t.Errorf("got %d events, want 12", n)
	}
	// The last event is at the maximum track length.
	if total != 21 {
		t.Errorf("got end time %d, want 21", total)
	}
}

func TestMergeTracksStop(t *testing.T) {
	tracks := [][]RawEvent{
		{{0, note(1)}, {1, note(2)}},
		{{0, note(3)}},
	}
	n := 0
	for range MergeTracks(tracks) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d events, want 1", n)
	}
}
