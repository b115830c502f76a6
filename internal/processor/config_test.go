package processor

import (
	"testing"
)

func TestMerge(t *testing.T) {
	no := false
	yes := true
	base := Config{TicksPerSecond: 20, DefaultTempo: 250000, Rounding: RoundHalfAwayFromZero, Format: FormatJSON, Pretty: &yes}

	got := Merge(base, Config{TicksPerSecond: 10, Pretty: &no})
	if got.TicksPerSecond != 10 {
		t.Errorf("got ticks per second %v, want 10", got.TicksPerSecond)
	}
	if got.DefaultTempo != 250000 || got.Rounding != RoundHalfAwayFromZero || got.Format != FormatJSON {
		t.Errorf("unset fields not taken from base: %+v", got)
	}
	if got.Pretty == nil || *got.Pretty {
		t.Errorf("pretty: false did not override")
	}
	if !*base.Pretty {
		t.Errorf("base was modified")
	}

	got = Merge(base, Config{})
	if got.Pretty == nil || !*got.Pretty {
		t.Errorf("unset pretty did not keep base value")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := (&Config{Rounding: RoundHalfEven}).WithDefaults()
	if c.TicksPerSecond != DefaultTicksPerSecond || c.DefaultTempo != DefaultTempo || c.Format != FormatJSON {
		t.Errorf("defaults missing: %+v", c)
	}
	if c.Rounding != RoundHalfEven {
		t.Errorf("got rounding %v, want %v", c.Rounding, RoundHalfEven)
	}
	if c.Pretty != nil {
		t.Errorf("pretty should stay unset")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", *DefaultConfig(), false},
		{"negative rate", Config{TicksPerSecond: -1, DefaultTempo: 1, Rounding: RoundDown, Format: FormatJSON}, true},
		{"zero tempo", Config{TicksPerSecond: 20, Rounding: RoundDown, Format: FormatJSON}, true},
		{"bad rounding", Config{TicksPerSecond: 20, DefaultTempo: 1, Rounding: "ceil", Format: FormatJSON}, true},
		{"bad format", Config{TicksPerSecond: 20, DefaultTempo: 1, Rounding: RoundDown, Format: "xml"}, true},
		{"yaml", Config{TicksPerSecond: 20, DefaultTempo: 1, Rounding: RoundDown, Format: FormatYAML}, false},
	}
	for _, tc := range tests {
		err := tc.config.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: got error %v, want error %v", tc.name, err, tc.wantErr)
		}
	}
}
