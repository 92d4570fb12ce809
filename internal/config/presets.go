package config

import "sort"

var Presets = map[string]*Config{
	"demo": {
		Size: 20, MinValue: 1, MaxValue: 100, SpeedMs: 500,
		Pattern: "random", View: "bars", Theme: "classic",
	},
	"tiny": {
		Size: 8, MinValue: 1, MaxValue: 20, SpeedMs: 700,
		Pattern: "random", View: "boxes", Theme: "classic",
	},
	"large": {
		Size: 120, MinValue: 1, MaxValue: 500, SpeedMs: 15,
		Pattern: "random", View: "dots", Theme: "midnight",
	},
	"worst": {
		Size: 30, MinValue: 1, MaxValue: 100, SpeedMs: 120,
		Pattern: "reversed", View: "bars", Theme: "classic",
	},
	"nearly": {
		Size: 40, MinValue: 1, MaxValue: 100, SpeedMs: 80,
		Pattern: "nearly_sorted", View: "bars", Theme: "forest",
	},
	"duplicates": {
		Size: 30, MinValue: 1, MaxValue: 100, SpeedMs: 120,
		Pattern: "few_unique", View: "bars", Theme: "sunset",
	},
	"search": {
		Size: 16, MinValue: 1, MaxValue: 99, SpeedMs: 600,
		Pattern: "sorted", View: "boxes", Theme: "classic",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
