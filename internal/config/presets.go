package config

import "sort"

// Presets are ready-made view settings for common kinds of input.
var Presets = map[string]*Config{
	// Wide rows suit ROM and firmware dumps where structures align to
	// large power-of-two strides.
	"rom": {
		Width: 512, Offset: 0, DelayMS: 250, Theme: "mono",
	},
	// Narrow rows read like a punched tape, useful for byte-level
	// framing.
	"tape": {
		Width: 64, Offset: 0, DelayMS: 100, Theme: "amber",
	},
	// Many bitmap font and framebuffer formats store pixels lsb-first.
	"lsb": {
		Width: 0, Offset: 0, DelayMS: 250, Reverse: true, Theme: "mono",
	},
	// Fast generations for watching the automaton churn.
	"petri": {
		Width: 0, Offset: 0, DelayMS: 50, Theme: "green",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
