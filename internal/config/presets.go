package config

import "sort"

// Presets are the canned demonstrations, keyed by object kind then
// preset name.
var Presets = map[string]map[string]*Config{
	"blackhole": {
		"hover": {
			Object: "blackhole", MassSolar: 10, Profile: "hold", Integrator: "rk4",
			Dt: 0.01, Duration: 10.0,
			Approach: ApproachConfig{StartKm: 100},
		},
		"plunge": {
			Object: "blackhole", MassSolar: 10, Profile: "freefall", Integrator: "rk4",
			Dt: 0.005, Duration: 35.0,
			Approach: ApproachConfig{StartKm: 1e5},
			Script: []ScriptCue{
				{At: 25, Do: "trigger"},
				{At: 28, Do: "stop"},
			},
		},
		"grazing": {
			Object: "blackhole", MassSolar: 10, Profile: "linear", Integrator: "rk4",
			Dt: 0.01, Duration: 12.0,
			Approach: ApproachConfig{StartKm: 1000, SpeedKmS: 75, FloorKm: 50},
		},
		"monster": {
			Object: "blackhole", MassSolar: 100, Profile: "hold", Integrator: "rk4",
			Dt: 0.01, Duration: 10.0,
			Approach: ApproachConfig{StartKm: 500},
		},
	},
	"neutronstar": {
		"orbit": {
			Object: "neutronstar", MassSolar: 1.4, Profile: "hold", Integrator: "rk4",
			Dt: 0.01, Duration: 10.0,
			Approach: ApproachConfig{StartKm: 100},
		},
		"infall": {
			Object: "neutronstar", MassSolar: 1.4, Profile: "freefall", Integrator: "leapfrog",
			Dt: 0.005, Duration: 90.0,
			Approach: ApproachConfig{StartKm: 1e5},
			Script: []ScriptCue{
				{At: 75, Do: "trigger"},
				{At: 78, Do: "stop"},
			},
		},
		"flyby": {
			Object: "neutronstar", MassSolar: 2.0, Profile: "linear", Integrator: "euler",
			Dt: 0.01, Duration: 15.0,
			Approach: ApproachConfig{StartKm: 500, SpeedKmS: 30, FloorKm: 20},
		},
	},
}

func GetPreset(object, preset string) *Config {
	objectPresets, ok := Presets[object]
	if !ok {
		return nil
	}
	cfg, ok := objectPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(object string) []string {
	objectPresets, ok := Presets[object]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(objectPresets))
	for name := range objectPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
