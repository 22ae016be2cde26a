package config

import "sort"

var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"print": func(c *Config) {
		c.Scene.Background = "white"
		c.Legend.BgColor = "rgba(255,255,255,1)"
		c.Horizon.Color = "black"
		c.Horizon.Opacity = 0.3
	},
	"dark": func(c *Config) {
		c.Scene.Background = "#1a1a2e"
		c.Legend.BgColor = "rgba(30,30,46,0.8)"
		c.Legend.BorderColor = "White"
		c.Horizon.Color = "black"
		c.Horizon.Opacity = 0.8
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
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
