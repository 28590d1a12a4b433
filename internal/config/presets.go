package config

// Presets holds named overrides applied on top of the defaults.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"sparse": func(c *Config) {
		c.Density.AreaPerParticle = 40000
		c.Density.MaxParticles = 40
		c.Links.Distance = 220
	},
	"dense": func(c *Config) {
		c.Density.AreaPerParticle = 6000
		c.Density.MaxParticles = 250
		c.Links.Distance = 110
	},
	"calm": func(c *Config) {
		c.Density.MaxSpeed = 0.08
		c.FPS = 30
	},
	"night": func(c *Config) {
		c.Dark = true
		c.Palette = "ocean"
		c.LayerOpacity = 0.6
	},
	"neon": func(c *Config) {
		c.Dark = true
		c.Palette = "cyberpunk"
		c.Links.Width = 1.5
		c.Links.PointerWidth = 2
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

// Apply applies the named preset to cfg and reports whether it exists.
func Apply(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
