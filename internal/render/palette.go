package render

import (
	"image/color"
	"math"
)

// Palette maps a drawing role and an opacity to a paint color for one
// theme.
type Palette struct {
	Fill       color.NRGBA
	Link       color.NRGBA
	Pointer    color.NRGBA
	Background color.NRGBA
}

func (p Palette) ParticleFill() color.NRGBA { return p.Fill }

func (p Palette) LinkStroke(opacity float64) color.NRGBA {
	return withOpacity(p.Link, opacity)
}

func (p Palette) PointerStroke(opacity float64) color.NRGBA {
	return withOpacity(p.Pointer, opacity)
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(opacity * 255))
	return c
}

// Scheme is a named pair of palettes; the theme flag picks one.
type Scheme struct {
	Name  string
	Dark  Palette
	Light Palette
}

// For returns the palette for the theme flag.
func (s Scheme) For(dark bool) Palette {
	if dark {
		return s.Dark
	}
	return s.Light
}

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

// Available schemes
var (
	SchemeTeal = Scheme{
		Name: "teal",
		Dark: Palette{
			Fill:       rgba(20, 184, 166, 128), // teal-500 at half alpha
			Link:       rgba(20, 184, 166, 255),
			Pointer:    rgba(45, 212, 191, 255), // teal-400
			Background: rgba(15, 23, 42, 255),   // slate-900
		},
		Light: Palette{
			Fill:       rgba(15, 23, 42, 128), // slate-900 at half alpha
			Link:       rgba(100, 116, 139, 255),
			Pointer:    rgba(37, 99, 235, 255), // blue-600
			Background: rgba(248, 250, 252, 255),
		},
	}

	SchemeCyberpunk = Scheme{
		Name: "cyberpunk",
		Dark: Palette{
			Fill:       rgba(255, 0, 255, 128),
			Link:       rgba(0, 255, 255, 255),
			Pointer:    rgba(255, 255, 0, 255),
			Background: rgba(10, 10, 10, 255),
		},
		Light: Palette{
			Fill:       rgba(102, 0, 102, 128),
			Link:       rgba(0, 110, 130, 255),
			Pointer:    rgba(200, 60, 0, 255),
			Background: rgba(245, 240, 250, 255),
		},
	}

	SchemeRetro = Scheme{
		Name: "retro",
		Dark: Palette{
			Fill:       rgba(0, 255, 0, 128), // green phosphor
			Link:       rgba(0, 204, 0, 255),
			Pointer:    rgba(136, 255, 136, 255),
			Background: rgba(0, 17, 0, 255),
		},
		Light: Palette{
			Fill:       rgba(0, 85, 0, 128),
			Link:       rgba(60, 110, 60, 255),
			Pointer:    rgba(170, 120, 0, 255),
			Background: rgba(236, 245, 230, 255),
		},
	}

	SchemeOcean = Scheme{
		Name: "ocean",
		Dark: Palette{
			Fill:       rgba(0, 168, 204, 128),
			Link:       rgba(0, 119, 190, 255),
			Pointer:    rgba(255, 215, 0, 255),
			Background: rgba(0, 26, 51, 255),
		},
		Light: Palette{
			Fill:       rgba(0, 51, 102, 128),
			Link:       rgba(20, 60, 90, 255),
			Pointer:    rgba(204, 102, 0, 255),
			Background: rgba(224, 240, 255, 255),
		},
	}

	SchemeSunset = Scheme{
		Name: "sunset",
		Dark: Palette{
			Fill:       rgba(255, 107, 107, 128), // coral
			Link:       rgba(254, 202, 87, 255),
			Pointer:    rgba(255, 159, 243, 255),
			Background: rgba(45, 27, 46, 255),
		},
		Light: Palette{
			Fill:       rgba(120, 40, 60, 128),
			Link:       rgba(139, 107, 140, 255),
			Pointer:    rgba(220, 70, 40, 255),
			Background: rgba(255, 245, 245, 255),
		},
	}

	// All available schemes
	Schemes = []Scheme{
		SchemeTeal,
		SchemeCyberpunk,
		SchemeRetro,
		SchemeOcean,
		SchemeSunset,
	}
)

// GetScheme returns a scheme by name, falling back to teal.
func GetScheme(name string) Scheme {
	for _, s := range Schemes {
		if s.Name == name {
			return s
		}
	}
	return SchemeTeal
}

// NextScheme returns the scheme after name in Schemes, wrapping around.
func NextScheme(name string) Scheme {
	for i, s := range Schemes {
		if s.Name == name {
			return Schemes[(i+1)%len(Schemes)]
		}
	}
	return SchemeTeal
}

// SchemeNames returns list of available scheme names
func SchemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = s.Name
	}
	return names
}
