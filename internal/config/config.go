package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/netbg/internal/field"
	"github.com/san-kum/netbg/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPalette      = "teal"
	DefaultFPS          = 60
	DefaultLayerOpacity = 0.4
	DefaultCellScale    = 4.0
	DefaultWidth        = 1280
	DefaultHeight       = 720
	DefaultFrames       = 120
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Palette      string         `yaml:"palette"`
	Dark         bool           `yaml:"dark"`
	FPS          int            `yaml:"fps"`
	Seed         int64          `yaml:"seed"`
	LayerOpacity float64        `yaml:"layer_opacity"`
	CellScale    float64        `yaml:"cell_scale"`
	Density      DensityConfig  `yaml:"density"`
	Links        LinkConfig     `yaml:"links"`
	Snapshot     SnapshotConfig `yaml:"snapshot"`
}

type DensityConfig struct {
	AreaPerParticle float64 `yaml:"area_per_particle"`
	MaxParticles    int     `yaml:"max_particles"`
	MaxSpeed        float64 `yaml:"max_speed"`
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
}

type LinkConfig struct {
	Distance        float64 `yaml:"distance"`
	Width           float64 `yaml:"width"`
	PointerDistance float64 `yaml:"pointer_distance"`
	PointerWidth    float64 `yaml:"pointer_width"`
}

// SnapshotConfig sizes offscreen runs.
type SnapshotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Frames int `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette:      DefaultPalette,
		FPS:          DefaultFPS,
		LayerOpacity: DefaultLayerOpacity,
		CellScale:    DefaultCellScale,
		Density: DensityConfig{
			AreaPerParticle: field.DefaultAreaPerParticle,
			MaxParticles:    field.DefaultMaxParticles,
			MaxSpeed:        field.DefaultMaxSpeed,
			MinRadius:       field.DefaultMinRadius,
			MaxRadius:       field.DefaultMaxRadius,
		},
		Links: LinkConfig{
			Distance:        render.DefaultLinkDistance,
			Width:           render.DefaultLinkWidth,
			PointerDistance: render.DefaultPointerDistance,
			PointerWidth:    render.DefaultPointerWidth,
		},
		Snapshot: SnapshotConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Frames: DefaultFrames,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.LayerOpacity < 0 || c.LayerOpacity > 1:
		return fmt.Errorf("%w: layer_opacity must be in [0,1], got %g", ErrInvalidConfig, c.LayerOpacity)
	case c.CellScale <= 0:
		return fmt.Errorf("%w: cell_scale must be positive, got %g", ErrInvalidConfig, c.CellScale)
	case c.Density.AreaPerParticle <= 0:
		return fmt.Errorf("%w: density.area_per_particle must be positive", ErrInvalidConfig)
	case c.Density.MaxParticles < 0:
		return fmt.Errorf("%w: density.max_particles must not be negative", ErrInvalidConfig)
	case c.Density.MaxSpeed < 0:
		return fmt.Errorf("%w: density.max_speed must not be negative", ErrInvalidConfig)
	case c.Density.MinRadius <= 0 || c.Density.MaxRadius < c.Density.MinRadius:
		return fmt.Errorf("%w: density radius range [%g,%g] is empty", ErrInvalidConfig, c.Density.MinRadius, c.Density.MaxRadius)
	case c.Links.Distance <= 0 || c.Links.PointerDistance <= 0:
		return fmt.Errorf("%w: link distances must be positive", ErrInvalidConfig)
	case c.Links.Width <= 0 || c.Links.PointerWidth <= 0:
		return fmt.Errorf("%w: link widths must be positive", ErrInvalidConfig)
	case c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0:
		return fmt.Errorf("%w: snapshot size must be positive", ErrInvalidConfig)
	case c.Snapshot.Frames < 0:
		return fmt.Errorf("%w: snapshot.frames must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) FieldParams() field.Params {
	return field.Params{
		AreaPerParticle: c.Density.AreaPerParticle,
		MaxParticles:    c.Density.MaxParticles,
		MaxSpeed:        c.Density.MaxSpeed,
		MinRadius:       c.Density.MinRadius,
		MaxRadius:       c.Density.MaxRadius,
	}
}

func (c *Config) RenderParams() render.Params {
	return render.Params{
		LinkDistance:    c.Links.Distance,
		LinkWidth:       c.Links.Width,
		PointerDistance: c.Links.PointerDistance,
		PointerWidth:    c.Links.PointerWidth,
	}
}

func (c *Config) Scheme() render.Scheme {
	return render.GetScheme(c.Palette)
}
