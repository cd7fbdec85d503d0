package wheel

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a declarative wheel description, typically loaded from a
// YAML file:
//
//	items:
//	  - label: Free spin
//	    weight: 2
//	    background_color: "#2a9d8f"
//	  - label: Try again
//	resistance: -60
//	max_speed: 400
//	pointer_angle: 0
//
// Optional scalars are pointers so that an absent field falls back to
// its documented default while an explicitly invalid value is refused.
type Config struct {
	Items        []ItemConfig `yaml:"items"`
	Rotation     *float64     `yaml:"rotation,omitempty"`
	PointerAngle *float64     `yaml:"pointer_angle,omitempty"`
	Resistance   *float64     `yaml:"resistance,omitempty"`
	MaxSpeed     *float64     `yaml:"max_speed,omitempty"`
}

// ItemConfig describes one item in a Config. An absent weight defaults
// to 1; an explicit non-positive weight is an error.
type ItemConfig struct {
	Label           string   `yaml:"label"`
	Weight          *float64 `yaml:"weight,omitempty"`
	Value           string   `yaml:"value,omitempty"`
	BackgroundColor string   `yaml:"background_color,omitempty"`
	LabelColor      string   `yaml:"label_color,omitempty"`
}

// LoadConfig reads and parses a YAML wheel description from a file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wheel: open config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("wheel: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses a YAML wheel description. Unknown fields are
// rejected so that typos in a config file surface as errors instead of
// silently applied defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Wheel constructs a Wheel from the configuration. Additional options
// are applied after those derived from the config, so callers can
// attach observers or override fields:
//
//	cfg, _ := wheel.LoadConfig("wheel.yaml")
//	w, err := cfg.Wheel(wheel.WithOnRest(onRest))
func (c *Config) Wheel(opts ...Option) (*Wheel, error) {
	items := make([]Item, len(c.Items))
	for i, ic := range c.Items {
		item := Item{
			Label:           ic.Label,
			BackgroundColor: ic.BackgroundColor,
			LabelColor:      ic.LabelColor,
		}
		if ic.Value != "" {
			item.Value = ic.Value
		}
		if ic.Weight != nil {
			w := *ic.Weight
			if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: item %d has weight %v", ErrInvalidWeight, i, w)
			}
			item.Weight = w
		}
		items[i] = item
	}

	all := []Option{WithItems(items)}
	if c.Rotation != nil {
		all = append(all, WithRotation(*c.Rotation))
	}
	if c.PointerAngle != nil {
		all = append(all, WithPointerAngle(*c.PointerAngle))
	}
	if c.Resistance != nil {
		all = append(all, WithResistance(*c.Resistance))
	}
	if c.MaxSpeed != nil {
		all = append(all, WithMaxSpeed(*c.MaxSpeed))
	}
	all = append(all, opts...)
	return New(all...)
}
