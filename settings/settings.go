// Package settings loads the overlay's YAML settings: embedded defaults with
// an optional on-disk override, plus a watcher for hot reload.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/gridcursor/targeting"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Pointer backends.
const (
	BackendAuto = "auto"
	BackendX11  = "x11"
	BackendLog  = "log"
)

type Settings struct {
	Grid     GridSpec     `yaml:"grid"`
	Fine     FineSpec     `yaml:"fine"`
	Movement MovementSpec `yaml:"movement"`
	Window   WindowSpec   `yaml:"window"`
	Status   StatusSpec   `yaml:"status"`
	Pointer  PointerSpec  `yaml:"pointer"`

	// Path is the override file the settings were read from, if any.
	Path string `yaml:"-"`
	// ModTime is the override file's modification time when it was read.
	ModTime time.Time `yaml:"-"`
}

type GridSpec struct {
	CellSize  float64    `yaml:"cell_size"`
	LineWidth float32    `yaml:"line_width"`
	LineColor *YAMLColor `yaml:"line_color"`
	Label     LabelSpec  `yaml:"label"`
}

type FineSpec struct {
	LineWidth float32    `yaml:"line_width"`
	LineColor *YAMLColor `yaml:"line_color"`
	Label     LabelSpec  `yaml:"label"`
}

// LabelSpec sizes label text relative to the cell height.
type LabelSpec struct {
	Scale        float64    `yaml:"scale"`
	MinSize      float64    `yaml:"min_size"`
	MaxSize      float64    `yaml:"max_size"`
	Color        *YAMLColor `yaml:"color"`
	ShadowColor  *YAMLColor `yaml:"shadow_color"`
	ShadowOffset float64    `yaml:"shadow_offset"`
}

type MovementSpec struct {
	Step           float64 `yaml:"step"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
}

type WindowSpec struct {
	Title        string `yaml:"title"`
	Fullscreen   bool   `yaml:"fullscreen"`
	HyprlandSize int    `yaml:"hyprland_size"`
}

type StatusSpec struct {
	Enabled    bool       `yaml:"enabled"`
	Background *YAMLColor `yaml:"background"`
	TextColor  *YAMLColor `yaml:"text_color"`
}

type PointerSpec struct {
	Backend string `yaml:"backend"`
}

// Load parses the embedded defaults and applies the override at path on top.
// Fields the override leaves out keep their default values.
func Load(path string) (*Settings, error) {
	defaults, err := Defaults()
	if err != nil {
		return nil, fmt.Errorf("settings: read defaults: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(defaults, &s); err != nil {
		return nil, fmt.Errorf("settings: unmarshal defaults: %w", err)
	}

	data, ok, err := ReadOverride(path)
	if err != nil {
		return nil, fmt.Errorf("settings: load %s: %w", path, err)
	}
	if ok {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("settings: unmarshal %s: %w", path, err)
		}
		s.Path = path
		if mt, ok := ModTime(path); ok {
			s.ModTime = mt
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %s: %w", describe(path, ok), err)
	}
	return &s, nil
}

func describe(path string, override bool) string {
	if override {
		return path
	}
	return "defaults"
}

// Validate rejects values the overlay cannot work with.
func (s *Settings) Validate() error {
	var errs []error
	if s.Grid.CellSize < 8 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be at least 8, got %v", s.Grid.CellSize))
	}
	if s.Grid.LineWidth < 0 || s.Fine.LineWidth < 0 {
		errs = append(errs, errors.New("line_width must not be negative"))
	}
	errs = append(errs, s.Grid.Label.validate("grid.label"), s.Fine.Label.validate("fine.label"))
	if s.Movement.Step <= 0 {
		errs = append(errs, fmt.Errorf("movement.step must be positive, got %v", s.Movement.Step))
	}
	if s.Movement.FastMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("movement.fast_multiplier must be positive, got %v", s.Movement.FastMultiplier))
	}
	switch s.Pointer.Backend {
	case BackendAuto, BackendX11, BackendLog:
	default:
		errs = append(errs, fmt.Errorf("pointer.backend must be one of auto, x11, log, got %q", s.Pointer.Backend))
	}
	return errors.Join(errs...)
}

func (l LabelSpec) validate(name string) error {
	if l.Scale <= 0 {
		return fmt.Errorf("%s.scale must be positive", name)
	}
	if l.MinSize <= 0 || l.MaxSize < l.MinSize {
		return fmt.Errorf("%s: need 0 < min_size <= max_size, got %v..%v", name, l.MinSize, l.MaxSize)
	}
	return nil
}

// TargetingOptions maps the settings onto the targeting machine's tuning.
func (s *Settings) TargetingOptions() targeting.Options {
	return targeting.Options{
		CellSize:       s.Grid.CellSize,
		MoveStep:       s.Movement.Step,
		FastMultiplier: s.Movement.FastMultiplier,
	}
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG color name.
type YAMLColor struct {
	color.Color
}

// Or returns c's color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
