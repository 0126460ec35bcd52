package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/depeter/dragsheet/internal/physics"
	"github.com/depeter/dragsheet/internal/sheet"
)

const (
	appName  = "dragsheet"
	fileName = "config.toml"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Sheet    SheetConfig   `toml:"sheet"`
	Physics  PhysicsConfig `toml:"physics"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

// SheetConfig sizes are fractions of the window height.
type SheetConfig struct {
	MinSize                float64   `toml:"min_size"`
	MaxSize                float64   `toml:"max_size"`
	InitialSize            float64   `toml:"initial_size"`
	Snap                   bool      `toml:"snap"`
	SnapSizes              []float64 `toml:"snap_sizes"`
	SnapDurationMS         int       `toml:"snap_duration_ms"`
	ShouldCloseOnMinExtent bool      `toml:"should_close_on_min_extent"`
	// ExpandToContent opens the sheet wrapped around its rows.
	ExpandToContent bool `toml:"expand_to_content"`
}

type PhysicsConfig struct {
	DevicePixelRatio float64 `toml:"device_pixel_ratio"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Rows       int  `toml:"rows"`
	// AnimationCurve and AnimationMS shape the expand and collapse keys.
	AnimationCurve string `toml:"animation_curve"`
	AnimationMS    int    `toml:"animation_ms"`
}

type KeybindConfig struct {
	Expand     string `toml:"expand"`
	Collapse   string `toml:"collapse"`
	Reset      string `toml:"reset"`
	ToggleSnap string `toml:"toggle_snap"`
	Debug      string `toml:"debug"`
}

func DefaultConfig() *Config {
	sc := sheet.DefaultConfig()
	return &Config{
		Sheet: SheetConfig{
			MinSize:                sc.MinSize,
			MaxSize:                sc.MaxSize,
			InitialSize:            sc.InitialSize,
			Snap:                   true,
			ShouldCloseOnMinExtent: sc.ShouldCloseOnMinExtent,
		},
		Physics: PhysicsConfig{
			DevicePixelRatio: 1,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      540,
			Height:     960,
			Rows:       40,

			AnimationCurve: "fast_out_slow_in",
			AnimationMS:    300,
		},
		Keybinds: KeybindConfig{
			Expand:     "E",
			Collapse:   "C",
			Reset:      "R",
			ToggleSnap: "S",
			Debug:      "F12",
		},
	}
}

// ToSheet converts the [sheet] section to the sheet package's config.
func (c SheetConfig) ToSheet() sheet.Config {
	return sheet.Config{
		MinSize:                c.MinSize,
		MaxSize:                c.MaxSize,
		InitialSize:            c.InitialSize,
		Snap:                   c.Snap,
		SnapSizes:              append([]float64(nil), c.SnapSizes...),
		SnapAnimationDuration:  time.Duration(c.SnapDurationMS) * time.Millisecond,
		ShouldCloseOnMinExtent: c.ShouldCloseOnMinExtent,
	}
}

func (c *Config) Validate() error {
	if err := c.Sheet.ToSheet().Validate(); err != nil {
		return fmt.Errorf("[sheet]: %w", err)
	}
	if dpr := c.Physics.DevicePixelRatio; dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		return fmt.Errorf("%w: [physics] device_pixel_ratio must be positive, got %v", ErrInvalid, c.Physics.DevicePixelRatio)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: [ui] window size %dx%d", ErrInvalid, c.UI.Width, c.UI.Height)
	}
	if c.UI.Rows < 0 {
		return fmt.Errorf("%w: [ui] rows must not be negative", ErrInvalid)
	}
	if _, ok := physics.CurveByName(c.UI.AnimationCurve); !ok {
		return fmt.Errorf("%w: [ui] unknown animation_curve %q", ErrInvalid, c.UI.AnimationCurve)
	}
	if c.UI.AnimationMS <= 0 {
		return fmt.Errorf("%w: [ui] animation_ms must be positive", ErrInvalid)
	}
	return nil
}

// Animation returns the curve and duration for keyboard-driven moves.
func (c UIConfig) Animation() (physics.Curve, time.Duration) {
	curve, ok := physics.CurveByName(c.AnimationCurve)
	if !ok {
		curve = physics.FastOutSlowIn
	}
	return curve, time.Duration(c.AnimationMS) * time.Millisecond
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), fileName)
}

// Load reads the config file over the defaults. A missing file is not an
// error.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := xdg.ConfigFile(filepath.Join(appName, fileName))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
