package holddrag

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "holddrag/config.toml"

// Config holds the tunables of a Board.
type Config struct {
	Gesture GestureConfig `toml:"gesture"`
	Ghost   GhostConfig   `toml:"ghost"`
	Haptics HapticsConfig `toml:"haptics"`
	Log     LogConfig     `toml:"log"`
}

// GestureConfig holds the long-press timing and tap threshold.
type GestureConfig struct {
	LongPressMS  int     `toml:"long_press_ms"` // hold time before a press becomes a drag (default: 300)
	TapThreshold float64 `toml:"tap_threshold"` // max travel in pixels still classified as a tap (default: 8)
}

// GhostConfig controls how the drag proxy lifts off its surface.
type GhostConfig struct {
	Alpha     float64 `toml:"alpha"`      // final opacity, 0..1 (default: 0.85)
	LiftScale float64 `toml:"lift_scale"` // final scale (default: 1.05)
	LiftMS    int     `toml:"lift_ms"`    // lift animation length (default: 120)
}

// HapticsConfig controls the vibration fired when a drag starts.
type HapticsConfig struct {
	Enabled    *bool   `toml:"enabled"`     // default: true
	DurationMS int     `toml:"duration_ms"` // default: 20
	Magnitude  float64 `toml:"magnitude"`   // 0..1 (default: 0.5)
}

// LogConfig sets the log level: debug, info, warn, error.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		Gesture: GestureConfig{
			LongPressMS:  int(DefaultLongPressDelay / time.Millisecond),
			TapThreshold: DefaultTapThreshold,
		},
		Ghost: GhostConfig{
			Alpha:     0.85,
			LiftScale: 1.05,
			LiftMS:    120,
		},
		Haptics: HapticsConfig{
			Enabled:    &enabled,
			DurationMS: 20,
			Magnitude:  0.5,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LongPressDelay returns the long-press duration.
func (c *Config) LongPressDelay() time.Duration {
	return time.Duration(c.Gesture.LongPressMS) * time.Millisecond
}

// HapticsEnabled reports whether the drag-start vibration is on.
func (c *Config) HapticsEnabled() bool {
	return c.Haptics.Enabled == nil || *c.Haptics.Enabled
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Validate reports every out-of-range value in one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Gesture.LongPressMS < 50 || c.Gesture.LongPressMS > 5000 {
		errs = append(errs, fmt.Errorf("gesture.long_press_ms: %d out of range [50, 5000]", c.Gesture.LongPressMS))
	}
	if c.Gesture.TapThreshold <= 0 || c.Gesture.TapThreshold > 100 {
		errs = append(errs, fmt.Errorf("gesture.tap_threshold: %v out of range (0, 100]", c.Gesture.TapThreshold))
	}
	if c.Ghost.Alpha <= 0 || c.Ghost.Alpha > 1 {
		errs = append(errs, fmt.Errorf("ghost.alpha: %v out of range (0, 1]", c.Ghost.Alpha))
	}
	if c.Ghost.LiftScale < 0.5 || c.Ghost.LiftScale > 2 {
		errs = append(errs, fmt.Errorf("ghost.lift_scale: %v out of range [0.5, 2]", c.Ghost.LiftScale))
	}
	if c.Ghost.LiftMS < 0 {
		errs = append(errs, fmt.Errorf("ghost.lift_ms: %d is negative", c.Ghost.LiftMS))
	}
	if c.Haptics.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("haptics.duration_ms: %d is negative", c.Haptics.DurationMS))
	}
	if c.Haptics.Magnitude < 0 || c.Haptics.Magnitude > 1 {
		errs = append(errs, fmt.Errorf("haptics.magnitude: %v out of range [0, 1]", c.Haptics.Magnitude))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %q: %w", c.Log.Level, err))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes TOML over the defaults and validates the result. Keys
// absent from data keep their default; keys present, zero included, are
// taken as written.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (*Config, error) {
	// #nosec G304 - reading a user-selected config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// LoadUserConfig loads holddrag/config.toml from the XDG config
// directories, or returns the defaults when no file exists.
func LoadUserConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// ConfigPath returns the config file in use, or where it would be created.
func ConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}

// Encode renders the config as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
