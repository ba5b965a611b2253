// Package config loads the dragboard YAML configuration
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dragboard/autoscroll"
	"github.com/lixenwraith/dragboard/parameter"
)

// Config holds all configuration for the board and the drag engine
type Config struct {
	Drag       DragConfig       `yaml:"drag"`
	AutoScroll AutoScrollConfig `yaml:"auto_scroll"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Log        LogConfig        `yaml:"log"`
	Audio      AudioConfig      `yaml:"audio"`
	Lists      []ListConfig     `yaml:"lists"`
}

// DragConfig tunes lifting and dropping
type DragConfig struct {
	SloppyThreshold float64       `yaml:"sloppy_threshold"` // cells
	DropDuration    time.Duration `yaml:"drop_duration"`
	FrameInterval   time.Duration `yaml:"frame_interval"`
}

// AutoScrollConfig mirrors autoscroll.Config with YAML names
type AutoScrollConfig struct {
	StartFrom       float64       `yaml:"start_from"`
	MaxSpeedAt      float64       `yaml:"max_speed_at"`
	MaxSpeed        float64       `yaml:"max_speed"`
	AccelerateAt    time.Duration `yaml:"accelerate_at"`
	StopDampeningAt time.Duration `yaml:"stop_dampening_at"`
}

// ViewportConfig bounds window scrolling; zero size follows the terminal
type ViewportConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	MaxScrollX float64 `yaml:"max_scroll_x"`
	MaxScrollY float64 `yaml:"max_scroll_y"`
}

// LogConfig selects log verbosity and destination directory
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// AudioConfig controls drag cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// ListConfig seeds one list of the board
type ListConfig struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Direction string   `yaml:"direction"` // vertical | horizontal
	Items     []string `yaml:"items"`
}

// Default returns Config with compile-time defaults and a three list demo board
func Default() Config {
	return Config{
		Drag: DragConfig{
			SloppyThreshold: parameter.SloppyClickThreshold,
			DropDuration:    parameter.DropAnimationDuration,
			FrameInterval:   parameter.FrameUpdateInterval,
		},
		AutoScroll: AutoScrollConfig{
			StartFrom:       parameter.AutoScrollStartFrom,
			MaxSpeedAt:      parameter.AutoScrollMaxSpeedAt,
			MaxSpeed:        parameter.AutoScrollMaxSpeed,
			AccelerateAt:    parameter.AutoScrollAccelerateAt,
			StopDampeningAt: parameter.AutoScrollStopDampeningAt,
		},
		Log: LogConfig{
			Level: "debug",
			Dir:   "logs",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Lists: []ListConfig{
			{ID: "todo", Title: "To do", Direction: "vertical", Items: []string{"Write parser", "Fix login", "Review docs", "Plan sprint"}},
			{ID: "doing", Title: "Doing", Direction: "vertical", Items: []string{"Refactor cache", "Update deps"}},
			{ID: "done", Title: "Done", Direction: "vertical", Items: []string{"Ship v1"}},
		},
	}
}

// Load loads config from a YAML file
// If the file doesn't exist, returns defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every inconsistent setting
func (c Config) Validate() error {
	var errs []error
	if c.Drag.SloppyThreshold < 0 {
		errs = append(errs, fmt.Errorf("drag.sloppy_threshold %.1f is negative", c.Drag.SloppyThreshold))
	}
	if c.Drag.DropDuration < 0 {
		errs = append(errs, fmt.Errorf("drag.drop_duration %v is negative", c.Drag.DropDuration))
	}
	if err := c.AutoScrollConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("auto_scroll: %w", err))
	}
	if c.Viewport.MaxScrollX < 0 || c.Viewport.MaxScrollY < 0 {
		errs = append(errs, errors.New("viewport max scroll is negative"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f out of range [0, 1]", c.Audio.Volume))
	}

	seen := make(map[string]bool, len(c.Lists))
	for _, l := range c.Lists {
		if l.ID == "" {
			errs = append(errs, errors.New("list without id"))
			continue
		}
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("duplicate list id %q", l.ID))
		}
		seen[l.ID] = true
		switch strings.ToLower(l.Direction) {
		case "", "vertical", "horizontal":
		default:
			errs = append(errs, fmt.Errorf("list %q: unknown direction %q", l.ID, l.Direction))
		}
	}
	return errors.Join(errs...)
}

// AutoScrollConfig converts to the coordinator's tuning
func (c Config) AutoScrollConfig() autoscroll.Config {
	return autoscroll.Config{
		StartFrom:       c.AutoScroll.StartFrom,
		MaxSpeedAt:      c.AutoScroll.MaxSpeedAt,
		MaxSpeed:        c.AutoScroll.MaxSpeed,
		AccelerateAt:    c.AutoScroll.AccelerateAt,
		StopDampeningAt: c.AutoScroll.StopDampeningAt,
	}
}

// SlogLevel parses Level; empty means info
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
