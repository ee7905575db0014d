package reveal

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// HeadingConfig describes one heading on the page.
type HeadingConfig struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// TriggerConfig is the YAML form of a Trigger.
type TriggerConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Config is the page configuration. It is loaded from YAML and then
// overlaid with REVEAL_* environment variables.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	FontPath string  `yaml:"fontPath"`
	FontSize float64 `yaml:"fontSize"`

	// Margin is the left and top inset of the page; Gap is the vertical
	// space between headings.
	Margin float64 `yaml:"margin"`
	Gap    float64 `yaml:"gap"`

	// ScrollStep is the page distance of one mouse wheel notch.
	ScrollStep float64 `yaml:"scrollStep"`

	ReducedMotion bool   `yaml:"reducedMotion" env:"REVEAL_REDUCED_MOTION"`
	Debug         bool   `yaml:"debug"         env:"REVEAL_DEBUG"`
	ShowFPS       bool   `yaml:"showFPS"       env:"REVEAL_SHOW_FPS"`
	ScreenshotDir string `yaml:"screenshotDir" env:"REVEAL_SCREENSHOT_DIR"`
	ScriptPath    string `yaml:"scriptPath"    env:"REVEAL_SCRIPT"`

	Background Color `yaml:"background"`
	Foreground Color `yaml:"foreground"`
	Accent     Color `yaml:"accent"`

	Trigger TriggerConfig `yaml:"trigger"`
	Timing  Timing        `yaml:"timing"`

	Headings []HeadingConfig `yaml:"headings"`
}

// DefaultConfig returns the configuration used for any field a YAML file
// leaves out.
func DefaultConfig() Config {
	return Config{
		Title:         "reveal",
		Width:         960,
		Height:        720,
		FontSize:      64,
		Margin:        48,
		Gap:           480,
		ScrollStep:    60,
		ScreenshotDir: "screenshots",
		Background:    Color{R: 0.06, G: 0.06, B: 0.07, A: 1},
		Foreground:    Color{R: 0.95, G: 0.94, B: 0.9, A: 1},
		Accent:        Color{R: 0.98, G: 0.45, B: 0.25, A: 1},
		Trigger:       TriggerConfig{Start: DefaultTrigger.Start, End: DefaultTrigger.End},
		Timing:        DefaultTiming,
	}
}

// LoadConfig reads a YAML page config from path, validates it and applies
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML page config data on top of DefaultConfig,
// validates it and applies environment overrides.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config YAML: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config env: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	return &cfg, nil
}

// TriggerWindow returns the configured trigger window.
func (c *Config) TriggerWindow() Trigger {
	return Trigger{Start: c.Trigger.Start, End: c.Trigger.End}
}

// validateConfig checks ranges and fills heading names.
func validateConfig(cfg *Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FontSize <= 0 {
		return fmt.Errorf("fontSize must be positive, got %v", cfg.FontSize)
	}
	if cfg.Gap < 0 || cfg.Margin < 0 {
		return fmt.Errorf("margin and gap must be >= 0, got %v and %v", cfg.Margin, cfg.Gap)
	}
	if cfg.ScrollStep <= 0 {
		return fmt.Errorf("scrollStep must be positive, got %v", cfg.ScrollStep)
	}
	if cfg.Trigger.Start < 0 || cfg.Trigger.Start > 1 || cfg.Trigger.End < 0 || cfg.Trigger.End > 1 {
		return fmt.Errorf("trigger start and end must be within [0, 1], got %v and %v", cfg.Trigger.Start, cfg.Trigger.End)
	}

	t := cfg.Timing
	for name, v := range map[string]float32{
		"stagger":       t.Stagger,
		"scrambleFresh": t.ScrambleFresh,
		"scrambleWarm":  t.ScrambleWarm,
		"settle":        t.Settle,
		"floatCycle":    t.FloatCycle,
		"floatPause":    t.FloatPause,
		"snap":          t.Snap,
		"snapStagger":   t.SnapStagger,
		"bootDelay":     t.BootDelay,
	} {
		if v < 0 {
			return fmt.Errorf("timing.%s must be >= 0, got %v", name, v)
		}
	}
	if t.ScrambleMax <= t.ScrambleMin {
		return fmt.Errorf("timing.scrambleMax (%v) must exceed scrambleMin (%v)", t.ScrambleMax, t.ScrambleMin)
	}

	for i := range cfg.Headings {
		if cfg.Headings[i].Name == "" {
			cfg.Headings[i].Name = fmt.Sprintf("heading-%d", i)
		}
	}
	return nil
}
