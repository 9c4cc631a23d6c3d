package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"rsrsi-chart/internal/chart"
	"rsrsi-chart/internal/logger"
)

// DefaultPath is used when neither the -config flag nor CONFIG_PATH is set
const DefaultPath = "config.yaml"

var validate = validator.New()

type Config struct {
	Chart  Chart  `yaml:"chart"`
	Render Render `yaml:"render"`
	Viewer Viewer `yaml:"viewer"`
	Log    Log    `yaml:"log"`
}

// Chart selects a mode preset. Every other field, when set, overrides the preset.
type Chart struct {
	Mode        string   `yaml:"mode" default:"trajectory" validate:"oneof=trajectory overview"`
	Title       string   `yaml:"title"`
	RSIKey      string   `yaml:"rsi_key" validate:"omitempty,oneof=rsi rsi_ema"`
	Window      *int     `yaml:"window" validate:"omitempty,gte=0"`
	Padding     *float64 `yaml:"padding" validate:"omitempty,gte=0"`
	ColorPolicy string   `yaml:"color_policy" default:"auto" validate:"oneof=auto palette golden"`
	Arrows      *bool    `yaml:"arrows"`
	Labels      *bool    `yaml:"labels"`
	Legend      *bool    `yaml:"legend"`
	FixedBounds *bool    `yaml:"fixed_bounds"`
}

type Render struct {
	Backend string `yaml:"backend" default:"echarts" validate:"oneof=echarts gonum gochart"`
	Width   int    `yaml:"width" default:"1920" validate:"gt=0"`
	Height  int    `yaml:"height" default:"900" validate:"gt=0"`
	// Output - file to write the chart to instead of serving it
	Output string `yaml:"output"`
	Format string `yaml:"format" default:"png" validate:"oneof=png svg pdf"`
}

type Viewer struct {
	Addr string `yaml:"addr" default:":8081" validate:"required"`
}

type Log struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	Output string `yaml:"output" default:"stderr"`
}

// Path returns the config path: flagValue, then CONFIG_PATH, then DefaultPath
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, applies environment overrides and defaults,
// then validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks field constraints. All violations are reported, one per line.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, errorMessage(fe))
	}
	return errors.New(strings.Join(messages, "\n"))
}

func errorMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s, got %v", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// ChartOptions returns the preset of the configured mode with overrides applied
func (c *Config) ChartOptions() (chart.Options, error) {
	opts, err := chart.ModeOptions(c.Chart.Mode)
	if err != nil {
		return chart.Options{}, err
	}
	if c.Chart.Title != "" {
		opts.Title = c.Chart.Title
	}
	if c.Chart.RSIKey != "" {
		opts.RSIKey = c.Chart.RSIKey
	}
	if c.Chart.Window != nil {
		opts.Window = *c.Chart.Window
	}
	if c.Chart.Padding != nil {
		opts.Padding = *c.Chart.Padding
	}
	if c.Chart.Arrows != nil {
		opts.Arrows = *c.Chart.Arrows
	}
	if c.Chart.Labels != nil {
		opts.Labels = *c.Chart.Labels
	}
	if c.Chart.Legend != nil {
		opts.Legend = *c.Chart.Legend
	}
	if c.Chart.FixedBounds != nil {
		opts.FixedBounds = *c.Chart.FixedBounds
	}
	return opts, nil
}

// Logger returns the logger settings
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.Log.Level, Format: c.Log.Format, Output: c.Log.Output}
}
