package refdata

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config controls where and how report artifacts are written. It never touches
// the analysis inputs: the reference tables are compiled in, and no environment
// variable changes a number in the report.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Charts  ChartConfig   `mapstructure:"charts"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig selects the export directory and which artifact formats the
// export section produces.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	JSON   bool   `mapstructure:"json"`
	Excel  bool   `mapstructure:"excel"`
	SQLite bool   `mapstructure:"sqlite"`
	PDF    bool   `mapstructure:"pdf"`
}

// ChartConfig holds PNG chart rendering knobs.
type ChartConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	WidthCM  float64 `mapstructure:"width_cm"`
	HeightCM float64 `mapstructure:"height_cm"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads an optional YAML config file on top of defaults. An empty
// path yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.json", true)
	v.SetDefault("output.excel", true)
	v.SetDefault("output.sqlite", false)
	v.SetDefault("output.pdf", false)
	v.SetDefault("charts.enabled", true)
	v.SetDefault("charts.width_cm", 24.0)
	v.SetDefault("charts.height_cm", 14.0)
	v.SetDefault("logging.level", "info")
}

// ValidateConfig rejects settings the renderers cannot work with.
func (c *Config) ValidateConfig() error {
	if c.Output.Dir == "" {
		return NewValidationError("config", "output.dir", "output directory must not be empty")
	}
	if c.Charts.WidthCM <= 0 || c.Charts.HeightCM <= 0 {
		return NewValidationError("config", "charts", "chart dimensions must be positive, got %.1fx%.1f", c.Charts.WidthCM, c.Charts.HeightCM)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return NewValidationError("config", "logging.level", "unknown level %q", c.Logging.Level)
	}
	return nil
}
