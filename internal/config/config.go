package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"dipgauge/internal/logging"
	"dipgauge/internal/tank"
)

// Config materialises application configuration.
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logging logging.Config `mapstructure:"logging"`
	Gauge   GaugeConfig    `mapstructure:"gauge"`
	History HistoryConfig  `mapstructure:"history"`
	Display DisplayConfig  `mapstructure:"display"`
	Export  ExportConfig   `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Station string `mapstructure:"station"`
}

// GaugeConfig selects the tank used when no --tank flag is given.
type GaugeConfig struct {
	DefaultTank tank.Type `mapstructure:"default_tank"`
}

// HistoryConfig bounds the session ledger.
type HistoryConfig struct {
	Limit int `mapstructure:"limit"`
}

// DisplayConfig controls how volumes are printed.
type DisplayConfig struct {
	Locale string `mapstructure:"locale"`
	Color  bool   `mapstructure:"color"`
}

// ExportConfig sets curve export behaviour.
type ExportConfig struct {
	StepCM float64 `mapstructure:"step_cm"`
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DIPGAUGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dipgauge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dipgauge")
	v.SetDefault("app.station", "Posto Gulf de Manilha")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("gauge.default_tank", string(tank.Tank30K))

	v.SetDefault("history.limit", 10)

	v.SetDefault("display.locale", "pt-BR")
	v.SetDefault("display.color", true)

	v.SetDefault("export.step_cm", 1.0)
	v.SetDefault("export.width", 1280)
	v.SetDefault("export.height", 720)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			tankTypeHook(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// tankTypeHook lets config files use the same aliases as --tank ("15k", "30000").
func tankTypeHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(tank.Type(""))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		s, ok := data.(string)
		if !ok || from.Kind() != reflect.String || to != target {
			return data, nil
		}
		return tank.ParseType(s)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if _, err := tank.Get(c.Gauge.DefaultTank); err != nil {
		return fmt.Errorf("gauge.default_tank: %w", err)
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("history.limit must be greater than zero")
	}
	if _, err := language.Parse(c.Display.Locale); err != nil {
		return fmt.Errorf("display.locale %q: %w", c.Display.Locale, err)
	}
	if c.Export.StepCM <= 0 {
		return fmt.Errorf("export.step_cm must be greater than zero")
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export.width and export.height must be greater than zero")
	}
	return nil
}

// DefaultTank returns gauge.default_tank.
func (c *Config) DefaultTank() tank.Type {
	return c.Gauge.DefaultTank
}

// ResolveTank returns either the CLI override or the configured default.
func (c *Config) ResolveTank(override string) (tank.Type, error) {
	if override != "" {
		return tank.ParseType(override)
	}
	return c.DefaultTank(), nil
}

// ResolveStep returns either the CLI override or the configured export step.
func (c *Config) ResolveStep(override float64) float64 {
	if override > 0 {
		return override
	}
	return c.Export.StepCM
}
