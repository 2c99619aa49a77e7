package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "PAYROLL"

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

type Config struct {
	Environment string `mapstructure:"environment" validate:"oneof=development production"`
	NoColor     bool   `mapstructure:"no_color"`
	Log         LogConfig
	Export      ExportConfig
	Metrics     MetricsConfig
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	File   string `mapstructure:"file"`
}

type ExportConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats" validate:"dive,oneof=pdf csv"`
	Key     string   `mapstructure:"key"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("no_color", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("export.dir", "")
	v.SetDefault("export.formats", []string{FormatPDF, FormatCSV})
	v.SetDefault("export.key", "")
	v.SetDefault("metrics.enabled", true)
}

// Load reads defaults, the optional config file and PAYROLL_* environment
// variables from v. Flags must already be bound by the caller.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Export.Formats = normalizeFormats(cfg.Export.Formats)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config %s=%v: must satisfy %s %s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}
	if c.Export.Key != "" && c.Export.Dir == "" {
		return fmt.Errorf("export.key is set but export.dir is empty")
	}
	if c.Environment == "production" && c.Export.Dir != "" && c.Export.Key == "" {
		return fmt.Errorf("export.key must be set in production when export.dir is used")
	}
	return nil
}

func (c Config) ExportEnabled() bool {
	return strings.TrimSpace(c.Export.Dir) != "" && len(c.Export.Formats) > 0
}

// Env values arrive as one comma separated string.
func normalizeFormats(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	return out
}
