package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr             string        `mapstructure:"addr"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	ReportPath       string        `mapstructure:"report_path" validate:"required"`
	ReportFormat     string        `mapstructure:"report_format"`
	DuplicateAspects []string      `mapstructure:"duplicate_aspects"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("report_format", "json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer config: %w", err)
	}
	if cfg.ReportPath == "" {
		return nil, fmt.Errorf("report_path is required")
	}
	return &cfg, nil
}
