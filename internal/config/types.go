package config

import "github.com/rowjay/hour-window/internal/window"

// Config is the root configuration schema.
type Config struct {
	Global  GlobalConfig            `mapstructure:"global"`
	Windows map[string]window.Range `mapstructure:"windows"`
}

type GlobalConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // json or console
}
