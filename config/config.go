package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Aashish23092/payslip-analyzer/utils"
	"github.com/Aashish23092/payslip-analyzer/utils/lohnsteuer"
)

type Config struct {
	ServerPort      string `mapstructure:"server_port"`
	MaxFileSize     int64  `mapstructure:"max_file_size"`
	MaxBatchFiles   int    `mapstructure:"max_batch_files"`
	WindowWidth     int    `mapstructure:"window_width"`
	CatalogPath     string `mapstructure:"catalog_path"`
	PageBreakMarker string `mapstructure:"page_break_marker"`
	LogLevel        string `mapstructure:"log_level"`
	GinMode         string `mapstructure:"gin_mode"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		ServerPort:      "8080",
		MaxFileSize:     10 * 1024 * 1024, // 10 MB
		MaxBatchFiles:   20,
		WindowWidth:     lohnsteuer.DefaultWindowWidth,
		CatalogPath:     "",
		PageBreakMarker: utils.DefaultPageBreakMarker,
		LogLevel:        "info",
		GinMode:         "release",
	}
}

// LoadConfig reads defaults, an optional YAML file and PAYSLIP_* environment variables,
// in increasing order of precedence. SERVER_PORT is honoured as well.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("server_port", defaults.ServerPort)
	v.SetDefault("max_file_size", defaults.MaxFileSize)
	v.SetDefault("max_batch_files", defaults.MaxBatchFiles)
	v.SetDefault("window_width", defaults.WindowWidth)
	v.SetDefault("catalog_path", defaults.CatalogPath)
	v.SetDefault("page_break_marker", defaults.PageBreakMarker)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("gin_mode", defaults.GinMode)

	v.SetEnvPrefix("PAYSLIP")
	v.AutomaticEnv()
	if err := v.BindEnv("server_port", "PAYSLIP_SERVER_PORT", "SERVER_PORT"); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.payslip-analyzer")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 {
		return fmt.Errorf("window_width must be positive, got %d", c.WindowWidth)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if c.MaxBatchFiles <= 0 {
		return fmt.Errorf("max_batch_files must be positive, got %d", c.MaxBatchFiles)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
}
