package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	OCR       OCRConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

// OCRConfig holds OCR engine configuration. MinTextLength is the
// stripped text layer length below which OCR runs. When RemoteURL is set
// the fallback calls that HTTP service instead of local Tesseract.
type OCRConfig struct {
	TessdataPrefix string `mapstructure:"tessdata_prefix"`
	Language       string `mapstructure:"language"`
	DPI            int    `mapstructure:"dpi"`
	MinTextLength  int    `mapstructure:"min_text_length"`
	RemoteURL      string `mapstructure:"remote_url"`
}

// RateLimitConfig holds rate limiting configuration for the analyze endpoint
type RateLimitConfig struct {
	AnalyzePerSecond float64 `mapstructure:"analyze_per_second"`
	AnalyzeBurst     int     `mapstructure:"analyze_burst"`
}

// Load loads configuration from config files and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/paystub-analyzer/")

	v.SetEnvPrefix("PAYSTUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_upload_mb", 32)

	// OCR defaults match a stock Tesseract 5 install
	v.SetDefault("ocr.tessdata_prefix", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.dpi", 300)
	v.SetDefault("ocr.min_text_length", 50)
	v.SetDefault("ocr.remote_url", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.analyze_per_second", 1.0)
	v.SetDefault("ratelimit.analyze_burst", 5)
}

// validate checks that the loaded configuration is usable
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.OCR.Language == "" {
		return fmt.Errorf("OCR language is required")
	}

	if config.OCR.DPI <= 0 {
		return fmt.Errorf("OCR dpi must be positive, got: %d", config.OCR.DPI)
	}

	if config.OCR.MinTextLength < 0 {
		return fmt.Errorf("OCR min text length must not be negative, got: %d", config.OCR.MinTextLength)
	}

	if config.RateLimit.AnalyzeBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got: %d", config.RateLimit.AnalyzeBurst)
	}

	return nil
}
