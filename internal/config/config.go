package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	View   ViewConfig   `yaml:"view" mapstructure:"view"`
}

// SourceConfig configures where the disclosure table is fetched from.
type SourceConfig struct {
	URL         string `yaml:"url" mapstructure:"url"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	// MaxRetries is the number of extra attempts after a failed HTTP download.
	MaxRetries int    `yaml:"max_retries" mapstructure:"max_retries"`
	Charset    string `yaml:"charset" mapstructure:"charset"`
	TempDir    string `yaml:"temp_dir" mapstructure:"temp_dir"`
	FTPUser    string `yaml:"ftp_user" mapstructure:"ftp_user"`
	FTPPass    string `yaml:"ftp_password" mapstructure:"ftp_password"`
}

// Timeout returns TimeoutSecs as a duration.
func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Port                int      `yaml:"port" mapstructure:"port"`
	CORSOrigins         []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	ShutdownTimeoutSecs int      `yaml:"shutdown_timeout_secs" mapstructure:"shutdown_timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ViewConfig configures the initial selection.
type ViewConfig struct {
	DefaultYear int `yaml:"default_year" mapstructure:"default_year"`
}

// Validation modes.
const (
	ModeServe = "serve"
	ModeCLI   = "cli"
)

// Validate checks the settings required by mode.
func (c *Config) Validate(mode string) error {
	if c.Source.URL == "" {
		return eris.New("config: source.url is required")
	}
	if c.Source.MaxRetries < 0 {
		return eris.Errorf("config: source.max_retries must be >= 0, got %d", c.Source.MaxRetries)
	}
	if c.Source.TimeoutSecs <= 0 {
		return eris.Errorf("config: source.timeout_secs must be > 0, got %d", c.Source.TimeoutSecs)
	}
	if err := model.ValidateYear(c.View.DefaultYear); err != nil {
		return eris.Wrap(err, "config: view.default_year")
	}

	switch mode {
	case ModeCLI:
		return nil
	case ModeServe:
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return eris.Errorf("config: server.port must be > 0 and <= 65535, got %d", c.Server.Port)
		}
		return nil
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}
}

// Load reads configuration from an optional .env file, config.yaml and the
// environment. Environment variables use the PAYGAP_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PAYGAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.url", dataset.DefaultSourceURL)
	v.SetDefault("source.user_agent", "paygap/1.0")
	v.SetDefault("source.timeout_secs", 60)
	v.SetDefault("source.max_retries", 0)
	v.SetDefault("source.charset", "")
	v.SetDefault("source.temp_dir", "")
	v.SetDefault("source.ftp_user", "")
	v.SetDefault("source.ftp_password", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_secs", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("view.default_year", model.DefaultYear)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
