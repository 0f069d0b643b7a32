package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultCatalogURL is the OpenSubtitles XML-RPC endpoint.
	DefaultCatalogURL = "http://api.opensubtitles.org/xml-rpc"
	// DefaultUserAgent is the client identifier sent to the catalog on LogIn and as the HTTP User-Agent.
	DefaultUserAgent = "OSTestUserAgentTemp"
	// DefaultLanguage is the subtitle language used when none is requested.
	DefaultLanguage = "en"
)

type Config struct {
	CatalogURL            string `mapstructure:"catalog_url"`
	UserAgent             string `mapstructure:"user_agent"`
	Language              string `mapstructure:"language"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	LogLevel              string `mapstructure:"log_level"`
	LogFile               string `mapstructure:"log_file"`
	SentryDSN             string `mapstructure:"sentry_dsn"`
	Metrics               struct {
		PushgatewayURL string `mapstructure:"pushgateway_url"`
		Job            string `mapstructure:"job"`
	} `mapstructure:"metrics"`
}

var (
	mu           sync.RWMutex
	globalConfig *Config
	logger       zerolog.Logger
	logFile      *lumberjack.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = newConsoleLogger()

	if _, err := Reload(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
}

func newConsoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// Reload reads the configuration again (file, environment and any flags bound into viper)
// and reconfigures the global logger accordingly.
func Reload() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if cfg.LogFile != "" {
		logFile = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		out = zerolog.MultiLevelWriter(out, logFile)
	}

	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", cfg.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
	globalConfig = cfg

	logger.Debug().
		Str("level", level.String()).
		Str("catalog_url", cfg.CatalogURL).
		Str("language", cfg.Language).
		Msg("Configuration loaded successfully")

	return cfg, nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetDefault("catalog_url", DefaultCatalogURL)
	viper.SetDefault("user_agent", DefaultUserAgent)
	viper.SetDefault("language", DefaultLanguage)
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("metrics.job", "subtitler")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values that would otherwise only fail once the catalog is queried.
func (c *Config) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog_url must not be empty")
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if err := ValidateLanguage(c.Language); err != nil {
		return err
	}
	return nil
}

// ValidateLanguage reports whether code is an ISO 639 language code the catalog can tag subtitles with.
func ValidateLanguage(code string) error {
	if _, err := language.ParseBase(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}

func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}

func GetUserAgent() string {
	if cfg := GetConfig(); cfg != nil && cfg.UserAgent != "" {
		return cfg.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
