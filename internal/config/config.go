package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	DJIA    DJIAConfig    `yaml:"djia" mapstructure:"djia"`
	ThirtyW ThirtyWConfig `yaml:"thirtyw" mapstructure:"thirtyw"`
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DJIAConfig configures the Dow Jones opening-value sources.
type DJIAConfig struct {
	Sources     []string `yaml:"sources" mapstructure:"sources"`
	TimeoutSecs int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int      `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSec  float64  `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	UserAgent   string   `yaml:"user_agent" mapstructure:"user_agent"`
}

// ThirtyWConfig configures the 30W boundary policy.
type ThirtyWConfig struct {
	// BoundaryExclusive makes the -30° meridian itself count as east.
	BoundaryExclusive bool `yaml:"boundary_exclusive" mapstructure:"boundary_exclusive"`
}

// ScanConfig configures the nearby-graticule scanner.
type ScanConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOHASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("djia.sources", []string{
		"http://geo.crox.net/djia/",
		"http://www1.geo.crox.net/djia/",
		"http://www2.geo.crox.net/djia/",
		"http://carabiner.peeron.com/xkcd/map/data/",
	})
	v.SetDefault("djia.timeout_secs", 5)
	v.SetDefault("djia.max_retries", 2)
	v.SetDefault("djia.rate_per_sec", 2.0)
	v.SetDefault("djia.user_agent", "geohash-cli/1.0")
	v.SetDefault("thirtyw.boundary_exclusive", false)
	v.SetDefault("scan.concurrency", 4)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

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
