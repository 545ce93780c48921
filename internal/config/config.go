package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the CLI reads, e.g.
// PWNBOARD_URI.
const EnvPrefix = "PWNBOARD"

// Config holds the CLI configuration loaded from flags, environment
// variables and an optional .env file.
type Config struct {
	URI       string        `mapstructure:"uri"`
	LogLevel  string        `mapstructure:"log_level"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Load resolves the configuration. Precedence is flag, then environment
// (including values loaded from envPath), then defaults. A missing envPath
// file is not an error.
func Load(envPath string, flags *pflag.FlagSet) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	v := viper.New()

	v.SetDefault("uri", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("user_agent", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"uri":        "uri",
			"log_level":  "log-level",
			"timeout":    "timeout",
			"user_agent": "user-agent",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("pwnboard URI must be set (--uri or %s_URI)", EnvPrefix)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s (must be positive)", c.Timeout)
	}

	return nil
}
