// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is the root of the public OEIS
	DefaultBaseURL = "https://oeis.org"

	// DefaultResults is the number of search results returned when no limit is given
	DefaultResults = 10
)

// Config is the root-level settings struct and is a mix
// of settings available in oeis.yaml, OEIS_* environment
// variables and those available from the command line
type Config struct {
	// BaseURL is the root of the OEIS server, no trailing slash
	BaseURL string `mapstructure:"base-url"`

	// Timeout caps each HTTP round-trip, zero for no limit
	Timeout time.Duration `mapstructure:"timeout"`

	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user-agent"`

	// Results is the default cap on search results
	Results int `mapstructure:"results"`

	// Verbose logs each request as it's made
	Verbose bool `mapstructure:"verbose"`
}

func init() {
	viper.SetDefault("base-url", DefaultBaseURL)
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("user-agent", "goeis")
	viper.SetDefault("results", DefaultResults)
	viper.SetDefault("verbose", false)

	viper.SetConfigName("oeis")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".oeis"))
	}

	viper.SetEnvPrefix("oeis")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// New returns a new Config struct populated by Viper settings
// (defaults, an optional oeis.yaml, the environment) and/or
// command line arguments bound in /cmd
func New() *Config {
	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			log.Fatalf("failed to read config file %s: %v", viper.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	return &c
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "goeis",
		Results:   DefaultResults,
	}
}
