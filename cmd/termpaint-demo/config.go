package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the demo settings
type Config struct {
	Backend  string
	Duration time.Duration
	Interval time.Duration
	LogFile  string `mapstructure:"log_file"`
	Title    string
	Fill     string
}

var backends = []string{"auto", "ansi", "screen"}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"backend":  "backend",
	"duration": "duration",
	"interval": "interval",
	"log-file": "log_file",
	"title":    "title",
}

// Load reads the configuration from defaults, an optional TOML file, the
// environment (prefix TERMPAINT_) and the flags of cmd, in increasing order
// of precedence. An explicitly named file must exist.
func Load(path string, cmd *cobra.Command) (Config, error) {
	v := viper.New()

	v.SetDefault("backend", "auto")
	v.SetDefault("duration", time.Duration(0))
	v.SetDefault("interval", 80*time.Millisecond)
	v.SetDefault("log_file", "")
	v.SetDefault("title", "termpaint")
	v.SetDefault("fill", " ")

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "termpaint"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TERMPAINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	ok := false
	for _, b := range backends {
		if c.Backend == b {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(backends, ", "))
	}
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %v", c.Duration)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if len([]rune(c.Fill)) != 1 {
		return fmt.Errorf("fill must be a single character, got %q", c.Fill)
	}
	return nil
}

// FillGlyph returns the configured fill character
func (c Config) FillGlyph() rune {
	return []rune(c.Fill)[0]
}
