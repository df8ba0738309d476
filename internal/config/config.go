// Package config loads CLI settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bitkitcore/internal/validation"
)

const (
	fileName  = "bitkit-lnurl"
	envPrefix = "bitkit_lnurl"
)

// Config is the resolved runtime configuration.
type Config struct {
	Home      string        `mapstructure:"home" yaml:"home" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
	Proxy     string        `mapstructure:"proxy" yaml:"proxy,omitempty" validate:"omitempty,url"`
	PlainHTTP bool          `mapstructure:"plain_http" yaml:"plain_http"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent,omitempty"`
	Listen    string        `mapstructure:"listen" yaml:"listen" validate:"hostname_port"`
}

// Defaults returns the built-in settings keyed like the config file.
func Defaults() map[string]any {
	home := ".bitkit-lnurl"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".bitkit-lnurl")
	}
	return map[string]any{
		"home":       home,
		"timeout":    30 * time.Second,
		"proxy":      "",
		"plain_http": false,
		"log_level":  "", // empty defers to LOG_LEVEL
		"user_agent": "",
		"listen":     "127.0.0.1:8080",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, fileName, fileName+".yaml"), nil
}

// Load resolves the configuration. file, when non-empty, replaces the
// search of the user config dir and the working directory. Flags named
// like a key with dashes instead of underscores are bound to that key.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	var c Config
	v := viper.New()

	defaults := Defaults()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		if path, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(path))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := defaults[key]; ok && bindErr == nil {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := validation.Struct(c); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// WriteFile writes c as YAML to path, or to DefaultPath when path is empty,
// and returns the path written.
func WriteFile(c Config, path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
