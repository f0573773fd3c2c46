// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads pwstrength settings from defaults, a YAML file,
// PWSTRENGTH_* environment variables and command-line flags, in increasing
// order of precedence. Configuration never holds a password.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName  = "pwstrength"
	fileName = appName + ".yaml"
)

// Config is the full set of persisted settings.
type Config struct {
	Language string  `mapstructure:"language" yaml:"language"`
	Display  Display `mapstructure:"display" yaml:"display"`
	Log      Log     `mapstructure:"log" yaml:"log"`
}

// Display controls how results and the password are shown.
type Display struct {
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
	// Echo makes the CLI prompt read the password visibly, even on a terminal.
	Echo bool `mapstructure:"echo" yaml:"echo"`
	// Masked is the initial mask state of the form's password field.
	Masked bool `mapstructure:"masked" yaml:"masked"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default key/value pairs for Config.
func Defaults() map[string]any {
	return map[string]any{
		"language":         "en",
		"display.no_color": false,
		"display.echo":     false,
		"display.masked":   true,
		"log.level":        "warn",
	}
}

// DefaultConfig returns a Config holding only the values from Defaults,
// untouched by files, environment or flags.
func DefaultConfig() (Config, error) {
	var c Config
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding default config: %w", err)
	}
	return c, nil
}

// flagAliases maps command-line flag names to config keys where they differ.
var flagAliases = map[string]string{
	"no-color":  "display.no_color",
	"echo":      "display.echo",
	"log-level": "log.level",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), appName)
		default: // Linux, macOS, etc.
			configDir = filepath.Join("/etc", appName)
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, fileName), nil
}

// LoadConfig builds a T from defaults, the first config file found, the
// environment and the flags of cmd. It returns the path of the config file
// that was read, or "" when none was found. A missing file is not an error;
// a missing explicit file is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	// 1. Defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. File search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil && *explicitPath != "" {
		if _, err := os.Stat(*explicitPath); err != nil {
			return c, "", fmt.Errorf("config file %s: %w", *explicitPath, err)
		}
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 3. Primary config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("reading config: %w", err)
		}
	}

	// 4. Environment
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
		for flag, key := range flagAliases {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, "", err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decoding config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
