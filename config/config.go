//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads user preferences for txd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/timburks/txd/editor"
)

// Config holds all configuration options for txd.
type Config struct {
	TabWidth     int    `mapstructure:"tab_width"`
	ExpandTabs   bool   `mapstructure:"expand_tabs"` // indent with spaces when a file gives no hint
	ScrollMargin int    `mapstructure:"scroll_margin"`
	LogFile      string `mapstructure:"log_file"`
	Clipboard    bool   `mapstructure:"clipboard"` // enable the + register
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		TabWidth:     editor.DefaultTabWidth,
		ExpandTabs:   false,
		ScrollMargin: editor.DefaultScrollMargin,
		LogFile:      filepath.Join(home, ".txdlog"),
		Clipboard:    true,
	}
}

// Load reads path, or ~/.config/txd/config.yaml when path is empty, and
// then TXD_* environment variables. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("tab_width", defaults.TabWidth)
	v.SetDefault("expand_tabs", defaults.ExpandTabs)
	v.SetDefault("scroll_margin", defaults.ScrollMargin)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("clipboard", defaults.Clipboard)

	v.SetEnvPrefix("txd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "txd"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.TabWidth <= 0 {
		return Config{}, fmt.Errorf("tab_width must be positive, got %d", cfg.TabWidth)
	}
	if cfg.ScrollMargin < 0 {
		return Config{}, fmt.Errorf("scroll_margin must not be negative, got %d", cfg.ScrollMargin)
	}
	return cfg, nil
}

// FallbackIndent is the indentation style for files that give no hint.
func (c Config) FallbackIndent() editor.Indent {
	if c.ExpandTabs {
		return editor.Indent{Width: c.TabWidth}
	}
	return editor.TabIndent
}

// Settings returns the editor preferences carried by the configuration.
func (c Config) Settings() editor.Settings {
	return editor.Settings{TabWidth: c.TabWidth, ScrollMargin: c.ScrollMargin}
}
