// Package config loads optional TOML defaults for session setup.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
}

// SessionConfig maps the [session] defaults. Absent fields stay nil and
// the built-in defaults apply.
type SessionConfig struct {
	Mode       *string  `toml:"mode"`       // "study" or "test"
	Difficulty *string  `toml:"difficulty"` // "all", "easy", "medium", "hard"
	TimeLimit  *int     `toml:"time-limit"` // minutes, test mode
	Questions  *int     `toml:"questions"`  // question count, test mode
	Categories []string `toml:"categories"` // preselected categories
}

// Load reads a TOML config from the given path. A missing file is not an
// error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
