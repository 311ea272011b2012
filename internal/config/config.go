// Package config loads moodlog settings: built-in defaults, then an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is picked up from the working directory when no --config is given
	DefaultFile = "moodlog.yaml"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// defaults are loaded first so a config file only has to name what it changes.
// Paths are relative to the working directory.
var defaults = []byte(`
database_path: data/emotions.db
emotions_file: emotions.json
log:
  file: data/moodlog.log
  level: info
ui:
  animations: true
`)

// Config holds every setting the application reads
type Config struct {
	DatabasePath string    `koanf:"database_path"`
	EmotionsFile string    `koanf:"emotions_file"`
	Log          LogConfig `koanf:"log"`
	UI           UIConfig  `koanf:"ui"`
}

// LogConfig controls the file logger
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // debug, info, warn, error
}

// UIConfig controls the terminal interface
type UIConfig struct {
	Animations bool `koanf:"animations"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := parse(nil)
	if err != nil {
		// defaults are a constant; failing here is a programming error
		panic(err)
	}
	return cfg
}

// Load builds the configuration from defaults and the YAML file at path.
// An empty path means DefaultFile, which may be absent. An explicitly named
// file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	content, err := readConfigFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return parse(nil)
		}
		return nil, err
	}

	return parse(content)
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func parse(content []byte) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that required settings are present and well-formed
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database_path is required")
	}
	if strings.TrimSpace(c.EmotionsFile) == "" {
		return errors.New("emotions_file is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Log.Level)
	}
	return nil
}
