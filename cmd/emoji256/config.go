package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

const defaultConfigName = ".emoji256.yaml"

// Config holds CLI defaults. Command-line flags override every field.
type Config struct {
	// Wrap is the number of symbols per output line for encode; 0 disables wrapping.
	Wrap            int  `yaml:"wrap"`
	LegacyUTF8Index bool `yaml:"legacy_utf8_index"`
	MaxDecodedLen   int  `yaml:"max_decoded_len"`
}

func defaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, defaultConfigName), nil
}

// readConfig loads the config at cfgPath, or at $HOME/.emoji256.yaml when cfgPath
// is empty. A missing default file yields the zero Config; a missing explicit
// file is an error.
func readConfig(cfgPath string) (Config, string, error) {
	explicit := cfgPath != ""

	var err error
	if explicit {
		cfgPath, err = homedir.Expand(cfgPath)
	} else {
		cfgPath, err = defaultConfigPath()
	}
	if err != nil {
		return Config{}, "", err
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, "", nil
		}

		return Config{}, "", fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("parse config %s: %w", cfgPath, err)
	}
	if cfg.Wrap < 0 {
		return Config{}, "", fmt.Errorf("config %s: wrap must not be negative", cfgPath)
	}
	if cfg.MaxDecodedLen < 0 {
		return Config{}, "", fmt.Errorf("config %s: max_decoded_len must not be negative", cfgPath)
	}

	return cfg, cfgPath, nil
}
