// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// path to the local fragment library
	Library string `mapstructure:"library"`

	// whether to log verbosely
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (either from the local settings.yaml) and/or command line arguments
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	if c.Library == "" {
		c.Library = defaultLibrary()
	}

	return &c
}

// defaultLibrary is the library path used when none is configured:
// ~/.unichrom/library.db, falling back to the working directory when the
// home directory is unknown
func defaultLibrary() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "library.db"
	}
	return filepath.Join(home, ".unichrom", "library.db")
}
