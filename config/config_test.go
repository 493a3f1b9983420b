package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("library", "/tmp/fragments/library.db")
	viper.Set("verbose", true)

	c := New()
	if c.Library != "/tmp/fragments/library.db" {
		t.Errorf("New().Library = %v, want the configured path", c.Library)
	}
	if !c.Verbose {
		t.Error("New().Verbose = false, want true")
	}
}

func TestNew_defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := New()
	if c.Library == "" {
		t.Error("New().Library is empty, want a default library path")
	}
	if c.Verbose {
		t.Error("New().Verbose = true, want false")
	}
}
