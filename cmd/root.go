// Package cmd is for command line interactions with the unichrom application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settingsFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "unichrom",
	Short: `Reconstruct a chromosome from the set of fragments it was uniquely split into.
Fragments glue together where one overlaps another by more than half its length`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "path to a settings file <YAML>")

	// the library path can come from settings.yaml or the command line
	rootCmd.PersistentFlags().String("library", "", "path to the fragment library <SQLite>")
	viper.BindPFlag("library", rootCmd.PersistentFlags().Lookup("library"))
}

// initSettings reads the settings file, if there is one, into viper
func initSettings() {
	if settingsFile != "" {
		viper.SetConfigFile(settingsFile)
	} else {
		viper.SetConfigName("settings")
		viper.AddConfigPath(".")
	}

	viper.ReadInConfig() // settings file is optional
}
