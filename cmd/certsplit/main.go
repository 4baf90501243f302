// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the certsplit CLI, which splits
// multi-page certificate PDFs into one file per recipient.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the certsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "certsplit",
	Short: "Split multi-page certificate PDFs into per-recipient files",
	Long: `certsplit takes a PDF containing one certificate per page and writes each
page as its own file, named after the recipient found on that page.

Recipient names are located with an ordered list of patterns from a
user-editable file (patrones.txt by default), or supplied out-of-band as
a spreadsheet whose rows follow page order. Pages with no resolvable name
get a sequential certificado_NNN identifier.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./certsplit.yaml or ~/.config/certsplit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("certsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "certsplit"))
		}
	}

	viper.SetEnvPrefix("CERTSPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
