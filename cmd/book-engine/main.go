// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the book-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/book-engine/internal/extract"
	"github.com/pdiddy/book-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the book-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "book-engine",
	Short: "Convert PDF books into annotated text and a searchable catalog",
	Long: `book-engine converts PDF books into plain-text files annotated with
page, chapter, and section markers, then aggregates per-book metadata into
a processing report, a Markdown catalog, and a searchable library index.

Each stage is a subcommand: extract converts documents, batch processes a
whole directory and writes the report, and library indexes the report into
SQLite for full-text search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./book-engine.yaml or ~/.config/book-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("book-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "book-engine"))
		}
	}

	viper.SetEnvPrefix("BOOK_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig returns the string flag value, falling back to the config
// file or environment when the flag was not set on the command line.
func flagOrConfig(cmd *cobra.Command, name, key string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// newSource builds the extraction backend selected by the --backend flag.
func newSource(backend string) (extract.Source, error) {
	switch types.ExtractionBackend(backend) {
	case types.BackendPDF, "":
		return extract.PDFSource{}, nil
	case types.BackendPdftotext:
		return extract.PdftotextSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported backend %q: use pdf or pdftotext", backend)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
