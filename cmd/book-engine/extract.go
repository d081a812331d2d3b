package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/book-engine/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract annotated text from PDF books",
	Long: `Extract converts PDF books into plain-text files with [PAGE:n],
[CHAPTER:title], and [SECTION:title] markers. With --file it processes a
single document; otherwise it processes every .pdf in the input directory.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	src, err := newSource(backend)
	if err != nil {
		return err
	}

	outputDir := flagOrConfig(cmd, "output", "extract.output_dir")

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("file not found: %s", file)
		}
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		destPath := filepath.Join(outputDir, extract.OutputName(file))
		if !extract.ExtractFile(src, file, destPath, os.Stdout) {
			return fmt.Errorf("failed to process %s", file)
		}
		return nil
	}

	inputDir := flagOrConfig(cmd, "input", "extract.input_dir")
	paths, err := extract.Discover(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("no PDF files found in %s\n", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	processed, failed := 0, 0
	for _, sourcePath := range paths {
		destPath := filepath.Join(outputDir, extract.OutputName(sourcePath))
		if extract.ExtractFile(src, sourcePath, destPath, os.Stdout) {
			processed++
		} else {
			failed++
		}
	}

	fmt.Printf("\n%d extracted, %d failed\n", processed, failed)
	return nil
}

func init() {
	extractCmd.Flags().StringP("file", "f", "", "process a single PDF file")
	extractCmd.Flags().StringP("input", "i", "input", "input directory containing PDF files")
	extractCmd.Flags().StringP("output", "o", "output", "output directory for extracted text files")
	extractCmd.Flags().String("backend", "pdf", "extraction backend: pdf or pdftotext")

	rootCmd.AddCommand(extractCmd)
}
