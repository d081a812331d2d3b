package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/book-engine/internal/batch"
	"github.com/pdiddy/book-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of PDF books and write a report",
	Long: `Batch extracts every .pdf in the input directory, derives per-book
metadata (page and chapter counts, title guess, description excerpt), and
writes a JSON processing report. With --catalog it also writes a Markdown
catalog of the collection.

The run always attempts every discovered document; the command exits with
code 1 only after the full directory has been processed, if any document
failed.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	src, err := newSource(backend)
	if err != nil {
		return err
	}

	catalog, _ := cmd.Flags().GetBool("catalog")
	cfg := types.BatchConfig{
		ExtractConfig: types.ExtractConfig{
			Backend:   types.ExtractionBackend(backend),
			InputDir:  flagOrConfig(cmd, "input", "extract.input_dir"),
			OutputDir: flagOrConfig(cmd, "output", "extract.output_dir"),
		},
		Catalog: catalog,
	}

	result, err := batch.Run(src, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed extraction", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().StringP("input", "i", "input", "input directory containing PDF files")
	batchCmd.Flags().StringP("output", "o", "output", "output directory for extracted text files and the report")
	batchCmd.Flags().BoolP("catalog", "c", false, "generate a Markdown book catalog after processing")
	batchCmd.Flags().String("backend", "pdf", "extraction backend: pdf or pdftotext")

	rootCmd.AddCommand(batchCmd)
}
