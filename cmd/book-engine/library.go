// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/book-engine/internal/batch"
	"github.com/pdiddy/book-engine/internal/library"
	"github.com/pdiddy/book-engine/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the library index (index, search, export)",
	Long: `Library manages a local SQLite index built from batch processing
reports. Use subcommands to index a report, search the collection, or
export it.`,
}

// --- index subcommand ---

var libraryIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest a batch report into the library index",
	Long: `Index reads a processing report JSON file, ingests its book records
into a SQLite database with FTS5 indexing, and writes an export file.
Re-indexing a report replaces earlier records for the same books.`,
	RunE: runLibraryIndex,
}

func runLibraryIndex(cmd *cobra.Command, args []string) error {
	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath == "" {
		outputDir := flagOrConfig(cmd, "output", "extract.output_dir")
		reportPath = filepath.Join(outputDir, batch.ReportFile)
	}

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(context.Background(), reportPath, os.Stdout)
	return err
}

// --- search subcommand ---

var librarySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the library index with full-text search",
	Long: `Search runs an FTS5 full-text query over book names, titles, and
descriptions. Without a query it lists the whole collection by name.`,
	RunE: runLibrarySearch,
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	results, err := store.Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.BookRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-40s  %6s  %8s\n", "Book", "Title", "Pages", "Chapters")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range results {
		name := r.BookName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		title := ""
		if r.Title != nil {
			title = *r.Title
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-40s  %6d  %8d\n", name, title, r.PageCount, r.ChapterCount)
	}

	fmt.Fprintf(os.Stdout, "\n%d book(s)\n", len(results))
	return nil
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library index to YAML or JSON",
	RunE:  runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := libraryConfig(cmd)
	store, err := library.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.LibraryDir, "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.LibraryDir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	libraryDir := flagOrConfig(cmd, "library-dir", "library.library_dir")
	if libraryDir == "" {
		libraryDir = "library"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.LibraryConfig{
		LibraryDir: libraryDir,
		MaxResults: maxResults,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	libraryCmd.PersistentFlags().String("library-dir", "library", "base directory for the library index")
	libraryCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	// Index flags.
	libraryIndexCmd.Flags().String("report", "", "path to the processing report (default: <output>/processing_report.json)")
	libraryIndexCmd.Flags().StringP("output", "o", "output", "output directory holding the report")

	// Search flags.
	librarySearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	librarySearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	libraryCmd.AddCommand(libraryIndexCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryExportCmd)

	rootCmd.AddCommand(libraryCmd)
}
