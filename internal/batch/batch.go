// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates extraction of every PDF in a directory and
// aggregates per-book metadata into a report and an optional catalog.
package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/book-engine/internal/extract"
	"github.com/pdiddy/book-engine/pkg/types"
)

const (
	// ReportFile is the JSON report written after every batch run.
	ReportFile = "processing_report.json"
	// CatalogFile is the optional human-readable Markdown catalog.
	CatalogFile = "book_catalog.md"
)

// Result summarizes one batch run.
type Result struct {
	Processed int
	Failed    int
	Report    types.BatchReport
}

// HasFailures reports whether any document failed extraction.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run extracts every .pdf directly under cfg.InputDir into cfg.OutputDir,
// one document at a time, printing per-file status to w. Failures never
// abort the run; each one is counted and the remaining documents are still
// attempted. After the last document the JSON report is written, replacing
// any report from a prior run.
func Run(src extract.Source, cfg types.BatchConfig, w io.Writer) (Result, error) {
	paths, err := extract.Discover(cfg.InputDir)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	result := Result{Report: types.BatchReport{
		ProcessedAt: time.Now().Format(time.RFC3339),
		Books:       []types.BookRecord{},
	}}

	if len(paths) == 0 {
		fmt.Fprintf(w, "no PDF files found in %s\n", cfg.InputDir)
		return result, writeReport(cfg.OutputDir, result.Report)
	}

	fmt.Fprintf(w, "found %d PDF file(s) in %s\n", len(paths), cfg.InputDir)

	for _, sourcePath := range paths {
		destPath := filepath.Join(cfg.OutputDir, extract.OutputName(sourcePath))

		if !extract.ExtractFile(src, sourcePath, destPath, w) {
			result.Failed++
			continue
		}

		record := buildRecord(sourcePath, destPath)
		result.Report.Books = append(result.Report.Books, record)
		result.Processed++

		fmt.Fprintf(w, "  pages: %d, chapters: %d\n", record.PageCount, record.ChapterCount)
	}

	result.Report.TotalBooks = len(result.Report.Books)

	if err := writeReport(cfg.OutputDir, result.Report); err != nil {
		return result, err
	}

	if cfg.Catalog {
		if err := WriteCatalog(cfg.OutputDir, result.Report); err != nil {
			return result, err
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d processed, %d failed\n", result.Processed, result.Failed)
	return result, nil
}

// buildRecord derives book metadata by re-scanning the produced text file.
// Scan problems fall back to the defaults the report format expects (one
// implicit page, no title, empty description) rather than failing the book.
func buildRecord(sourcePath, destPath string) types.BookRecord {
	record := types.BookRecord{
		BookName:     strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath)),
		OriginalFile: sourcePath,
		OutputFile:   destPath,
		PageCount:    1,
		ProcessedAt:  time.Now().Format(time.RFC3339),
	}

	if data, err := os.ReadFile(destPath); err == nil {
		content := string(data)
		record.PageCount = countPages(content)
		record.Title = firstChapterTitle(content)
		record.ChapterCount = countChapters(content)
		record.Description = describe(content)
	}

	if info, err := os.Stat(sourcePath); err == nil {
		record.FileSize = info.Size()
	}
	if info, err := os.Stat(destPath); err == nil {
		record.OutputSize = info.Size()
	}

	return record
}

// writeReport serializes the report with two-space indentation, preserving
// non-ASCII text.
func writeReport(outputDir string, report types.BatchReport) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(filepath.Join(outputDir, ReportFile), buf.Bytes(), 0o644)
}

// WriteCatalog renders the report as a Markdown catalog, one section per
// book with Vietnamese field labels.
func WriteCatalog(outputDir string, report types.BatchReport) error {
	var b strings.Builder

	b.WriteString("# Thư viện Sách Điện tử\n\n")
	fmt.Fprintf(&b, "Tổng số sách: %d\n", len(report.Books))
	fmt.Fprintf(&b, "Cập nhật lần cuối: %s\n\n", time.Now().Format("02/01/2006 15:04"))

	for _, book := range report.Books {
		fmt.Fprintf(&b, "## %s\n", book.BookName)
		if book.Title != nil {
			fmt.Fprintf(&b, "**Tiêu đề:** %s\n\n", *book.Title)
		}
		fmt.Fprintf(&b, "**Số trang:** %d\n\n", book.PageCount)
		fmt.Fprintf(&b, "**Số chương:** %d\n\n", book.ChapterCount)
		if book.Description != "" {
			fmt.Fprintf(&b, "**Mô tả:** %s\n\n", book.Description)
		}
		fmt.Fprintf(&b, "**File gốc:** %s\n\n", filepath.Base(book.OriginalFile))
		b.WriteString("---\n\n")
	}

	return os.WriteFile(filepath.Join(outputDir, CatalogFile), []byte(b.String()), 0o644)
}
