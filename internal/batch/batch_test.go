// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/book-engine/internal/extract"
	"github.com/pdiddy/book-engine/pkg/types"
)

// selectiveSource returns different pages per source path.
type selectiveSource struct {
	pages  map[string][]extract.Page
	errors map[string]error
}

func (s *selectiveSource) Open(path string) ([]extract.Page, error) {
	if err, ok := s.errors[path]; ok {
		return nil, err
	}
	if pages, ok := s.pages[path]; ok {
		return pages, nil
	}
	return nil, errors.New("unexpected path: " + path)
}

func setupBatch(t *testing.T) (inputDir, outputDir string) {
	t.Helper()
	tmpDir := t.TempDir()
	inputDir = filepath.Join(tmpDir, "input")
	outputDir = filepath.Join(tmpDir, "output")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return inputDir, outputDir
}

func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fake pdf bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	inputDir, outputDir := setupBatch(t)
	goodPath := writePDF(t, inputDir, "good.pdf")
	badPath := writePDF(t, inputDir, "zbad.pdf")

	src := &selectiveSource{
		pages: map[string][]extract.Page{
			goodPath: {
				{Number: 1, Text: "Chương 1: Mở đầu\nDòng mô tả."},
				{Number: 2, Text: ""},
				{Number: 3, Text: "Chương 2: Tiếp theo\nThêm nội dung."},
			},
		},
		errors: map[string]error{
			badPath: errors.New("bad xref table"),
		},
	}

	cfg := types.BatchConfig{ExtractConfig: types.ExtractConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}}

	var log bytes.Buffer
	result, err := Run(src, cfg, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Processed != 1 {
		t.Errorf("processed = %d, want 1", result.Processed)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}

	if len(result.Report.Books) != 1 {
		t.Fatalf("report has %d books, want 1", len(result.Report.Books))
	}
	book := result.Report.Books[0]
	if book.BookName != "good" {
		t.Errorf("book name = %q, want good", book.BookName)
	}
	// Page 2 retained nothing, so only two markers exist.
	if book.PageCount != 2 {
		t.Errorf("page count = %d, want 2", book.PageCount)
	}
	if book.ChapterCount != 2 {
		t.Errorf("chapter count = %d, want 2", book.ChapterCount)
	}
	if book.Title == nil || *book.Title != "Chương 1: Mở đầu" {
		t.Errorf("title = %v, want Chương 1: Mở đầu", book.Title)
	}
	if book.Description != "Dòng mô tả. Thêm nội dung...." {
		t.Errorf("description = %q", book.Description)
	}
	if book.FileSize == 0 || book.OutputSize == 0 {
		t.Error("sizes should be populated")
	}

	if !strings.Contains(log.String(), "Batch summary: 1 processed, 1 failed") {
		t.Errorf("log output %q missing summary", log.String())
	}

	// The JSON report is written even when some documents fail.
	data, err := os.ReadFile(filepath.Join(outputDir, ReportFile))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var report types.BatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("parsing report: %v", err)
	}
	if report.TotalBooks != 1 || len(report.Books) != 1 {
		t.Errorf("report totals = %d/%d, want 1/1", report.TotalBooks, len(report.Books))
	}
	if !strings.Contains(string(data), "Chương") {
		t.Error("report should preserve non-ASCII text")
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	inputDir, outputDir := setupBatch(t)

	cfg := types.BatchConfig{ExtractConfig: types.ExtractConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}}

	var log bytes.Buffer
	result, err := Run(&selectiveSource{}, cfg, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Processed != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want zero counts", result)
	}
	if !strings.Contains(log.String(), "no PDF files found") {
		t.Errorf("log output %q missing empty-directory notice", log.String())
	}
	if _, err := os.Stat(filepath.Join(outputDir, ReportFile)); err != nil {
		t.Error("report should be written even for an empty run")
	}
}

func TestRun_MissingInputDir(t *testing.T) {
	cfg := types.BatchConfig{ExtractConfig: types.ExtractConfig{
		InputDir:  filepath.Join(t.TempDir(), "absent"),
		OutputDir: t.TempDir(),
	}}

	if _, err := Run(&selectiveSource{}, cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing input directory")
	}
}

func TestRun_Catalog(t *testing.T) {
	inputDir, outputDir := setupBatch(t)
	path := writePDF(t, inputDir, "sach.pdf")

	src := &selectiveSource{
		pages: map[string][]extract.Page{
			path: {{Number: 1, Text: "Chương 1: Mở đầu\nNội dung."}},
		},
	}

	cfg := types.BatchConfig{
		ExtractConfig: types.ExtractConfig{InputDir: inputDir, OutputDir: outputDir},
		Catalog:       true,
	}

	if _, err := Run(src, cfg, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, CatalogFile))
	if err != nil {
		t.Fatalf("reading catalog: %v", err)
	}
	catalog := string(data)

	for _, want := range []string{
		"# Thư viện Sách Điện tử",
		"Tổng số sách: 1",
		"## sach",
		"**Tiêu đề:** Chương 1: Mở đầu",
		"**Số trang:** 1",
		"**Số chương:** 1",
		"**File gốc:** sach.pdf",
		"---",
	} {
		if !strings.Contains(catalog, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
}
