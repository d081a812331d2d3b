// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts PDF books into plain-text files annotated with
// [PAGE:n], [CHAPTER:title], and [SECTION:title] markers. Page text comes
// from a pluggable Source so the PDF library can be swapped without
// touching the classification pipeline.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractFile converts the document at sourcePath into annotated text at
// destPath. Every internal failure (unreadable source, decode error, write
// error) is reported on w with the offending path and converted into a
// false result, so a batch run always continues with its remaining
// documents. A document with no extractable text is not a failure; it
// yields an empty output file.
func ExtractFile(src Source, sourcePath, destPath string, w io.Writer) bool {
	fmt.Fprintf(w, "processing: %s\n", sourcePath)

	pages, err := src.Open(sourcePath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", sourcePath, err)
		return false
	}

	lines := Annotate(pages)

	if err := os.WriteFile(destPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", sourcePath, err)
		return false
	}

	fmt.Fprintf(w, "extracted: %s -> %s\n", filepath.Base(sourcePath), filepath.Base(destPath))
	return true
}

// Discover lists the .pdf files directly under dir, in lexical order.
// The scan is non-recursive and the suffix match is case-sensitive.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// OutputName maps a source PDF path to its text filename ("Book.pdf" ->
// "Book.txt").
func OutputName(sourcePath string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return base + ".txt"
}
