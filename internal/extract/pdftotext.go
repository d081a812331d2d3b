// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os/exec"
	"strings"
)

// PdftotextSource extracts page text by shelling out to the poppler
// pdftotext tool. It is an alternative backend for PDFs the in-process
// library cannot decode.
type PdftotextSource struct{}

// Open runs pdftotext in layout mode and splits its output on form feeds,
// which pdftotext emits between pages.
func (PdftotextSource) Open(path string) ([]Page, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}

	chunks := strings.Split(string(out), "\f")
	pages := make([]Page, len(chunks))
	for i, chunk := range chunks {
		pages[i] = Page{Number: i + 1, Text: chunk}
	}
	return pages, nil
}
