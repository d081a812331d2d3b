// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts page text in-process with the ledongthuc/pdf library.
type PDFSource struct{}

// Open reads the PDF at path and returns one Page per document page. Pages
// whose text cannot be decoded are returned with empty text so the pipeline
// skips them without disturbing the numbering of later pages.
func (PDFSource) Open(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}
