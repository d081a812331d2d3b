// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/book-engine/internal/classify"
	"github.com/pdiddy/book-engine/internal/normalize"
)

// Page is one page of raw extracted text. Text is empty when the page has
// no extractable text.
type Page struct {
	Number int
	Text   string
}

// Source opens a document and yields its pages in ascending order. Concrete
// sources wrap a PDF library or an external extraction tool; the pipeline
// never depends on either directly.
type Source interface {
	Open(path string) ([]Page, error)
}

// Annotate runs the page pipeline over a document: each page is normalized,
// split into lines, and classified, producing marker and body lines in
// document order.
//
// The current chapter title is threaded across the whole document so a
// heading repeated on later pages (a running header) emits no second
// marker. A page marker is emitted only when the page retained at least
// one line, followed by the page's content and one blank separator, so
// page numbering in the output may be sparse.
func Annotate(pages []Page) []string {
	var out []string
	var currentChapter string

	for _, pg := range pages {
		text := normalize.Text(pg.Text)
		if text == "" {
			continue
		}

		var content []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			switch c := classify.Line(line); c.Kind {
			case classify.Chapter:
				if c.Text != currentChapter {
					currentChapter = c.Text
					content = append(content, "[CHAPTER:"+c.Text+"]")
				}
			case classify.Section:
				content = append(content, "[SECTION:"+c.Text+"]")
			default:
				content = append(content, line)
			}
		}

		if len(content) > 0 {
			out = append(out, fmt.Sprintf("[PAGE:%d]", pg.Number))
			out = append(out, content...)
			out = append(out, "")
		}
	}

	return out
}
