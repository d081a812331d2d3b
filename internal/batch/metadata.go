// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"strings"
)

const (
	pageMarker    = "[PAGE:"
	chapterMarker = "[CHAPTER:"

	descriptionLines  = 3
	descriptionLength = 200
)

// countPages counts [PAGE: markers in an extracted text file. Marker-less
// output is treated as a single implicit page.
func countPages(content string) int {
	if n := strings.Count(content, pageMarker); n > 0 {
		return n
	}
	return 1
}

// firstChapterTitle returns the title of the first chapter marker, or nil
// when the file contains none.
func firstChapterTitle(content string) *string {
	start := strings.Index(content, chapterMarker)
	if start == -1 {
		return nil
	}
	rest := content[start+len(chapterMarker):]
	end := strings.IndexByte(rest, ']')
	if end == -1 {
		return nil
	}
	title := rest[:end]
	return &title
}

// countChapters counts [CHAPTER: markers.
func countChapters(content string) int {
	return strings.Count(content, chapterMarker)
}

// describe builds a short excerpt from the first few lines that are not
// markers: up to three non-empty lines not starting with '[', joined by
// spaces and cut to 200 characters with a trailing ellipsis. Returns the
// empty string when no such line exists.
func describe(content string) string {
	var picked []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		picked = append(picked, line)
		if len(picked) >= descriptionLines {
			break
		}
	}
	if len(picked) == 0 {
		return ""
	}

	joined := strings.Join(picked, " ")
	if runes := []rune(joined); len(runes) > descriptionLength {
		joined = string(runes[:descriptionLength])
	}
	return joined + "..."
}
