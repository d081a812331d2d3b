// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans raw page text before line classification.
// It collapses whitespace within lines, strips page-number and running
// header/footer lines, and squeezes blank-line runs, while preserving the
// line boundaries the classifier depends on.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// spaceRun matches runs of horizontal whitespace inside a line.
	spaceRun = regexp.MustCompile(`[ \t\f\v]+`)

	// pageNumberLine matches lines that are nothing but a page number,
	// optionally prefixed by the literal words "Page" or "Trang".
	pageNumberLine = regexp.MustCompile(`^\s*(?:(?:Page|Trang)\s+)?\d+\s*$`)
)

// Text normalizes one page of raw extracted text. Empty or absent input
// yields the empty string; callers skip such pages entirely.
//
// Rules, in order: collapse whitespace runs within each line, drop
// page-number lines, collapse runs of blank lines to a single blank, and
// trim the whole block.
func Text(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))

	blanks := 0
	for _, line := range lines {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if pageNumberLine.MatchString(line) {
			line = ""
		}
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
