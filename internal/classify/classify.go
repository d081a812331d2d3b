// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a line of extracted text is a chapter
// heading, a section heading, or body content. Detection is an ordered list
// of (pattern, interpreter) rules evaluated first-match-wins; chapter rules
// always run before section rules, so a line can never be both.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind tags the outcome of classifying one line.
type Kind string

const (
	Chapter Kind = "chapter"
	Section Kind = "section"
	Body    Kind = "body"
)

// Classification is the result for one non-empty trimmed line. Text holds
// the formatted heading title for Chapter and Section, or the verbatim line
// for Body.
type Classification struct {
	Kind Kind
	Text string
}

// maxChapterLen and maxSectionLen guard against long body sentences that
// happen to match a heading pattern. Lengths are counted in runes because
// Vietnamese titles are multi-byte.
const (
	maxChapterLen = 100
	maxSectionLen = 80
)

// rule pairs a heading pattern with an interpreter that formats the
// matched groups into a title.
type rule struct {
	pattern   *regexp.Regexp
	interpret func(groups []string) string
}

// chapterRules are tried in order, case-insensitively. The structural-word
// rules cover bilingual chapter/part/lesson headings with Arabic or Roman
// numbering; the final bare-number rule is a fallback for numbered-outline
// books and is known to be prone to false positives on numbered body text.
// Its title group must not start with a digit so that x.y section numbering
// falls through to the section rules.
var chapterRules = []rule{
	{regexp.MustCompile(`(?i)^(Chương)\s+(\d+|[IVXLCDM]+)[\s.:]*(.*)$`), headingTitle},
	{regexp.MustCompile(`(?i)^(Chapter)\s+(\d+|[IVXLCDM]+)[\s.:]*(.*)$`), headingTitle},
	{regexp.MustCompile(`(?i)^(Phần)\s+(\d+|[IVXLCDM]+)[\s.:]*(.*)$`), headingTitle},
	{regexp.MustCompile(`(?i)^(Bài)\s+(\d+|[IVXLCDM]+)[\s.:]*(.*)$`), headingTitle},
	{regexp.MustCompile(`^(\d+)[.\s]+(\D.{0,49})$`), pairTitle},
}

// sectionRules are tried only after every chapter rule has failed.
var sectionRules = []rule{
	{regexp.MustCompile(`^(\d+\.\d+)[\s.:]+(.*)$`), pairTitle},
	{regexp.MustCompile(`^([A-Z][A-Z\s]{2,30})$`), pairTitle},
}

// headingTitle formats "<word> <number>" and appends ": <fragment>" when a
// trailing title fragment exists.
func headingTitle(groups []string) string {
	title := groups[1] + " " + groups[2]
	if fragment := strings.TrimSpace(groups[3]); fragment != "" {
		title += ": " + fragment
	}
	return title
}

// pairTitle joins the matched groups with a space, or returns the single
// group verbatim (the all-caps rule captures the whole heading).
func pairTitle(groups []string) string {
	if len(groups) >= 3 {
		return groups[1] + " " + groups[2]
	}
	return groups[1]
}

// Line classifies one trimmed line. Chapter detection has precedence over
// section detection; a line matching neither is body text verbatim.
func Line(line string) Classification {
	if title, ok := matchRules(chapterRules, line, maxChapterLen); ok {
		return Classification{Kind: Chapter, Text: title}
	}
	if title, ok := matchRules(sectionRules, line, maxSectionLen); ok {
		return Classification{Kind: Section, Text: title}
	}
	return Classification{Kind: Body, Text: line}
}

func matchRules(rules []rule, line string, maxLen int) (string, bool) {
	if line == "" || utf8.RuneCountInString(line) > maxLen {
		return "", false
	}
	for _, r := range rules {
		if groups := r.pattern.FindStringSubmatch(line); groups != nil {
			return r.interpret(groups), true
		}
	}
	return "", false
}
