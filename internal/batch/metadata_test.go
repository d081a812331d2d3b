// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"strings"
	"testing"
)

func TestCountPages(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"no markers counts as one page", "just body text", 1},
		{"empty file counts as one page", "", 1},
		{"sparse numbering counts markers not numbers", "[PAGE:1]\na\n\n[PAGE:3]\nb\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countPages(tt.content); got != tt.want {
				t.Errorf("countPages() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFirstChapterTitle(t *testing.T) {
	content := "[PAGE:1]\n[CHAPTER:Chương 1: Mở đầu]\nbody\n[CHAPTER:Chương 2]\n"

	title := firstChapterTitle(content)
	if title == nil || *title != "Chương 1: Mở đầu" {
		t.Errorf("firstChapterTitle() = %v, want Chương 1: Mở đầu", title)
	}

	if got := firstChapterTitle("[PAGE:1]\nno chapters here\n"); got != nil {
		t.Errorf("firstChapterTitle() = %q, want nil", *got)
	}
}

func TestCountChapters(t *testing.T) {
	content := "[PAGE:1]\n[CHAPTER:One]\nx\n[PAGE:3]\n[CHAPTER:Two]\ny\n"
	if got := countChapters(content); got != 2 {
		t.Errorf("countChapters() = %d, want 2", got)
	}
}

func TestDescribe(t *testing.T) {
	t.Run("first three non-marker lines", func(t *testing.T) {
		content := "[PAGE:1]\n[CHAPTER:One]\nfirst\nsecond\nthird\nfourth\n"
		if got := describe(content); got != "first second third..." {
			t.Errorf("describe() = %q", got)
		}
	})

	t.Run("no body lines", func(t *testing.T) {
		if got := describe("[PAGE:1]\n[CHAPTER:One]\n"); got != "" {
			t.Errorf("describe() = %q, want empty", got)
		}
	})

	t.Run("truncates to 200 characters plus ellipsis", func(t *testing.T) {
		long := strings.Repeat("ư", 250)
		got := describe("[PAGE:1]\n" + long + "\n")
		if !strings.HasSuffix(got, "...") {
			t.Fatalf("describe() = %q, want trailing ellipsis", got)
		}
		if runes := []rune(strings.TrimSuffix(got, "...")); len(runes) != 200 {
			t.Errorf("description length = %d runes, want 200", len(runes))
		}
	})
}
