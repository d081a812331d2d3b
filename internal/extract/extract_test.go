// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeSource implements Source for testing. It returns canned pages or an
// error, depending on configuration.
type fakeSource struct {
	pages []Page
	err   error
}

func (f *fakeSource) Open(path string) ([]Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestExtractFile(t *testing.T) {
	tests := []struct {
		name     string
		source   *fakeSource
		wantOK   bool
		wantLog  string
		wantText string
	}{
		{
			name: "successful extraction",
			source: &fakeSource{pages: []Page{
				{Number: 1, Text: "Chương 1: Mở đầu\nNội dung đầu tiên."},
			}},
			wantOK:   true,
			wantLog:  "extracted:",
			wantText: "[PAGE:1]\n[CHAPTER:Chương 1: Mở đầu]\nNội dung đầu tiên.\n",
		},
		{
			name:     "unreadable source",
			source:   &fakeSource{err: errors.New("bad xref table")},
			wantOK:   false,
			wantLog:  "failed:",
			wantText: "",
		},
		{
			name:     "no extractable text is not a failure",
			source:   &fakeSource{pages: []Page{{Number: 1}, {Number: 2}}},
			wantOK:   true,
			wantLog:  "extracted:",
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			destPath := filepath.Join(t.TempDir(), "book.txt")
			var log bytes.Buffer

			ok := ExtractFile(tt.source, "book.pdf", destPath, &log)

			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}

			if tt.wantOK {
				data, err := os.ReadFile(destPath)
				if err != nil {
					t.Fatalf("reading output: %v", err)
				}
				if string(data) != tt.wantText {
					t.Errorf("output = %q, want %q", string(data), tt.wantText)
				}
			}
		})
	}
}

func TestExtractFile_WriteFailure(t *testing.T) {
	source := &fakeSource{pages: []Page{{Number: 1, Text: "content"}}}
	destPath := filepath.Join(t.TempDir(), "missing", "book.txt")
	var log bytes.Buffer

	if ok := ExtractFile(source, "book.pdf", destPath, &log); ok {
		t.Error("expected false when the destination is not writable")
	}
	if !strings.Contains(log.String(), "failed:") {
		t.Errorf("log output %q does not contain failure marker", log.String())
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "notes.txt", "upper.PDF"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("Discover() = %v, want %v", paths, want)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing input directory")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"books/Dạy con làm giàu.pdf", "Dạy con làm giàu.txt"},
		{"plain.pdf", "plain.txt"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
