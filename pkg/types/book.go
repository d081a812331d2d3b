// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BookRecord holds metadata for one extracted book. Records are built by
// re-scanning the produced text file after extraction and are immutable once
// appended to a BatchReport.
type BookRecord struct {
	// BookName is the source filename without the .pdf extension.
	BookName string `json:"book_name" yaml:"book_name"`

	// OriginalFile is the path to the source PDF.
	OriginalFile string `json:"original_file" yaml:"original_file"`

	// OutputFile is the path to the annotated text file.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// PageCount is the number of [PAGE:n] markers in the output (at least 1;
	// marker-less output counts as a single implicit page).
	PageCount int `json:"page_count" yaml:"page_count"`

	// Title is the first chapter marker's title, or null if the book has no
	// chapter markers.
	Title *string `json:"title" yaml:"title"`

	// ChapterCount is the number of [CHAPTER: markers in the output.
	ChapterCount int `json:"chapter_count" yaml:"chapter_count"`

	// Description is built from the first three non-marker lines, joined by
	// spaces and cut to 200 characters with a trailing ellipsis.
	Description string `json:"description" yaml:"description"`

	// ProcessedAt is the extraction timestamp in RFC 3339 form.
	ProcessedAt string `json:"processed_at" yaml:"processed_at"`

	// FileSize is the source PDF size in bytes.
	FileSize int64 `json:"file_size" yaml:"file_size"`

	// OutputSize is the annotated text file size in bytes.
	OutputSize int64 `json:"output_size" yaml:"output_size"`
}

// BatchReport is the aggregate result of one batch run. Each run writes a
// fresh report; reports are never merged across runs.
type BatchReport struct {
	ProcessedAt string       `json:"processed_at" yaml:"processed_at"`
	TotalBooks  int          `json:"total_books" yaml:"total_books"`
	Books       []BookRecord `json:"books" yaml:"books"`
}
