// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text extraction backend.
type ExtractionBackend string

const (
	BackendPDF       ExtractionBackend = "pdf"
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ExtractConfig holds settings for single-document and directory extraction.
type ExtractConfig struct {
	// Backend selects the extraction backend: pdf (in-process) or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// InputDir is the directory scanned for .pdf files (default "input").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory for annotated text files (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// BatchConfig holds settings for the batch stage.
type BatchConfig struct {
	ExtractConfig `yaml:",inline"`

	// Catalog controls whether a Markdown catalog is written after the run.
	Catalog bool `json:"catalog" yaml:"catalog"`
}

// LibraryConfig holds settings for the library index stage.
type LibraryConfig struct {
	// LibraryDir is the base directory for the index (contains library.db,
	// export.yaml, export.json).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
