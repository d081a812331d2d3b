// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/book-engine/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the full index to libraryDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	books, err := s.exportBooks(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.libraryDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the full index to libraryDir/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	books, err := s.exportBooks(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.libraryDir, "export.json"), data, 0o644)
}

func (s *Store) exportBooks(ctx context.Context) ([]types.BookRecord, error) {
	books, err := s.Search(ctx, "", exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return books, nil
}
