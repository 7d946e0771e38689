// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors extracts scannable text from the file formats the
// CLI accepts. Recognizers operate on the extracted text; span offsets in
// results refer to that text, not to byte positions in the source file.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxFileSize caps how much input a preprocessor will read.
const maxFileSize = 50 * 1024 * 1024

// ProcessedContent represents content extracted by a preprocessor
type ProcessedContent struct {
	OriginalPath string
	Format       string
	Text         string

	PageCount int
	CharCount int
	LineCount int

	ProcessorType string
}

// Preprocessor extracts text content from a file
type Preprocessor interface {
	// Name identifies the preprocessor
	Name() string

	// CanProcess reports whether this preprocessor handles the file
	CanProcess(filePath string) bool

	// Process extracts text content from the file
	Process(filePath string) (*ProcessedContent, error)
}

// DefaultPreprocessors returns the standard preprocessor list, consulted in
// order by ForFile.
func DefaultPreprocessors() []Preprocessor {
	return []Preprocessor{
		NewCSVPreprocessor(),
		NewJSONPreprocessor(),
		NewPDFPreprocessor(),
		NewImagePreprocessor(),
		NewPlaintextPreprocessor(),
	}
}

// ForFile returns the first preprocessor able to handle path.
func ForFile(path string, preprocessors []Preprocessor) (Preprocessor, error) {
	for _, p := range preprocessors {
		if p.CanProcess(path) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("file type not supported for processing: %s", path)
}

func hasExtension(path string, extensions ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func newContent(path, format, processor, text string) *ProcessedContent {
	return &ProcessedContent{
		OriginalPath:  path,
		Format:        format,
		Text:          text,
		CharCount:     len(text),
		LineCount:     strings.Count(text, "\n") + 1,
		ProcessorType: processor,
	}
}
