// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
)

// PlaintextPreprocessor handles plain text formats
type PlaintextPreprocessor struct{}

// NewPlaintextPreprocessor creates a plaintext preprocessor
func NewPlaintextPreprocessor() *PlaintextPreprocessor {
	return &PlaintextPreprocessor{}
}

// Name identifies the preprocessor
func (p *PlaintextPreprocessor) Name() string {
	return "plaintext"
}

// CanProcess reports whether the file looks like plain text
func (p *PlaintextPreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".txt", ".md", ".log", ".text")
}

// Process reads the file content as-is
func (p *PlaintextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("file too large to process: %d bytes", info.Size())
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return newContent(filePath, "text", p.Name(), string(data)), nil
}
