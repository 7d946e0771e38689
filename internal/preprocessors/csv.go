// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVPreprocessor handles CSV and TSV files
type CSVPreprocessor struct{}

// NewCSVPreprocessor creates a CSV preprocessor
func NewCSVPreprocessor() *CSVPreprocessor {
	return &CSVPreprocessor{}
}

// Name identifies the preprocessor
func (p *CSVPreprocessor) Name() string {
	return "csv"
}

// CanProcess reports whether the file is a delimited text file
func (p *CSVPreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".csv", ".tsv")
}

// Process parses the file and flattens every cell into scannable text.
// Cells within a record are joined with ", " so that context words in
// neighboring columns stay close to the values they describe.
func (p *CSVPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if hasExtension(filePath, ".tsv") {
		reader.Comma = '\t'
	}
	// Records may have differing field counts in real-world exports.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	var b strings.Builder
	for _, record := range records {
		b.WriteString(strings.Join(record, ", "))
		b.WriteByte('\n')
	}

	return newContent(filePath, "csv", p.Name(), b.String()), nil
}
