// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheets and scripting"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterMatchesByConfidence(matches, options)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"entity_type", "start", "end", "confidence", "confidence_level", "text", "recognizer", "explanation"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range filtered {
		text := formatters.RedactText(m.Text)
		if options.ShowMatch {
			text = m.Text
		}
		record := []string{
			m.EntityType,
			strconv.Itoa(m.Start),
			strconv.Itoa(m.End),
			strconv.FormatFloat(m.Confidence, 'f', 2, 64),
			formatters.ConfidenceLevel(m.Confidence),
			text,
			m.Recognizer,
			m.Explanation,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return buf.String(), nil
}
