// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// finding is the JSON wire representation of a match
type finding struct {
	EntityType  string         `json:"entity_type"`
	Start       int            `json:"start"`
	End         int            `json:"end"`
	Confidence  float64        `json:"confidence"`
	Level       string         `json:"confidence_level"`
	Text        string         `json:"text,omitempty"`
	Explanation string         `json:"explanation"`
	Recognizer  string         `json:"recognizer"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type response struct {
	Findings []finding `json:"findings"`
	Total    int       `json:"total"`
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterMatchesByConfidence(matches, options)

	findings := make([]finding, 0, len(filtered))
	for _, m := range filtered {
		entry := finding{
			EntityType:  m.EntityType,
			Start:       m.Start,
			End:         m.End,
			Confidence:  m.Confidence,
			Level:       formatters.ConfidenceLevel(m.Confidence),
			Explanation: m.Explanation,
			Recognizer:  m.Recognizer,
			Metadata:    m.Metadata,
		}
		if options.ShowMatch {
			entry.Text = m.Text
		} else {
			entry.Text = formatters.RedactText(m.Text)
		}
		findings = append(findings, entry)
	}

	data, err := json.MarshalIndent(response{Findings: findings, Total: len(findings)}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal findings: %w", err)
	}
	return string(data), nil
}
