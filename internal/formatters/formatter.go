// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	ConfidenceLevel map[string]bool // Which confidence levels to display
	Verbose         bool            // Whether to display detailed information
	NoColor         bool            // Whether to disable colored output
	ShowMatch       bool            // Whether to display the actual matched text
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders the matches in this formatter's output format
	Format(matches []detector.Match, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g. "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfidenceLevel maps a score in [0,1] to a display level. Bands follow the
// fixed per-recognizer scores: 0.9 formats are high, the 0.8 license format
// is medium and the 0.7 phone score is low.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.85:
		return "high"
	case confidence >= 0.75:
		return "medium"
	default:
		return "low"
	}
}

// FilterMatchesByConfidence returns the matches whose confidence level is
// enabled in the options. A nil or empty level map keeps everything.
func FilterMatchesByConfidence(matches []detector.Match, options FormatterOptions) []detector.Match {
	if len(options.ConfidenceLevel) == 0 {
		return matches
	}

	var filtered []detector.Match
	for _, m := range matches {
		if options.ConfidenceLevel[ConfidenceLevel(m.Confidence)] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// RedactText masks all but the first and last characters of a match for
// display when ShowMatch is off.
func RedactText(text string) string {
	if len(text) <= 2 {
		return strings.Repeat("*", len(text))
	}
	return fmt.Sprintf("%c%s%c", text[0], strings.Repeat("*", len(text)-2), text[len(text)-1])
}
