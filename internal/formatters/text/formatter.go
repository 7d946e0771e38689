// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
)

// Formatter implements human-readable text output with colors
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"high":   color.New(color.FgRed),
			"medium": color.New(color.FgYellow),
			"low":    color.New(color.FgCyan),
			"header": color.New(color.FgWhite, color.Bold),
			"dim":    color.New(color.FgHiBlack),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	filtered := formatters.FilterMatchesByConfidence(matches, options)
	if len(filtered) == 0 {
		return "No findings.\n", nil
	}

	width := terminalWidth()
	var sb strings.Builder

	sb.WriteString(f.colors["header"].Sprintf("%d finding(s)\n", len(filtered)))
	sb.WriteString(strings.Repeat("-", min(width, 72)) + "\n")

	for _, m := range filtered {
		level := formatters.ConfidenceLevel(m.Confidence)
		levelColor, ok := f.colors[level]
		if !ok {
			levelColor = f.colors["dim"]
		}

		text := formatters.RedactText(m.Text)
		if options.ShowMatch {
			text = m.Text
		}

		sb.WriteString(fmt.Sprintf("%s  %s  [%d:%d]  %s\n",
			levelColor.Sprintf("%-6s", strings.ToUpper(level)),
			m.EntityType,
			m.Start, m.End,
			text,
		))

		if options.Verbose {
			sb.WriteString(f.colors["dim"].Sprintf("        %s (%s, confidence %.2f)\n",
				m.Explanation, m.Recognizer, m.Confidence))
		}
	}

	return sb.String(), nil
}

// terminalWidth returns the current terminal width, falling back to 80
// columns when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
