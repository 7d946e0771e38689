// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help holds the shared check documentation model surfaced by the
// CLI's --list-checks and --explain output.
package help

import (
	"fmt"
	"strings"
)

// ConfidenceFactor describes one component of a check's validation
type ConfidenceFactor struct {
	Name        string
	Description string
	Weight      int
}

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string
	ShortDescription    string
	DetailedDescription string
	Patterns            []string
	SupportedFormats    []string
	ConfidenceFactors   []ConfidenceFactor
	PositiveKeywords    []string
	Examples            []string
}

// FormatCheckList renders a short one-line-per-check summary
func FormatCheckList(checks []CheckInfo) string {
	var sb strings.Builder
	sb.WriteString("Available checks:\n\n")
	for _, check := range checks {
		sb.WriteString(fmt.Sprintf("  %-22s %s\n", check.Name, check.ShortDescription))
	}
	return sb.String()
}

// FormatCheckDetail renders the full documentation for a single check
func FormatCheckDetail(check CheckInfo) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n%s\n\n", check.Name, strings.Repeat("=", len(check.Name))))
	sb.WriteString(check.DetailedDescription)
	sb.WriteString("\n")

	if len(check.Patterns) > 0 {
		sb.WriteString("\nPatterns:\n")
		for _, p := range check.Patterns {
			sb.WriteString(fmt.Sprintf("  - %s\n", p))
		}
	}

	if len(check.SupportedFormats) > 0 {
		sb.WriteString("\nSupported formats:\n")
		for _, f := range check.SupportedFormats {
			sb.WriteString(fmt.Sprintf("  - %s\n", f))
		}
	}

	if len(check.ConfidenceFactors) > 0 {
		sb.WriteString("\nValidation factors:\n")
		for _, cf := range check.ConfidenceFactors {
			sb.WriteString(fmt.Sprintf("  - %s (%d%%): %s\n", cf.Name, cf.Weight, cf.Description))
		}
	}

	if len(check.PositiveKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nContext keywords: %s\n", strings.Join(check.PositiveKeywords, ", ")))
	}

	if len(check.Examples) > 0 {
		sb.WriteString("\nExamples:\n")
		for _, e := range check.Examples {
			sb.WriteString(fmt.Sprintf("  %s\n", e))
		}
	}

	return sb.String()
}
