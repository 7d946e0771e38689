// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package driverslicense

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the driver's license check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "AU_DRIVERSLICENSE",
		ShortDescription: "Detects Australian driver's license numbers in numeric and alphanumeric formats",
		DetailedDescription: `Detects Australian driver's license numbers: 6-10 digit numeric formats (optionally grouped with spaces or hyphens, as Victoria and NSW print them) and the fixed alphanumeric shapes used by other states (1 letter + 5 digits, 2 letters + 4 digits, 4 digits + 2 letters).

Numeric candidates pass through a uniformity heuristic that rejects all-identical digits, perfect ascending or descending sequences in short numbers, and long numbers dominated by a single digit. The heuristic trades recall for precision against sequential counters and synthetic test data; its thresholds are configurable.`,

		Patterns: []string{
			"NNNNNN to NNNNNNNNNN (6-10 digits)",
			"NNN NNN NNN / N NNN NNN NNN (grouped digits)",
			"LNNNNN, LLNNNN, NNNNLL (alphanumeric shapes)",
		},

		SupportedFormats: []string{
			"Victoria: 8-10 digits, sometimes space or hyphen grouped",
			"NSW: typically 8 digits",
			"Other states: fixed alphanumeric shapes at length 6",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Length", Description: "6-10 characters after separator removal", Weight: 30},
			{Name: "Shape", Description: "All-numeric or one of three alphanumeric shapes", Weight: 40},
			{Name: "Not uniform", Description: "Must pass the sequential/repeated digit heuristic", Weight: 30},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file customers.csv --entities AU_DRIVERSLICENSE",
		},
	}
}
