// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package passport

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the passport check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "AU_PASSPORT",
		ShortDescription: "Detects Australian passport numbers",
		DetailedDescription: `Detects Australian passport numbers: one or two letters followed by exactly seven digits (for example A1234567, PA1234567).

The letter prefix is restricted to a 22-letter alphabet excluding O, S, Q and I, which are never issued to avoid confusion with digits. Candidates using an excluded letter are rejected regardless of the digit part.`,

		Patterns: []string{
			"LNNNNNNN (1 letter + 7 digits)",
			"LLNNNNNNN (2 letters + 7 digits)",
		},

		SupportedFormats: []string{
			"Letters: A-Z excluding O, S, Q, I",
			"Digits: exactly 7",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Format", Description: "1-2 letters followed by exactly 7 digits", Weight: 60},
			{Name: "Letter alphabet", Description: "Letters must be outside the excluded set O, S, Q, I", Weight: 40},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file travel-manifest.csv --entities AU_PASSPORT",
		},
	}
}
