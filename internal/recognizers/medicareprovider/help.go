// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package medicareprovider

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the Medicare Provider check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "AU_MEDICAREPROVIDER",
		ShortDescription: "Detects Australian Medicare Provider Numbers with check digit validation",
		DetailedDescription: `Detects 8-character Medicare Provider Numbers: a 6-digit provider stem, a practice location character and a check digit.

The practice location character is drawn from a 32-symbol alphabet (digits plus letters excluding I, O, S and Z). The check digit is verified with the weighted-sum algorithm (weights 3, 5, 8, 4, 2, 1 over the stem plus 6 times the practice location value, mod 11), so transcription errors and fabricated numbers are rejected rather than reported.`,

		Patterns: []string{
			"NNNNNNLC (6 digits + location character + check digit)",
		},

		SupportedFormats: []string{
			"Location characters: 0-9, A-H, J-R, T-Y (excluding I, O, S, Z)",
			"Check digits: Y X W T L K J H F B A",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Format", Description: "Must be 6 digits + location character + check digit", Weight: 40},
			{Name: "Location alphabet", Description: "Location character must be outside the excluded set", Weight: 20},
			{Name: "Check digit", Description: "Check digit must match the weighted-sum computation", Weight: 40},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file referrals.txt --entities AU_MEDICAREPROVIDER",
		},
	}
}
