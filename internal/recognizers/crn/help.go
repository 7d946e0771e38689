// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package crn

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the CRN check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "AU_CRN",
		ShortDescription: "Detects Australian Centrelink Customer Reference Numbers with check digit validation",
		DetailedDescription: `Detects Centrelink CRNs: a state digit (2-7), 8 digits, a check digit and an optional dependant indicator, with optional space or hyphen grouping (for example 307 111 942H).

The check digit is verified by summing each of the first 9 digits multiplied by a power-of-two positional weight (2^9 down to 2^1), taking the remainder mod 11 and mapping it through the check digit table. Numbers that fail the checksum are dropped silently.`,

		Patterns: []string{
			"SNNNNNNNNC[D] (state digit + 8 digits + check digit + optional dependant)",
			"S NNN NNN NNC (grouped with spaces or hyphens)",
		},

		SupportedFormats: []string{
			"State digits: 2 (NSW/ACT), 3 (VIC), 4 (QLD), 5 (SA/NT), 6 (WA), 7 (TAS)",
			"Check digits: A B C H J K L S T V X",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Format", Description: "State digit + 8 digits + check digit after separator removal", Weight: 40},
			{Name: "Check digit", Description: "Check digit must match the power-of-two weighted sum", Weight: 45},
			{Name: "Dependant indicator", Description: "Optional 11th character must be a letter or space", Weight: 15},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file benefits.txt --entities AU_CRN",
		},
	}
}
