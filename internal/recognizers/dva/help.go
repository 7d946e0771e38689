// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dva

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the DVA check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "AU_DVA",
		ShortDescription: "Detects Australian DVA (Department of Veterans' Affairs) file numbers",
		DetailedDescription: `Detects DVA file numbers of 3 to 9 characters: a state code (N, V, Q, W, S, T), a war code of 1-3 letters or a single leading space, 1-6 digits, and an optional trailing dependent code letter.

Validation is structural: the war code and digit lengths must form an allowed combination (1 war-code character with up to 6 digits, 2 with up to 5, 3 with up to 4) and at least one digit must be present. There is no arithmetic check digit for this format.`,

		Patterns: []string{
			"S[W]N..N[D] (state + war code + digits + optional dependent)",
		},

		SupportedFormats: []string{
			"State codes: N, V, Q, W, S, T",
			"War code: 1-3 letters, or a single space",
			"Examples: W 1, NX5, NX5A, SCGW1234, SCGW1234B, N 026027K",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Length", Description: "Must be 3-9 characters", Weight: 25},
			{Name: "State code", Description: "First character must be a valid state code", Weight: 25},
			{Name: "War code combination", Description: "War code and digit counts must form an allowed pair", Weight: 35},
			{Name: "Contains digits", Description: "Pure letter sequences are rejected", Weight: 15},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file veterans.csv --entities AU_DVA",
		},
	}
}
