// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "github.com/williape/desktop-redactor/internal/help"

// GetCheckInfo returns standardized information about the phone check
func (r *Recognizer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PHONE_NUMBER",
		ShortDescription: "Detects phone numbers across configurable regions, including Australia",
		DetailedDescription: `Detects phone numbers by extracting digit spans and validating them with the phonenumbers library (a Go port of libphonenumber) against each configured region in turn.

Each accepted span is re-parsed to determine the number's actual region, falling back to the region under iteration when detection fails. Duplicate spans found under multiple regions are removed first-seen-wins, so output is deterministic for a given region order.`,

		Patterns: []string{
			"International: +61 2 9374 4000",
			"National: (02) 9374 4000, 650-253-0000",
		},

		SupportedFormats: []string{
			"Default regions: US, GB, DE, IL, IN, CA, BR, AU",
			"Leniency 0 (possible numbers) or 1+ (valid numbers)",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Library validation", Description: "Number must parse and validate for a configured region", Weight: 80},
			{Name: "Region detection", Description: "Actual region derived from the parsed number", Weight: 20},
		},

		PositiveKeywords: r.contextWords,

		Examples: []string{
			"au-scan --file contacts.csv --entities PHONE_NUMBER",
		},
	}
}
