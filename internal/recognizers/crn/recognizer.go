// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package crn detects Australian Centrelink Customer Reference Numbers.
//
// A CRN is a state digit (2=NSW/ACT, 3=VIC, 4=QLD, 5=SA/NT, 6=WA, 7=TAS),
// 8 digits, a check digit from the set ABCHJKLSTVX, and an optional dependant
// indicator. Digit groups may be separated by spaces or hyphens.
package crn

import (
	"regexp"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "AuCrnRecognizer"
	score          = 0.9
	explanation    = "Detected as Australian Centrelink Customer Reference Number with valid format and check digit"
)

// Coarse candidate grammar allowing the common 3-3-2 grouping with spaces or
// hyphens, or 8 ungrouped digits. The checksum runs after separator removal.
var pattern = regexp.MustCompile(`(?i)\b[234567][\s-]?(?:\d{3}[\s-]?\d{3}[\s-]?\d{2}|\d{8})[ABCHJKLSTVX][A-Z ]?\b`)

var separators = regexp.MustCompile(`[\s-]`)

var defaultContext = []string{"crn", "centrelink", "customer", "reference", "number"}

const (
	stateCodes  = "234567"
	checkDigits = "ABCHJKLSTVX"
)

// remainderToCheckDigit maps the weighted-sum remainder (mod 11) to its
// check digit: 10->A down to 0->X.
var remainderToCheckDigit = [11]byte{'X', 'V', 'T', 'S', 'L', 'K', 'J', 'H', 'C', 'B', 'A'}

// Recognizer detects and validates Centrelink CRNs.
type Recognizer struct {
	contextWords []string
	language     string
}

// NewRecognizer creates a Recognizer with the default context words and
// language ("en").
func NewRecognizer() *Recognizer {
	return &Recognizer{
		contextWords: defaultContext,
		language:     "en",
	}
}

// WithContext overrides the default context words.
func (r *Recognizer) WithContext(words []string) *Recognizer {
	if len(words) > 0 {
		r.contextWords = words
	}
	return r
}

// WithLanguage sets the supported language code.
func (r *Recognizer) WithLanguage(lang string) *Recognizer {
	if lang != "" {
		r.language = lang
	}
	return r
}

func (r *Recognizer) Name() string { return recognizerName }

func (r *Recognizer) SupportedEntity() string { return detector.EntityCRN }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Analyze scans text for Centrelink CRNs.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityCRN, entities) {
		return nil
	}

	var matches []detector.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		candidate := strings.ToUpper(text[loc[0]:loc[1]])
		if !isValidCrn(candidate) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:        candidate,
			EntityType:  detector.EntityCRN,
			Start:       loc[0],
			End:         loc[1],
			Confidence:  score,
			Explanation: explanation,
			Recognizer:  recognizerName,
		})
	}
	return matches
}

// isValidCrn validates an uppercased CRN after stripping interior spaces and
// hyphens: state digit, 8 numeric digits, a check digit matching the
// weighted-sum computation, and an optional dependant indicator.
func isValidCrn(crn string) bool {
	clean := separators.ReplaceAllString(crn, "")

	if len(clean) < 10 || len(clean) > 11 {
		return false
	}

	stateCode := clean[0]
	digits := clean[1:9]
	checkChar := clean[9]

	if !strings.Contains(stateCodes, string(stateCode)) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	if !strings.Contains(checkDigits, string(checkChar)) {
		return false
	}
	if len(clean) == 11 {
		dependant := clean[10]
		if !(dependant >= 'A' && dependant <= 'Z') && dependant != ' ' {
			return false
		}
	}

	return calculateCheckDigit(clean[:9]) == checkChar
}

// calculateCheckDigit computes the check digit for the 9-character numeric
// part (state digit + 8 digits). Each digit at 1-indexed position n carries
// weight 2^(10-n); the sum mod 11 maps through remainderToCheckDigit.
func calculateCheckDigit(numberPart string) byte {
	if len(numberPart) != 9 {
		return 0
	}

	total := 0
	for i := 0; i < 9; i++ {
		digit := int(numberPart[i] - '0')
		weight := 1 << (9 - i) // 2^(10-n) with n = i+1
		total += digit * weight
	}

	return remainderToCheckDigit[total%11]
}
