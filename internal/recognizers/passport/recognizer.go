// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package passport detects Australian passport numbers.
//
// A passport number is 1-2 letters followed by exactly 7 digits. The letters
// O, S, Q and I are never issued, leaving a 22-letter alphabet. There is no
// arithmetic checksum.
package passport

import (
	"regexp"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "AuPassportRecognizer"
	score          = 0.9
	explanation    = "Detected as Australian passport number with valid format (1-2 letters + 7 digits, excluding O/S/Q/I)"
)

// Coarse candidate grammar; the letter alphabet is enforced in
// isValidPassportNumber.
var pattern = regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d{7}\b`)

// Letters valid in a passport prefix. O, S, Q and I are excluded to avoid
// confusion with digits.
const validLetters = "ABCDEFGHJKLMNPRTUVWXYZ"

var defaultContext = []string{"passport", "number", "travel", "document", "identification", "id"}

// Recognizer detects and validates Australian passport numbers.
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

func (r *Recognizer) SupportedEntity() string { return detector.EntityPassport }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Analyze scans text for Australian passport numbers.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityPassport, entities) {
		return nil
	}

	var matches []detector.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		candidate := strings.ToUpper(text[loc[0]:loc[1]])
		if !isValidPassportNumber(candidate) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:        candidate,
			EntityType:  detector.EntityPassport,
			Start:       loc[0],
			End:         loc[1],
			Confidence:  score,
			Explanation: explanation,
			Recognizer:  recognizerName,
		})
	}
	return matches
}

// isValidPassportNumber validates an uppercased 8-9 character passport
// number: 1-2 letters from the restricted alphabet followed by exactly
// 7 digits.
func isValidPassportNumber(passport string) bool {
	if len(passport) < 8 || len(passport) > 9 {
		return false
	}

	letterCount := len(passport) - 7
	letters := passport[:letterCount]
	digits := passport[letterCount:]

	for i := 0; i < len(letters); i++ {
		if !strings.Contains(validLetters, string(letters[i])) {
			return false
		}
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}
