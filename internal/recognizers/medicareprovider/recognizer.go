// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package medicareprovider detects Australian Medicare Provider Numbers.
//
// A provider number is an 8-character identifier: a 6-digit provider stem,
// a practice location character (0-9 or A-Y excluding I, O, S and Z) and a
// check digit computed from the stem and location character.
package medicareprovider

import (
	"regexp"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "AuMedicareProviderRecognizer"
	score          = 0.9
	explanation    = "Detected as Australian Medicare Provider Number with valid format and check digit"
)

// Coarse candidate grammar: 6 digits + 1 alphanumeric + 1 letter. Precise
// structural and checksum validation happens in isValidProviderNumber.
var pattern = regexp.MustCompile(`(?i)\b\d{6}[0-9A-Z][A-Z]\b`)

// Practice location characters excluded from the alphabet. The remaining
// letters map to PLV values 10..31 in sequence.
const locationLetters = "ABCDEFGHJKLMNPQRTUVWXY"

// checkDigits maps the weighted-sum remainder (mod 11) to its check digit.
var checkDigits = [11]byte{'Y', 'X', 'W', 'T', 'L', 'K', 'J', 'H', 'F', 'B', 'A'}

// stemWeights are the per-position multipliers for the 6 stem digits.
var stemWeights = [6]int{3, 5, 8, 4, 2, 1}

var defaultContext = []string{"provider", "medicare", "number", "practitioner", "doctor", "gp", "medical"}

// Recognizer detects and validates Medicare Provider Numbers.
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

// WithLanguage sets the supported language code. The structural validation is
// language independent; the code is carried for callers that filter by it.
func (r *Recognizer) WithLanguage(lang string) *Recognizer {
	if lang != "" {
		r.language = lang
	}
	return r
}

func (r *Recognizer) Name() string { return recognizerName }

func (r *Recognizer) SupportedEntity() string { return detector.EntityMedicareProvider }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Analyze scans text for Medicare Provider Numbers.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityMedicareProvider, entities) {
		return nil
	}

	var matches []detector.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		candidate := strings.ToUpper(text[loc[0]:loc[1]])
		if !isValidProviderNumber(candidate) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:        candidate,
			EntityType:  detector.EntityMedicareProvider,
			Start:       loc[0],
			End:         loc[1],
			Confidence:  score,
			Explanation: explanation,
			Recognizer:  recognizerName,
		})
	}
	return matches
}

// isValidProviderNumber validates an uppercased 8-character provider number:
// stem[0:6] all digits, a valid practice location character at [6], and the
// check digit at [7] matching the computed value.
func isValidProviderNumber(provider string) bool {
	if len(provider) != 8 {
		return false
	}

	stem := provider[:6]
	locationChar := provider[6]
	checkChar := provider[7]

	for i := 0; i < len(stem); i++ {
		if stem[i] < '0' || stem[i] > '9' {
			return false
		}
	}

	plv, ok := practiceLocationValue(locationChar)
	if !ok {
		return false
	}

	return calculateCheckDigit(stem, plv) == checkChar
}

// practiceLocationValue maps a practice location character to its numeric
// PLV: digits map to themselves, valid letters to 10..31. The second return
// is false for the excluded letters I, O, S and Z.
func practiceLocationValue(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	idx := strings.IndexByte(locationLetters, c)
	if idx < 0 {
		return 0, false
	}
	return 10 + idx, true
}

// calculateCheckDigit computes the check digit for a 6-digit stem and PLV.
//
// Weighted sum: d1*3 + d2*5 + d3*8 + d4*4 + d5*2 + d6*1 + PLV*6, taken mod 11
// and mapped through Y X W T L K J H F B A.
func calculateCheckDigit(stem string, plv int) byte {
	total := 0
	for i := 0; i < 6; i++ {
		total += int(stem[i]-'0') * stemWeights[i]
	}
	total += plv * 6
	return checkDigits[total%11]
}
