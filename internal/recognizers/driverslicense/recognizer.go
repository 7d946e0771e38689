// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package driverslicense detects Australian driver's license numbers.
//
// State formats vary: pure numeric numbers of 6-10 digits (optionally grouped
// with spaces or hyphens) and three fixed alphanumeric shapes at length 6
// (1 letter + 5 digits, 2 letters + 4 digits, 4 digits + 2 letters).
//
// Because short numeric spans are structurally indistinguishable from other
// numbers, a uniformity heuristic screens out sequential and repeated decoys.
// Its thresholds are empirically tuned, not drawn from a published format
// rule, so they are exposed as configurable constants.
package driverslicense

import (
	"regexp"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "AuDriversLicenseRecognizer"
	score          = 0.8
	explanation    = "Detected as Australian driver's license number with valid state-specific format"
)

// Coarse candidate grammar: fixed alphanumeric shapes first, then delimited
// digit groupings, then bare digit runs.
var pattern = regexp.MustCompile(`(?i)\b(?:` +
	`[A-Z]\d{5}|` + // 1 letter + 5 digits
	`[A-Z]{2}\d{4}|` + // 2 letters + 4 digits
	`\d{4}[A-Z]{2}|` + // 4 digits + 2 letters
	`\d{3}[\s-]\d{3}[\s-]\d{3}|` + // 9 digits: 3-3-3 grouping
	`\d[\s-]\d{3}[\s-]\d{3}[\s-]\d{3}|` + // 10 digits: 1-3-3-3 grouping
	`\d{6,10}` + // 6-10 bare digits
	`)\b`)

var separators = regexp.MustCompile(`[\s-]`)

var defaultContext = []string{"license", "licence", "driving", "driver", "drivers", "dl", "permit"}

// Thresholds tune the uniformity heuristic. The defaults preserve the
// historical behavior; they are plausibility cutoffs, not format rules.
type Thresholds struct {
	// ShortLengthMax is the longest number still screened for perfect
	// ascending/descending digit sequences.
	ShortLengthMax int

	// MaxUniqueForRatioCheck is the distinct-digit count at or below which
	// longer numbers are screened by dominant-digit ratio.
	MaxUniqueForRatioCheck int

	// DominantDigitRatio rejects longer numbers whose most frequent digit
	// exceeds this share of all characters.
	DominantDigitRatio float64
}

// DefaultThresholds returns the historical heuristic cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortLengthMax:         7,
		MaxUniqueForRatioCheck: 2,
		DominantDigitRatio:     0.8,
	}
}

// Recognizer detects and validates driver's license numbers.
type Recognizer struct {
	contextWords []string
	language     string
	thresholds   Thresholds
}

// NewRecognizer creates a Recognizer with the default context words,
// language ("en") and heuristic thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		contextWords: defaultContext,
		language:     "en",
		thresholds:   DefaultThresholds(),
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

// WithThresholds overrides the uniformity heuristic thresholds.
func (r *Recognizer) WithThresholds(t Thresholds) *Recognizer {
	if t.ShortLengthMax > 0 && t.MaxUniqueForRatioCheck > 0 && t.DominantDigitRatio > 0 {
		r.thresholds = t
	}
	return r
}

func (r *Recognizer) Name() string { return recognizerName }

func (r *Recognizer) SupportedEntity() string { return detector.EntityDriversLicense }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Analyze scans text for driver's license numbers.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityDriversLicense, entities) {
		return nil
	}

	var matches []detector.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		candidate := strings.ToUpper(text[loc[0]:loc[1]])
		if !r.isValidLicenseNumber(candidate) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:        candidate,
			EntityType:  detector.EntityDriversLicense,
			Start:       loc[0],
			End:         loc[1],
			Confidence:  score,
			Explanation: explanation,
			Recognizer:  recognizerName,
		})
	}
	return matches
}

// isValidLicenseNumber validates a candidate after stripping spaces and
// hyphens: 6-10 characters total, either all-numeric or one of the fixed
// alphanumeric shapes.
func (r *Recognizer) isValidLicenseNumber(license string) bool {
	clean := separators.ReplaceAllString(license, "")

	if len(clean) < 6 || len(clean) > 10 {
		return false
	}

	if isAllDigits(clean) {
		return r.isValidNumericLicense(clean)
	}
	return isValidAlphanumericLicense(clean)
}

// isValidNumericLicense screens all-digit candidates through the uniformity
// heuristic plus the literal decoys at length 6.
func (r *Recognizer) isValidNumericLicense(clean string) bool {
	if r.isTooUniform(clean) {
		return false
	}
	if len(clean) == 6 && (clean == "123456" || clean == "654321") {
		return false
	}
	return true
}

// isValidAlphanumericLicense accepts the three fixed 6-character shapes:
// 1 letter + 5 digits, 2 letters + 4 digits, or 4 digits + 2 letters.
func isValidAlphanumericLicense(clean string) bool {
	if len(clean) != 6 {
		return false
	}

	switch {
	case isAllLetters(clean[:1]) && isAllDigits(clean[1:]):
		return true
	case isAllLetters(clean[:2]) && isAllDigits(clean[2:]):
		return true
	case isAllDigits(clean[:4]) && isAllLetters(clean[4:]):
		return true
	}
	return false
}

// isTooUniform rejects digit strings too regular to be a genuine license
// number: all characters identical at any length; perfect ascending or
// descending runs up to ShortLengthMax; and, for longer strings with at most
// MaxUniqueForRatioCheck distinct digits, a dominant digit above
// DominantDigitRatio.
func (r *Recognizer) isTooUniform(number string) bool {
	distinct := map[byte]int{}
	for i := 0; i < len(number); i++ {
		distinct[number[i]]++
	}
	if len(distinct) == 1 {
		return true
	}

	if len(number) <= r.thresholds.ShortLengthMax {
		ascending, descending := true, true
		for i := 1; i < len(number); i++ {
			if number[i] != number[i-1]+1 {
				ascending = false
			}
			if number[i] != number[i-1]-1 {
				descending = false
			}
		}
		if ascending || descending {
			return true
		}
	}

	if len(number) > r.thresholds.ShortLengthMax && len(distinct) <= r.thresholds.MaxUniqueForRatioCheck {
		maxCount := 0
		for _, count := range distinct {
			if count > maxCount {
				maxCount = count
			}
		}
		if float64(maxCount)/float64(len(number)) > r.thresholds.DominantDigitRatio {
			return true
		}
	}

	return false
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAllLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
