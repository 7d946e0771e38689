// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dva detects Australian Department of Veterans' Affairs file numbers.
//
// A DVA file number is 3 to 9 characters: a state code (N, V, Q, W, S or T),
// a war code of 1-3 letters (or a single leading space), 1-6 digits, and an
// optional trailing dependent code letter. There is no arithmetic checksum;
// validation is purely structural.
package dva

import (
	"regexp"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "AuDvaRecognizer"
	score          = 0.9
	explanation    = "Detected as Australian DVA File Number with valid format"
)

// Coarse candidate grammar. The war-code/numeric decomposition and the length
// combination rules are enforced in isValidDvaNumber.
var pattern = regexp.MustCompile(`(?i)\b[NVQWST][A-Z ]?[A-Z0-9]{1,6}[A-Z]?\b`)

var defaultContext = []string{"dva", "veterans", "affairs", "file", "number", "veteran", "dependent"}

const stateCodes = "NVQWST"

// Recognizer detects and validates DVA file numbers.
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

func (r *Recognizer) SupportedEntity() string { return detector.EntityDVA }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Analyze scans text for DVA file numbers.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityDVA, entities) {
		return nil
	}

	var matches []detector.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		candidate := strings.ToUpper(text[loc[0]:loc[1]])
		if !isValidDvaNumber(candidate) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:        candidate,
			EntityType:  detector.EntityDVA,
			Start:       loc[0],
			End:         loc[1],
			Confidence:  score,
			Explanation: explanation,
			Recognizer:  recognizerName,
		})
	}
	return matches
}

// isValidDvaNumber validates an uppercased DVA file number.
func isValidDvaNumber(dva string) bool {
	if len(dva) < 3 || len(dva) > 9 {
		return false
	}

	if !strings.ContainsRune(stateCodes, rune(dva[0])) {
		return false
	}

	// A 9-character number always carries a dependent code, which must be a letter.
	if len(dva) == 9 && !isLetter(dva[8]) {
		return false
	}

	// The war code may open with a letter or a single space.
	if !isLetter(dva[1]) && dva[1] != ' ' {
		return false
	}

	// A tail of pure letters is a word, not a file number.
	hasDigit := false
	for i := 1; i < len(dva); i++ {
		if isDigit(dva[i]) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return false
	}

	return validWarCodePattern(dva)
}

// validWarCodePattern decomposes the tail after the state code into war code,
// digits and optional dependent code, and checks the allowed combinations:
// 1 war-code char (letter or space) with 1-6 digits, 2 letters with 1-5
// digits, or 3 letters with 1-4 digits.
func validWarCodePattern(dva string) bool {
	work := dva[1:]

	// Strip a trailing dependent code letter, but only when digits precede it.
	if len(work) > 0 && isLetter(work[len(work)-1]) && len(dva) > 3 {
		digitsBefore := false
		for i := 0; i < len(work)-1; i++ {
			if isDigit(work[i]) {
				digitsBefore = true
				break
			}
		}
		if digitsBefore {
			work = work[:len(work)-1]
		}
	}

	if len(work) == 0 {
		return false
	}

	alphaCount := 0
	for i := 0; i < len(work); i++ {
		c := work[i]
		if isLetter(c) {
			alphaCount++
		} else if c == ' ' && alphaCount == 0 {
			// A single leading space stands in for a 1-character war code.
			alphaCount = 1
			break
		} else {
			break
		}
	}

	remaining := work[alphaCount:]
	if len(remaining) == 0 {
		return false
	}
	for i := 0; i < len(remaining); i++ {
		if !isDigit(remaining[i]) {
			return false
		}
	}

	numericCount := len(remaining)
	switch alphaCount {
	case 1:
		return numericCount >= 1 && numericCount <= 6
	case 2:
		return numericCount >= 1 && numericCount <= 5
	case 3:
		return numericCount >= 1 && numericCount <= 4
	default:
		return false
	}
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
