// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone detects phone numbers across a configurable set of regions.
//
// Candidate spans are extracted with a broad grammar, then parsed and
// validated per region with the phonenumbers library (a Go port of
// libphonenumber). The configured regions are iterated in declared order and
// duplicate spans are removed first-seen-wins, so results are deterministic.
package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/williape/desktop-redactor/internal/detector"
)

const (
	recognizerName = "EnhancedPhoneRecognizer"
	score          = 0.7
)

// Candidate grammar: a digit run of plausible phone length, allowing an
// international prefix and common separators. Precise validation is
// delegated to the phonenumbers library per region.
var pattern = regexp.MustCompile(`[+(]?\d[\d ().\-]{5,18}\d`)

var defaultContext = []string{"phone", "number", "telephone", "cell", "cellphone", "mobile", "call"}

// DefaultRegions are the regions matched when none are configured.
// Australian numbers are included alongside the common international set.
func DefaultRegions() []string {
	return []string{"US", "GB", "DE", "IL", "IN", "CA", "BR", "AU"}
}

// Recognizer detects phone numbers by wrapping the phonenumbers library.
type Recognizer struct {
	contextWords []string
	language     string
	regions      []string

	// leniency controls match strictness: 0 accepts possible numbers,
	// 1 and above requires full validity for the matched region.
	leniency int
}

// NewRecognizer creates a Recognizer with the default context words,
// language ("en"), region list and leniency 1.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		contextWords: defaultContext,
		language:     "en",
		regions:      DefaultRegions(),
		leniency:     1,
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

// WithRegions overrides the region list. Order matters: regions are iterated
// as declared and first-seen wins on duplicate spans.
func (r *Recognizer) WithRegions(regions []string) *Recognizer {
	if len(regions) > 0 {
		r.regions = regions
	}
	return r
}

// WithLeniency sets the match strictness (0 = possible, >=1 = valid).
func (r *Recognizer) WithLeniency(leniency int) *Recognizer {
	if leniency >= 0 {
		r.leniency = leniency
	}
	return r
}

func (r *Recognizer) Name() string { return recognizerName }

func (r *Recognizer) SupportedEntity() string { return detector.EntityPhoneNumber }

// ContextWords returns the configured context words.
func (r *Recognizer) ContextWords() []string { return r.contextWords }

// Regions returns the configured region list.
func (r *Recognizer) Regions() []string { return r.regions }

// Analyze scans text for phone numbers across the configured regions.
func (r *Recognizer) Analyze(text string, entities []string) []detector.Match {
	if !detector.IsRequested(detector.EntityPhoneNumber, entities) {
		return nil
	}

	candidates := pattern.FindAllStringIndex(text, -1)
	if len(candidates) == 0 {
		return nil
	}

	var matches []detector.Match
	seen := make(map[[2]int]bool)

	for _, region := range r.regions {
		for _, loc := range candidates {
			raw := text[loc[0]:loc[1]]

			number, err := phonenumbers.Parse(raw, region)
			if err != nil {
				continue
			}
			if !r.acceptable(number, region) {
				continue
			}

			// Re-derive the actual region from the parsed number; fall back
			// to the region under iteration when it cannot be determined.
			detected := phonenumbers.GetRegionCodeForNumber(number)
			if detected == "" {
				detected = region
			}

			span := [2]int{loc[0], loc[1]}
			if seen[span] {
				continue
			}
			seen[span] = true

			matches = append(matches, detector.Match{
				Text:        strings.TrimSpace(raw),
				EntityType:  detector.EntityPhoneNumber,
				Start:       loc[0],
				End:         loc[1],
				Confidence:  score,
				Explanation: fmt.Sprintf("Recognized as %s region phone number, using %s", detected, recognizerName),
				Recognizer:  recognizerName,
				Metadata: map[string]any{
					"region": detected,
				},
			})
		}
	}

	return matches
}

// acceptable applies the configured leniency to a parsed number for the
// region under iteration.
func (r *Recognizer) acceptable(number *phonenumbers.PhoneNumber, region string) bool {
	if r.leniency <= 0 {
		return phonenumbers.IsPossibleNumber(number)
	}
	return phonenumbers.IsValidNumberForRegion(number, region)
}
