// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"github.com/williape/desktop-redactor/internal/config"
	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/recognizers/crn"
	"github.com/williape/desktop-redactor/internal/recognizers/driverslicense"
	"github.com/williape/desktop-redactor/internal/recognizers/dva"
	"github.com/williape/desktop-redactor/internal/recognizers/medicareprovider"
	"github.com/williape/desktop-redactor/internal/recognizers/passport"
	"github.com/williape/desktop-redactor/internal/recognizers/phone"
)

// BuildRecognizerSet constructs the standard recognizer list filtered by the
// enabled entities map, in declaration order. Pass nil for cfg to skip
// recognizer-specific configuration.
func BuildRecognizerSet(enabled map[string]bool, cfg *config.Config) []detector.Recognizer {
	var recognizers []detector.Recognizer

	language := "en"
	var contexts map[string][]string
	if cfg != nil {
		if cfg.Recognizers.Language != "" {
			language = cfg.Recognizers.Language
		}
		contexts = cfg.Recognizers.Context
	}

	if enabled[detector.EntityPhoneNumber] {
		r := phone.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityPhoneNumber])
		if cfg != nil {
			r.WithRegions(cfg.Recognizers.Phone.Regions)
			if cfg.Recognizers.Phone.Leniency != nil {
				r.WithLeniency(*cfg.Recognizers.Phone.Leniency)
			}
		}
		recognizers = append(recognizers, r)
	}
	if enabled[detector.EntityMedicareProvider] {
		recognizers = append(recognizers, medicareprovider.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityMedicareProvider]))
	}
	if enabled[detector.EntityDVA] {
		recognizers = append(recognizers, dva.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityDVA]))
	}
	if enabled[detector.EntityCRN] {
		recognizers = append(recognizers, crn.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityCRN]))
	}
	if enabled[detector.EntityPassport] {
		recognizers = append(recognizers, passport.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityPassport]))
	}
	if enabled[detector.EntityDriversLicense] {
		r := driverslicense.NewRecognizer().
			WithLanguage(language).
			WithContext(contexts[detector.EntityDriversLicense])
		if cfg != nil {
			t := driverslicense.DefaultThresholds()
			dl := cfg.Recognizers.DriversLicense
			if dl.ShortLengthMax > 0 {
				t.ShortLengthMax = dl.ShortLengthMax
			}
			if dl.MaxUniqueForRatioCheck > 0 {
				t.MaxUniqueForRatioCheck = dl.MaxUniqueForRatioCheck
			}
			if dl.DominantDigitRatio > 0 {
				t.DominantDigitRatio = dl.DominantDigitRatio
			}
			r.WithThresholds(t)
		}
		recognizers = append(recognizers, r)
	}

	return recognizers
}
