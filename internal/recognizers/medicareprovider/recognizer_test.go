// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package medicareprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
)

func TestCalculateCheckDigit(t *testing.T) {
	// 123456 with location A (PLV 10):
	// 1*3 + 2*5 + 3*8 + 4*4 + 5*2 + 6*1 + 10*6 = 129, 129 mod 11 = 8 -> F
	plv, ok := practiceLocationValue('A')
	require.True(t, ok)
	assert.Equal(t, 10, plv)
	assert.Equal(t, byte('F'), calculateCheckDigit("123456", plv))
}

func TestPracticeLocationValue(t *testing.T) {
	cases := []struct {
		char  byte
		plv   int
		valid bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'A', 10, true},
		{'B', 11, true},
		{'H', 17, true},
		{'J', 18, true}, // I skipped
		{'N', 22, true},
		{'P', 23, true}, // O skipped
		{'R', 25, true},
		{'T', 26, true}, // S skipped
		{'Y', 31, true},
		{'I', 0, false},
		{'O', 0, false},
		{'S', 0, false},
		{'Z', 0, false},
	}
	for _, tc := range cases {
		plv, ok := practiceLocationValue(tc.char)
		assert.Equal(t, tc.valid, ok, "char %c", tc.char)
		if tc.valid {
			assert.Equal(t, tc.plv, plv, "char %c", tc.char)
		}
	}
}

func TestIsValidProviderNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid with letter location", "123456AF", true},
		{"valid with digit location", "2426621B", true},
		{"wrong check digit", "123456AY", false},
		{"excluded location I", "123456IF", false},
		{"excluded location O", "123456OF", false},
		{"excluded location S", "123456SF", false},
		{"excluded location Z", "123456ZF", false},
		{"stem not numeric", "12345XAF", false},
		{"too short", "123456A", false},
		{"too long", "123456AFF", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isValidProviderNumber(tc.input))
		})
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	// Recomputing the check digit from the decomposed fields of any accepted
	// number must reproduce the original check character.
	stems := []string{"000000", "123456", "242662", "999999", "507040"}
	for _, stem := range stems {
		for _, loc := range "0123456789" + locationLetters {
			plv, ok := practiceLocationValue(byte(loc))
			require.True(t, ok)
			check := calculateCheckDigit(stem, plv)
			full := stem + string(loc) + string(check)
			require.True(t, isValidProviderNumber(full), "constructed number %s must validate", full)
		}
	}
}

func TestAnalyze(t *testing.T) {
	r := NewRecognizer()

	t.Run("valid number in context", func(t *testing.T) {
		text := "Provider number: 123456AF for Dr Smith"
		matches := r.Analyze(text, []string{detector.EntityMedicareProvider})
		require.Len(t, matches, 1)
		assert.Equal(t, "123456AF", matches[0].Text)
		assert.Equal(t, detector.EntityMedicareProvider, matches[0].EntityType)
		assert.Equal(t, 17, matches[0].Start)
		assert.Equal(t, 25, matches[0].End)
		assert.Equal(t, 0.9, matches[0].Confidence)
		assert.Equal(t, recognizerName, matches[0].Recognizer)
	})

	t.Run("lowercase input is normalized", func(t *testing.T) {
		matches := r.Analyze("ref 123456af", []string{detector.EntityMedicareProvider})
		require.Len(t, matches, 1)
		assert.Equal(t, "123456AF", matches[0].Text)
	})

	t.Run("invalid check digit dropped silently", func(t *testing.T) {
		matches := r.Analyze("Provider: 123456AY", []string{detector.EntityMedicareProvider})
		assert.Empty(t, matches)
	})

	t.Run("entity not requested", func(t *testing.T) {
		matches := r.Analyze("123456AF", []string{detector.EntityPassport})
		assert.Empty(t, matches)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, r.Analyze("", []string{detector.EntityMedicareProvider}))
	})

	t.Run("idempotent", func(t *testing.T) {
		text := "123456AF and 2426621B"
		first := r.Analyze(text, []string{detector.EntityMedicareProvider})
		second := r.Analyze(text, []string{detector.EntityMedicareProvider})
		assert.Equal(t, first, second)
		assert.Len(t, first, 2)
	})
}
