// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package passport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
)

func TestIsValidPassportNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"one letter", "A1234567", true},
		{"two letters", "PA1234567", true},
		{"letter N", "N1234567", true},
		{"letter L", "L5678901", true},
		{"excluded letter O", "O1234567", false},
		{"excluded letter S", "S1234567", false},
		{"excluded letter Q", "Q1234567", false},
		{"excluded letter I", "I1234567", false},
		{"excluded letter in second position", "PO1234567", false},
		{"six digits", "A123456", false},
		{"eight digits with one letter", "A12345678", false},
		{"three letters", "ABC1234567", false},
		{"digit in letter part", "1A1234567", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isValidPassportNumber(tc.input))
		})
	}
}

func TestAlphabetExclusion(t *testing.T) {
	// Every excluded letter must cause rejection even when all other
	// fields are valid.
	for _, c := range "OSQI" {
		single := string(c) + "1234567"
		double := "P" + string(c) + "1234567"
		assert.False(t, isValidPassportNumber(single), "letter %c must reject", c)
		assert.False(t, isValidPassportNumber(double), "letter %c must reject in second position", c)
	}
	// The remaining 22 letters are all acceptable.
	for _, c := range validLetters {
		assert.True(t, isValidPassportNumber(string(c)+"1234567"), "letter %c must accept", c)
	}
}

func TestAnalyze(t *testing.T) {
	r := NewRecognizer()

	t.Run("two letter passport", func(t *testing.T) {
		text := "Passport PA1234567 issued 2019"
		matches := r.Analyze(text, []string{detector.EntityPassport})
		require.Len(t, matches, 1)
		assert.Equal(t, "PA1234567", matches[0].Text)
		assert.Equal(t, 9, matches[0].Start)
		assert.Equal(t, 18, matches[0].End)
		assert.Equal(t, 0.9, matches[0].Confidence)
	})

	t.Run("excluded letter rejected regardless of digits", func(t *testing.T) {
		assert.Empty(t, r.Analyze("Passport O1234567", []string{detector.EntityPassport}))
	})

	t.Run("lowercase normalized", func(t *testing.T) {
		matches := r.Analyze("pa1234567", []string{detector.EntityPassport})
		require.Len(t, matches, 1)
		assert.Equal(t, "PA1234567", matches[0].Text)
	})

	t.Run("entity not requested", func(t *testing.T) {
		assert.Empty(t, r.Analyze("PA1234567", []string{detector.EntityCRN}))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, r.Analyze("", []string{detector.EntityPassport}))
	})
}
