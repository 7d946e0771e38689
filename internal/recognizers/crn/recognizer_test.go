// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package crn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
)

func TestCalculateCheckDigit(t *testing.T) {
	// 307111942: 3*512 + 0*256 + 7*128 + 1*64 + 1*32 + 1*16 + 9*8 + 4*4 + 2*2
	// = 2636, 2636 mod 11 = 7 -> H
	assert.Equal(t, byte('H'), calculateCheckDigit("307111942"))

	// 212345678 sums to 2028, 2028 mod 11 = 4 -> L
	assert.Equal(t, byte('L'), calculateCheckDigit("212345678"))

	assert.Equal(t, byte(0), calculateCheckDigit("1234"))
}

func TestIsValidCrn(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid ungrouped", "307111942H", true},
		{"valid grouped with spaces", "3 071 119 42H", true},
		{"valid grouped with hyphens", "3-071-119-42H", true},
		{"valid with dependant letter", "212345678LA", true},
		{"valid second state", "212345678L", true},
		{"wrong check digit", "307111942X", false},
		{"invalid state digit", "807111942H", false},
		{"state digit 1 invalid", "107111942H", false},
		{"too short", "30711194H", false},
		{"too long", "3071119422HAB", false},
		{"dependant not letter", "212345678L9", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isValidCrn(tc.input))
		})
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	// Any accepted CRN must reproduce its own check digit from the
	// decomposed state digit + 8-digit field.
	numbers := []string{"307111942", "212345678", "489104235", "700000001"}
	for _, n := range numbers {
		check := calculateCheckDigit(n)
		require.NotZero(t, check)
		full := n + string(check)
		assert.True(t, isValidCrn(full), "constructed CRN %s must validate", full)
		assert.Equal(t, check, calculateCheckDigit(full[:9]))
	}
}

func TestAnalyze(t *testing.T) {
	r := NewRecognizer()

	t.Run("valid ungrouped CRN", func(t *testing.T) {
		text := "CRN: 307111942H"
		matches := r.Analyze(text, []string{detector.EntityCRN})
		require.Len(t, matches, 1)
		assert.Equal(t, "307111942H", matches[0].Text)
		assert.Equal(t, 5, matches[0].Start)
		assert.Equal(t, 15, matches[0].End)
		assert.Equal(t, 0.9, matches[0].Confidence)
	})

	t.Run("grouped CRN", func(t *testing.T) {
		matches := r.Analyze("customer 3 071 119 42H", []string{detector.EntityCRN})
		require.Len(t, matches, 1)
		assert.Equal(t, "3 071 119 42H", matches[0].Text)
	})

	t.Run("checksum mismatch dropped", func(t *testing.T) {
		assert.Empty(t, r.Analyze("CRN 307111942X", []string{detector.EntityCRN}))
	})

	t.Run("entity not requested", func(t *testing.T) {
		assert.Empty(t, r.Analyze("307111942H", []string{detector.EntityDVA}))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, r.Analyze("", []string{detector.EntityCRN}))
	})
}
