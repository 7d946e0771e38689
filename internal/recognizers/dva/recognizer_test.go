// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dva

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
)

func TestIsValidDvaNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"space war code single digit", "W 1", true},
		{"letter war code", "NX5", true},
		{"dependent code on short number", "NX5A", true},
		{"three letter war code", "SCGW1234", true},
		{"three letter war code with dependent", "SCGW1234B", true},
		{"space war code with dependent", "N 026027K", true},
		{"two letter war code", "VGW12345", true},
		{"length 2 always rejected", "W1", false},
		{"length 10 always rejected", "SCGW12345B", false},
		{"invalid state code", "X 1234", false},
		{"digit after state code", "N12345", false},
		{"no digits at all", "NXA", false},
		{"nine chars with digit dependent", "NAB123451", false},
		{"four letter war code", "SCGWX123", false},
		{"too many digits for war code", "NAB123456", false},
		{"space in the middle", "NX 5", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isValidDvaNumber(tc.input))
		})
	}
}

func TestWarCodeCombinations(t *testing.T) {
	// alpha count 1 allows 1-6 digits, 2 allows 1-5, 3 allows 1-4
	cases := []struct {
		input string
		want  bool
	}{
		{"NA123456", true},    // 1 letter + 6 digits
		{"NA1234567", false},  // 1 letter + 7 digits (length 9, digit dependent)
		{"NAB12345", true},    // 2 letters + 5 digits
		{"NABC1234", true},    // 3 letters + 4 digits
		{"NABC12345", false},  // 3 letters + 5 digits
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isValidDvaNumber(tc.input), "input %q", tc.input)
	}
}

func TestAnalyze(t *testing.T) {
	r := NewRecognizer()

	t.Run("valid number with space war code", func(t *testing.T) {
		text := "DVA file N 026027K on record"
		matches := r.Analyze(text, []string{detector.EntityDVA})
		require.Len(t, matches, 1)
		assert.Equal(t, "N 026027K", matches[0].Text)
		assert.Equal(t, 9, matches[0].Start)
		assert.Equal(t, 18, matches[0].End)
		assert.Equal(t, 0.9, matches[0].Confidence)
	})

	t.Run("lowercase normalized", func(t *testing.T) {
		matches := r.Analyze("file scgw1234b", []string{detector.EntityDVA})
		require.Len(t, matches, 1)
		assert.Equal(t, "SCGW1234B", matches[0].Text)
	})

	t.Run("entity not requested", func(t *testing.T) {
		assert.Empty(t, r.Analyze("N 026027K", []string{detector.EntityCRN}))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, r.Analyze("", []string{detector.EntityDVA}))
	})
}
