// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
)

func noColorOptions() formatters.FormatterOptions {
	return formatters.FormatterOptions{NoColor: true}
}

func TestFormat(t *testing.T) {
	matches := []detector.Match{
		{
			Text:        "PA1234567",
			EntityType:  detector.EntityPassport,
			Start:       9,
			End:         18,
			Confidence:  0.9,
			Explanation: "Recognized as Australian passport number",
			Recognizer:  "AuPassportRecognizer",
		},
	}

	f := NewFormatter()
	out, err := f.Format(matches, noColorOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "1 finding(s)")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, detector.EntityPassport)
	assert.Contains(t, out, "[9:18]")
	assert.Contains(t, out, "P*******7")
	assert.NotContains(t, out, "PA1234567")
}

func TestFormatVerboseShowMatch(t *testing.T) {
	matches := []detector.Match{
		{
			Text:        "0412 345 678",
			EntityType:  detector.EntityPhoneNumber,
			Start:       0,
			End:         12,
			Confidence:  0.7,
			Explanation: "Recognized as AU region phone number, using EnhancedPhoneRecognizer",
			Recognizer:  "EnhancedPhoneRecognizer",
		},
	}

	f := NewFormatter()
	opts := noColorOptions()
	opts.Verbose = true
	opts.ShowMatch = true
	out, err := f.Format(matches, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "0412 345 678")
	assert.Contains(t, out, "EnhancedPhoneRecognizer")
	assert.Contains(t, out, "confidence 0.70")
}

func TestFormatNoFindings(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, noColorOptions())
	require.NoError(t, err)
	assert.Equal(t, "No findings.\n", out)
}
