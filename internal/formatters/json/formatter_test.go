// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
)

func TestFormat(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{
			Text:        "PA1234567",
			EntityType:  detector.EntityPassport,
			Start:       9,
			End:         18,
			Confidence:  0.9,
			Explanation: "Detected as Australian passport number",
			Recognizer:  "AuPassportRecognizer",
		},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{ShowMatch: true})
	require.NoError(t, err)

	var decoded struct {
		Findings []map[string]any `json:"findings"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Total)
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, "AU_PASSPORT", decoded.Findings[0]["entity_type"])
	assert.Equal(t, "PA1234567", decoded.Findings[0]["text"])
	assert.Equal(t, "high", decoded.Findings[0]["confidence_level"])
}

func TestFormatRedactsByDefault(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{Text: "PA1234567", EntityType: detector.EntityPassport, Confidence: 0.9},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "P*******7")
	assert.NotContains(t, out, "PA1234567")
}

func TestFormatEmpty(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Zero(t, decoded.Total)
}
