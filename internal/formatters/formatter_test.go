// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/williape/desktop-redactor/internal/detector"
)

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "high", ConfidenceLevel(0.9))
	assert.Equal(t, "medium", ConfidenceLevel(0.8))
	assert.Equal(t, "low", ConfidenceLevel(0.7))
}

func TestFilterMatchesByConfidence(t *testing.T) {
	matches := []detector.Match{
		{EntityType: detector.EntityPassport, Confidence: 0.9},
		{EntityType: detector.EntityDriversLicense, Confidence: 0.8},
		{EntityType: detector.EntityPhoneNumber, Confidence: 0.7},
	}

	t.Run("empty level map keeps everything", func(t *testing.T) {
		assert.Len(t, FilterMatchesByConfidence(matches, FormatterOptions{}), 3)
	})

	t.Run("high only", func(t *testing.T) {
		opts := FormatterOptions{ConfidenceLevel: map[string]bool{"high": true}}
		filtered := FilterMatchesByConfidence(matches, opts)
		assert.Len(t, filtered, 1)
		assert.Equal(t, detector.EntityPassport, filtered[0].EntityType)
	})

	t.Run("medium and low", func(t *testing.T) {
		opts := FormatterOptions{ConfidenceLevel: map[string]bool{"medium": true, "low": true}}
		assert.Len(t, FilterMatchesByConfidence(matches, opts), 2)
	})
}

func TestRedactText(t *testing.T) {
	assert.Equal(t, "P*******7", RedactText("PA1234567"))
	assert.Equal(t, "**", RedactText("AB"))
	assert.Equal(t, "", RedactText(""))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.List())
	_, ok := r.Get("json")
	assert.False(t, ok)
}
