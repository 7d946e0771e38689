// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"sort"
	"strings"

	"github.com/williape/desktop-redactor/internal/detector"
)

// AnalyzerEngine runs a fixed list of recognizers over text. There is no
// dynamic registry: the recognizer set is composed explicitly at construction
// and never mutated, so an engine is safe for concurrent use against
// different texts.
type AnalyzerEngine struct {
	recognizers []detector.Recognizer
}

// NewAnalyzerEngine creates an engine over the given recognizers, invoked in
// the order supplied.
func NewAnalyzerEngine(recognizers ...detector.Recognizer) *AnalyzerEngine {
	return &AnalyzerEngine{recognizers: recognizers}
}

// Recognizers returns the composed recognizer list.
func (e *AnalyzerEngine) Recognizers() []detector.Recognizer {
	return e.recognizers
}

// SupportedEntities returns the entity types the composed recognizers handle,
// in recognizer order.
func (e *AnalyzerEngine) SupportedEntities() []string {
	entities := make([]string, 0, len(e.recognizers))
	for _, r := range e.recognizers {
		entities = append(entities, r.SupportedEntity())
	}
	return entities
}

// AnalyzeText runs every recognizer over text and merges the results. An
// empty entity filter requests everything the engine supports. Results are
// ordered by span start, then end, then entity type, so output does not
// depend on recognizer invocation order.
func (e *AnalyzerEngine) AnalyzeText(text string, entities []string) []detector.Match {
	if text == "" {
		return nil
	}
	if len(entities) == 0 {
		entities = e.SupportedEntities()
	}

	var matches []detector.Match
	for _, r := range e.recognizers {
		matches = append(matches, r.Analyze(text, entities)...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		if matches[i].End != matches[j].End {
			return matches[i].End < matches[j].End
		}
		return matches[i].EntityType < matches[j].EntityType
	})
	return matches
}

// ParseEntitiesToRun converts a slice of entity names into an enabled-entity
// map. An empty slice or ["all"] enables every entity.
func ParseEntitiesToRun(entities []string) map[string]bool {
	result := make(map[string]bool, len(detector.AllEntities()))
	for _, entity := range detector.AllEntities() {
		result[entity] = false
	}

	if len(entities) == 0 || (len(entities) == 1 && strings.EqualFold(strings.TrimSpace(entities[0]), "all")) {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, entity := range entities {
		name := strings.ToUpper(strings.TrimSpace(entity))
		if name == "" {
			continue
		}
		if _, exists := result[name]; exists {
			result[name] = true
		}
	}

	return result
}

// EnabledEntities flattens an enabled-entity map into the declaration-order
// entity list consumed by Recognizer.Analyze.
func EnabledEntities(enabled map[string]bool) []string {
	var entities []string
	for _, entity := range detector.AllEntities() {
		if enabled[entity] {
			entities = append(entities, entity)
		}
	}
	return entities
}
