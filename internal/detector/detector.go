// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Entity type identifiers produced by the built-in recognizers.
const (
	EntityPhoneNumber      = "PHONE_NUMBER"
	EntityMedicareProvider = "AU_MEDICAREPROVIDER"
	EntityDVA              = "AU_DVA"
	EntityCRN              = "AU_CRN"
	EntityPassport         = "AU_PASSPORT"
	EntityDriversLicense   = "AU_DRIVERSLICENSE"
)

// AllEntities returns every entity type the built-in recognizers can produce,
// in recognizer declaration order.
func AllEntities() []string {
	return []string{
		EntityPhoneNumber,
		EntityMedicareProvider,
		EntityDVA,
		EntityCRN,
		EntityPassport,
		EntityDriversLicense,
	}
}

// Match represents a validated entity detected in analyzed text.
type Match struct {
	// Matched substring, uppercased where the recognizer normalizes case
	Text string

	// Entity type, one of the Entity* constants
	EntityType string

	// Half-open byte offsets into the analyzed text: Start < End
	Start int
	End   int

	// Fixed per-recognizer score in [0,1]
	Confidence float64

	// Human-readable description of which recognizer matched and why.
	// Used for auditability, not for correctness.
	Explanation string

	// Name of the recognizer that produced this match; used for
	// downstream deduplication.
	Recognizer string

	// Additional recognizer-specific details
	Metadata map[string]any
}

// Recognizer is implemented by every document-type recognizer. Implementations
// hold no mutable state after construction, so a single instance may be shared
// across goroutines analyzing different texts.
type Recognizer interface {
	// Name identifies the recognizer (e.g. "AuPassportRecognizer")
	Name() string

	// SupportedEntity returns the single entity type this recognizer handles
	SupportedEntity() string

	// Analyze scans text and returns validated matches. It must return an
	// empty result when its entity type is absent from entities, and must
	// never panic or error on malformed input.
	Analyze(text string, entities []string) []Match
}

// IsRequested reports whether entity appears in the requested entity list.
func IsRequested(entity string, entities []string) bool {
	for _, e := range entities {
		if e == entity {
			return true
		}
	}
	return false
}
