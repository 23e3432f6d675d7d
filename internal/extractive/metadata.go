package extractive

import "slices"

// Metadata holds the auxiliary fields attached to a summary.
type Metadata struct {
	RelevanceToOfficials []string `yaml:"relevance_to_officials"`
	ActionItems          []string `yaml:"action_items"`
	ConfidenceEstimate   string   `yaml:"confidence_estimate"`
}

// MetadataExtractor derives the auxiliary fields of a summary. It is the
// extension point for real deadline/value extraction; the ranking pipeline
// never depends on it.
type MetadataExtractor interface {
	Extract(text string, selected []Sentence) Metadata
}

// PlaceholderMetadata returns the fixed tender placeholders regardless of input.
type PlaceholderMetadata struct{}

func (PlaceholderMetadata) Extract(string, []Sentence) Metadata {
	return Metadata{
		RelevanceToOfficials: []string{"Deadline: 15 Sep", "Tender value: ₹2 Cr"},
		ActionItems:          []string{"Prepare bid", "Upload documents"},
		ConfidenceEstimate:   "medium",
	}
}

// StaticMetadata returns a configured copy of its fields for every document.
type StaticMetadata struct {
	Metadata
}

func (s StaticMetadata) Extract(string, []Sentence) Metadata {
	return Metadata{
		RelevanceToOfficials: slices.Clone(s.RelevanceToOfficials),
		ActionItems:          slices.Clone(s.ActionItems),
		ConfidenceEstimate:   s.ConfidenceEstimate,
	}
}
