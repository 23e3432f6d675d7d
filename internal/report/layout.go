package report

import "github.com/nguyentantai21042004/doc-triage/internal/summarizer"

const timeLayout = "2006-01-02 15:04"

// section is one headed block of a report, shared by every rendering.
type section struct {
	heading string
	text    string
	items   []string
}

// field is a labelled one-line value shown after the sections.
type field struct {
	label string
	value string
}

// sections returns the report blocks in display order. Empty lists are omitted.
func sections(sum summarizer.Summary) []section {
	out := []section{{heading: "Summary", text: sum.ShortSummary}}
	if len(sum.RelevanceToOfficials) > 0 {
		out = append(out, section{heading: "Relevance to officials", items: sum.RelevanceToOfficials})
	}
	if len(sum.ActionItems) > 0 {
		out = append(out, section{heading: "Action items", items: sum.ActionItems})
	}
	return out
}

func fields(sum summarizer.Summary) []field {
	var out []field
	if sum.ConfidenceEstimate != "" {
		out = append(out, field{label: "Confidence", value: sum.ConfidenceEstimate})
	}
	return append(out, field{label: "Method", value: sum.Method})
}
