package extractive

import "strings"

const summarySeparator = ". "

// Assemble joins the selected sentences in rank order and attaches the
// auxiliary fields. The summary always ends with exactly one '.', so an
// empty selection yields ".".
func Assemble(selected []Sentence, meta Metadata) SummaryResult {
	texts := make([]string, 0, len(selected))
	for _, s := range selected {
		texts = append(texts, s.Text)
	}

	summary := strings.Join(texts, summarySeparator)
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}

	return SummaryResult{
		ShortSummary:         summary,
		RelevanceToOfficials: meta.RelevanceToOfficials,
		ActionItems:          meta.ActionItems,
		ConfidenceEstimate:   meta.ConfidenceEstimate,
	}
}
