package extractive

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const tenderText = "The bid deadline is near. The bid deadline is near. Submit documents now."

func TestSummarizeRoundTrip(t *testing.T) {
	got, err := Summarize(tenderText, 1)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if got.ShortSummary != "The bid deadline is near." {
		t.Errorf("ShortSummary = %q", got.ShortSummary)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   "} {
		for _, n := range []int{0, 1, 5} {
			if _, err := Summarize(text, n); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Summarize(%q, %d) error = %v, want ErrEmptyInput", text, n, err)
			}
		}
	}
}

func TestSummarizeZeroSelection(t *testing.T) {
	got, err := Summarize("A. B. C.", 0)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ShortSummary != "." {
		t.Errorf("ShortSummary = %q, want %q", got.ShortSummary, ".")
	}
}

func TestSummarizeTrimsSentenceWhitespace(t *testing.T) {
	got, err := Summarize("The bid deadline is near.  The bid is open.\n\t", 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ShortSummary != "The bid deadline is near. The bid is open." {
		t.Errorf("ShortSummary = %q, want single spaces between sentences", got.ShortSummary)
	}
}

func TestSummarizeTieStability(t *testing.T) {
	got, err := Summarize("Red fox. Blue cat.", 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ShortSummary != "Red fox. Blue cat." {
		t.Errorf("ShortSummary = %q, want document order for tied sentences", got.ShortSummary)
	}
}

func TestSummarizeRankedOrder(t *testing.T) {
	// sun=3 rises=1 moon=1 sets=1 gives scores 4, 2, 6.
	got, err := Summarize("Sun rises. Moon sets. Sun sun.", 3)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ShortSummary != "Sun sun. Sun rises. Moon sets." {
		t.Errorf("ShortSummary = %q", got.ShortSummary)
	}
}

func TestSummarizeMonotonicSalience(t *testing.T) {
	text := "Budget tender note. Tender tender tender review."
	got, err := Summarize(text, 1)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ShortSummary != "Tender tender tender review." {
		t.Errorf("ShortSummary = %q, want the dense sentence", got.ShortSummary)
	}
}

func TestSummarizeLengthBound(t *testing.T) {
	text := "One fish. Two fish. Red fish. Blue fish."
	for _, n := range []int{0, 1, 2, 4, 9} {
		got, err := Summarize(text, n)
		if err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}

		joined := strings.TrimSuffix(got.ShortSummary, ".")
		count := 0
		if joined != "" {
			count = len(strings.Split(joined, ". "))
		}
		if want := min(n, 4); count != want {
			t.Errorf("n=%d: %d sentences in %q, want %d", n, count, got.ShortSummary, want)
		}
	}
}

func TestSummarizeTerminatorNormalization(t *testing.T) {
	for _, text := range []string{"Done!", "Really?? Yes...", "no terminator at all", "Stop. Go."} {
		got, err := Summarize(text, 3)
		if err != nil {
			t.Fatalf("Summarize(%q) error = %v", text, err)
		}
		if !strings.HasSuffix(got.ShortSummary, ".") || strings.HasSuffix(got.ShortSummary, "..") {
			t.Errorf("Summarize(%q) = %q, want exactly one trailing '.'", text, got.ShortSummary)
		}
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	text := "Alpha beta gamma. Beta gamma. Gamma. Delta epsilon alpha! Beta?"
	first, err := Summarize(text, 3)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([]SummaryResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Summarize(text, 3)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, first) {
			t.Errorf("run %d = %+v, want %+v", i, got, first)
		}
	}
}

type recordingMetadata struct {
	text     string
	selected []Sentence
}

func (r *recordingMetadata) Extract(text string, selected []Sentence) Metadata {
	r.text = text
	r.selected = selected
	return Metadata{ConfidenceEstimate: "high"}
}

func TestEngineWithMetadata(t *testing.T) {
	rec := &recordingMetadata{}
	engine := New(WithMetadata(rec))

	got, err := engine.Summarize(tenderText, 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if got.ConfidenceEstimate != "high" {
		t.Errorf("ConfidenceEstimate = %q, want high", got.ConfidenceEstimate)
	}
	if rec.text != tenderText {
		t.Errorf("extractor received %q", rec.text)
	}
	if len(rec.selected) != 2 || rec.selected[0].Index != 0 || rec.selected[1].Index != 1 {
		t.Errorf("extractor received selection %+v", rec.selected)
	}
}

func TestWithMetadataIgnoresNil(t *testing.T) {
	got, err := New(WithMetadata(nil)).Summarize(tenderText, 1)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.ConfidenceEstimate != "medium" {
		t.Errorf("ConfidenceEstimate = %q, want placeholder value", got.ConfidenceEstimate)
	}
}
