package extractive

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single terminator", "One. Two. Three.", []string{"One", "Two", "Three"}},
		{"terminator runs", "Wait... what?! Yes.", []string{"Wait", "what", "Yes"}},
		{"no terminator", "  Hello world  ", []string{"Hello world"}},
		{"blank segments dropped", "A.  .\n. B!", []string{"A", "B"}},
		{"only terminators", "...!?", []string{}},
		{"keeps case and inner punctuation", "Bid, due Monday; see annex: A-1. Done", []string{"Bid, due Monday; see annex: A-1", "Done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitSentences(tt.text)
			if err != nil {
				t.Fatalf("SplitSentences() error = %v", err)
			}

			texts := make([]string, 0, len(got))
			for i, s := range got {
				if s.Index != i {
					t.Errorf("sentence %d has Index %d", i, s.Index)
				}
				texts = append(texts, s.Text)
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("SplitSentences() = %q, want %q", texts, tt.want)
			}
		})
	}
}

func TestSplitSentencesEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := SplitSentences(text); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("SplitSentences(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}
