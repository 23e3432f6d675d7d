package extractive

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"punctuation attached", "Hello, world! It's 2024", []string{"hello", "world", "it's", "2024"}},
		{"case folded", "Tender TENDER tender", []string{"tender", "tender", "tender"}},
		{"accented letters", "Café CRÈME", []string{"café", "crème"}},
		{"only punctuation", " -- ;; ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountFrequenciesAccumulatesAcrossSentences(t *testing.T) {
	sentences := []Sentence{
		{Index: 0, Text: "The bid deadline"},
		{Index: 1, Text: "the BID"},
		{Index: 2, Text: "Submit the bid"},
	}

	got := CountFrequencies(sentences)
	want := FrequencyTable{
		"the":      3,
		"bid":      3,
		"deadline": 1,
		"submit":   1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountFrequencies() = %v, want %v", got, want)
	}
}

func TestScoreSentences(t *testing.T) {
	sentences := []Sentence{
		{Index: 0, Text: "bid bid"},
		{Index: 1, Text: "deadline"},
		{Index: 2, Text: "unknown words"},
	}
	table := FrequencyTable{"bid": 2, "deadline": 5}

	got := ScoreSentences(sentences, table)
	wantScores := []int{4, 5, 0}
	if len(got) != len(wantScores) {
		t.Fatalf("ScoreSentences() returned %d sentences, want %d", len(got), len(wantScores))
	}
	for i, s := range got {
		if s.Index != i {
			t.Errorf("sentence %d has Index %d, order not preserved", i, s.Index)
		}
		if s.Score != wantScores[i] {
			t.Errorf("sentence %d score = %d, want %d", i, s.Score, wantScores[i])
		}
	}
}
