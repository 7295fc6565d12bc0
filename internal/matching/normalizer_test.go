package matching

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "lowercases and trims", input: "  Plumbing  ", expect: "plumbing"},
		{name: "collapses inner whitespace", input: "Pipe \t\n  Fitting", expect: "pipe fitting"},
		{name: "folds full-width letters", input: "ＧＯ Lang", expect: "go lang"},
		{name: "empty", input: "   ", expect: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Fix the LEAKING pipe, fix the sink; install new pipe-work!")
	want := []string{"leaking", "pipe", "sink", "install", "pipe", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywordsOrdersByFrequencyThenAppearance(t *testing.T) {
	got := TopKeywords("wiring panel wiring socket panel wiring outlet light", 3)
	want := []string{"wiring", "panel", "socket"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopKeywords() = %v, want %v", got, want)
	}

	if got := TopKeywords("", 5); len(got) != 0 {
		t.Fatalf("expected no keywords for empty text, got %v", got)
	}
	if got := TopKeywords("some words here", 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" Plumbing,  Pipe   Fitting ,, ")
	want := []string{"plumbing", "pipe fitting"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSkills() = %v, want %v", got, want)
	}
}

func TestSynonymTableExpand(t *testing.T) {
	table := NewSynonymTable(map[string][]string{
		"Plumbing": {"Pipe Fitting", "pipework"},
		"welding":  {"metalwork"},
	})

	got := table.Expand([]string{"plumbing", "tiling"})
	want := []string{"pipe fitting", "pipework", "plumbing", "tiling"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand() = %v, want %v", got, want)
	}

	if got := table.Expand(nil); len(got) != 0 {
		t.Fatalf("expected empty expansion, got %v", got)
	}
}

func TestRatio(t *testing.T) {
	if r := Ratio("", ""); r != 1 {
		t.Fatalf("Ratio of two empty strings = %v, want 1", r)
	}
	if r := Ratio("abcd", "abcd"); r != 1 {
		t.Fatalf("Ratio of identical strings = %v, want 1", r)
	}
	if r := Ratio("abcd", "wxyz"); r != 0 {
		t.Fatalf("Ratio of disjoint strings = %v, want 0", r)
	}
	if r := Ratio("plumber", "plumbing"); r <= 0.5 || r >= 1 {
		t.Fatalf("Ratio(plumber, plumbing) = %v, want between 0.5 and 1", r)
	}
}
