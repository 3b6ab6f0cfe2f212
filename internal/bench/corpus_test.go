package bench

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParseHeader(t *testing.T) {
	input := "# Source: https://example.com/talk\n# Speaker: Ada\n# Note: ignored\n\nHello world.\n"

	h, body, err := ParseHeader(input)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	want := Header{Source: "https://example.com/talk", Speaker: "Ada"}
	if h != want {
		t.Errorf("header = %+v, want %+v", h, want)
	}
	if body != "Hello world." {
		t.Errorf("body = %q, want %q", body, "Hello world.")
	}
}

func TestParseHeader_MissingSource(t *testing.T) {
	_, _, err := ParseHeader("# Title: Untitled\n\nHello.")
	if !errors.Is(err, errMissingSource) {
		t.Errorf("expected errMissingSource, got: %v", err)
	}
}

func TestRules_Sentences(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		input string
		want  []Sentence
	}{
		{
			name:  "default rules skip abbreviations",
			rules: DefaultRules(),
			input: "Dr. Jones called. She left",
			want: []Sentence{
				{Text: "Dr. Jones called.", Start: 0, End: 17},
				{Text: "She left", Start: 18, End: 26},
			},
		},
		{
			name:  "default rules need trailing space",
			rules: DefaultRules(),
			input: "Pi is 3.14 exactly!",
			want: []Sentence{
				{Text: "Pi is 3.14 exactly!", Start: 0, End: 19},
			},
		},
		{
			name:  "configured terminators",
			rules: Rules{Terminators: []string{";"}, RequireSpace: true},
			input: "one; two. three",
			want: []Sentence{
				{Text: "one;", Start: 0, End: 4},
				{Text: "two. three", Start: 5, End: 15},
			},
		},
		{
			name:  "cjk terminators without spaces",
			rules: Rules{Terminators: []string{"。", "？"}},
			input: "晴れ。雨？",
			want: []Sentence{
				{Text: "晴れ。", Start: 0, End: 9},
				{Text: "雨？", Start: 9, End: 15},
			},
		},
		{
			name:  "longest terminator wins",
			rules: Rules{Terminators: []string{"?", "?!"}, RequireSpace: true},
			input: "Really?! Yes",
			want: []Sentence{
				{Text: "Really?!", Start: 0, End: 8},
				{Text: "Yes", Start: 9, End: 12},
			},
		},
		{
			name:  "empty text",
			rules: DefaultRules(),
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rules.Sentences(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sentences() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadCorpus_Mixed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_talk.txt", "# Source: https://example.com\n\nOne; two. Three")
	writeFile(t, dir, "b_tree.conllu", sampleCoNLLU)
	writeFile(t, dir, "README.md", "# Readme")
	writeFile(t, dir, "notes.json", "{}")
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	rules := Rules{Terminators: []string{";"}, RequireSpace: true}
	talks, err := LoadCorpus(dir, rules)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(talks) != 2 {
		t.Fatalf("got %d talks, want 2", len(talks))
	}

	txt, tree := talks[0], talks[1]
	if txt.ID != "a_talk" || tree.ID != "b_tree" {
		t.Errorf("IDs = %q, %q; want a_talk, b_tree", txt.ID, tree.ID)
	}
	// The transcript follows the given rules, the treebank its own split.
	if len(txt.Sentences) != 2 {
		t.Errorf("transcript: got %d sentences, want 2", len(txt.Sentences))
	}
	if len(tree.Sentences) != 2 {
		t.Errorf("treebank: got %d sentences, want 2", len(tree.Sentences))
	}
}

func TestLoadCorpus_BadTranscript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.txt", "no header here.")

	_, err := LoadCorpus(dir, DefaultRules())
	if !errors.Is(err, errMissingSource) {
		t.Errorf("expected errMissingSource, got: %v", err)
	}
}

func TestLoadCorpus_Sample(t *testing.T) {
	talks, err := LoadCorpus("../../testdata/ted", DefaultRules())
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(talks) == 0 {
		t.Fatal("expected the bundled sample corpus to contain talks")
	}
	for _, talk := range talks {
		if len(talk.Sentences) == 0 {
			t.Errorf("%s: no gold sentences", talk.ID)
		}
	}
}
