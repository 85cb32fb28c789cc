package model_test

import (
	"reflect"
	"testing"

	"github.com/svanberg/goto/internal/model"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Rust", want: "rust"},
		{input: `"quoted"`, want: "quoted"},
		{input: `back\slash`, want: "backslash"},
		{input: "with space", want: "withspace"},
		{input: ", ,", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := model.NormalizeTag(tt.input); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "spaces", input: "rust crates", want: []string{"crates", "rust"}},
		{name: "commas", input: "rust,crates", want: []string{"crates", "rust"}},
		{name: "mixed separators", input: "rust, crates  lang", want: []string{"crates", "lang", "rust"}},
		{name: "duplicates collapsed", input: "git Git GIT", want: []string{"git"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.ParseTags(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeTags(t *testing.T) {
	got := model.MergeTags([]string{"git", "vcs"}, []string{"vcs", "code"})
	want := []string{"code", "git", "vcs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeTags = %v, want %v", got, want)
	}
}
