package expr

import (
	"reflect"
	"testing"
)

func TestExtractSpans(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		left      string
		right     string
		trimLeft  int
		trimRight int
		want      []string
	}{
		{
			name:  "two bracketed groups",
			input: "(a[b]) > (c[d])",
			left:  "(",
			right: ")",
			want:  []string{"a[b]", "c[d]"},
		},
		{
			name:  "doubled right marker collapses to one",
			input: "(a)) (b)",
			left:  "(",
			right: ")",
			want:  []string{"a", "b"},
		},
		{
			name:  "right marker without preceding left is dropped",
			input: ")a(b)",
			left:  "(",
			right: ")",
			want:  []string{"b"},
		},
		{
			name:  "no markers",
			input: "a > b",
			left:  "(",
			right: ")",
			want:  nil,
		},
		{
			name:  "square brackets",
			input: "Y[X=1] == Y[X=0]",
			left:  "[",
			right: "]",
			want:  []string{"X=1", "X=0"},
		},
		{
			name:      "trim offsets shrink the extracted region",
			input:     "[abc]",
			left:      "[",
			right:     "]",
			trimLeft:  1,
			trimRight: -1,
			want:      []string{"b"},
		},
		{
			name:  "nesting pairs with nearest preceding left, not balance",
			input: "(a(b)c)",
			left:  "(",
			right: ")",
			want:  []string{"b", "b)c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := ExtractSpans(tt.input, tt.left, tt.right, tt.trimLeft, tt.trimRight)

			var got []string
			for _, s := range spans {
				if s.Text != tt.input[s.Start:s.End] {
					t.Errorf("span text %q does not match offsets [%d:%d]", s.Text, s.Start, s.End)
				}
				got = append(got, s.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSpans(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexAll(t *testing.T) {
	got := indexAll("aXbXc", "X")
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("indexAll = %v, want %v", got, want)
	}

	if positions := indexAll("abc", "X"); positions != nil {
		t.Errorf("indexAll with no match = %v, want nil", positions)
	}
}
