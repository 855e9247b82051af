package stats

import (
	"testing"

	"github.com/tsawler/folio/model"
)

func TestExtractLineText(t *testing.T) {
	tests := []struct {
		name string
		line model.Line
		want string
	}{
		{
			"joins fragments with single space",
			model.Line{Segments: []model.TextSegment{{Text: "Hello"}, {Text: "world"}}},
			"Hello world",
		},
		{
			"skips empty fragments",
			model.Line{Segments: []model.TextSegment{{Text: "a"}, {}, {Text: "b"}}},
			"a b",
		},
		{
			"all fragments empty",
			model.Line{Segments: []model.TextSegment{{}, {}}},
			"",
		},
		{
			"no segment field",
			model.Line{},
			"",
		},
		{
			"single fragment",
			model.Line{Segments: []model.TextSegment{{Text: "solo"}}},
			"solo",
		},
		{
			"trims surrounding whitespace",
			model.Line{Segments: []model.TextSegment{{Text: " leading"}, {Text: "trailing "}}},
			"leading trailing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLineText(&tt.line); got != tt.want {
				t.Errorf("ExtractLineText() = %q, want %q", got, tt.want)
			}
		})
	}
}
