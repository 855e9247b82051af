package stats

import (
	"strings"

	"github.com/tsawler/folio/model"
)

// ExtractLineText joins the non-empty text fragments of a line's segments
// with a single space and trims the result. Returns "" when the line has no
// segments or all fragments are empty.
func ExtractLineText(line *model.Line) string {
	if len(line.Segments) == 0 {
		return ""
	}

	parts := make([]string, 0, len(line.Segments))
	for _, seg := range line.Segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
