package bounds

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/folio/model"
)

// Entry describes one element whose coordinate quad extends past the image
// canvas. Seq is the element's index within its parent sequence. POf is the
// sticky provenance tag in effect when the element was visited. The four
// excess amounts are clamped at zero per direction.
type Entry struct {
	Seq          int        `json:"seq"`
	Coord        model.Quad `json:"coord"`
	POf          string     `json:"pOf"`
	ExcessWidth  float64    `json:"excess_width"`
	ExcessHeight float64    `json:"excess_height"`
	ExcessX      float64    `json:"excess_x"`
	ExcessY      float64    `json:"excess_y"`
}

// Result holds the outcome of validating one page.
type Result struct {
	TotalLines            int     `json:"total_lines"`
	OutOfBoundsLines      []Entry `json:"out_of_bounds_lines"`
	OutOfBoundsParagraphs []Entry `json:"out_of_bounds_paragraphs"`
	OutOfBoundsRegions    []Entry `json:"out_of_bounds_regions"`
}

// Validate checks that all regions, paragraphs, and lines of the page lie
// within an image of imageWidth x imageHeight pixels. A quad touching an edge
// exactly is in bounds. A region without its paragraph sequence or a
// paragraph without its line sequence is a schema violation and aborts
// validation for the page.
func Validate(page *model.Page, imageWidth, imageHeight float64) (*Result, error) {
	result := &Result{
		OutOfBoundsLines:      []Entry{},
		OutOfBoundsParagraphs: []Entry{},
		OutOfBoundsRegions:    []Entry{},
	}

	// Provenance is sticky: once a region supplies pOf, it applies to that
	// region and all subsequent ones until overwritten.
	var currentPOf string

	for regionSeq, region := range page.Regions {
		if region.POf != "" {
			currentPOf = region.POf
		}

		if region.Coord.Valid() && !region.Coord.InBounds(imageWidth, imageHeight) {
			logrus.Errorf("Region out of bounds: %v", region.Coord)
			result.OutOfBoundsRegions = append(result.OutOfBoundsRegions,
				newEntry(regionSeq, region.Coord, currentPOf, imageWidth, imageHeight))
		}

		if region.Paragraphs == nil {
			return nil, fmt.Errorf("region %d: %w", regionSeq, model.ErrMissingParagraphs)
		}

		for paragraphSeq, paragraph := range region.Paragraphs {
			if paragraph.Coord.Valid() && !paragraph.Coord.InBounds(imageWidth, imageHeight) {
				logrus.Errorf("Paragraph out of bounds: %v", paragraph.Coord)
				result.OutOfBoundsParagraphs = append(result.OutOfBoundsParagraphs,
					newEntry(paragraphSeq, paragraph.Coord, currentPOf, imageWidth, imageHeight))
			}

			if paragraph.Lines == nil {
				return nil, fmt.Errorf("region %d paragraph %d: %w",
					regionSeq, paragraphSeq, model.ErrMissingLines)
			}

			for lineSeq, line := range paragraph.Lines {
				result.TotalLines++
				if line.Coord.Valid() && !line.Coord.InBounds(imageWidth, imageHeight) {
					logrus.Errorf("Line out of bounds: %v", line.Coord)
					result.OutOfBoundsLines = append(result.OutOfBoundsLines,
						newEntry(lineSeq, line.Coord, currentPOf, imageWidth, imageHeight))
				}
			}
		}
	}

	return result, nil
}

func newEntry(seq int, q model.Quad, pOf string, w, h float64) Entry {
	return Entry{
		Seq:          seq,
		Coord:        q,
		POf:          pOf,
		ExcessWidth:  max0(q.Right() - w),
		ExcessHeight: max0(q.Bottom() - h),
		ExcessX:      max0(-q.X()),
		ExcessY:      max0(-q.Y()),
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
