package stats

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/folio/model"
)

// Coverage reports how much of a paragraph's bounding box is covered by its
// lines' areas, as a percentage.
type Coverage struct {
	Coords          model.BBox `json:"coords"`
	CoveragePercent float64    `json:"coverage_percent"`
}

// Record holds the computed statistics for one page.
type Record struct {
	NumRegions             int         `json:"num_regions"`
	NumParagraphs          int         `json:"num_paragraphs"`
	NumLines               int         `json:"num_lines"`
	NumEmptyLines          int         `json:"num_empty_lines"`
	AvgParagraphsPerRegion float64     `json:"avg_paragraphs_per_region"`
	AvgLinesPerRegion      float64     `json:"avg_lines_per_region"`
	AvgLinesPerParagraph   float64     `json:"avg_lines_per_paragraph"`
	LineWidthStats         Descriptive `json:"line_width_stats"`
	LineHeightStats        Descriptive `json:"line_height_stats"`
	LargestParagraph       *model.BBox `json:"largest_paragraph,omitempty"`
	ParagraphCoverages     []Coverage  `json:"paragraph_coverages"`
}

// Compute calculates layout statistics for a page. It annotates every line
// with its derived text before counting empty lines or emitting coverage
// diagnostics. A region without its paragraph sequence or a paragraph without
// its line sequence is a schema violation and aborts the computation.
func Compute(page *model.Page) (*Record, error) {
	if err := checkSchema(page); err != nil {
		return nil, err
	}

	reportReversedLines(page)

	// Derived text must be written before the emptiness count and the
	// low-coverage diagnostics that read it.
	for ri := range page.Regions {
		for pi := range page.Regions[ri].Paragraphs {
			lines := page.Regions[ri].Paragraphs[pi].Lines
			for li := range lines {
				lines[li].Text = ExtractLineText(&lines[li])
			}
		}
	}

	record := &Record{
		NumRegions:         len(page.Regions),
		ParagraphCoverages: []Coverage{},
	}

	for _, region := range page.Regions {
		record.NumParagraphs += len(region.Paragraphs)
		for _, paragraph := range region.Paragraphs {
			record.NumLines += len(paragraph.Lines)
			for _, line := range paragraph.Lines {
				if line.Text == "" {
					record.NumEmptyLines++
				}
			}
		}
	}

	if record.NumRegions > 0 {
		record.AvgParagraphsPerRegion = round2(float64(record.NumParagraphs) / float64(record.NumRegions))
		record.AvgLinesPerRegion = round2(float64(record.NumLines) / float64(record.NumRegions))
	}
	if record.NumParagraphs > 0 {
		record.AvgLinesPerParagraph = round2(float64(record.NumLines) / float64(record.NumParagraphs))
	}

	// Widths come from every coordinate-bearing line; heights only from
	// coordinate-bearing lines that also carry text segments. The asymmetry
	// is intentional and preserved from the source system.
	var lineWidths, lineHeights []float64
	for _, region := range page.Regions {
		for _, paragraph := range region.Paragraphs {
			for _, line := range paragraph.Lines {
				if !line.Coord.Valid() {
					continue
				}
				lineWidths = append(lineWidths, line.Coord.Width())
				if len(line.Segments) > 0 {
					lineHeights = append(lineHeights, line.Coord.Height())
				}
			}
		}
	}
	record.LineWidthStats = Describe(lineWidths)
	record.LineHeightStats = Describe(lineHeights)

	record.LargestParagraph = largestParagraphBox(page)
	if record.LargestParagraph != nil {
		logrus.Infof("Largest paragraph coordinates: %+v", *record.LargestParagraph)
	}

	record.ParagraphCoverages = paragraphCoverages(page)

	return record, nil
}

func checkSchema(page *model.Page) error {
	for ri, region := range page.Regions {
		if region.Paragraphs == nil {
			return fmt.Errorf("region %d: %w", ri, model.ErrMissingParagraphs)
		}
		for pi, paragraph := range region.Paragraphs {
			if paragraph.Lines == nil {
				return fmt.Errorf("region %d paragraph %d: %w", ri, pi, model.ErrMissingLines)
			}
		}
	}
	return nil
}

// reportReversedLines warns about consecutive coordinate-bearing lines whose
// vertical order is inverted: the later line's bottom edge sits above the
// earlier line's top edge. Diagnostic only.
func reportReversedLines(page *model.Page) {
	paragraphCounter := 0
	for _, region := range page.Regions {
		for _, paragraph := range region.Paragraphs {
			paragraphCounter++
			var withCoords []model.Quad
			for _, line := range paragraph.Lines {
				if line.Coord.Valid() {
					withCoords = append(withCoords, line.Coord)
				}
			}
			for idx := 1; idx < len(withCoords); idx++ {
				prev, curr := withCoords[idx-1], withCoords[idx]
				if curr.Bottom() < prev.Y() {
					logrus.Warnf(
						"Paragraph %d has reversed line order between lines %d and %d: prev top y=%v, next bottom y=%v",
						paragraphCounter, idx-1, idx, prev.Y(), curr.Bottom())
				}
			}
		}
	}
}

// lineBoundingBox returns the bounding box of a paragraph's coordinate-bearing
// lines, or false when the paragraph has none.
func lineBoundingBox(paragraph *model.Paragraph) (model.BBox, bool) {
	found := false
	var minX, minY, maxX, maxY float64
	for _, line := range paragraph.Lines {
		if !line.Coord.Valid() {
			continue
		}
		c := line.Coord
		if !found {
			minX, minY, maxX, maxY = c.X(), c.Y(), c.Right(), c.Bottom()
			found = true
			continue
		}
		if c.X() < minX {
			minX = c.X()
		}
		if c.Y() < minY {
			minY = c.Y()
		}
		if c.Right() > maxX {
			maxX = c.Right()
		}
		if c.Bottom() > maxY {
			maxY = c.Bottom()
		}
	}
	if !found {
		return model.BBox{}, false
	}
	return model.NewBBox(minX, minY, maxX-minX, maxY-minY), true
}

// largestParagraphBox finds the paragraph bounding box with the largest area.
// Ties keep the first-seen box; paragraphs with no coordinate-bearing lines
// are skipped. Returns nil when no paragraph qualifies.
func largestParagraphBox(page *model.Page) *model.BBox {
	var largest *model.BBox
	maxArea := 0.0
	for _, region := range page.Regions {
		for pi := range region.Paragraphs {
			box, ok := lineBoundingBox(&region.Paragraphs[pi])
			if !ok {
				continue
			}
			if area := box.Area(); area > maxArea {
				maxArea = area
				b := box
				largest = &b
			}
		}
	}
	return largest
}

func paragraphCoverages(page *model.Page) []Coverage {
	coverages := []Coverage{}
	paragraphCounter := 0
	for _, region := range page.Regions {
		for pi := range region.Paragraphs {
			paragraph := &region.Paragraphs[pi]
			paragraphCounter++

			box, ok := lineBoundingBox(paragraph)
			if !ok {
				continue
			}

			var totalLineArea float64
			for _, line := range paragraph.Lines {
				if line.Coord.Valid() {
					totalLineArea += line.Coord.Area()
				}
			}

			coverage := 0.0
			if boundingArea := box.Area(); boundingArea > 0 {
				coverage = round2(totalLineArea / boundingArea * 100)
			}

			if coverage < 80 {
				logrus.Warnf("Paragraph %d coverage below 80%%: %v%% at x=%v, y=%v, width=%v, height=%v",
					paragraphCounter, coverage, box.X, box.Y, box.Width, box.Height)
			}
			if coverage < 70 {
				logrus.Debugf("Paragraph %d coverage below 70%%, emitting line texts:", paragraphCounter)
				for _, line := range paragraph.Lines {
					logrus.Debug(line.Text)
				}
			}

			coverages = append(coverages, Coverage{Coords: box, CoveragePercent: coverage})
		}
	}
	return coverages
}
