package pipeline

import (
	"github.com/tsawler/folio/bounds"
	"github.com/tsawler/folio/stats"
)

// Manifest records which image manifest a page's dimensions came from.
type Manifest struct {
	IIIFBaseURI string `json:"iiif_base_uri"`
}

// Report is the per-page output record, written as one JSON line.
type Report struct {
	PageID                string         `json:"page_id"`
	Timestamp             string         `json:"ts"`
	FacsimileWidth        int            `json:"facsimile_width"`
	FacsimileHeight       int            `json:"facsimile_height"`
	TotalLines            int            `json:"total_lines"`
	OutOfBoundsLines      []bounds.Entry `json:"out_of_bounds_lines"`
	OutOfBoundsParagraphs []bounds.Entry `json:"out_of_bounds_paragraphs"`
	OutOfBoundsRegions    []bounds.Entry `json:"out_of_bounds_regions"`
	PagesStats            *stats.Record  `json:"pages_stats"`
	CC                    *bool          `json:"cc"`
	IIIFManifest          Manifest       `json:"iiif_manifest"`
	Error                 string         `json:"error,omitempty"`
	GitVersion            string         `json:"git_version,omitempty"`
}

// Totals accumulates batch-level counters across page reports. Addition is
// purely additive, so the fold is order-independent.
type Totals struct {
	TotalLines            int
	OutOfBoundsLines      int
	OutOfBoundsParagraphs int
	OutOfBoundsRegions    int
	TotalOutOfBounds      int
	TotalPages            int
	SkippedPages          int
}

// Add folds one report into the totals.
func (t *Totals) Add(r *Report) {
	t.TotalLines += r.TotalLines
	t.OutOfBoundsLines += len(r.OutOfBoundsLines)
	t.OutOfBoundsParagraphs += len(r.OutOfBoundsParagraphs)
	t.OutOfBoundsRegions += len(r.OutOfBoundsRegions)
	t.TotalOutOfBounds += len(r.OutOfBoundsLines) + len(r.OutOfBoundsParagraphs) + len(r.OutOfBoundsRegions)
	t.TotalPages++
}
