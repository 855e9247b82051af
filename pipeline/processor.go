package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/folio/bounds"
	"github.com/tsawler/folio/iiif"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/stats"
)

// SentinelDimension is substituted for both width and height when the
// dimension provider fails, so that all geometry trivially passes validation
// for that page. The provider's error is embedded in the report instead.
const SentinelDimension = 999999

const (
	gallicaIIIFPrefix   = "https://gallica.bnf.fr/iiif"
	gallicaIIIFv3Prefix = "https://openapi.bnf.fr/iiif/presentation/v3"
)

// Source yields page records in stream order.
type Source interface {
	Next() bool
	Page() *model.Page
	Err() error
}

// Processor runs boundary validation and layout statistics over page
// records. Pages are processed strictly sequentially.
type Processor struct {
	provider iiif.Provider

	// GitVersion, when set, is stamped on every report.
	GitVersion string
	// GallicaV3 patches Gallica IIIF links to the v3 presentation server
	// before dimension resolution.
	GallicaV3 bool

	timestamp string
}

// NewProcessor creates a Processor. The timestamp stamped on reports is
// captured once, here, so all reports of a run share it.
func NewProcessor(provider iiif.Provider) *Processor {
	return &Processor{
		provider:  provider,
		timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ProcessPage produces the QA report for one page. A page without a
// resolvable image reference is skipped: the returned report is nil and the
// page is excluded from batch totals. A schema violation aborts with an
// error; the batch run must not continue past it.
func (p *Processor) ProcessPage(ctx context.Context, page *model.Page) (*Report, error) {
	if p.GallicaV3 && strings.HasPrefix(page.IIIFImgBaseURI, gallicaIIIFPrefix) {
		page.IIIFImgBaseURI = gallicaIIIFv3Prefix + strings.TrimPrefix(page.IIIFImgBaseURI, gallicaIIIFPrefix)
		logrus.Infof("Patched IIIF link for page %s to %s", page.ID, page.IIIFImgBaseURI)
	}

	ref := page.ImageRef()
	if ref == "" {
		logrus.Errorf("No IIIF base URI found for page %s.", page.ID)
		return nil, nil
	}

	var errMsg string
	width, height, err := p.provider.Resolve(ctx, ref)
	if err != nil {
		logrus.Errorf("Failed to fetch image dimensions for %s: %v", page.ID, err)
		width, height = SentinelDimension, SentinelDimension
		errMsg = err.Error()
	} else {
		logrus.Infof("Retrieved dimensions for %s from %s", page.ID, ref)
	}

	validation, err := bounds.Validate(page, float64(width), float64(height))
	if err != nil {
		return nil, fmt.Errorf("pipeline: validating page %s: %w", page.ID, err)
	}

	pageStats, err := stats.Compute(page)
	if err != nil {
		return nil, fmt.Errorf("pipeline: computing statistics for page %s: %w", page.ID, err)
	}

	return &Report{
		PageID:                page.ID,
		Timestamp:             p.timestamp,
		FacsimileWidth:        width,
		FacsimileHeight:       height,
		TotalLines:            validation.TotalLines,
		OutOfBoundsLines:      validation.OutOfBoundsLines,
		OutOfBoundsParagraphs: validation.OutOfBoundsParagraphs,
		OutOfBoundsRegions:    validation.OutOfBoundsRegions,
		PagesStats:            pageStats,
		CC:                    page.CC,
		IIIFManifest:          Manifest{IIIFBaseURI: ref},
		Error:                 errMsg,
		GitVersion:            p.GitVersion,
	}, nil
}

// Run processes every page from the source, writes one JSON line per report
// to out, and returns the batch totals. The first schema violation or source
// error aborts the run.
func (p *Processor) Run(ctx context.Context, src Source, out io.Writer) (*Totals, error) {
	runID := uuid.NewString()
	logrus.Infof("Starting line boundary check (run %s)...", runID)

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	totals := &Totals{}
	for src.Next() {
		report, err := p.ProcessPage(ctx, src.Page())
		if err != nil {
			return nil, err
		}
		if report == nil {
			totals.SkippedPages++
			continue
		}

		if err := enc.Encode(report); err != nil {
			return nil, fmt.Errorf("pipeline: writing report for page %s: %w", report.PageID, err)
		}
		totals.Add(report)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	logrus.Infof("Run %s summary: %d lines, %d out-of-bounds lines, %d out-of-bounds paragraphs,"+
		" %d out-of-bounds regions, %d total out-of-bounds, %d total pages, %d skipped",
		runID, totals.TotalLines, totals.OutOfBoundsLines, totals.OutOfBoundsParagraphs,
		totals.OutOfBoundsRegions, totals.TotalOutOfBounds, totals.TotalPages, totals.SkippedPages)

	return totals, nil
}
