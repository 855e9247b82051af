// Package folio provides a fluent API for validating OCR-derived page layout
// geometry against facsimile image bounds and computing per-page layout
// statistics.
//
// Basic usage:
//
//	totals, err := folio.Check("pages/").Run(ctx, outFile)
//	if err != nil {
//	    // handle error
//	}
//	log.Printf("%d pages, %d out-of-bounds elements", totals.TotalPages, totals.TotalOutOfBounds)
//
// With options:
//
//	totals, err := folio.Check("pages/").
//	    Shuffle().
//	    GallicaV3().
//	    GitVersion("v1.4.0").
//	    Run(ctx, outFile)
//
// For advanced use cases, the lower-level bounds, stats, and pipeline
// packages are also available.
package folio

import (
	"context"
	"io"

	"github.com/tsawler/folio/iiif"
	"github.com/tsawler/folio/pipeline"
	"github.com/tsawler/folio/source"
)

// Checker provides a fluent interface for configuring and running a QA pass
// over page bundles. Each configuration method returns a new Checker
// instance, allowing method chaining.
type Checker struct {
	path    string
	options CheckOptions
}

// Check prepares a QA run over a page bundle file or a directory of bundles.
//
// Example:
//
//	totals, err := folio.Check("1900/pages.jsonl.bz2").Run(ctx, os.Stdout)
func Check(path string) *Checker {
	return &Checker{
		path:    path,
		options: defaultOptions(),
	}
}

// clone creates a copy of the Checker with a copy of its options.
func (c *Checker) clone() *Checker {
	return &Checker{
		path:    c.path,
		options: c.options.clone(),
	}
}

// Shuffle randomizes the order of bundle files before streaming.
func (c *Checker) Shuffle() *Checker {
	newC := c.clone()
	newC.options.shuffle = true
	return newC
}

// GallicaV3 patches Gallica IIIF links to the v3 presentation server before
// dimension resolution.
func (c *Checker) GallicaV3() *Checker {
	newC := c.clone()
	newC.options.gallicaV3 = true
	return newC
}

// GitVersion stamps every report with the given version tag.
func (c *Checker) GitVersion(version string) *Checker {
	newC := c.clone()
	newC.options.gitVersion = version
	return newC
}

// Provider overrides the dimension provider. By default an IIIF HTTP client
// with Gallica pagination fallback is used; pass an [iiif.FileProvider] for
// fully local corpora.
func (c *Checker) Provider(p iiif.Provider) *Checker {
	newC := c.clone()
	newC.options.provider = p
	return newC
}

// Run streams every page record, writes one JSON report line per processed
// page to out, and returns the batch totals.
func (c *Checker) Run(ctx context.Context, out io.Writer) (*pipeline.Totals, error) {
	sc, err := source.New(c.path, source.Options{Shuffle: c.options.shuffle})
	if err != nil {
		return nil, err
	}

	provider := c.options.provider
	if provider == nil {
		provider = iiif.NewClient()
	}

	processor := pipeline.NewProcessor(provider)
	processor.GitVersion = c.options.gitVersion
	processor.GallicaV3 = c.options.gallicaV3

	return processor.Run(ctx, sc, out)
}
