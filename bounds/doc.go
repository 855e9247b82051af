// Package bounds validates page layout geometry against facsimile image
// dimensions.
//
// [Validate] traverses a page's regions, paragraphs, and lines in document
// order and collects an [Entry] for every element whose coordinate quad
// extends past the image canvas. Elements without a coordinate quad are
// skipped for bound-checking, but every line still counts toward the total.
//
// Validation is a pure function of its inputs: repeated calls with the same
// page and dimensions produce identical results.
package bounds
