// Package model provides the data model for OCR-derived page layout records.
//
// A [Page] is the root document. It owns an ordered sequence of [Region]
// values, each region owns paragraphs, each [Paragraph] owns lines, and each
// [Line] owns text segments. The nesting order (region, paragraph, line) is
// fixed; the paragraph and line sequences are required fields, and their
// absence is a schema violation ([ErrMissingParagraphs], [ErrMissingLines]).
//
// # Geometry
//
// Layout geometry is expressed in image pixel space, with the origin at the
// top-left corner and y growing downward:
//
//   - [Quad] - a raw [x, y, width, height] coordinate quad as found on
//     regions, paragraphs, and lines
//   - [BBox] - a named bounding box used for derived geometry (largest
//     paragraph, coverage boxes)
//
// The JSON field names follow the compact page schema of the source corpus:
// "r" for regions, "p" for paragraphs, "l" for lines, "c" for coordinate
// quads, "t" for text segments, and "tx" for a segment's text fragment.
package model
