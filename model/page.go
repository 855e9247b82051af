package model

import "errors"

// Schema violations. The paragraph and line sequences are required fields of
// the page schema; a record missing one of them cannot be processed.
var (
	// ErrMissingParagraphs indicates a region without its paragraph sequence.
	ErrMissingParagraphs = errors.New("model: region is missing required paragraph sequence")
	// ErrMissingLines indicates a paragraph without its line sequence.
	ErrMissingLines = errors.New("model: paragraph is missing required line sequence")
)

// Page represents a single OCR-derived page record.
type Page struct {
	ID             string   `json:"id"`
	IIIFImgBaseURI string   `json:"iiif_img_base_uri,omitempty"`
	IIIF           string   `json:"iiif,omitempty"` // legacy field name
	CC             *bool    `json:"cc"`
	Regions        []Region `json:"r"`
}

// ImageRef returns the IIIF base URI for the page's facsimile image,
// preferring the current field name over the legacy one. Returns "" when the
// page carries no image reference.
func (p *Page) ImageRef() string {
	if p.IIIFImgBaseURI != "" {
		return p.IIIFImgBaseURI
	}
	return p.IIIF
}

// Region is a top-level layout element of a page. POf, when set, marks the
// physical source the region belongs to; the tag is sticky across subsequent
// regions during traversal.
type Region struct {
	Coord      Quad        `json:"c,omitempty"`
	POf        string      `json:"pOf,omitempty"`
	Paragraphs []Paragraph `json:"p"`
}

// Paragraph is a layout element grouping an ordered sequence of lines.
type Paragraph struct {
	Coord Quad   `json:"c,omitempty"`
	Lines []Line `json:"l"`
}

// Line is a single text line. Text is a derived field: it is empty on input
// and written once during statistics computation.
type Line struct {
	Coord    Quad          `json:"c,omitempty"`
	Segments []TextSegment `json:"t,omitempty"`
	Text     string        `json:"text,omitempty"`
}

// TextSegment is one token of a line.
type TextSegment struct {
	Text string `json:"tx,omitempty"`
}
