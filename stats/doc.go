// Package stats computes per-page layout statistics for OCR-derived page
// records.
//
// [Compute] produces a [Record] with structural counts, averages, descriptive
// statistics over line widths and heights, the largest paragraph's bounding
// box, and per-paragraph coverage percentages. As a side effect it annotates
// every line with its derived text (see [ExtractLineText]); this is a
// one-time annotation, written before the emptiness and coverage steps that
// read it.
//
// [Describe] is the generic descriptive-statistics calculator used for the
// width and height distributions. It reports the sample (n-1 denominator)
// variance and standard deviation, Pearson's second skewness coefficient,
// and excess kurtosis.
package stats
