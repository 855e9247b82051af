// Package pipeline orchestrates per-page QA processing.
//
// For each page record the [Processor] resolves the facsimile dimensions
// through an [iiif.Provider], runs boundary validation and layout statistics,
// and assembles one [Report]. [Processor.Run] streams reports as JSON lines
// to a sink and folds them into batch [Totals].
//
// Dimension-provider failures are absorbed per page: the report is kept with
// sentinel dimensions large enough that all geometry trivially passes
// validation, and the provider's error message is embedded in the report.
// Schema violations are not absorbed; they abort the whole run.
package pipeline
