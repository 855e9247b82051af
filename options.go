package folio

import "github.com/tsawler/folio/iiif"

// CheckOptions holds configuration for a QA run.
type CheckOptions struct {
	// Input handling
	shuffle bool

	// Dimension resolution
	provider  iiif.Provider
	gallicaV3 bool

	// Report stamping
	gitVersion string
}

// defaultOptions returns the default check options.
func defaultOptions() CheckOptions {
	return CheckOptions{
		shuffle:    false,
		provider:   nil, // nil means the default IIIF client
		gallicaV3:  false,
		gitVersion: "",
	}
}

// clone creates a copy of CheckOptions.
func (o CheckOptions) clone() CheckOptions {
	return CheckOptions{
		shuffle:    o.shuffle,
		provider:   o.provider,
		gallicaV3:  o.gallicaV3,
		gitVersion: o.gitVersion,
	}
}
