package voxpdf

import (
	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf/cache"
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Page selection (0-indexed); nil means all pages
	pages []int

	// Parallel extraction; workers 0 means runtime.NumCPU()
	parallel bool
	workers  int

	// Merge hyphen-split words so paragraph Words match Text
	syncWords bool

	cache  *cache.ExtractionCache
	logger *log.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:     nil,
		parallel:  false,
		workers:   0,
		syncWords: false,
	}
}

// clone creates a deep copy of ExtractOptions. The cache and logger are
// shared, not copied.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
