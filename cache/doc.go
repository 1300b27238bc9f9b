// Package cache holds per-page extraction results so repeated requests for
// the same page skip re-extraction.
//
// There is no package-level cache. Create one with [New] and pass it to
// the components that should share it:
//
//	c := cache.New()
//	results, err := extract.Parallel(ctx, extract.ReaderOpener, path, pages, extract.WithCache(c))
package cache
