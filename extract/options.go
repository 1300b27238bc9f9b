package extract

import (
	"io"
	"runtime"

	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf/cache"
)

// Option configures extraction
type Option func(*config)

type config struct {
	workers   int
	cache     *cache.ExtractionCache
	logger    *log.Logger
	syncWords bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		workers: runtime.NumCPU(),
		logger:  &log.Logger{Level: log.InfoLevel, Writer: &log.IOWriter{Writer: io.Discard}},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWorkers sets the parallel worker count. Values below 1 keep the
// default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithCache serves pages from c when present and stores fresh results in
// it. A cache should be used with one combination of options; entries are
// keyed only by path and page.
func WithCache(c *cache.ExtractionCache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithLogger sets the logger for progress and per-page failures
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSyncedWords merges hyphen-split words after reassembly so each
// paragraph's Words match its Text (see layout.ResyncHyphenatedWords).
func WithSyncedWords() Option {
	return func(c *config) {
		c.syncWords = true
	}
}
