package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the command needs to run an extraction
type Config struct {
	// Mode selects sequential, parallel or streaming extraction
	Mode string `toml:"mode" validate:"oneof=single parallel stream"`

	// Workers is the parallel worker count; 0 uses every CPU
	Workers int `toml:"workers" validate:"gte=0,lte=256"`

	// Pages is a page list such as "0,2,5-7"; empty means every page
	Pages string `toml:"pages"`

	// TOC prints the table of contents before the text
	TOC bool `toml:"toc"`

	// SyncWords merges hyphen-split words in the output
	SyncWords bool `toml:"sync_words"`

	// MaxChars splits paragraphs into speech segments of at most this
	// many characters, one per line; 0 prints whole paragraphs
	MaxChars int `toml:"max_chars" validate:"gte=0"`

	// Format is the output format
	Format string `toml:"format" validate:"oneof=text json"`

	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig controls diagnostic output on stderr
type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error"`
	Format string `toml:"format" validate:"oneof=console json"`
}

// NewDefaultConfig returns the configuration used when nothing else is set
func NewDefaultConfig() *Config {
	return &Config{
		Mode:    "single",
		Workers: 0,
		Format:  "text",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadConfig builds the configuration with priority: defaults -> file -> env.
// Flags are applied afterwards by the caller. An empty path skips the file.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(config, getenv); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies VOXPDF_* environment variables to config
func applyEnvOverrides(config *Config, getenv func(string) string) error {
	if mode := getenv("VOXPDF_MODE"); mode != "" {
		config.Mode = mode
	}
	if workers := getenv("VOXPDF_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid VOXPDF_WORKERS %q: %w", workers, err)
		}
		config.Workers = n
	}
	if pages := getenv("VOXPDF_PAGES"); pages != "" {
		config.Pages = pages
	}
	if toc := getenv("VOXPDF_TOC"); toc != "" {
		b, err := strconv.ParseBool(toc)
		if err != nil {
			return fmt.Errorf("invalid VOXPDF_TOC %q: %w", toc, err)
		}
		config.TOC = b
	}
	if sync := getenv("VOXPDF_SYNC_WORDS"); sync != "" {
		b, err := strconv.ParseBool(sync)
		if err != nil {
			return fmt.Errorf("invalid VOXPDF_SYNC_WORDS %q: %w", sync, err)
		}
		config.SyncWords = b
	}
	if maxChars := getenv("VOXPDF_MAX_CHARS"); maxChars != "" {
		n, err := strconv.Atoi(maxChars)
		if err != nil {
			return fmt.Errorf("invalid VOXPDF_MAX_CHARS %q: %w", maxChars, err)
		}
		config.MaxChars = n
	}
	if format := getenv("VOXPDF_FORMAT"); format != "" {
		config.Format = format
	}
	if level := getenv("VOXPDF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := getenv("VOXPDF_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	return nil
}

// Validate checks field constraints and that Pages parses
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := ParsePages(c.Pages); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// maxPage is the largest page number a page list may name
const maxPage = 99999

// ParsePages parses a comma-separated list of 0-indexed pages and
// inclusive ranges ("0,2,5-7") into sorted, distinct page numbers.
// Page numbers above maxPage are rejected. An empty string returns nil.
func ParsePages(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var pages []int
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty page in %q", s)
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := parsePage(lo)
		if err != nil {
			return nil, err
		}
		if !isRange {
			add(start)
			continue
		}

		end, err := parsePage(hi)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		for p := start; p <= end; p++ {
			add(p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}

func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid page %q", s)
	}
	if n > maxPage {
		return 0, fmt.Errorf("page %d is beyond the last supported page %d", n, maxPage)
	}
	return n, nil
}
