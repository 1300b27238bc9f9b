// Command voxpdf extracts speech-ready text from a PDF.
//
// Usage:
//
//	voxpdf [flags] file.pdf
//
// Configuration is read with priority: defaults -> -config file ->
// VOXPDF_* environment -> flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("voxpdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: voxpdf [flags] file.pdf")
		fs.PrintDefaults()
	}

	var (
		configFile = fs.String("config", "", "Configuration file path (TOML)")
		pages      = fs.String("pages", "", `Pages to extract, 0-indexed, e.g. "0,2,5-7" (default all)`)
		mode       = fs.String("mode", "", "Extraction mode: single, parallel or stream")
		workers    = fs.Int("workers", 0, "Parallel workers (0 = all CPUs)")
		toc        = fs.Bool("toc", false, "Print the table of contents")
		syncWords  = fs.Bool("sync-words", false, "Merge hyphen-split words")
		maxChars   = fs.Int("max-chars", 0, "Split paragraphs into speech segments of at most N characters")
		format     = fs.String("format", "", "Output format: text or json")
		logLevel   = fs.String("log-level", "", "Log level: trace, debug, info, warn or error")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	filename := fs.Arg(0)

	config, err := LoadConfig(*configFile, getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	// Only flags given on the command line override file and env values
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pages":
			config.Pages = *pages
		case "mode":
			config.Mode = *mode
		case "workers":
			config.Workers = *workers
		case "toc":
			config.TOC = *toc
		case "sync-words":
			config.SyncWords = *syncWords
		case "max-chars":
			config.MaxChars = *maxChars
		case "format":
			config.Format = *format
		case "log-level":
			config.Logging.Level = *logLevel
		}
	})

	if err := config.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := setupLogger(config.Logging, stderr)
	logger.Debug().
		Str("file", filename).
		Str("mode", config.Mode).
		Int("workers", config.Workers).
		Str("pages", config.Pages).
		Str("format", config.Format).
		Int("max_chars", config.MaxChars).
		Msg("Resolved configuration")

	if err := extractFile(filename, config, logger, stdout); err != nil {
		logger.Error().Str("file", filename).Err(err).Msg("Extraction failed")
		fmt.Fprintln(stderr, "voxpdf:", err)
		return exitError
	}
	return exitOK
}

// setupLogger creates the stderr logger for the given settings
func setupLogger(cfg LoggingConfig, stderr io.Writer) *log.Logger {
	logger := &log.Logger{Level: log.ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		logger.Writer = &log.IOWriter{Writer: stderr}
	} else {
		logger.Writer = &log.ConsoleWriter{Writer: stderr}
	}
	return logger
}

// newExtractor applies the configuration to a fresh Extractor
func newExtractor(filename string, config *Config, logger *log.Logger) *voxpdf.Extractor {
	ext := voxpdf.Open(filename).WithLogger(logger)

	// Validate has already parsed the list
	pages, _ := ParsePages(config.Pages)
	if len(pages) > 0 {
		ext = ext.Pages(pages...)
	}
	if config.Mode == "parallel" {
		ext = ext.Parallel(config.Workers)
	}
	if config.SyncWords {
		ext = ext.SyncHyphenatedWords()
	}
	return ext
}

func extractFile(filename string, config *Config, logger *log.Logger, w io.Writer) error {
	if config.Mode == "stream" {
		return streamFile(filename, config, logger, w)
	}

	ext := newExtractor(filename, config, logger)

	if config.Format == "json" || config.TOC {
		doc, warnings, err := ext.Document()
		logWarnings(logger, warnings)
		if err != nil {
			return err
		}
		if config.Format == "json" {
			return writeJSON(w, newJSONDocument(doc, warnings, config))
		}
		writeTOC(w, doc.TOC)
		writeParagraphs(w, doc.Paragraphs, config.MaxChars)
		return nil
	}

	paragraphs, warnings, err := ext.Paragraphs()
	logWarnings(logger, warnings)
	if err != nil {
		return err
	}
	writeParagraphs(w, paragraphs, config.MaxChars)
	return nil
}

func logWarnings(logger *log.Logger, warnings []voxpdf.Warning) {
	for _, w := range warnings {
		logger.Warn().Int("page", w.Page).Str("code", w.Code.String()).Msg(w.Message)
	}
}
