package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf"
	"github.com/tsawler/voxpdf/extract"
)

// streamFile prints pages as the stream delivers them. Text output
// separates pages with blank lines; JSON output writes one event per line.
// Failed pages are reported and skipped; the returned error counts them.
func streamFile(filename string, config *Config, logger *log.Logger, w io.Writer) error {
	runs, err := streamRuns(filename, config)
	if err != nil {
		return err
	}

	if config.TOC && config.Format == "text" {
		toc, warnings, err := voxpdf.Open(filename).WithLogger(logger).TOC()
		logWarnings(logger, warnings)
		if err != nil {
			return err
		}
		writeTOC(w, toc)
	}

	ext := newExtractor(filename, config, logger)
	enc := json.NewEncoder(w)

	failed, written := 0, 0
	for _, span := range runs {
		s := ext.Stream(span[0], span[1])
		for ev, ok := s.Receive(); ok; ev, ok = s.Receive() {
			if ev.Kind == extract.EventPageError {
				failed++
				logger.Warn().Int("page", ev.Page).Err(ev.Err).Msg("Page failed")
			}

			if config.Format == "json" {
				if ev.Kind == extract.EventComplete {
					continue
				}
				if err := enc.Encode(newJSONEvent(ev, config.MaxChars)); err != nil {
					return err
				}
				continue
			}

			if ev.Kind == extract.EventPageComplete && len(ev.Paragraphs) > 0 {
				if written > 0 {
					fmt.Fprintln(w)
				}
				writeParagraphs(w, ev.Paragraphs, config.MaxChars)
				written++
			}
		}
	}

	if config.Format == "json" {
		if err := enc.Encode(jsonEvent{Event: extract.EventComplete.String()}); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d page(s) failed", failed)
	}
	return nil
}

// streamRuns splits the selected pages into contiguous inclusive ranges.
// With no selection the whole document is one range.
func streamRuns(filename string, config *Config) ([][2]int, error) {
	pages, err := ParsePages(config.Pages)
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		ext := voxpdf.Open(filename)
		defer ext.Close()

		n, err := ext.PageCount()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return [][2]int{{0, n - 1}}, nil
	}

	var runs [][2]int
	for _, p := range pages {
		if len(runs) > 0 && runs[len(runs)-1][1] == p-1 {
			runs[len(runs)-1][1] = p
			continue
		}
		runs = append(runs, [2]int{p, p})
	}
	return runs, nil
}
