package extract

import (
	"sync"
	"time"

	"github.com/tsawler/voxpdf/model"
)

// EventKind identifies a streaming event
type EventKind int

const (
	// EventPageComplete carries a page's reassembled paragraphs
	EventPageComplete EventKind = iota
	// EventPageError reports a page that could not be extracted
	EventPageError
	// EventComplete is the last event of every stream
	EventComplete
)

// String returns a string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventPageComplete:
		return "page-complete"
	case EventPageError:
		return "page-error"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Event is one message from a Stream
type Event struct {
	Kind       EventKind
	Page       int
	Paragraphs []model.Paragraph
	Err        error
}

// Stream extracts a page range on a background goroutine and delivers one
// event per page, in page order, followed by EventComplete.
//
// A page failure is reported as EventPageError and the stream moves on to
// the next page. If the document cannot be opened, a single EventPageError
// for the first uncached page precedes EventComplete.
//
// Events are queued without bound, so the producer never waits on the
// consumer. There is no cancellation: a caller that stops calling Receive
// abandons the stream and the goroutine still runs to the end of the range.
type Stream struct {
	mu       sync.Mutex
	ready    *sync.Cond
	queue    []Event
	finished bool
}

// NewStream starts extracting pages start through end (inclusive, 0-indexed)
// of the document at path. An empty range (start > end) yields only
// EventComplete.
func NewStream(open Opener, path string, start, end int, opts ...Option) *Stream {
	s := &Stream{}
	s.ready = sync.NewCond(&s.mu)

	go s.run(open, path, start, end, newConfig(opts))

	return s
}

// Receive blocks until the next event is available. It returns false once
// EventComplete has been delivered. Several goroutines may call Receive;
// each event goes to exactly one of them and all of them see the end.
func (s *Stream) Receive() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.queue) == 0 {
		if s.finished {
			return Event{}, false
		}
		s.ready.Wait()
	}

	ev := s.queue[0]
	s.queue[0] = Event{}
	s.queue = s.queue[1:]

	if ev.Kind == EventComplete {
		s.finished = true
		s.ready.Broadcast()
	}
	return ev, true
}

func (s *Stream) push(ev Event) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	s.ready.Broadcast()
}

func (s *Stream) run(open Opener, path string, start, end int, cfg *config) {
	defer s.push(Event{Kind: EventComplete})

	if start > end {
		return
	}

	began := time.Now()
	var doc Document
	defer func() {
		if doc != nil {
			doc.Close()
		}
	}()

	for page := start; page <= end; page++ {
		if result, ok := cfg.cached(path, page); ok {
			s.push(Event{Kind: EventPageComplete, Page: page, Paragraphs: result.Paragraphs})
			continue
		}

		if doc == nil {
			d, err := open(path)
			if err != nil {
				cfg.logger.Warn().Str("path", path).Err(err).Msg("stream could not open document")
				s.push(Event{Kind: EventPageError, Page: page, Err: err})
				return
			}
			doc = d
		}

		result, err := extractPage(doc, page, cfg)
		if err != nil {
			cfg.logger.Warn().Int("page", page).Err(err).Msg("page extraction failed")
			s.push(Event{Kind: EventPageError, Page: page, Err: err})
			continue
		}

		cfg.store(path, result)
		s.push(Event{Kind: EventPageComplete, Page: page, Paragraphs: result.Paragraphs})
	}

	cfg.logger.Debug().Str("path", path).Int("start", start).Int("end", end).
		Dur("elapsed", time.Since(began)).Msg("stream complete")
}
