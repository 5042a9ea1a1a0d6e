// Package relay accepts scanner events over HTTP, hands them to the
// reconciliation sink and rebroadcasts them to any number of SSE
// subscribers watching the draft live.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"draftassist-backend/lib/events"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("draftassist.services.relay")

// Sink receives every ingested event, in arrival order, on the ingest
// handler's goroutine.
type Sink func(ctx context.Context, ev events.Event)

type Service struct {
	sink Sink

	mu          sync.Mutex
	subscribers map[string]chan events.Event
}

func NewService(sink Sink) *Service {
	return &Service{
		sink:        sink,
		subscribers: map[string]chan events.Event{},
	}
}

// HandleIngest accepts one JSON event per POST.
func (s *Service) HandleIngest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "relay:ingest")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var ev events.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode event")
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}
	if ev.Type == "" {
		http.Error(w, "event type is required", http.StatusBadRequest)
		return
	}

	s.Ingest(ctx, ev)
	w.WriteHeader(http.StatusOK)
}

// Ingest hands one event to the sink and rebroadcasts it to stream
// subscribers. The HTTP handler funnels through here, and a co-located
// scanner may call it directly.
func (s *Service) Ingest(ctx context.Context, ev events.Event) {
	if s.sink != nil {
		s.sink(ctx, ev)
	}
	s.broadcast(ev)
}

// LocalTransport adapts an in-process relay to the scanner's transport
// interface, skipping the HTTP hop.
type LocalTransport struct {
	Service *Service
}

func (t LocalTransport) Send(ctx context.Context, ev events.Event) {
	t.Service.Ingest(ctx, ev)
}

// HandleStream serves the live event feed as server-sent events.
func (s *Service) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	id, ch, err := s.subscribe()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to register stream subscriber", "err", err)
		http.Error(w, "failed to subscribe", http.StatusInternalServerError)
		return
	}
	defer s.unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	slog.DebugContext(r.Context(), "stream subscriber connected", "id", id)
	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			payload, err := json.Marshal(ev)
			if err != nil {
				slog.WarnContext(r.Context(), "failed to marshal event", "err", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func (s *Service) subscribe() (string, chan events.Event, error) {
	id, err := random.String(16)
	if err != nil {
		return "", nil, err
	}
	ch := make(chan events.Event, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[id] = ch
	return id, ch, nil
}

func (s *Service) unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, id)
}

// broadcast never blocks: a subscriber that stops draining its buffer
// loses events rather than stalling ingest.
func (s *Service) broadcast(ev events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			slog.Warn("dropping event for slow subscriber", "id", id, "type", ev.Type)
		}
	}
}
