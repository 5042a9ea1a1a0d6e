// Package scanner samples a continuously re-rendering auction page and
// turns its visible state into structured events. It is designed to be
// wrong silently rather than loudly: a tick that finds nothing emits
// nothing, and the next tick runs against fresh state.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"draftassist-backend/lib/events"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("draftassist.services.scanner")

var ErrAlreadyRunning = errors.New("scanner already running")

// Transport forwards one scanner event to wherever reconciliation
// happens. Delivery is best-effort and single-attempt.
type Transport interface {
	Send(ctx context.Context, ev events.Event)
}

type Options struct {
	Source    PageSource
	Transport Transport

	// bid sampling period, default 500ms
	BidInterval time.Duration
	// roster sampling period, default 2s
	RosterInterval time.Duration
	// plausibility ceiling shared by every numeric extraction
	PriceCeiling int
}

// Scanner owns the two periodic sampling tasks. At most one instance
// scans a given page: Start fails when the scanner is already running.
type Scanner struct {
	opts   Options
	bid    BidExtractor
	roster RosterExtractor

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// dedupe state, touched only by the owning loop goroutine
	lastBid       string
	lastRosterSig string
}

func New(opts Options) *Scanner {
	if opts.BidInterval <= 0 {
		opts.BidInterval = 500 * time.Millisecond
	}
	if opts.RosterInterval <= 0 {
		opts.RosterInterval = 2 * time.Second
	}
	return &Scanner{
		opts:   opts,
		bid:    BidExtractor{Ceiling: opts.PriceCeiling},
		roster: RosterExtractor{Ceiling: opts.PriceCeiling},
	}
}

func (s *Scanner) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(2)
	go s.bidLoop(ctx)
	go s.rosterLoop(ctx)
	return nil
}

func (s *Scanner) Stop() {
	if !s.running.Load() {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.running.Store(false)
}

func (s *Scanner) bidLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.opts.BidInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scanBid(ctx)
		}
	}
}

func (s *Scanner) rosterLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.opts.RosterInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scanRoster(ctx)
		}
	}
}

func (s *Scanner) scanBid(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "scanner:bid_tick")
	defer span.End()

	root, err := s.opts.Source.Snapshot(ctx)
	if err != nil {
		slog.DebugContext(ctx, "bid tick: no snapshot", "err", err)
		return
	}

	name, price, ok := s.bid.Extract(root)
	if !ok {
		return
	}

	sig := fmt.Sprintf("%s|%d", name, price)
	if sig == s.lastBid {
		return
	}
	s.lastBid = sig

	slog.DebugContext(ctx, "bid changed", "name", name, "bid", price)
	s.opts.Transport.Send(ctx, events.BidUpdate(name, price))
}

func (s *Scanner) scanRoster(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "scanner:roster_tick")
	defer span.End()

	root, err := s.opts.Source.Snapshot(ctx)
	if err != nil {
		slog.DebugContext(ctx, "roster tick: no snapshot", "err", err)
		return
	}

	names, costs, ok := s.roster.Extract(root)
	if !ok {
		return
	}

	sig := rosterSignature(names, costs)
	if sig == s.lastRosterSig {
		return
	}
	s.lastRosterSig = sig

	slog.DebugContext(ctx, "roster changed", "players", len(names))
	s.opts.Transport.Send(ctx, events.RosterSync(names, costs))
}

// rosterSignature serializes the (names, costs) pair so a re-render
// that changes nothing emits nothing. names are already sorted.
func rosterSignature(names []string, costs map[string]int) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		if c, ok := costs[n]; ok {
			fmt.Fprintf(&b, "=%d", c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
