package optimizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"draftassist-backend/services/roster"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("draftassist.services.optimizer")

// Solver produces ranked lineups for a player pool.
type Solver interface {
	Solve(ctx context.Context, players []roster.Player, budget, k int) ([]Solution, error)
}

// Snapshot supplies the current player pool at solve time, not at poke
// time, so a burst of changes is solved against its final state.
type Snapshot func() []roster.Player

type OrchestratorOptions struct {
	Solver  Solver
	Players Snapshot

	// how long the pool has to sit unchanged before a solve is
	// issued, default 600ms
	Quiescence time.Duration
	// auction budget, default 180
	Budget int
	// number of lineups requested, default 5
	K int

	// OnError receives failures of current (non-superseded) solves.
	OnError func(error)
}

// Orchestrator debounces pool changes into solver calls and resolves
// races between overlapping calls: each call gets a monotonically
// increasing id, the previous call's context is cancelled on issue, and
// a completion only lands if its id is still the latest.
type Orchestrator struct {
	opts OrchestratorOptions

	ids atomic.Uint64

	mu         sync.Mutex
	timer      *time.Timer
	cancel     context.CancelFunc
	budget     int
	k          int
	lastSolved string
	solutions  []Solution
}

func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.Quiescence <= 0 {
		opts.Quiescence = 600 * time.Millisecond
	}
	if opts.Budget <= 0 {
		opts.Budget = 180
	}
	if opts.K <= 0 {
		opts.K = 5
	}
	return &Orchestrator{
		opts:   opts,
		budget: opts.Budget,
		k:      opts.K,
	}
}

// Poke notes that the pool changed. The solve fires once pokes go
// quiet for the quiescence window; every new poke resets the clock.
func (o *Orchestrator) Poke() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.timer != nil {
		o.timer.Stop()
	}
	o.timer = time.AfterFunc(o.opts.Quiescence, func() {
		o.solve(context.Background(), false)
	})
}

// RunNow skips the debounce window and forces a solve even when the
// pool is unchanged since the last one.
func (o *Orchestrator) RunNow(ctx context.Context) {
	o.mu.Lock()
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.mu.Unlock()
	o.solve(ctx, true)
}

// Stop cancels the pending timer and any in-flight solve.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

// Solutions returns the lineups from the most recent completed solve.
func (o *Orchestrator) Solutions() []Solution {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Solution, len(o.solutions))
	copy(out, o.solutions)
	return out
}

func (o *Orchestrator) Budget() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.budget
}

func (o *Orchestrator) K() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.k
}

func (o *Orchestrator) SetBudget(v int) {
	if v <= 0 {
		return
	}
	o.mu.Lock()
	o.budget = v
	o.mu.Unlock()
	o.Poke()
}

func (o *Orchestrator) SetK(v int) {
	if v <= 0 {
		return
	}
	o.mu.Lock()
	o.k = v
	o.mu.Unlock()
	o.Poke()
}

func (o *Orchestrator) solve(ctx context.Context, force bool) {
	players := o.opts.Players()

	o.mu.Lock()
	sig := signature(players, o.budget, o.k)
	if !force && sig == o.lastSolved {
		o.mu.Unlock()
		return
	}
	if o.cancel != nil {
		o.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	id := o.ids.Add(1)
	budget, k := o.budget, o.k
	o.mu.Unlock()

	runCtx, span := tracer.Start(runCtx, "optimizer:solve")
	defer span.End()

	sols, err := o.opts.Solver.Solve(runCtx, players, budget, k)
	if err != nil {
		// a superseded call's cancellation is expected, not a failure
		if errors.Is(err, context.Canceled) || runCtx.Err() != nil {
			return
		}
		if id != o.ids.Load() {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		slog.WarnContext(runCtx, "solve failed", "err", err)
		if o.opts.OnError != nil {
			o.opts.OnError(err)
		}
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if id != o.ids.Load() {
		return
	}
	o.solutions = sols
	o.lastSolved = sig
}

// signature captures everything a solve depends on. Pool changes that
// leave it identical never trigger a solver call.
func signature(players []roster.Player, budget, k int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d\n", budget, k)
	for _, p := range players {
		fmt.Fprintf(
			&b, "%s|%s|%d|%g|%t|%t\n",
			p.Name, p.Pos, p.Price, p.Projection, p.Anchor, p.Exclude,
		)
	}
	return b.String()
}
