// Package roster owns the authoritative player list and reconciles
// scraped auction events into it. All mutation happens one event at a
// time; an unresolved incoming name produces no mutation at all.
package roster

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"sync"

	"draftassist-backend/services/roster/db"
)

type Player struct {
	Name       string  `json:"Name"`
	Pos        string  `json:"Pos"`
	Price      int     `json:"Price"`
	Projection float64 `json:"Projection"`
	// known to be on our roster
	Anchor bool `json:"anchor"`
	// known to be lost to someone else
	Exclude bool `json:"exclude"`
}

type Options struct {
	// prices above this are implausible and rejected upstream;
	// reconciliation clamps to it as a last line of defense
	PriceCeiling int
}

const DefaultPriceCeiling = 300

type Service struct {
	mu sync.Mutex

	qry      *db.Queries
	players  []Player
	keywords []string
	// index of the player most recently touched by a bid event,
	// -1 when no nomination is active
	nomination int
	onChange   func()
	ceiling    int
}

func NewService(ctx context.Context, database *sql.DB, opts Options) (*Service, error) {
	if opts.PriceCeiling <= 0 {
		opts.PriceCeiling = DefaultPriceCeiling
	}

	s := &Service{
		qry:        db.New(database),
		nomination: -1,
		ceiling:    opts.PriceCeiling,
	}

	stored, err := s.qry.GetOwnerKeywords(ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	for _, k := range strings.Split(stored, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			s.keywords = append(s.keywords, k)
		}
	}

	return s, nil
}

// OnChange registers the callback fired after any event application
// that mutated optimizer-relevant player state.
func (s *Service) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Replace swaps in a freshly imported player list wholesale.
func (s *Service) Replace(players []Player) {
	s.mu.Lock()
	list := make([]Player, len(players))
	copy(list, players)
	for i := range list {
		list[i].Price = s.clampPrice(list[i].Price)
	}
	s.players = list
	s.nomination = -1
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Players returns a snapshot copy of the current list.
func (s *Service) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Nomination returns the player currently up for bid, if one is known.
func (s *Service) Nomination() (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nomination < 0 || s.nomination >= len(s.players) {
		return Player{}, false
	}
	return s.players[s.nomination], true
}

// Keywords returns a snapshot of the owner-name keywords used to decide
// sale ownership.
func (s *Service) Keywords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.keywords))
	copy(out, s.keywords)
	return out
}

func (s *Service) clampPrice(price int) int {
	if price < 0 {
		return 0
	}
	if price > s.ceiling {
		return s.ceiling
	}
	return price
}

// names returns the raw name column, the input for index construction.
// callers must hold s.mu.
func (s *Service) names() []string {
	names := make([]string, len(s.players))
	for i, p := range s.players {
		names[i] = p.Name
	}
	return names
}

func (s *Service) persistKeywords(ctx context.Context) {
	err := s.qry.SetOwnerKeywords(ctx, strings.Join(s.keywords, ","))
	if err != nil {
		slog.WarnContext(ctx, "failed to persist owner keywords", "err", err)
	}
}
