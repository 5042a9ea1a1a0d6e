package roster

import (
	"context"
	"log/slog"
	"strings"

	"draftassist-backend/lib/events"
	"draftassist-backend/lib/textutil"
	"draftassist-backend/services/resolver"
)

// Apply reconciles one event into the player list, in arrival order.
func (s *Service) Apply(ctx context.Context, ev events.Event) {
	s.mu.Lock()

	changed := false
	switch ev.Type {
	case events.TypeRoster:
		changed = s.applyRosterSync(ctx, ev)
	case events.TypeBidUpdate:
		changed = s.applyBidUpdate(ctx, ev)
	case events.TypePlayerSold:
		changed = s.applyPlayerSold(ctx, ev)
	case events.TypeMyTeam:
		s.applyTeamIdentity(ctx, ev)
	default:
		slog.WarnContext(ctx, "dropping event of unknown type", "type", ev.Type)
	}

	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange()
	}
}

// applyRosterSync marks every strictly-resolved name as ours. It only
// ever sets anchors, never clears them, and never touches prices: a
// roster panel that momentarily disappears from the page must not
// un-own a player.
func (s *Service) applyRosterSync(ctx context.Context, ev events.Event) bool {
	ix := resolver.BuildIndex(s.names())

	changed := false
	for _, name := range ev.Names {
		i, ok := ix.ResolveStrict(name)
		if !ok {
			closest, score := resolver.Closest(s.names(), name)
			slog.WarnContext(ctx, "unresolved roster name",
				"name", name, "closest", closest, "similarity", score)
			continue
		}
		p := &s.players[i]
		if !p.Anchor || p.Exclude {
			p.Anchor = true
			p.Exclude = false
			changed = true
		}
	}
	return changed
}

func (s *Service) applyBidUpdate(ctx context.Context, ev events.Event) bool {
	if ev.Bid == nil {
		slog.WarnContext(ctx, "bid update without a bid", "name", ev.PlayerName)
		return false
	}

	name := textutil.StripStatus(ev.PlayerName)
	i, ok := resolver.ResolveLoose(s.names(), name)
	if !ok {
		slog.DebugContext(ctx, "unresolved bid name", "name", ev.PlayerName)
		return false
	}
	s.nomination = i

	price := s.clampPrice(*ev.Bid)
	if s.players[i].Price == price {
		return false
	}
	s.players[i].Price = price
	return true
}

func (s *Service) applyPlayerSold(ctx context.Context, ev events.Event) bool {
	name := textutil.StripStatus(ev.PlayerName)
	i, ok := resolver.ResolveLoose(s.names(), name)
	if !ok {
		slog.DebugContext(ctx, "unresolved sold name", "name", ev.PlayerName)
		return false
	}
	p := &s.players[i]

	changed := false
	if ev.Bid != nil {
		price := s.clampPrice(*ev.Bid)
		if p.Price != price {
			p.Price = price
			changed = true
		}
	}

	if ev.Winner == "" && ev.WonByYou == nil {
		// unknown winner means lost to someone else, unless we
		// already know this player is ours
		if !p.Anchor && !p.Exclude {
			p.Exclude = true
			changed = true
		}
	} else {
		ours := s.wonByUs(ev)
		if p.Anchor != ours || p.Exclude != !ours {
			p.Anchor = ours
			p.Exclude = !ours
			changed = true
		}
	}

	if i == s.nomination {
		s.nomination = -1
	}
	return changed
}

func (s *Service) wonByUs(ev events.Event) bool {
	if ev.WonByYou != nil && *ev.WonByYou {
		return true
	}

	winner := strings.ToLower(strings.TrimSpace(ev.Winner))
	if winner == "you" || winner == "your team" {
		return true
	}
	for _, k := range s.keywords {
		if strings.Contains(winner, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// applyTeamIdentity records a newly observed owner/team label so future
// sale events can be attributed to us. It never touches the player list.
func (s *Service) applyTeamIdentity(ctx context.Context, ev events.Event) {
	name := strings.TrimSpace(ev.Name)
	if name == "" {
		return
	}
	for _, k := range s.keywords {
		if strings.EqualFold(k, name) {
			return
		}
	}

	s.keywords = append(s.keywords, name)
	s.persistKeywords(ctx)
	slog.InfoContext(ctx, "learned owner keyword", "keyword", name)
}
