package roster

import (
	"context"
	"testing"

	"draftassist-backend/lib/events"
	"draftassist-backend/lib/testutil"
	"draftassist-backend/services/roster/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "roster",
		DbSchema: db.Schema,
	})

	s, err := NewService(context.Background(), res.DB, Options{PriceCeiling: 300})
	if err != nil {
		t.Fatal(err)
	}

	s.Replace([]Player{
		{Name: "Jaylen Waddle", Pos: "WR", Price: 12, Projection: 210.5},
		{Name: "Zay Flowers", Pos: "WR", Price: 9, Projection: 180.2},
		{Name: "Jared Goff", Pos: "QB", Price: 6, Projection: 290},
		{Name: "Bijan Robinson", Pos: "RB", Price: 45, Projection: 260},
	})
	return s, cleanup
}

func TestBidUpdate(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	s.Apply(ctx, events.BidUpdate("Jaylen Waddle", 17))

	got := s.Players()[0]
	require.Equal(t, 17, got.Price)
	require.Equal(t, "WR", got.Pos)
	require.Equal(t, 210.5, got.Projection)
	require.False(t, got.Anchor)
	require.False(t, got.Exclude)

	nom, ok := s.Nomination()
	require.True(t, ok)
	require.Equal(t, "Jaylen Waddle", nom.Name)
}

func TestBidUpdateUnresolvedIsDropped(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()

	before := s.Players()
	s.Apply(context.Background(), events.BidUpdate("Nobody Wexler", 50))
	diff := cmp.Diff(before, s.Players())
	require.Empty(t, diff)
}

func TestRosterSyncIdempotent(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	sync := events.RosterSync([]string{"J. Goff", "Bijan Robinson"}, nil)
	s.Apply(ctx, sync)

	first := s.Players()
	require.True(t, first[2].Anchor)
	require.False(t, first[2].Exclude)
	require.True(t, first[3].Anchor)
	// prices are never touched by roster syncs
	require.Equal(t, 6, first[2].Price)

	s.Apply(ctx, sync)
	diff := cmp.Diff(first, s.Players())
	require.Empty(t, diff, "second application must be a no-op")
}

func TestRosterSyncNeverGuesses(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()

	s.Replace([]Player{
		{Name: "Jaylen Smith", Pos: "WR"},
		{Name: "Jayden Smith", Pos: "RB"},
	})
	s.Apply(context.Background(), events.RosterSync([]string{"Ja Smith"}, nil))

	for _, p := range s.Players() {
		require.False(t, p.Anchor, "ambiguous roster name must not anchor anyone")
	}
}

func TestPlayerSoldUnknownWinner(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	// status-suffixed page text, no winner info: lost to someone else
	s.Apply(ctx, events.Event{Type: events.TypePlayerSold, PlayerName: "Zay FlowersDTD"})
	got := s.Players()[1]
	require.True(t, got.Exclude)
	require.False(t, got.Anchor)
}

func TestPlayerSoldUnknownWinnerKeepsAnchor(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	s.Apply(ctx, events.RosterSync([]string{"Zay Flowers"}, nil))
	s.Apply(ctx, events.Event{Type: events.TypePlayerSold, PlayerName: "Zay FlowersDTD"})

	got := s.Players()[1]
	require.True(t, got.Anchor)
	require.False(t, got.Exclude)
}

func TestPlayerSoldWinnerDecidesOwnership(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()
	bid := 31

	s.Apply(ctx, events.Event{
		Type: events.TypePlayerSold, PlayerName: "Bijan Robinson",
		Bid: &bid, Winner: "you",
	})
	got := s.Players()[3]
	require.True(t, got.Anchor)
	require.False(t, got.Exclude)
	require.Equal(t, 31, got.Price)

	s.Apply(ctx, events.Event{
		Type: events.TypePlayerSold, PlayerName: "Bijan Robinson",
		Winner: "Team Chaos",
	})
	got = s.Players()[3]
	require.False(t, got.Anchor)
	require.True(t, got.Exclude)
}

func TestPlayerSoldKeywordWinner(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	s.Apply(ctx, events.Event{Type: events.TypeMyTeam, Name: "Gridiron Gurus"})
	s.Apply(ctx, events.Event{
		Type: events.TypePlayerSold, PlayerName: "Jared Goff",
		Winner: "the GRIDIRON GURUS win it",
	})

	got := s.Players()[2]
	require.True(t, got.Anchor)
	require.False(t, got.Exclude)
}

func TestPlayerSoldClearsNomination(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	s.Apply(ctx, events.BidUpdate("Jared Goff", 8))
	_, ok := s.Nomination()
	require.True(t, ok)

	s.Apply(ctx, events.Event{Type: events.TypePlayerSold, PlayerName: "Jared Goff", Winner: "Team Chaos"})
	_, ok = s.Nomination()
	require.False(t, ok)
}

func TestTeamIdentityPersistsAndDedupes(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "roster",
		DbSchema: db.Schema,
	})
	defer cleanup()
	ctx := context.Background()

	s, err := NewService(ctx, res.DB, Options{})
	require.NoError(t, err)

	s.Apply(ctx, events.Event{Type: events.TypeMyTeam, Name: "The Crushers"})
	s.Apply(ctx, events.Event{Type: events.TypeMyTeam, Name: "the crushers"})
	require.Equal(t, []string{"The Crushers"}, s.Keywords())

	// a fresh service sees the persisted keywords
	reloaded, err := NewService(ctx, res.DB, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"The Crushers"}, reloaded.Keywords())
}

func TestPriceClamping(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()

	s.Apply(context.Background(), events.BidUpdate("Jared Goff", 9999))
	require.Equal(t, 300, s.Players()[2].Price)
}
