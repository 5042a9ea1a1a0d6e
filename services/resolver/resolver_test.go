package resolver

import (
	"testing"

	"draftassist-backend/lib/textutil"

	"github.com/stretchr/testify/require"
)

var pool = []string{
	"Jared Goff",
	"Jaylen Waddle",
	"Jaylen Warren",
	"Zay Flowers",
	"Justin Jefferson",
	"Justin Fields",
	"Amon-Ra St. Brown",
}

func TestStrictExact(t *testing.T) {
	ix := BuildIndex(pool)

	i, ok := ix.ResolveStrict("Jaylen Waddle")
	require.True(t, ok)
	require.Equal(t, 1, i)

	i, ok = ix.ResolveStrict("jared goff")
	require.True(t, ok)
	require.Equal(t, 0, i)
}

func TestStrictNeverCrossesLastNames(t *testing.T) {
	ix := BuildIndex(pool)

	for i, name := range pool {
		got, ok := ix.ResolveStrict(name)
		require.True(t, ok, "full name %q must resolve", name)
		require.Equal(t, i, got, "full name %q resolved to the wrong record", name)
	}
}

func TestStrictUniqueLastNameWithInitial(t *testing.T) {
	ix := BuildIndex(pool)

	// "goff" occurs exactly once, so any single-letter first token matches
	for _, in := range []string{"J. Goff", "j goff", "X Goff"} {
		i, ok := ix.ResolveStrict(in)
		require.True(t, ok, "input %q", in)
		require.Equal(t, 0, i, "input %q", in)
	}
}

func TestStrictAmbiguityIsNoMatch(t *testing.T) {
	ix := BuildIndex(pool)

	// "Jaylen Wa..." collides on (last name is distinct here) so craft a
	// real collision: two Justins, same last initial tier key differs;
	// "J. Jefferson" is unambiguous, "Justin F" vs "Justin Fields" exact.
	_, ok := ix.ResolveStrict("Waddle")
	require.False(t, ok, "bare last name with a multi-letter first token must not match")

	collision := []string{"Jaylen Smith", "Jayden Smith"}
	cix := BuildIndex(collision)
	_, ok = cix.ResolveStrict("Ja Smith")
	require.False(t, ok, "(last, first-two-letters) collisions must never be guessed")
	_, ok = cix.ResolveStrict("J. Smith")
	require.False(t, ok, "(last, initial) collisions must never be guessed")
}

func TestStrictRosterCellRoundtrip(t *testing.T) {
	ix := BuildIndex(pool)

	cell := textutil.CleanRosterCell("J. Goff Det - QB")
	require.Equal(t, "j goff", textutil.SplitName(cell).Key)

	i, ok := ix.ResolveStrict(cell)
	require.True(t, ok)
	require.Equal(t, "Jared Goff", pool[i])
}

func TestLoose(t *testing.T) {
	i, ok := ResolveLoose(pool, "Jaylen Waddle")
	require.True(t, ok)
	require.Equal(t, 1, i)

	// initial prefix match on last name
	i, ok = ResolveLoose(pool, "Z. Flowers")
	require.True(t, ok)
	require.Equal(t, 3, i)

	// bare last name, no initial supplied: first matching record wins
	i, ok = ResolveLoose([]string{"Aaron Jones", "Daniel Jones"}, "Jones")
	require.True(t, ok)
	require.Equal(t, 0, i)

	// strict refuses "Waddle", loose tolerates it
	i, ok = ResolveLoose(pool, "Waddle")
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = ResolveLoose(pool, "Lamar Jackson")
	require.False(t, ok)
}

func TestClosestIsDiagnosticOnly(t *testing.T) {
	name, score := Closest(pool, "Jaylen Waddel")
	require.Equal(t, "Jaylen Waddle", name)
	require.Greater(t, score, 0.9)
}
