package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRosterExtractAnchorRows(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="roster">
			<div>Player Pos Salary</div>
			<div class="row"><a href="#">J. Goff Det - QB</a><span>QB</span><span>$6</span></div>
			<div class="row"><a href="#">Zay FlowersDTD</a><span>WR</span><span>$9</span></div>
		</div>
		</body></html>`)

	names, costs, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Empty(t, cmp.Diff([]string{"J. Goff", "Zay Flowers"}, names))
	require.Empty(t, cmp.Diff(map[string]int{"J. Goff": 6, "Zay Flowers": 9}, costs))
}

func TestRosterExtractDedupesRepeatedRows(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="roster">
			<div>Player Pos Salary</div>
			<div class="row"><a href="#">Jaylen Waddle</a><span>WR</span><span>$12</span></div>
			<div class="row"><a href="#">Jaylen Waddle</a><span>WR</span><span>$12</span></div>
			<div class="row"><a href="#">Jared Goff</a><span>QB</span><span>$6</span></div>
		</div>
		</body></html>`)

	names, _, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Empty(t, cmp.Diff([]string{"Jared Goff", "Jaylen Waddle"}, names))
}

func TestRosterExtractPrefersRightmostPanel(t *testing.T) {
	// a news rail on the left also mentions players, positions and
	// salaries; the real roster lives in the right-hand rail
	root := mustParse(t, `
		<html><body>
		<div class="news" data-x="0" data-y="0" data-w="300" data-h="600">
			<div>Top players by position</div>
			<div>QB rankings and WR salary cap hits</div>
			<div><a href="#">Aaron Jones Min - RB</a></div>
		</div>
		<div class="roster" data-x="900" data-y="0" data-w="300" data-h="600">
			<div>Player Pos Salary</div>
			<div class="row"><a href="#">J. Goff Det - QB</a><span>QB</span><span>$6</span></div>
			<div class="row"><a href="#">Zay Flowers</a><span>WR</span><span>$9</span></div>
		</div>
		</body></html>`)

	names, _, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Empty(t, cmp.Diff([]string{"J. Goff", "Zay Flowers"}, names))
}

func TestRosterExtractLineFallback(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="roster">
			<div>Player Pos Salary</div>
			<div>Jared Goff QB $6</div>
			<div>Zay Flowers WR $9</div>
			<div>Bench spot open</div>
		</div>
		</body></html>`)

	names, costs, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Empty(t, cmp.Diff([]string{"Jared Goff", "Zay Flowers"}, names))
	require.Empty(t, cmp.Diff(map[string]int{"Jared Goff": 6, "Zay Flowers": 9}, costs))
}

func TestRosterExtractRequiresPanelShape(t *testing.T) {
	// a single position code is not enough evidence of a roster panel
	root := mustParse(t, `
		<html><body>
		<div class="roster">
			<div>Player Pos Salary</div>
			<div>Jared Goff QB $6</div>
		</div>
		</body></html>`)

	_, _, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.False(t, ok)
}

func TestRosterExtractImplausibleSalaryDropped(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="roster">
			<div>Player Pos Salary</div>
			<div class="row"><a href="#">Jared Goff</a><span>QB</span><span>$9999</span></div>
			<div class="row"><a href="#">Zay Flowers</a><span>WR</span><span>$9</span></div>
		</div>
		</body></html>`)

	names, costs, ok := RosterExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Empty(t, cmp.Diff([]string{"Jared Goff", "Zay Flowers"}, names))
	require.Empty(t, cmp.Diff(map[string]int{"Zay Flowers": 9}, costs))
}
