package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) Element {
	t.Helper()
	root, err := ParseDocumentString(doc)
	require.NoError(t, err)
	return root
}

func TestBidExtractSiblingPairPrice(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="auction">
			<div class="card">
				<div class="player-name">Jaylen WaddleDTD</div>
				<div>WR - Miami Dolphins</div>
				<div>Time remaining: 0:12</div>
				<div class="price"><span>$</span><span>17</span></div>
			</div>
		</div>
		</body></html>`)

	name, price, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Equal(t, "Jaylen Waddle", name)
	require.Equal(t, 17, price)
}

func TestBidExtractCurrencyNodeTakesMax(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="card">
			<h2>Zay Flowers</h2>
			<div>WR - 0:12 remaining</div>
			<div>$4</div>
			<div>$23</div>
		</div>
		</body></html>`)

	name, price, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Equal(t, "Zay Flowers", name)
	require.Equal(t, 23, price)
}

func TestBidExtractNameFromLineBeforePosition(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="card">
			<div>Now nominating</div>
			<div>Bijan Robinson</div>
			<div>RB - Atlanta</div>
			<div>0:30 remaining</div>
			<div>$45</div>
		</div>
		</body></html>`)

	name, price, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Equal(t, "Bijan Robinson", name)
	require.Equal(t, 45, price)
}

func TestBidExtractCeilingRejectsEveryStrategy(t *testing.T) {
	// $450 against a ceiling of 300 must fall through the sibling
	// pair, single-node and line-scan strategies alike
	root := mustParse(t, `
		<html><body>
		<div class="card">
			<div class="player-name">Jared Goff</div>
			<div>QB - Detroit</div>
			<div>0:05 remaining</div>
			<div><span>$</span><span>450</span></div>
		</div>
		</body></html>`)

	_, _, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.False(t, ok)
}

func TestBidExtractPrefersTightestCard(t *testing.T) {
	// the outer wrapper also pairs a position token, a countdown token
	// and a currency element, but the inner card's text is shorter
	root := mustParse(t, `
		<html><body>
		<div class="page">
			<div>WR room is thin, 3 picks remaining</div>
			<div>$150</div>
			<div class="card">
				<div class="player-name">Zay Flowers</div>
				<div>WR</div>
				<div>0:09 remaining</div>
				<div>$23</div>
			</div>
		</div>
		</body></html>`)

	name, price, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Equal(t, "Zay Flowers", name)
	require.Equal(t, 23, price)
}

func TestBidExtractNoCardNoEvent(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div>$12 shipping on all orders</div>
		<div>WR coaching clinic</div>
		</body></html>`)

	_, _, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.False(t, ok)
}

func TestBidExtractCapitalizedShapeFallback(t *testing.T) {
	root := mustParse(t, `
		<html><body>
		<div class="card">
			<div>WR auction - 0:10 remaining</div>
			<div>going twice</div>
			<div>Puka Nacua</div>
			<div>$31</div>
		</div>
		</body></html>`)

	name, price, ok := BidExtractor{Ceiling: 300}.Extract(root)
	require.True(t, ok)
	require.Equal(t, "Puka Nacua", name)
	require.Equal(t, 31, price)
}
