package scanner

import (
	"regexp"
	"strings"

	"draftassist-backend/lib/textutil"
)

var positionTokenRegex = regexp.MustCompile(`\b(QB|RB|WR|TE|K|DST)\b`)

// tokens that mark the countdown on the active auction card
var countdownTokens = []string{"remaining", "time left", "on the clock"}

func hasPositionToken(text string) bool {
	return positionTokenRegex.MatchString(text)
}

func hasCountdownToken(text string) bool {
	lower := strings.ToLower(text)
	for _, t := range countdownTokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// BidExtractor pulls the currently nominated player and the active bid
// out of a page snapshot. Any step that fails to find a confident
// candidate yields no event; the next tick retries against fresh state.
type BidExtractor struct {
	// prices above this are treated as page noise
	Ceiling int
	// ancestor climb bound when locating the active card
	MaxClimb int
}

func (x BidExtractor) ceiling() int {
	if x.Ceiling <= 0 {
		return 300
	}
	return x.Ceiling
}

func (x BidExtractor) maxClimb() int {
	if x.MaxClimb <= 0 {
		return 6
	}
	return x.MaxClimb
}

// Extract returns the (player name, bid) pair on the active card.
func (x BidExtractor) Extract(root Element) (string, int, bool) {
	card, ok := x.findActiveCard(root)
	if !ok {
		return "", 0, false
	}

	price, ok := extractPrice(card, x.ceiling())
	if !ok {
		return "", 0, false
	}
	name, ok := extractBidName(card)
	if !ok {
		return "", 0, false
	}
	return name, price, true
}

// findActiveCard locates the page region holding the live nomination: a
// bounded climb from every currency-bearing element to an ancestor whose
// text carries both a position token and a countdown token. Among all
// candidates the one with the shortest text wins — the tightest match
// carries the least unrelated noise.
func (x BidExtractor) findActiveCard(root Element) (Element, bool) {
	seen := map[Element]bool{}
	var cards []Element

	walk(root, func(e Element) {
		if !strings.Contains(ownText(e), "$") {
			return
		}
		card, ok := climb(e, x.maxClimb(), func(a Element) bool {
			text := a.Text()
			return hasPositionToken(text) && hasCountdownToken(text)
		})
		if !ok || seen[card] {
			return
		}
		seen[card] = true
		cards = append(cards, card)
	})

	if len(cards) == 0 {
		return nil, false
	}

	best := cards[0]
	bestLen := len(best.Text())
	for _, c := range cards[1:] {
		if l := len(c.Text()); l < bestLen {
			best = c
			bestLen = l
		}
	}
	return best, true
}

// selectors that pages commonly use for the nominated player's name
var nameSelectors = []string{
	"[class*=player-name]",
	"[class*=playerName]",
	"[class*=PlayerName]",
	"h1, h2, h3",
}

var nameShapeRegex = regexp.MustCompile(`^[A-Z][A-Za-z'.\-]*(?: [A-Z][A-Za-z'.\-]*)+$`)

type nameStrategy func(card Element) (string, bool)

var nameStrategies = []nameStrategy{
	nameFromSelectors,
	nameFromLineBeforePosition,
	nameFromCapitalizedShape,
}

func extractBidName(card Element) (string, bool) {
	for _, strategy := range nameStrategies {
		raw, ok := strategy(card)
		if !ok {
			continue
		}
		name := textutil.StripStatus(raw)
		if name != "" {
			return name, true
		}
	}
	return "", false
}

func nameFromSelectors(card Element) (string, bool) {
	for _, sel := range nameSelectors {
		for _, e := range card.Find(sel) {
			text := strings.TrimSpace(e.Text())
			if text != "" {
				return text, true
			}
		}
	}
	return "", false
}

func nameFromLineBeforePosition(card Element) (string, bool) {
	lines := card.Lines()
	for i, line := range lines {
		if hasPositionToken(line) && i > 0 {
			return lines[i-1], true
		}
	}
	return "", false
}

func nameFromCapitalizedShape(card Element) (string, bool) {
	best := ""
	for _, line := range card.Lines() {
		if nameShapeRegex.MatchString(line) && len(line) > len(best) {
			best = line
		}
	}
	return best, best != ""
}
