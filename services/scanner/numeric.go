package scanner

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	plainIntRegex    = regexp.MustCompile(`^\d+$`)
	currencyIntRegex = regexp.MustCompile(`^\$\s*(\d+)$`)
	currencyLineRegex = regexp.MustCompile(`^\$(\d{1,3})\b`)
)

// priceStrategy extracts one plausible integer price from a card-like
// region, or reports that it found none. Strategies are tried in
// priority order, first success wins.
type priceStrategy func(card Element, ceiling int) (int, bool)

var priceStrategies = []priceStrategy{
	priceFromSiblingPair,
	priceFromCurrencyNode,
	priceFromLines,
}

// extractPrice runs the ordered strategies. Every extracted integer is
// rejected when it exceeds the plausibility ceiling, so an unrelated
// large number on the page never becomes a price.
func extractPrice(card Element, ceiling int) (int, bool) {
	for _, strategy := range priceStrategies {
		if v, ok := strategy(card, ceiling); ok {
			return v, true
		}
	}
	return 0, false
}

func plausible(v, ceiling int) bool {
	return v >= 0 && v <= ceiling
}

// priceFromSiblingPair looks for a currency-only node rendered next to
// a plain integer node, the common split-element price markup.
func priceFromSiblingPair(card Element, ceiling int) (int, bool) {
	found := -1
	walk(card, func(e Element) {
		if found >= 0 {
			return
		}
		if strings.TrimSpace(e.Text()) != "$" {
			return
		}
		parent, ok := e.Parent()
		if !ok {
			return
		}
		siblings := parent.Children()
		for i, sib := range siblings {
			if sib != e {
				continue
			}
			for _, j := range []int{i + 1, i - 1} {
				if j < 0 || j >= len(siblings) {
					continue
				}
				raw := strings.TrimSpace(siblings[j].Text())
				if !plainIntRegex.MatchString(raw) {
					continue
				}
				v, err := strconv.Atoi(raw)
				if err == nil && plausible(v, ceiling) {
					found = v
					return
				}
			}
		}
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

// priceFromCurrencyNode matches nodes whose whole text is "$N", taking
// the maximum plausible value seen in the card.
func priceFromCurrencyNode(card Element, ceiling int) (int, bool) {
	best := -1
	walk(card, func(e Element) {
		m := currencyIntRegex.FindStringSubmatch(strings.TrimSpace(e.Text()))
		if m == nil {
			return
		}
		v, err := strconv.Atoi(m[1])
		if err != nil || !plausible(v, ceiling) {
			return
		}
		if v > best {
			best = v
		}
	})
	if best < 0 {
		return 0, false
	}
	return best, true
}

// priceFromLines is the last resort: scan the card's rendered lines for
// the first one shaped like "$N" with a 1-3 digit integer.
func priceFromLines(card Element, ceiling int) (int, bool) {
	for _, line := range card.Lines() {
		m := currencyLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil || !plausible(v, ceiling) {
			continue
		}
		return v, true
	}
	return 0, false
}
