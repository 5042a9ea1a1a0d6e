package scanner

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"draftassist-backend/lib/textutil"
)

// RosterExtractor pulls the list of already-rostered players (and their
// salaries, when readable) out of the page's roster panel.
type RosterExtractor struct {
	Ceiling  int
	MaxClimb int
}

func (x RosterExtractor) ceiling() int {
	if x.Ceiling <= 0 {
		return 300
	}
	return x.Ceiling
}

func (x RosterExtractor) maxClimb() int {
	if x.MaxClimb <= 0 {
		return 6
	}
	return x.MaxClimb
}

// Extract returns the deduplicated, sorted roster names and any salaries
// found alongside them.
func (x RosterExtractor) Extract(root Element) ([]string, map[string]int, bool) {
	panel, ok := x.findPanel(root)
	if !ok {
		return nil, nil, false
	}

	names, costs := x.extractRows(panel)
	if len(names) == 0 {
		names, costs = x.extractFromLines(panel)
	}
	if len(names) == 0 {
		return nil, nil, false
	}

	deduped := map[string]bool{}
	var out []string
	for _, n := range names {
		if !deduped[n] {
			deduped[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out, costs, true
}

var salaryHeaderTokens = []string{"salary", "cost", "price", "$"}

func isRosterPanel(e Element) bool {
	lower := strings.ToLower(e.Text())
	if !strings.Contains(lower, "pos") || !strings.Contains(lower, "player") {
		return false
	}
	salary := false
	for _, t := range salaryHeaderTokens {
		if strings.Contains(lower, t) {
			salary = true
			break
		}
	}
	if !salary {
		return false
	}
	return len(distinctPositionTokens(e.Text())) >= 2
}

func distinctPositionTokens(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range positionTokenRegex.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// findPanel picks the innermost qualifying panels and, among those,
// prefers the one rendered furthest to the right of the viewport —
// roster panels live in the side rail, ambient page chrome does not.
func (x RosterExtractor) findPanel(root Element) (Element, bool) {
	var candidates []Element
	walk(root, func(e Element) {
		if isRosterPanel(e) {
			candidates = append(candidates, e)
		}
	})
	if len(candidates) == 0 {
		return nil, false
	}

	// drop candidates that merely contain another candidate
	innermost := make([]Element, 0, len(candidates))
	for _, c := range candidates {
		hasInner := false
		for _, other := range candidates {
			if other == c {
				continue
			}
			if isAncestorOf(c, other) {
				hasInner = true
				break
			}
		}
		if !hasInner {
			innermost = append(innermost, c)
		}
	}

	best := innermost[len(innermost)-1]
	bestRight := -1.0
	for _, c := range innermost {
		if b, ok := c.Bounds(); ok && b.X+b.W > bestRight {
			bestRight = b.X + b.W
			best = c
		}
	}
	return best, true
}

func isAncestorOf(ancestor, e Element) bool {
	current := e
	for {
		parent, ok := current.Parent()
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		current = parent
	}
}

// extractRows uses player anchor elements as row anchors: each climbs to
// the nearest ancestor carrying both a position token and a currency
// signal, and that row yields the salary.
func (x RosterExtractor) extractRows(panel Element) ([]string, map[string]int) {
	var names []string
	costs := map[string]int{}

	for _, a := range panel.Find("a") {
		raw := strings.TrimSpace(a.Text())
		if raw == "" {
			continue
		}
		name := textutil.CleanRosterCell(raw)
		if name == "" {
			continue
		}

		row, ok := climb(a, x.maxClimb(), func(e Element) bool {
			text := e.Text()
			return hasPositionToken(text) && strings.Contains(text, "$")
		})
		names = append(names, name)
		if !ok {
			continue
		}
		if salary, ok := extractPrice(row, x.ceiling()); ok {
			costs[name] = salary
		}
	}
	return names, costs
}

var rosterLineRegex = regexp.MustCompile(`^([A-Za-z][A-Za-z'.\- ]+?)\s*(?:-\s*)?\b(QB|RB|WR|TE|K|DST)\b`)
var lineSalaryRegex = regexp.MustCompile(`\$(\d+)`)

// extractFromLines is the anchor-free fallback: parse the panel's
// rendered text line by line against a player-name/position pattern.
func (x RosterExtractor) extractFromLines(panel Element) ([]string, map[string]int) {
	var names []string
	costs := map[string]int{}

	for _, line := range panel.Lines() {
		m := rosterLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := textutil.CleanRosterCell(m[1])
		if name == "" || !strings.Contains(name, " ") {
			continue
		}
		names = append(names, name)

		if sm := lineSalaryRegex.FindStringSubmatch(line); sm != nil {
			if v, err := strconv.Atoi(sm[1]); err == nil && plausible(v, x.ceiling()) {
				costs[name] = v
			}
		}
	}
	return names, costs
}
