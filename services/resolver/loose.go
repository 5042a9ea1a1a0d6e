package resolver

import (
	"strings"

	"draftassist-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

// ResolveLoose returns a best-effort single candidate for the incoming
// name. A wrong guess here is a transient UI inconvenience overwritten
// by the next confidently-resolved event, not silent data corruption.
func ResolveLoose(names []string, name string) (int, bool) {
	p := textutil.SplitName(name)
	if p.Key == "" {
		return 0, false
	}

	for i, candidate := range names {
		if textutil.SplitName(candidate).Key == p.Key {
			return i, true
		}
	}

	// a single token is taken as a bare last name with no initial
	last, initial := p.Last, p.Initial
	if last == "" {
		last, initial = p.First, ""
	}

	for i, candidate := range names {
		cp := textutil.SplitName(candidate)
		if cp.Last != last {
			continue
		}
		if initial == "" || strings.HasPrefix(cp.First, initial) {
			return i, true
		}
	}
	return 0, false
}

// Closest reports the most similar player name to an unresolved incoming
// name. Diagnostics only: the similarity score is never used to mutate
// state.
func Closest(names []string, name string) (string, float64) {
	key := textutil.SplitName(name).Key
	if key == "" {
		return "", 0
	}

	var best string
	var bestScore float64
	for _, candidate := range names {
		score := matchr.JaroWinkler(key, textutil.SplitName(candidate).Key, false)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore
}
