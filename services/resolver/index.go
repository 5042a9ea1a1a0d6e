// Package resolver matches free-text player names scraped off the page
// against the canonical player list. Two policies share the same
// normalization and index construction: strict resolution never guesses
// under ambiguity, loose resolution accepts a best-effort candidate for
// updates that are cheap to overwrite.
package resolver

import (
	"draftassist-backend/lib/textutil"
)

// Index holds the lookup structures for strict resolution. It is built
// from the current player list immediately before use and never cached
// across list mutations.
type Index struct {
	// normalized "first last" key -> index, last write wins
	exact map[string]int
	// last name + first two letters of first name -> indices
	byPrefix2 map[string][]int
	// last name + first initial -> indices
	byInitial map[string][]int
	// last name -> index, populated only for globally unique last names
	uniqueLast map[string]int
}

func lastKey(last, first string) string {
	return last + "/" + first
}

func BuildIndex(names []string) Index {
	ix := Index{
		exact:      make(map[string]int, len(names)),
		byPrefix2:  make(map[string][]int, len(names)),
		byInitial:  make(map[string][]int, len(names)),
		uniqueLast: make(map[string]int, len(names)),
	}

	lastCounts := make(map[string]int, len(names))
	for i, name := range names {
		p := textutil.SplitName(name)
		if p.Key == "" {
			continue
		}
		ix.exact[p.Key] = i
		if p.Last == "" {
			continue
		}
		ix.byPrefix2[lastKey(p.Last, p.Prefix2)] = append(ix.byPrefix2[lastKey(p.Last, p.Prefix2)], i)
		ix.byInitial[lastKey(p.Last, p.Initial)] = append(ix.byInitial[lastKey(p.Last, p.Initial)], i)
		lastCounts[p.Last]++
		ix.uniqueLast[p.Last] = i
	}
	for last, count := range lastCounts {
		if count != 1 {
			delete(ix.uniqueLast, last)
		}
	}
	return ix
}

// ResolveStrict returns the index of the one player the incoming name
// can refer to, or no match. Ambiguity is never resolved by guessing:
// a missed update is always preferred over a misattributed one.
func (ix Index) ResolveStrict(name string) (int, bool) {
	p := textutil.SplitName(name)
	if p.Key == "" {
		return 0, false
	}

	if i, ok := ix.exact[p.Key]; ok {
		return i, true
	}
	if p.Last == "" {
		return 0, false
	}

	if matches := ix.byPrefix2[lastKey(p.Last, p.Prefix2)]; len(matches) == 1 {
		return matches[0], true
	}
	if matches := ix.byInitial[lastKey(p.Last, p.Initial)]; len(matches) == 1 {
		return matches[0], true
	}

	// an initial-only first name may still pin down a globally
	// unique last name
	if len(p.First) <= 1 {
		if i, ok := ix.uniqueLast[p.Last]; ok {
			return i, true
		}
	}

	return 0, false
}
