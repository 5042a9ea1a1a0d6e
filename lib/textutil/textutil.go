package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	parentheticalRegex = regexp.MustCompile(`\([^)]*\)`)
	disallowedRegex    = regexp.MustCompile(`[^a-z0-9 '.\-]`)
)

// honorific suffixes dropped as whole tokens during normalization.
var honorifics = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
}

// Normalize lowers a free-text name into the canonical form used for
// matching: parentheticals removed, punctuation outside ['.-] dropped,
// whitespace collapsed, honorific suffixes stripped as whole tokens.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = parentheticalRegex.ReplaceAllString(name, " ")
	name = disallowedRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	tokens := strings.Split(name, " ")
	kept := tokens[:0]
	for _, t := range tokens {
		if honorifics[strings.TrimRight(t, ".")] {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// NameParts is derived fresh from a name string each time it is needed,
// never persisted.
type NameParts struct {
	// first token, trailing periods removed
	First string
	// last token, empty when the name is a single token
	Last string
	// first letter of First
	Initial string
	// first two letters of First
	Prefix2 string
	// normalized "first last" matching key
	Key string
}

// SplitName computes the derived matching parts of a free-text name.
func SplitName(name string) NameParts {
	norm := Normalize(name)
	if norm == "" {
		return NameParts{}
	}

	tokens := strings.Split(norm, " ")
	first := strings.TrimRight(tokens[0], ".")
	last := ""
	if len(tokens) > 1 {
		last = tokens[len(tokens)-1]
	}

	p := NameParts{First: first, Last: last}
	if len(first) > 0 {
		p.Initial = first[:1]
	}
	if len(first) >= 2 {
		p.Prefix2 = first[:2]
	} else {
		p.Prefix2 = first
	}
	p.Key = strings.TrimSpace(first + " " + last)
	return p
}
