package textutil

import (
	"regexp"
	"strings"
)

// injury/status codes that auction pages glue or append to player names.
var statusCodes = map[string]bool{
	"dtd": true, "pup": true, "ir": true, "out": true, "q": true, "o": true,
	"d": true, "na": true, "dnp": true, "susp": true, "nfi": true,
	"ppd": true, "covid": true, "covid-19": true, "res": true,
}

// team abbreviations as they appear in roster cells, matched case-insensitively.
var teamCodes = map[string]bool{
	"ari": true, "arz": true, "atl": true, "bal": true, "buf": true,
	"car": true, "chi": true, "cin": true, "cle": true, "dal": true,
	"den": true, "det": true, "gb": true, "hou": true, "ind": true,
	"jax": true, "jac": true, "kc": true, "lac": true, "lar": true,
	"la": true, "lv": true, "mia": true, "min": true, "ne": true,
	"no": true, "nyg": true, "nyj": true, "phi": true, "pit": true,
	"sea": true, "sf": true, "tb": true, "ten": true, "was": true,
	"wsh": true,
}

var (
	gluedUpperRegex = regexp.MustCompile(`[a-z]([A-Z0-9\-]{2,8})$`)
	posSuffixRegex  = regexp.MustCompile(`\s*-\s*(QB|RB|WR|TE|K|DST|DEF)\s*$`)
)

// StripStatus removes trailing injury/status suffixes, whether glued onto
// the last name ("Zay FlowersDTD") or appended as a separate token
// ("Zay Flowers Q"). Parenthetical content is removed first.
func StripStatus(s string) string {
	s = parentheticalRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))

	for {
		trimmed := s

		// spaced whole-token suffix
		if i := strings.LastIndex(trimmed, " "); i > 0 {
			tail := strings.ToLower(trimmed[i+1:])
			if statusCodes[tail] {
				s = strings.TrimSpace(trimmed[:i])
				continue
			}
		}

		// glued uppercase run, multi-letter codes only
		if m := gluedUpperRegex.FindStringSubmatchIndex(trimmed); m != nil {
			tail := strings.ToLower(trimmed[m[2]:m[3]])
			if statusCodes[tail] {
				s = strings.TrimSpace(trimmed[:m[2]])
				continue
			}
		}

		return s
	}
}

// CutPositionSuffix removes a trailing " - POS" marker from a roster cell.
func CutPositionSuffix(s string) string {
	return strings.TrimSpace(posSuffixRegex.ReplaceAllString(s, ""))
}

// CutTeamSuffix removes a trailing team-code token, glued or spaced.
// A spaced code is only cut when at least two name tokens remain, so
// "first last" shapes are never destroyed.
func CutTeamSuffix(s string) string {
	s = strings.TrimSpace(s)

	if m := gluedUpperRegex.FindStringSubmatchIndex(s); m != nil {
		tail := strings.ToLower(s[m[2]:m[3]])
		if teamCodes[tail] {
			return strings.TrimSpace(s[:m[2]])
		}
	}

	tokens := strings.Fields(s)
	if len(tokens) >= 3 {
		tail := strings.ToLower(tokens[len(tokens)-1])
		if teamCodes[tail] {
			return strings.Join(tokens[:len(tokens)-1], " ")
		}
	}
	return s
}

// CleanRosterCell applies, in order, every trim a roster player cell needs
// before resolution: " - POS" suffix, team code, status suffixes.
func CleanRosterCell(s string) string {
	s = CutPositionSuffix(s)
	s = CutTeamSuffix(s)
	s = StripStatus(s)
	return s
}
