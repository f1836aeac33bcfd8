// Package headcount extracts the number of event participants from free text.
package headcount

import (
	"regexp"
	"strconv"
)

// DefaultParticipants is used when the text does not mention a headcount.
const DefaultParticipants = 20

// space matches the same set as an ECMAScript \s: ASCII whitespace including
// vertical tab, every Zs space, the line and paragraph separators and BOM.
const space = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// participantPattern matches an optional "ל"/"עבור" prefix, a 1-4 digit
// number and one of the nouns for people.
var participantPattern = regexp.MustCompile(`(?:ל|עבור)?` + space + `*(\d{1,4})` + space + `*(?:איש|משתתפים|אנשים)`)

// Extract returns the headcount from the first match in text, or
// DefaultParticipants when nothing matches.
func Extract(text string) int {
	m := participantPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return DefaultParticipants
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultParticipants
	}
	return n
}
