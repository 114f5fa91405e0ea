package stats

import (
	"fmt"
	"regexp"
	"strings"
)

// TablesVersion identifies the published stop-word and emoji-range tables.
// Bump when either table changes so downstream snapshots can tell reports
// apart.
const TablesVersion = 1

// StopWords are the common English function words and chat filler terms
// excluded from the word-frequency ranking.
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "shall": {}, "can": {}, "to": {},
	"of": {}, "in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {},
	"from": {}, "as": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "and": {}, "but": {}, "or": {}, "nor": {},
	"not": {}, "so": {}, "yet": {}, "both": {}, "either": {}, "neither": {},
	"each": {}, "every": {}, "all": {}, "any": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "only": {},
	"own": {}, "same": {}, "than": {}, "too": {}, "very": {}, "just": {},
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "him": {}, "his": {}, "she": {}, "her": {}, "it": {}, "its": {},
	"they": {}, "them": {}, "their": {}, "what": {}, "which": {}, "who": {},
	"whom": {}, "this": {}, "that": {}, "these": {}, "those": {}, "am": {},
	"if": {}, "then": {}, "else": {}, "when": {}, "up": {}, "out": {},
	"about": {}, "how": {}, "why": {}, "where": {}, "there": {}, "here": {},
	"also": {}, "like": {}, "oh": {}, "im": {}, "ok": {}, "yeah": {},
	"dont": {}, "thats": {}, "lol": {}, "omg": {}, "u": {}, "ur": {},
}

// EmojiRanges are the Unicode code-point blocks scanned for emoji. A run of
// consecutive in-range runes counts as a single token, which keeps ZWJ
// sequences and variation selectors attached to their base emoji.
var EmojiRanges = [][2]rune{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA00, 0x1FA6F}, // chess symbols
	{0x1FA70, 0x1FAFF}, // symbols extended
	{0x2702, 0x27B0},   // dingbats
	{0xFE00, 0xFE0F},   // variation selectors
	{0x200D, 0x200D},   // zero width joiner
	{0x2640, 0x2642},   // gender symbols
	{0x2600, 0x26FF},   // misc symbols
}

var emojiPattern = compileEmojiPattern(EmojiRanges)

func compileEmojiPattern(ranges [][2]rune) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("[")
	for _, r := range ranges {
		if r[0] == r[1] {
			fmt.Fprintf(&b, `\x{%04X}`, r[0])
		} else {
			fmt.Fprintf(&b, `\x{%04X}-\x{%04X}`, r[0], r[1])
		}
	}
	b.WriteString("]+")
	return regexp.MustCompile(b.String())
}
