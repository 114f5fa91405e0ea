package stats

import "regexp"

var (
	// Alphabetic tokens including apostrophes ("don't"), matched over the
	// lowercased contents.
	wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

	// Custom emoji in message text: the full <a:name:id> form or the bare
	// :name: shorthand.
	customEmojiPattern = regexp.MustCompile(`<a?:\w+:\d+>|:[a-zA-Z0-9_]+:`)
)

// countWords adds every qualifying token of the lowercased text to the
// counter: at least two characters and not in the stop-word table.
func countWords(c *orderedCounter, lowered string) {
	for _, w := range wordPattern.FindAllString(lowered, -1) {
		if len(w) < 2 {
			continue
		}
		if _, stop := StopWords[w]; stop {
			continue
		}
		c.Add(w, 1)
	}
}

// countEmoji adds Unicode emoji runs first, then custom-emoji tokens, so the
// tie-break order of the final ranking follows the scan order within each
// message.
func countEmoji(c *orderedCounter, text string) {
	for _, m := range emojiPattern.FindAllString(text, -1) {
		c.Add(m, 1)
	}
	for _, m := range customEmojiPattern.FindAllString(text, -1) {
		c.Add(m, 1)
	}
}
