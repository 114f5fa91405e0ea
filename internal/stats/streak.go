package stats

import "time"

const dateLayout = "2006-01-02"

// longestStreak scans ascending distinct dates for the longest run of
// consecutive calendar days and returns its length and starting date.
//
// Tie-break policy: on equal lengths the first run found during the
// left-to-right scan wins. A date that does not parse breaks the run.
func longestStreak(dates []string) (length int, start string) {
	if len(dates) == 0 {
		return 0, ""
	}
	longest := 0
	current := 1
	runStart := dates[0]
	best := runStart
	for i := 1; i < len(dates); i++ {
		if consecutiveDays(dates[i-1], dates[i]) {
			current++
			continue
		}
		if current > longest {
			longest = current
			best = runStart
		}
		current = 1
		runStart = dates[i]
	}
	if current > longest {
		longest = current
		best = runStart
	}
	return longest, best
}

func consecutiveDays(prev, curr string) bool {
	p, err := time.Parse(dateLayout, prev)
	if err != nil {
		return false
	}
	c, err := time.Parse(dateLayout, curr)
	if err != nil {
		return false
	}
	return c.Sub(p) == 24*time.Hour
}
