// Package stats computes the descriptive-statistics summary over the unified
// message stream: volume, cadence, social distribution, lexical content and
// streak facts. Every metric is independent; one with no usable input
// degrades to its zero value without affecting the rest.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/calpyte/dstats/internal/model"
)

// Ranking caps. Fixed by the report layout.
const (
	maxTopDMs      = 25
	maxTopGroupDMs = 15
	maxTopServers  = 20
	maxTopChannels = 20
	maxTopWords    = 30
	maxTopEmoji    = 20
)

// Only the first 19 characters of a timestamp are significant.
const timestampLayout = "2006-01-02 15:04:05"

// Compute aggregates every metric over the per-channel summaries and the
// unified message stream. The stream must be in ascending-channel-id order:
// ranking ties resolve by first encounter.
func Compute(channels []*model.Channel, messages []*model.Message) *model.Stats {
	s := &model.Stats{
		TopDMs:      []model.NameCount{},
		TopGroupDMs: []model.NameCount{},
		TopServers:  []model.NameCount{},
		TopChannels: []model.ChannelCount{},
		Monthly:     []model.BucketCount{},
		Yearly:      []model.BucketCount{},
	}

	s.TotalMessages = len(messages)
	s.TotalChannels = len(channels)

	overviewAndRankings(s, channels)
	timeBuckets(s, messages)
	contentStats(s, messages)
	lexicalStats(s, messages)
	dateStats(s, messages)
	timeOfDay(s)

	return s
}

func overviewAndRankings(s *model.Stats, channels []*model.Channel) {
	servers := make(map[string]struct{})
	serverCounts := newOrderedCounter()

	for _, c := range channels {
		switch c.Type {
		case model.ChannelTypeDM:
			s.TotalDMs++
			if c.MessageCount > 0 {
				s.TopDMs = append(s.TopDMs, model.NameCount{Name: c.Name, Count: c.MessageCount})
			}
		case model.ChannelTypeGroupDM:
			s.TotalGroupDMs++
			if c.MessageCount > 0 {
				s.TopGroupDMs = append(s.TopGroupDMs, model.NameCount{Name: c.Name, Count: c.MessageCount})
			}
		default:
			// Zero-message channels still count toward the server total and
			// contribute their group to the ranking sums.
			servers[c.Group] = struct{}{}
			serverCounts.Add(c.Group, c.MessageCount)
			if c.MessageCount > 0 {
				s.TopChannels = append(s.TopChannels, model.ChannelCount{
					Name:   c.Name,
					Server: c.Group,
					Count:  c.MessageCount,
				})
			}
		}
	}
	s.TotalServers = len(servers)

	s.TopDMs = rankNames(s.TopDMs, maxTopDMs)
	s.TopGroupDMs = rankNames(s.TopGroupDMs, maxTopGroupDMs)

	withMessages := make([]model.NameCount, 0, serverCounts.Len())
	for _, e := range serverCounts.Entries() {
		if e.Count > 0 {
			withMessages = append(withMessages, e)
		}
	}
	s.TopServers = rankNames(withMessages, maxTopServers)

	sort.SliceStable(s.TopChannels, func(i, j int) bool {
		return s.TopChannels[i].Count > s.TopChannels[j].Count
	})
	if len(s.TopChannels) > maxTopChannels {
		s.TopChannels = s.TopChannels[:maxTopChannels]
	}
}

// rankNames sorts by descending count, first-encounter order on ties, and
// truncates to limit.
func rankNames(items []model.NameCount, limit int) []model.NameCount {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func timeBuckets(s *model.Stats, messages []*model.Message) {
	monthly := make(map[string]int)
	yearly := make(map[int]int)

	for _, m := range messages {
		if m.Timestamp == "" {
			continue
		}
		ts := m.Timestamp
		if len(ts) > 19 {
			ts = ts[:19]
		}
		t, err := time.Parse(timestampLayout, ts)
		if err != nil {
			// Unparsable timestamps stay in the overview totals but are
			// excluded from every time-bucket metric.
			continue
		}
		monthly[t.Format("2006-01")]++
		s.Hourly[t.Hour()]++
		s.Weekday[(int(t.Weekday())+6)%7]++ // Monday-first buckets
		yearly[t.Year()]++
	}

	months := make([]string, 0, len(monthly))
	for k := range monthly {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		s.Monthly = append(s.Monthly, model.BucketCount{Label: k, Count: monthly[k]})
	}

	years := make([]int, 0, len(yearly))
	for k := range yearly {
		years = append(years, k)
	}
	sort.Ints(years)
	for _, k := range years {
		s.Yearly = append(s.Yearly, model.BucketCount{Label: strconv.Itoa(k), Count: yearly[k]})
	}
}

func contentStats(s *model.Stats, messages []*model.Message) {
	withText := 0
	for _, m := range messages {
		if m.HasAttachment {
			s.AttachmentCount++
		}
		if m.Contents == "" {
			continue
		}
		withText++
		n := utf8.RuneCountInString(m.Contents)
		s.TotalCharacters += n
		if n > s.MaxMessageLength {
			s.MaxMessageLength = n
		}
		s.TotalWords += len(strings.Fields(m.Contents))
	}
	if withText > 0 {
		s.AvgMessageLength = math.Round(float64(s.TotalCharacters)/float64(withText)*10) / 10
	}
}

func lexicalStats(s *model.Stats, messages []*model.Message) {
	words := newOrderedCounter()
	emoji := newOrderedCounter()
	for _, m := range messages {
		if m.Contents == "" {
			continue
		}
		countWords(words, strings.ToLower(m.Contents))
		countEmoji(emoji, m.Contents)
	}
	s.TopWords = words.MostCommon(maxTopWords)
	s.TopEmoji = emoji.MostCommon(maxTopEmoji)
}

func dateStats(s *model.Stats, messages []*model.Message) {
	dateSet := make(map[string]struct{})
	dayCounts := newOrderedCounter()

	for _, m := range messages {
		if m.Timestamp == "" {
			continue
		}
		d := m.Date()
		dateSet[d] = struct{}{}
		dayCounts.Add(d, 1)
		if s.FirstMessage == "" || m.Timestamp < s.FirstMessage {
			s.FirstMessage = m.Timestamp
		}
		if m.Timestamp > s.LastMessage {
			s.LastMessage = m.Timestamp
		}
	}
	s.ActiveDays = len(dateSet)

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	s.LongestStreak, s.LongestStreakStart = longestStreak(dates)

	if dayCounts.Len() > 0 {
		top := dayCounts.MostCommon(1)[0]
		s.BusiestDay = top.Name
		s.BusiestDayCount = top.Count
	}
}

func timeOfDay(s *model.Stats) {
	for h, n := range s.Hourly {
		switch {
		case h < 6:
			s.TimeOfDay.Night += n
		case h < 12:
			s.TimeOfDay.Morning += n
		case h < 18:
			s.TimeOfDay.Afternoon += n
		default:
			s.TimeOfDay.Evening += n
		}
		if n > s.PeakHourCount {
			s.PeakHour, s.PeakHourCount = h, n
		}
	}
	for d, n := range s.Weekday {
		if n > s.PeakWeekdayCount {
			s.PeakWeekday, s.PeakWeekdayCount = model.WeekdayNames[d], n
		}
	}
	if s.PeakWeekday == "" {
		s.PeakWeekday = model.WeekdayNames[0]
	}
}
