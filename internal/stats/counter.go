package stats

import (
	"sort"

	"github.com/calpyte/dstats/internal/model"
)

// orderedCounter counts string keys while remembering first-encounter order,
// so equal counts rank in the order they first appeared in the stream.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

func (c *orderedCounter) Len() int { return len(c.order) }

// Entries returns all entries in first-encounter order.
func (c *orderedCounter) Entries() []model.NameCount {
	items := make([]model.NameCount, 0, len(c.order))
	for _, k := range c.order {
		items = append(items, model.NameCount{Name: k, Count: c.counts[k]})
	}
	return items
}

// MostCommon returns up to limit entries by descending count; equal counts
// keep first-encounter order.
func (c *orderedCounter) MostCommon(limit int) []model.NameCount {
	items := c.Entries()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
