// Package report renders a computed statistics result into a single
// self-contained HTML document with inline chart data.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/goccy/go-json"

	"github.com/calpyte/dstats/internal/model"
)

// view is the template input: the raw stats plus presentation values the
// template cannot derive itself (chart payloads, verdicts).
type view struct {
	Stats *model.Stats
	User  *model.User

	Username  string
	FirstDate string
	LastDate  string

	MonthlyLabels template.JS
	MonthlyValues template.JS
	HourlyLabels  template.JS
	HourlyValues  template.JS
	DowLabels     template.JS
	DowValues     template.JS
	DMLabels      template.JS
	DMValues      template.JS
	SrvLabels     template.JS
	SrvValues     template.JS
	TodLabels     template.JS
	TodValues     template.JS

	NightOwl   bool
	TodPercent int
	TodWindow  string
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(reportTemplate))

// Render writes the HTML report for s and user to w.
func Render(w io.Writer, s *model.Stats, user *model.User) error {
	v, err := buildView(s, user)
	if err != nil {
		return fmt.Errorf("build report view: %w", err)
	}
	if err := reportTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func buildView(s *model.Stats, user *model.User) (*view, error) {
	v := &view{
		Stats:     s,
		User:      user,
		Username:  user.DisplayName(),
		FirstDate: datePrefix(s.FirstMessage),
		LastDate:  datePrefix(s.LastMessage),
	}

	monthLabels := make([]string, 0, len(s.Monthly))
	monthValues := make([]int, 0, len(s.Monthly))
	for _, b := range s.Monthly {
		monthLabels = append(monthLabels, b.Label)
		monthValues = append(monthValues, b.Count)
	}

	hourLabels := make([]string, 24)
	for h := range hourLabels {
		hourLabels[h] = fmt.Sprintf("%02d:00", h)
	}

	dmLabels, dmValues := chartSeries(s.TopDMs, 15, 20)
	srvLabels, srvValues := chartSeries(s.TopServers, 15, 25)

	tod := s.TimeOfDay
	todValues := []int{tod.Night, tod.Morning, tod.Afternoon, tod.Evening}
	v.NightOwl = tod.Night+tod.Evening > tod.Morning+tod.Afternoon
	v.TodPercent, v.TodWindow = dominantWindow(tod)

	for _, p := range []struct {
		dst *template.JS
		src any
	}{
		{&v.MonthlyLabels, monthLabels},
		{&v.MonthlyValues, monthValues},
		{&v.HourlyLabels, hourLabels},
		{&v.HourlyValues, s.Hourly},
		{&v.DowLabels, model.WeekdayNames},
		{&v.DowValues, s.Weekday},
		{&v.DMLabels, dmLabels},
		{&v.DMValues, dmValues},
		{&v.SrvLabels, srvLabels},
		{&v.SrvValues, srvValues},
		{&v.TodLabels, []string{"Night (12-6am)", "Morning (6am-12pm)", "Afternoon (12-6pm)", "Evening (6pm-12am)"}},
		{&v.TodValues, todValues},
	} {
		data, err := json.Marshal(p.src)
		if err != nil {
			return nil, err
		}
		*p.dst = template.JS(data)
	}
	return v, nil
}

// chartSeries truncates a ranking for bar-chart display: at most limit bars
// with labels cut to maxRunes characters.
func chartSeries(items []model.NameCount, limit, maxRunes int) ([]string, []int) {
	if len(items) > limit {
		items = items[:limit]
	}
	labels := make([]string, 0, len(items))
	values := make([]int, 0, len(items))
	for _, it := range items {
		labels = append(labels, truncateRunes(it.Name, maxRunes))
		values = append(values, it.Count)
	}
	return labels, values
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func datePrefix(ts string) string {
	if len(ts) <= 10 {
		return ts
	}
	return ts[:10]
}

// dominantWindow returns the share and label of the busiest six-hour window.
func dominantWindow(tod model.TimeOfDay) (percent int, window string) {
	total := tod.Night + tod.Morning + tod.Afternoon + tod.Evening
	if total == 0 {
		return 0, "late night"
	}
	best, label := tod.Night, "late night"
	if tod.Morning > best {
		best, label = tod.Morning, "morning"
	}
	if tod.Afternoon > best {
		best, label = tod.Afternoon, "afternoon"
	}
	if tod.Evening > best {
		best, label = tod.Evening, "evening"
	}
	return best * 100 / total, label
}
