package model

// WeekdayNames indexes weekday buckets, Monday first, matching the export's
// locale-independent report layout.
var WeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NameCount is one entry of a ranking or frequency list.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ChannelCount ranks a guild channel together with its server.
type ChannelCount struct {
	Name   string `json:"name"`
	Server string `json:"server"`
	Count  int    `json:"count"`
}

// BucketCount is one time bucket of a sorted series (month or year).
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TimeOfDay splits the hourly buckets into four fixed six-hour windows.
type TimeOfDay struct {
	Night     int `json:"night"`     // 00-05
	Morning   int `json:"morning"`   // 06-11
	Afternoon int `json:"afternoon"` // 12-17
	Evening   int `json:"evening"`   // 18-23
}

// Stats is the full aggregate handed to the report renderer. It is computed
// once and treated as an immutable value afterwards.
type Stats struct {
	TotalMessages int `json:"total_messages"`
	TotalChannels int `json:"total_channels"`
	TotalDMs      int `json:"total_dms"`
	TotalGroupDMs int `json:"total_group_dms"`
	TotalServers  int `json:"total_servers"`

	TopDMs      []NameCount    `json:"top_dms"`
	TopGroupDMs []NameCount    `json:"top_group_dms"`
	TopServers  []NameCount    `json:"top_servers"`
	TopChannels []ChannelCount `json:"top_channels"`

	Monthly []BucketCount `json:"monthly"`
	Hourly  [24]int       `json:"hourly"`
	Weekday [7]int        `json:"weekday"`
	Yearly  []BucketCount `json:"yearly"`

	AvgMessageLength float64 `json:"avg_msg_length"`
	MaxMessageLength int     `json:"max_msg_length"`
	TotalCharacters  int     `json:"total_characters"`
	TotalWords       int     `json:"total_words"`

	AttachmentCount int `json:"attachment_count"`

	TopWords []NameCount `json:"top_words"`
	TopEmoji []NameCount `json:"top_emoji"`

	LongestStreak      int    `json:"longest_streak"`
	LongestStreakStart string `json:"longest_streak_start"`

	FirstMessage string `json:"first_message"`
	LastMessage  string `json:"last_message"`
	ActiveDays   int    `json:"active_days"`

	BusiestDay      string `json:"busiest_day"`
	BusiestDayCount int    `json:"busiest_day_count"`

	PeakHour         int    `json:"peak_hour"`
	PeakHourCount    int    `json:"peak_hour_count"`
	PeakWeekday      string `json:"peak_weekday"`
	PeakWeekdayCount int    `json:"peak_weekday_count"`

	TimeOfDay TimeOfDay `json:"time_of_day"`
}
