package model

import (
	"strings"

	"github.com/goccy/go-json"
)

// ChannelType is the channel category reported by the export.
type ChannelType string

const (
	ChannelTypeDM      ChannelType = "DM"
	ChannelTypeGroupDM ChannelType = "GROUP_DM"
	ChannelTypeUnknown ChannelType = "UNKNOWN"
)

// IsGuild reports whether the type belongs to a server channel, which is
// every type that is not a direct or group conversation.
func (t ChannelType) IsGuild() bool {
	return t != ChannelTypeDM && t != ChannelTypeGroupDM
}

// Message is one exported message tagged with its resolved channel identity.
// Timestamp keeps the export's raw string form ("YYYY-MM-DD HH:MM:SS" in the
// first 19 characters); lexicographic comparison is chronological for
// well-formed values.
type Message struct {
	Timestamp     string      `json:"timestamp"`
	Contents      string      `json:"contents"`
	HasAttachment bool        `json:"has_attachment"`
	Channel       string      `json:"channel"`
	Group         string      `json:"group"`
	Type          ChannelType `json:"type"`
}

// Date returns the calendar-date prefix of the timestamp. A timestamp
// shorter than a full date is returned as-is; date consumers treat values
// that do not parse as isolated days.
func (m *Message) Date() string {
	if len(m.Timestamp) <= 10 {
		return m.Timestamp
	}
	return m.Timestamp[:10]
}

// RawMessage mirrors one entry of a channel's messages.json.
type RawMessage struct {
	Timestamp   string      `json:"Timestamp"`
	Contents    string      `json:"Contents"`
	Attachments Attachments `json:"Attachments"`
}

// Attachments tolerates both shapes seen in the wild: a space-separated URL
// string and a JSON array. Only presence matters downstream.
type Attachments struct {
	Present bool
}

func (a *Attachments) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null" || s == `""` || s == "[]":
		a.Present = false
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		a.Present = strings.TrimSpace(v) != ""
	case strings.HasPrefix(s, "["):
		var v []json.RawMessage
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		a.Present = len(v) > 0
	default:
		a.Present = true
	}
	return nil
}

func (a Attachments) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Present)
}
