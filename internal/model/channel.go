package model

// RawChannel mirrors a channel.json metadata entry.
type RawChannel struct {
	ID         string      `json:"id"`
	Type       ChannelType `json:"type"`
	Name       string      `json:"name"`
	Guild      *RawGuild   `json:"guild"`
	Recipients []string    `json:"recipients"`
}

// RawGuild is the owning server of a guild channel, when exported.
type RawGuild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GuildName returns the guild's name or empty when no guild was exported.
func (c *RawChannel) GuildName() string {
	if c.Guild == nil {
		return ""
	}
	return c.Guild.Name
}

// Channel is a resolved per-channel summary: identity plus the message count
// accumulated while normalizing, so rankings never re-scan the stream.
type Channel struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Group        string      `json:"group"`
	Type         ChannelType `json:"type"`
	MessageCount int         `json:"message_count"`
	Recipients   []string    `json:"recipients"`
}
