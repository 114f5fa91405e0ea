package archive

import (
	"regexp"
	"strings"

	"github.com/calpyte/dstats/internal/model"
)

// Fixed grouping buckets and hint markers used by the resolver.
const (
	GroupDirectMessages = "Direct Messages"
	GroupGroupDMs       = "Group DMs"
	GroupUnknownServer  = "Unknown Server"

	placeholderGroupDM = "Group DM"
	dmHintPrefix       = "Direct Message with "
	guildHintSeparator = " in "
)

var dmHintPattern = regexp.MustCompile(`^Direct Message with (.+?)(?:#[0-9]+)?$`)

// Resolve derives a channel's display name and logical grouping from its raw
// metadata and the index hint for its id (empty string when the index has no
// entry).
//
// The hint is the only source of human-readable identity when guild metadata
// is missing from the export, so the hint-parsing paths win over metadata
// whenever the hint matches.
func Resolve(ch *model.RawChannel, hint string) (display, group string) {
	switch ch.Type {
	case model.ChannelTypeDM:
		// "Direct Message with name#1234" -> "name"; the discriminator
		// suffix is optional in newer exports.
		if m := dmHintPattern.FindStringSubmatch(hint); m != nil {
			return m[1], GroupDirectMessages
		}
		return strings.ReplaceAll(hint, dmHintPrefix, ""), GroupDirectMessages

	case model.ChannelTypeGroupDM:
		display = ch.Name
		if display == "" {
			display = hint
		}
		if display == "" {
			display = placeholderGroupDM
		}
		return display, GroupGroupDMs

	default:
		// "channel-name in Server Name", split on the first separator only:
		// server names may themselves contain " in ".
		if left, right, ok := strings.Cut(hint, guildHintSeparator); ok {
			return "#" + left, right
		}
		if ch.Name != "" {
			display = "#" + ch.Name
		} else {
			display = "#" + ch.ID
		}
		group = ch.GuildName()
		if group == "" {
			group = GroupUnknownServer
		}
		return display, group
	}
}
