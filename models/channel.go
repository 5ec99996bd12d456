package models

// ChannelKind is a closed classification of the Discord channel types the
// relay distinguishes. Anything that is not text-capable, forum-capable or a
// thread maps to ChannelKindOther.
type ChannelKind int

const (
	ChannelKindText ChannelKind = iota
	ChannelKindForum
	ChannelKindThread
	ChannelKindOther
)

func (k ChannelKind) String() string {
	switch k {
	case ChannelKindText:
		return "text"
	case ChannelKindForum:
		return "forum"
	case ChannelKindThread:
		return "thread"
	default:
		return "other"
	}
}

// Channel is a classified Discord channel. For threads, Parent holds the
// classified parent channel so monitoring decisions can run against it.
type Channel struct {
	ID      string
	GuildID string
	Name    string
	Kind    ChannelKind
	Parent  *Channel
}

// IsMonitorable reports whether this kind of channel can be added to the
// monitored set.
func (c *Channel) IsMonitorable() bool {
	return c.Kind == ChannelKindText || c.Kind == ChannelKindForum
}

// Mention renders the channel as a Discord channel mention.
func (c *Channel) Mention() string {
	return "<#" + c.ID + ">"
}
