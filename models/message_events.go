package models

// MessageEventKind identifies the kind of message activity being mirrored.
type MessageEventKind int

const (
	MessageEventCreated MessageEventKind = iota
	MessageEventEdited
	MessageEventDeleted
)

func (k MessageEventKind) String() string {
	switch k {
	case MessageEventCreated:
		return "message-created"
	case MessageEventEdited:
		return "message-edited"
	case MessageEventDeleted:
		return "message-deleted"
	default:
		return "unknown"
	}
}

// MessageEvent is an inbound message activity event. Content carries the
// created content, the post-edit content, or the last known content of a
// deleted message, depending on Kind.
type MessageEvent struct {
	Kind              MessageEventKind
	GuildID           string
	MessageID         string
	AuthorID          string
	AuthorDisplayName string
	AuthorAvatarURL   string
	Content           string
	// Channel is the raw channel the message was posted in (possibly a thread).
	Channel *Channel
}
