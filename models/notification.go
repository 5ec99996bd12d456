package models

// Notification is the bounded embed payload delivered to a guild's
// destination channel.
type Notification struct {
	Title         string
	Description   string
	Color         int
	AuthorName    string
	AuthorIconURL string
	Fields        []NotificationField
}

type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}
