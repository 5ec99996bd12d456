package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"renraku/clients"
	"renraku/models"
)

// DiscordClient implements the clients.DiscordClient interface on top of a
// discordgo session.
type DiscordClient struct {
	session *discordgo.Session
}

func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	if user := c.session.State.User; user != nil {
		return &clients.DiscordBotUser{ID: user.ID, Username: user.Username, Bot: user.Bot}, nil
	}

	// State is only populated after the gateway handshake
	user, err := c.session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("failed to get bot user: %w", err)
	}
	return &clients.DiscordBotUser{ID: user.ID, Username: user.Username, Bot: user.Bot}, nil
}

// GetChannelByID resolves a channel from the session state cache, falling back
// to the REST API. Deleted or otherwise unknown channels resolve to None.
func (c *DiscordClient) GetChannelByID(channelID string) (mo.Option[*models.Channel], error) {
	channel, err := c.channelByID(channelID)
	if err != nil {
		if isUnknownChannelError(err) {
			return mo.None[*models.Channel](), nil
		}
		return mo.None[*models.Channel](), fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}

	classified := &models.Channel{
		ID:      channel.ID,
		GuildID: channel.GuildID,
		Name:    channel.Name,
		Kind:    classifyChannelType(channel.Type),
	}

	// Threads carry their classified parent so monitoring decisions can run
	// against it.
	if classified.Kind == models.ChannelKindThread && channel.ParentID != "" {
		parent, err := c.channelByID(channel.ParentID)
		if err != nil {
			if isUnknownChannelError(err) {
				return mo.None[*models.Channel](), nil
			}
			return mo.None[*models.Channel](), fmt.Errorf(
				"failed to get parent channel %s: %w",
				channel.ParentID,
				err,
			)
		}
		classified.Parent = &models.Channel{
			ID:      parent.ID,
			GuildID: parent.GuildID,
			Name:    parent.Name,
			Kind:    classifyChannelType(parent.Type),
		}
	}

	return mo.Some(classified), nil
}

func (c *DiscordClient) SendNotification(channelID string, notification *models.Notification) error {
	if _, err := c.session.ChannelMessageSendEmbed(channelID, NotificationEmbed(notification)); err != nil {
		return fmt.Errorf("failed to send notification to channel %s: %w", channelID, err)
	}
	return nil
}

// channelByID prefers the state cache and falls back to a REST lookup.
func (c *DiscordClient) channelByID(channelID string) (*discordgo.Channel, error) {
	if channel, err := c.session.State.Channel(channelID); err == nil {
		return channel, nil
	}
	return c.session.Channel(channelID)
}

// NotificationEmbed maps the notification payload onto a Discord embed.
func NotificationEmbed(notification *models.Notification) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       notification.Title,
		Description: notification.Description,
		Color:       notification.Color,
	}
	if notification.AuthorName != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    notification.AuthorName,
			IconURL: notification.AuthorIconURL,
		}
	}
	for _, field := range notification.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return embed
}

// classifyChannelType maps the Discord SDK channel type onto the closed set of
// kinds the relay distinguishes.
func classifyChannelType(channelType discordgo.ChannelType) models.ChannelKind {
	switch channelType {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return models.ChannelKindText
	case discordgo.ChannelTypeGuildForum:
		return models.ChannelKindForum
	case discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread,
		discordgo.ChannelTypeGuildNewsThread:
		return models.ChannelKindThread
	default:
		return models.ChannelKindOther
	}
}

func isUnknownChannelError(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		return restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel
	}
	return false
}
