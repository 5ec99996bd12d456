package clients

import (
	"github.com/samber/mo"

	"renraku/models"
)

// DiscordClient defines the operations the relay needs from Discord.
type DiscordClient interface {
	// GetBotUser returns the bot's own user identity.
	GetBotUser() (*DiscordBotUser, error)
	// GetChannelByID resolves and classifies a channel. Unknown or deleted
	// channels resolve to None rather than an error.
	GetChannelByID(channelID string) (mo.Option[*models.Channel], error)
	// SendNotification posts an embed notification to the given channel.
	SendNotification(channelID string, notification *models.Notification) error
}
