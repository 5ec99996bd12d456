package mirror

import (
	"fmt"
	"time"

	"renraku/models"
	"renraku/utils"
)

const (
	// contentPreviewLimit bounds how much message content is mirrored into a
	// notification, in characters. Fixed policy, applied to all event kinds.
	contentPreviewLimit = 200
	truncationMarker    = "..."

	colorCreated = 0x00ff00
	colorEdited  = 0xffff00
	colorDeleted = 0xff0000
)

// Notification timestamps follow the bot's home timezone.
var tokyoTime = time.FixedZone("JST", 9*60*60)

// buildNotification renders the kind-specific notification card for an event.
// The formatter assumes self-authored events were filtered out upstream.
func (u *MirrorUseCase) buildNotification(event models.MessageEvent) *models.Notification {
	timestamp := time.Now().In(tokyoTime).Format("2006-01-02 15:04:05")
	content := utils.EscapeMarkdown(truncateContent(event.Content))

	notification := &models.Notification{
		AuthorName:    event.AuthorDisplayName,
		AuthorIconURL: event.AuthorAvatarURL,
	}

	switch event.Kind {
	case models.MessageEventCreated:
		notification.Description = timestamp + "\n" + content
		notification.Color = colorCreated
		notification.Fields = append(notification.Fields, models.NotificationField{
			Name:  "元の投稿",
			Value: originLink(event),
		})
	case models.MessageEventEdited:
		notification.Description = timestamp + "\nメッセージが編集されました"
		notification.Color = colorEdited
		notification.Fields = append(notification.Fields,
			models.NotificationField{Name: "編集後のメッセージ", Value: content},
			models.NotificationField{Name: "元の投稿", Value: originLink(event)},
		)
	case models.MessageEventDeleted:
		notification.Description = timestamp + "\nメッセージが削除されました"
		notification.Color = colorDeleted
		notification.Fields = append(notification.Fields,
			models.NotificationField{Name: "削除されたメッセージ", Value: content},
			// The message is gone, so the origin is named but not linked
			models.NotificationField{Name: "元のチャンネル", Value: originName(event.Channel)},
		)
	default:
		utils.AssertInvariant(false, "unknown message event kind")
	}

	return notification
}

// truncateContent bounds content to the preview limit, counting characters
// the way Discord renders them (runes, not bytes).
func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLimit {
		return content
	}
	return string(runes[:contentPreviewLimit]) + truncationMarker
}

// originName renders the origin channel: a thread under a forum parent shows
// as "parent > thread", everything else as "#channel".
func originName(channel *models.Channel) string {
	if channel.Kind == models.ChannelKindThread && channel.Parent != nil &&
		channel.Parent.Kind == models.ChannelKindForum {
		return channel.Parent.Name + " > " + channel.Name
	}
	return "#" + channel.Name
}

func originLink(event models.MessageEvent) string {
	return fmt.Sprintf("[%s](%s)",
		originName(event.Channel),
		messageJumpURL(event.GuildID, event.Channel.ID, event.MessageID))
}

// messageJumpURL generates a Discord message link
func messageJumpURL(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}
