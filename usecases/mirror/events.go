package mirror

import (
	"context"
	"fmt"
	"log"

	"renraku/models"
)

// ProcessMessageEvent is the single dispatch path for all three message event
// kinds: self-author short-circuit, effective channel resolution, config
// lookup, scope decision, formatting, delivery. Delivery is best-effort - a
// failed send is logged and never interrupts processing of subsequent events.
func (u *MirrorUseCase) ProcessMessageEvent(ctx context.Context, event models.MessageEvent) error {
	log.Printf("📨 Processing %s event for message %s in guild %s, channel %s",
		event.Kind, event.MessageID, event.GuildID, event.Channel.ID)

	// Never mirror the bot's own messages
	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}
	if event.AuthorID == botUser.ID {
		return nil
	}

	effective := EffectiveChannel(event.Channel)
	config := u.guildConfigsService.GetGuildConfig(ctx, event.GuildID)

	maybeDestination := u.destinationChannel(ctx, config, effective)
	if !maybeDestination.IsPresent() {
		return nil
	}
	destination := maybeDestination.MustGet()

	notification := u.buildNotification(event)

	if err := u.discordClient.SendNotification(destination.ID, notification); err != nil {
		log.Printf("❌ Failed to send notification to channel %s: %v", destination.ID, err)
		return nil
	}

	log.Printf("📋 Completed successfully - mirrored %s event from channel %s to %s in guild %s",
		event.Kind, event.Channel.ID, destination.ID, event.GuildID)
	return nil
}
