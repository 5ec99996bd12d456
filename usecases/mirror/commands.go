package mirror

import (
	"context"
	"fmt"
	"log"
	"strings"

	"renraku/models"
)

// ProcessAddMonitorCommand adds a channel to the guild's monitored set.
// Returns the user-visible reply. Only text-capable and forum-capable
// channels can be monitored.
func (u *MirrorUseCase) ProcessAddMonitorCommand(
	ctx context.Context,
	guildID string,
	channel *models.Channel,
) (string, error) {
	log.Printf("📋 Starting to process add_monitor command for channel %s in guild %s", channel.ID, guildID)

	if !channel.IsMonitorable() {
		log.Printf("⚠️ Channel %s has unsupported kind %s for monitoring", channel.ID, channel.Kind)
		return fmt.Sprintf("%s は監視可能なチャンネルの種類ではありません。", channel.Mention()), nil
	}

	added, err := u.guildConfigsService.AddMonitoredChannel(ctx, guildID, channel.ID)
	if err != nil {
		return "", fmt.Errorf("failed to add monitored channel: %w", err)
	}
	if !added {
		return fmt.Sprintf("%s は既に監視対象です。", channel.Mention()), nil
	}

	log.Printf("📋 Completed successfully - added channel %s to monitored channels in guild %s",
		channel.ID, guildID)
	return fmt.Sprintf("%s が監視対象に追加されました。", channel.Mention()), nil
}

// ProcessRemoveMonitorCommand removes a channel from the guild's monitored
// set. Removing a channel that is not monitored is a no-op.
func (u *MirrorUseCase) ProcessRemoveMonitorCommand(
	ctx context.Context,
	guildID string,
	channel *models.Channel,
) (string, error) {
	log.Printf("📋 Starting to process remove_monitor command for channel %s in guild %s", channel.ID, guildID)

	removed, err := u.guildConfigsService.RemoveMonitoredChannel(ctx, guildID, channel.ID)
	if err != nil {
		return "", fmt.Errorf("failed to remove monitored channel: %w", err)
	}
	if !removed {
		return fmt.Sprintf("%s は監視対象ではありません。", channel.Mention()), nil
	}

	log.Printf("📋 Completed successfully - removed channel %s from monitored channels in guild %s",
		channel.ID, guildID)
	return fmt.Sprintf("%s が監視対象から削除されました。", channel.Mention()), nil
}

// ProcessSetDestinationCommand replaces the guild's destination channel.
func (u *MirrorUseCase) ProcessSetDestinationCommand(
	ctx context.Context,
	guildID string,
	channel *models.Channel,
) (string, error) {
	log.Printf("📋 Starting to process set_destination command for channel %s in guild %s", channel.ID, guildID)

	if err := u.guildConfigsService.SetDestinationChannel(ctx, guildID, channel.ID); err != nil {
		return "", fmt.Errorf("failed to set destination channel: %w", err)
	}

	log.Printf("📋 Completed successfully - set destination channel to %s in guild %s", channel.ID, guildID)
	return fmt.Sprintf("転送先が %s に設定されました。", channel.Mention()), nil
}

// ProcessShowConfigCommand renders the guild's current configuration. Stored
// IDs may point at channels deleted since they were added; those are shown as
// absent rather than failing the command.
func (u *MirrorUseCase) ProcessShowConfigCommand(
	ctx context.Context,
	guildID string,
) (*models.Notification, error) {
	log.Printf("📋 Starting to process show_config command for guild %s", guildID)

	config := u.guildConfigsService.GetGuildConfig(ctx, guildID)

	var monitored []string
	for _, channelID := range config.MonitoredChannels {
		maybeChannel, err := u.discordClient.GetChannelByID(channelID)
		if err != nil {
			log.Printf("⚠️ Failed to resolve monitored channel %s: %v", channelID, err)
			continue
		}
		if !maybeChannel.IsPresent() {
			continue
		}
		monitored = append(monitored, maybeChannel.MustGet().Mention())
	}

	monitoredValue := "なし"
	if len(monitored) > 0 {
		monitoredValue = strings.Join(monitored, "\n")
	}

	destinationValue := "未設定"
	if config.DestinationChannelID != nil {
		maybeChannel, err := u.discordClient.GetChannelByID(*config.DestinationChannelID)
		if err != nil {
			log.Printf("⚠️ Failed to resolve destination channel %s: %v", *config.DestinationChannelID, err)
		} else if maybeChannel.IsPresent() {
			destinationValue = maybeChannel.MustGet().Mention()
		}
	}

	log.Printf("📋 Completed successfully - rendered config for guild %s", guildID)
	return &models.Notification{
		Title: "現在の設定",
		Color: colorCreated,
		Fields: []models.NotificationField{
			{Name: "監視対象チャンネル", Value: monitoredValue},
			{Name: "転送先チャンネル", Value: destinationValue},
		},
	}, nil
}
