package mirror

import (
	"context"
	"log"

	"github.com/samber/mo"

	"renraku/models"
)

// EffectiveChannel maps a raw channel to the channel monitoring decisions are
// made against: a thread resolves to its parent, anything else to itself.
// Monitoring a parent channel therefore implicitly monitors all its threads.
// Idempotent - a non-thread channel is a fixed point.
func EffectiveChannel(channel *models.Channel) *models.Channel {
	if channel == nil {
		return nil
	}
	if channel.Kind == models.ChannelKindThread && channel.Parent != nil {
		return channel.Parent
	}
	return channel
}

// destinationChannel decides whether an event in the given effective channel
// is in scope and resolves the guild's destination. Any failing condition -
// channel not monitored, destination unset, destination no longer resolvable -
// reads as "not in scope", never as an error: guilds that have not finished
// setup are normal operation.
func (u *MirrorUseCase) destinationChannel(
	ctx context.Context,
	config *models.GuildConfig,
	effective *models.Channel,
) mo.Option[*models.Channel] {
	if effective == nil || !config.IsMonitored(effective.ID) {
		return mo.None[*models.Channel]()
	}
	if config.DestinationChannelID == nil {
		return mo.None[*models.Channel]()
	}

	maybeChannel, err := u.discordClient.GetChannelByID(*config.DestinationChannelID)
	if err != nil {
		log.Printf("⚠️ Failed to resolve destination channel %s for guild %s: %v",
			*config.DestinationChannelID, config.GuildID, err)
		return mo.None[*models.Channel]()
	}
	if !maybeChannel.IsPresent() {
		log.Printf("⚠️ Destination channel %s no longer exists for guild %s",
			*config.DestinationChannelID, config.GuildID)
		return mo.None[*models.Channel]()
	}

	return maybeChannel
}
