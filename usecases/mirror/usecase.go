package mirror

import (
	"renraku/clients"
	"renraku/services"
)

// MirrorUseCase relays message activity from monitored channels into embed
// notifications on each guild's destination channel, and backs the
// administrative slash commands that configure the monitoring.
type MirrorUseCase struct {
	discordClient       clients.DiscordClient
	guildConfigsService services.GuildConfigsService
}

// NewMirrorUseCase creates a new instance of MirrorUseCase
func NewMirrorUseCase(
	discordClient clients.DiscordClient,
	guildConfigsService services.GuildConfigsService,
) *MirrorUseCase {
	return &MirrorUseCase{
		discordClient:       discordClient,
		guildConfigsService: guildConfigsService,
	}
}
