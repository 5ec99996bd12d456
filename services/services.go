package services

import (
	"context"

	"renraku/models"
)

// GuildConfigsService defines the interface for per-guild monitoring
// configuration operations
type GuildConfigsService interface {
	// GetGuildConfig never fails to the caller: persistence faults are logged
	// and degrade to the empty default config, so a store outage reads as
	// "unconfigured" on the event path.
	GetGuildConfig(ctx context.Context, guildID string) *models.GuildConfig
	SaveGuildConfig(ctx context.Context, config *models.GuildConfig) error
	AddMonitoredChannel(ctx context.Context, guildID, channelID string) (bool, error)
	RemoveMonitoredChannel(ctx context.Context, guildID, channelID string) (bool, error)
	SetDestinationChannel(ctx context.Context, guildID, channelID string) error
}

// TransactionManager defines the interface for managing database transactions
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
