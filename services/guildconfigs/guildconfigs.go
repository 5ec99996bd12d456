package guildconfigs

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/lib/pq"

	"renraku/db"
	"renraku/models"
	"renraku/services"
)

type GuildConfigsService struct {
	guildConfigsRepo *db.PostgresGuildConfigsRepository
	txManager        services.TransactionManager
}

func NewGuildConfigsService(
	repo *db.PostgresGuildConfigsRepository,
	txManager services.TransactionManager,
) *GuildConfigsService {
	return &GuildConfigsService{guildConfigsRepo: repo, txManager: txManager}
}

// DefaultGuildConfig is the empty configuration a guild has before any
// administrative command has run. Behaviorally identical to a missing row.
func DefaultGuildConfig(guildID string) *models.GuildConfig {
	return &models.GuildConfig{
		GuildID:           guildID,
		MonitoredChannels: pq.StringArray{},
	}
}

// GetGuildConfig returns the stored config for the guild, or the empty
// default when no row exists or the store is unreachable. It never fails to
// the caller - a store outage reads as "unconfigured".
func (s *GuildConfigsService) GetGuildConfig(ctx context.Context, guildID string) *models.GuildConfig {
	maybeConfig, err := s.guildConfigsRepo.GetGuildConfigByGuildID(ctx, guildID)
	if err != nil {
		log.Printf("❌ Failed to get guild config for guild %s: %v", guildID, err)
		return DefaultGuildConfig(guildID)
	}
	if !maybeConfig.IsPresent() {
		return DefaultGuildConfig(guildID)
	}
	return maybeConfig.MustGet()
}

func (s *GuildConfigsService) SaveGuildConfig(ctx context.Context, config *models.GuildConfig) error {
	log.Printf("📋 Starting to save guild config for guild %s", config.GuildID)

	if err := s.guildConfigsRepo.UpsertGuildConfig(ctx, config); err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	log.Printf("📋 Completed successfully - saved guild config for guild %s", config.GuildID)
	return nil
}

// AddMonitoredChannel appends the channel to the guild's monitored set.
// Returns false when the channel was already monitored. The read-modify-write
// runs inside a transaction with the guild's row locked, so concurrent
// administrative commands cannot lose each other's writes.
func (s *GuildConfigsService) AddMonitoredChannel(
	ctx context.Context,
	guildID, channelID string,
) (bool, error) {
	log.Printf("📋 Starting to add monitored channel %s for guild %s", channelID, guildID)

	added := false
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		config, err := s.getGuildConfigForUpdate(txCtx, guildID)
		if err != nil {
			return err
		}
		if config.IsMonitored(channelID) {
			return nil
		}
		config.MonitoredChannels = append(config.MonitoredChannels, channelID)
		if err := s.guildConfigsRepo.UpsertGuildConfig(txCtx, config); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to add monitored channel: %w", err)
	}

	log.Printf("📋 Completed successfully - add monitored channel %s for guild %s (added: %t)",
		channelID, guildID, added)
	return added, nil
}

// RemoveMonitoredChannel removes the channel from the guild's monitored set.
// Returns false when the channel was not monitored; the destination channel
// is never touched.
func (s *GuildConfigsService) RemoveMonitoredChannel(
	ctx context.Context,
	guildID, channelID string,
) (bool, error) {
	log.Printf("📋 Starting to remove monitored channel %s for guild %s", channelID, guildID)

	removed := false
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		config, err := s.getGuildConfigForUpdate(txCtx, guildID)
		if err != nil {
			return err
		}
		index := slices.Index(config.MonitoredChannels, channelID)
		if index == -1 {
			return nil
		}
		config.MonitoredChannels = slices.Delete(config.MonitoredChannels, index, index+1)
		if err := s.guildConfigsRepo.UpsertGuildConfig(txCtx, config); err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove monitored channel: %w", err)
	}

	log.Printf("📋 Completed successfully - remove monitored channel %s for guild %s (removed: %t)",
		channelID, guildID, removed)
	return removed, nil
}

// SetDestinationChannel replaces the guild's destination channel. The
// destination is single-valued - setting always overwrites, never adds.
func (s *GuildConfigsService) SetDestinationChannel(
	ctx context.Context,
	guildID, channelID string,
) error {
	log.Printf("📋 Starting to set destination channel %s for guild %s", channelID, guildID)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		config, err := s.getGuildConfigForUpdate(txCtx, guildID)
		if err != nil {
			return err
		}
		config.DestinationChannelID = &channelID
		return s.guildConfigsRepo.UpsertGuildConfig(txCtx, config)
	})
	if err != nil {
		return fmt.Errorf("failed to set destination channel: %w", err)
	}

	log.Printf("📋 Completed successfully - set destination channel %s for guild %s", channelID, guildID)
	return nil
}

// getGuildConfigForUpdate reads the guild's row with a row lock, synthesizing
// the default config when no row exists yet. Unlike GetGuildConfig this does
// propagate store errors - a mutation must not proceed on a degraded read.
func (s *GuildConfigsService) getGuildConfigForUpdate(
	ctx context.Context,
	guildID string,
) (*models.GuildConfig, error) {
	maybeConfig, err := s.guildConfigsRepo.GetGuildConfigByGuildIDForUpdate(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config for update: %w", err)
	}
	if !maybeConfig.IsPresent() {
		return DefaultGuildConfig(guildID), nil
	}
	return maybeConfig.MustGet(), nil
}
