package guildconfigs

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renraku/models"
)

type MockGuildConfigsService struct {
	mock.Mock
}

func (m *MockGuildConfigsService) GetGuildConfig(ctx context.Context, guildID string) *models.GuildConfig {
	args := m.Called(ctx, guildID)
	return args.Get(0).(*models.GuildConfig)
}

func (m *MockGuildConfigsService) SaveGuildConfig(ctx context.Context, config *models.GuildConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockGuildConfigsService) AddMonitoredChannel(
	ctx context.Context,
	guildID, channelID string,
) (bool, error) {
	args := m.Called(ctx, guildID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuildConfigsService) RemoveMonitoredChannel(
	ctx context.Context,
	guildID, channelID string,
) (bool, error) {
	args := m.Called(ctx, guildID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuildConfigsService) SetDestinationChannel(
	ctx context.Context,
	guildID, channelID string,
) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}
