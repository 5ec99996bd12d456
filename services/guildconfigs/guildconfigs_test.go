package guildconfigs

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renraku/core"
	"renraku/db"
	"renraku/services/txmanager"
	"renraku/testutils"
)

type guildConfigsTestFixture struct {
	service *GuildConfigsService
	dbConn  *sqlx.DB
	schema  string
	guildID string
	ctx     context.Context
}

func setupGuildConfigsTest(t *testing.T) *guildConfigsTestFixture {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("skipping database-backed test: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)

	repo := db.NewPostgresGuildConfigsRepository(dbConn, cfg.DatabaseSchema)
	service := NewGuildConfigsService(repo, txmanager.NewTransactionManager(dbConn))

	fixture := &guildConfigsTestFixture{
		service: service,
		dbConn:  dbConn,
		schema:  cfg.DatabaseSchema,
		guildID: core.NewID("guild"),
		ctx:     context.Background(),
	}

	t.Cleanup(func() {
		_, err := dbConn.Exec(
			fmt.Sprintf("DELETE FROM %s.guild_configs WHERE guild_id = $1", fixture.schema),
			fixture.guildID)
		assert.NoError(t, err)
		dbConn.Close()
	})

	return fixture
}

func TestGuildConfigsService_GetGuildConfig_DefaultWhenMissing(t *testing.T) {
	fixture := setupGuildConfigsTest(t)

	config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)

	require.NotNil(t, config)
	assert.Equal(t, fixture.guildID, config.GuildID)
	assert.Empty(t, config.MonitoredChannels)
	assert.Nil(t, config.DestinationChannelID)
}

func TestGuildConfigsService_AddMonitoredChannel(t *testing.T) {
	fixture := setupGuildConfigsTest(t)

	added, err := fixture.service.AddMonitoredChannel(fixture.ctx, fixture.guildID, "channel-1")
	require.NoError(t, err)
	assert.True(t, added)

	config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)
	assert.True(t, core.IsValidID(config.ID))
	assert.Equal(t, []string{"channel-1"}, []string(config.MonitoredChannels))
	assert.NotZero(t, config.CreatedAt)
	assert.NotZero(t, config.UpdatedAt)

	t.Run("adding again is a no-op", func(t *testing.T) {
		added, err := fixture.service.AddMonitoredChannel(fixture.ctx, fixture.guildID, "channel-1")
		require.NoError(t, err)
		assert.False(t, added)

		config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)
		assert.Equal(t, []string{"channel-1"}, []string(config.MonitoredChannels))
	})
}

func TestGuildConfigsService_RemoveMonitoredChannel(t *testing.T) {
	fixture := setupGuildConfigsTest(t)

	_, err := fixture.service.AddMonitoredChannel(fixture.ctx, fixture.guildID, "channel-1")
	require.NoError(t, err)
	_, err = fixture.service.AddMonitoredChannel(fixture.ctx, fixture.guildID, "channel-2")
	require.NoError(t, err)
	require.NoError(t, fixture.service.SetDestinationChannel(fixture.ctx, fixture.guildID, "dest-1"))

	removed, err := fixture.service.RemoveMonitoredChannel(fixture.ctx, fixture.guildID, "channel-1")
	require.NoError(t, err)
	assert.True(t, removed)

	config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)
	assert.Equal(t, []string{"channel-2"}, []string(config.MonitoredChannels))
	// Removing a monitored channel never touches the destination
	require.NotNil(t, config.DestinationChannelID)
	assert.Equal(t, "dest-1", *config.DestinationChannelID)

	t.Run("removing an unmonitored channel is a no-op", func(t *testing.T) {
		removed, err := fixture.service.RemoveMonitoredChannel(fixture.ctx, fixture.guildID, "channel-1")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestGuildConfigsService_SetDestinationChannel(t *testing.T) {
	fixture := setupGuildConfigsTest(t)

	require.NoError(t, fixture.service.SetDestinationChannel(fixture.ctx, fixture.guildID, "dest-1"))

	config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)
	require.NotNil(t, config.DestinationChannelID)
	assert.Equal(t, "dest-1", *config.DestinationChannelID)

	t.Run("setting again replaces the previous destination", func(t *testing.T) {
		require.NoError(t, fixture.service.SetDestinationChannel(fixture.ctx, fixture.guildID, "dest-2"))

		config := fixture.service.GetGuildConfig(fixture.ctx, fixture.guildID)
		require.NotNil(t, config.DestinationChannelID)
		assert.Equal(t, "dest-2", *config.DestinationChannelID)
	})
}

func TestGuildConfigsService_GetGuildConfig_DegradesToDefaultOnStoreError(t *testing.T) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("skipping database-backed test: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)

	repo := db.NewPostgresGuildConfigsRepository(dbConn, cfg.DatabaseSchema)
	service := NewGuildConfigsService(repo, txmanager.NewTransactionManager(dbConn))

	// Simulate a store outage
	require.NoError(t, dbConn.Close())

	config := service.GetGuildConfig(context.Background(), "guild-unreachable")

	require.NotNil(t, config)
	assert.Equal(t, "guild-unreachable", config.GuildID)
	assert.Empty(t, config.MonitoredChannels)
	assert.Nil(t, config.DestinationChannelID)
}
