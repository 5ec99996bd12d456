package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/mo"

	"renraku/core"
	dbtx "renraku/db/tx"
	"renraku/models"
)

type PostgresGuildConfigsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guild_configs table
var guildConfigsColumns = []string{
	"id",
	"guild_id",
	"monitored_channels",
	"destination_channel_id",
	"created_at",
	"updated_at",
}

func NewPostgresGuildConfigsRepository(db *sqlx.DB, schema string) *PostgresGuildConfigsRepository {
	return &PostgresGuildConfigsRepository{db: db, schema: schema}
}

func (r *PostgresGuildConfigsRepository) GetGuildConfigByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.GuildConfig], error) {
	return r.getGuildConfigByGuildID(ctx, guildID, false)
}

// GetGuildConfigByGuildIDForUpdate locks the guild's row for the duration of
// the surrounding transaction. Must only be called within a transaction.
func (r *PostgresGuildConfigsRepository) GetGuildConfigByGuildIDForUpdate(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.GuildConfig], error) {
	return r.getGuildConfigByGuildID(ctx, guildID, true)
}

func (r *PostgresGuildConfigsRepository) getGuildConfigByGuildID(
	ctx context.Context,
	guildID string,
	forUpdate bool,
) (mo.Option[*models.GuildConfig], error) {
	if guildID == "" {
		return mo.None[*models.GuildConfig](), fmt.Errorf("guild ID cannot be empty")
	}

	columnsStr := strings.Join(guildConfigsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_configs
		WHERE guild_id = $1`, columnsStr, r.schema)
	if forUpdate {
		query += " FOR UPDATE"
	}

	db := dbtx.GetTransactional(ctx, r.db)

	var config models.GuildConfig
	err := db.GetContext(ctx, &config, query, guildID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.GuildConfig](), nil
		}
		return mo.None[*models.GuildConfig](), fmt.Errorf("failed to get guild config by guild ID: %w", err)
	}

	return mo.Some(&config), nil
}

// UpsertGuildConfig writes the full config document keyed by guild_id.
// Idempotent - saving the same config twice yields the same durable state.
func (r *PostgresGuildConfigsRepository) UpsertGuildConfig(
	ctx context.Context,
	config *models.GuildConfig,
) error {
	if config.GuildID == "" {
		return fmt.Errorf("guild ID cannot be empty")
	}

	db := dbtx.GetTransactional(ctx, r.db)

	id := config.ID
	if id == "" {
		id = core.NewID("gc")
	}
	monitored := config.MonitoredChannels
	if monitored == nil {
		monitored = pq.StringArray{}
	}
	returningStr := strings.Join(guildConfigsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.guild_configs (
			id, guild_id, monitored_channels, destination_channel_id
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			monitored_channels = EXCLUDED.monitored_channels,
			destination_channel_id = EXCLUDED.destination_channel_id,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	err := db.QueryRowxContext(
		ctx,
		query,
		id, config.GuildID, monitored, config.DestinationChannelID,
	).StructScan(config)
	if err != nil {
		return fmt.Errorf("failed to upsert guild config: %w", err)
	}

	return nil
}
