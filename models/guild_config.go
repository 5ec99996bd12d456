package models

import (
	"slices"
	"time"

	"github.com/lib/pq"
)

// GuildConfig is the per-guild monitoring configuration. Exactly one row
// exists per guild; a missing row is equivalent to the empty default config.
type GuildConfig struct {
	ID                   string         `db:"id"                     json:"id"`
	GuildID              string         `db:"guild_id"               json:"guild_id"`
	MonitoredChannels    pq.StringArray `db:"monitored_channels"     json:"monitored_channels"`
	DestinationChannelID *string        `db:"destination_channel_id" json:"destination_channel_id"`
	CreatedAt            time.Time      `db:"created_at"             json:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"             json:"updated_at"`
}

// IsMonitored reports whether the given channel is part of the monitored set.
func (c *GuildConfig) IsMonitored(channelID string) bool {
	return slices.Contains(c.MonitoredChannels, channelID)
}
