package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"renraku/clients"
	discordclient "renraku/clients/discord"
	"renraku/middleware"
	"renraku/models"
	"renraku/usecases/mirror"
)

const genericCommandError = "An error occurred while processing the command."

var administratorPermission int64 = discordgo.PermissionAdministrator

// slashCommands are the administrator-gated application commands synced on
// every Ready event.
var slashCommands = []*discordgo.ApplicationCommand{
	{
		Name:                     "add_monitor",
		Description:              "チャンネルを監視対象に追加します",
		DefaultMemberPermissions: &administratorPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "監視対象に追加するチャンネル",
				Required:    true,
			},
		},
	},
	{
		Name:                     "remove_monitor",
		Description:              "チャンネルを監視対象から削除します",
		DefaultMemberPermissions: &administratorPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "監視対象から削除するチャンネル",
				Required:    true,
			},
		},
	},
	{
		Name:                     "set_destination",
		Description:              "転送先チャンネルを設定します",
		DefaultMemberPermissions: &administratorPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "転送先チャンネル",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	},
	{
		Name:                     "show_config",
		Description:              "現在の設定を表示します",
		DefaultMemberPermissions: &administratorPermission,
	},
}

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	discordClient    clients.DiscordClient
	mirrorUseCase    *mirror.MirrorUseCase
	alertMiddleware  *middleware.ErrorAlertMiddleware
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	discordClient clients.DiscordClient,
	mirrorUseCase *mirror.MirrorUseCase,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		discordClient:    discordClient,
		mirrorUseCase:    mirrorUseCase,
		alertMiddleware:  alertMiddleware,
	}

	// Register event handlers
	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleMessageCreatedEvent)
	session.AddHandler(handler.handleMessageUpdatedEvent)
	session.AddHandler(handler.handleMessageDeletedEvent)
	session.AddHandler(handler.handleInteractionCreatedEvent)

	// Set intents to receive guild, message and message content events
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	// Cache recent messages so edit and delete events can recover the message
	// content as it was before the change
	session.State.MaxMessageCount = 1000

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	if err := h.discordSDKClient.Close(); err != nil {
		log.Printf("⚠️ Failed to close Discord session: %v", err)
	}
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("🤖 %s has connected to Discord", r.User.Username)

	if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, "", slashCommands); err != nil {
		log.Printf("❌ Failed to sync slash commands: %v", err)
		return
	}
	log.Printf("✅ Synced %d slash command(s)", len(slashCommands))
}

func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.alertMiddleware.WrapEventHandler("MessageCreated", func() error {
		// Ignore DMs and partial events without an author
		if m.GuildID == "" || m.Author == nil {
			return nil
		}

		event, ok := h.mapToMessageEvent(models.MessageEventCreated, m.GuildID, m.ID, m.ChannelID, m.Author, m.Content)
		if !ok {
			return nil
		}
		return h.mirrorUseCase.ProcessMessageEvent(context.Background(), event)
	})()
}

func (h *DiscordEventsHandler) handleMessageUpdatedEvent(s *discordgo.Session, m *discordgo.MessageUpdate) {
	h.alertMiddleware.WrapEventHandler("MessageUpdated", func() error {
		// Embed unfurls and other system edits arrive without an author
		if m.GuildID == "" || m.Author == nil {
			return nil
		}

		event, ok := h.mapToMessageEvent(models.MessageEventEdited, m.GuildID, m.ID, m.ChannelID, m.Author, m.Content)
		if !ok {
			return nil
		}
		return h.mirrorUseCase.ProcessMessageEvent(context.Background(), event)
	})()
}

func (h *DiscordEventsHandler) handleMessageDeletedEvent(s *discordgo.Session, m *discordgo.MessageDelete) {
	h.alertMiddleware.WrapEventHandler("MessageDeleted", func() error {
		if m.GuildID == "" {
			return nil
		}

		// A delete event carries only IDs; author and content only survive
		// via the state cache
		before := m.BeforeDelete
		if before == nil || before.Author == nil {
			log.Printf("🔍 No cached content for deleted message %s - ignoring", m.ID)
			return nil
		}

		event, ok := h.mapToMessageEvent(models.MessageEventDeleted, m.GuildID, m.ID, m.ChannelID, before.Author, before.Content)
		if !ok {
			return nil
		}
		return h.mirrorUseCase.ProcessMessageEvent(context.Background(), event)
	})()
}

func (h *DiscordEventsHandler) handleInteractionCreatedEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// A panicking command handler must never take down event processing; it
	// degrades to a generic ephemeral error reply instead
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic while handling command interaction: %v", r)
			h.respondEphemeral(s, i, genericCommandError)
		}
	}()

	ctx := context.Background()
	data := i.ApplicationCommandData()
	guildID := i.GuildID
	log.Printf("📨 Received /%s command in guild %s", data.Name, guildID)

	var reply string
	var embed *models.Notification
	var err error

	switch data.Name {
	case "add_monitor":
		var channel *models.Channel
		if channel, err = h.resolveChannelOption(data); err == nil {
			reply, err = h.mirrorUseCase.ProcessAddMonitorCommand(ctx, guildID, channel)
		}
	case "remove_monitor":
		var channel *models.Channel
		if channel, err = h.resolveChannelOption(data); err == nil {
			reply, err = h.mirrorUseCase.ProcessRemoveMonitorCommand(ctx, guildID, channel)
		}
	case "set_destination":
		var channel *models.Channel
		if channel, err = h.resolveChannelOption(data); err == nil {
			reply, err = h.mirrorUseCase.ProcessSetDestinationCommand(ctx, guildID, channel)
		}
	case "show_config":
		embed, err = h.mirrorUseCase.ProcessShowConfigCommand(ctx, guildID)
	default:
		log.Printf("⚠️ Unknown command: %s", data.Name)
		return
	}

	if err != nil {
		log.Printf("❌ Failed to process /%s command: %v", data.Name, err)
		h.respondEphemeral(s, i, genericCommandError)
		return
	}

	if embed != nil {
		h.respondEphemeralEmbed(s, i, embed)
		return
	}
	h.respondEphemeral(s, i, reply)
}

// resolveChannelOption resolves the "channel" option of a command interaction
// into a classified channel.
func (h *DiscordEventsHandler) resolveChannelOption(
	data discordgo.ApplicationCommandInteractionData,
) (*models.Channel, error) {
	for _, option := range data.Options {
		if option.Type != discordgo.ApplicationCommandOptionChannel || option.Name != "channel" {
			continue
		}

		channelID, ok := option.Value.(string)
		if !ok {
			return nil, fmt.Errorf("channel option has unexpected value type %T", option.Value)
		}
		maybeChannel, err := h.discordClient.GetChannelByID(channelID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve channel option: %w", err)
		}
		if !maybeChannel.IsPresent() {
			return nil, fmt.Errorf("channel %s not found", channelID)
		}
		return maybeChannel.MustGet(), nil
	}
	return nil, fmt.Errorf("missing channel option")
}

// mapToMessageEvent maps raw Discord SDK message data to the domain event
// model, classifying the channel in the process. Returns false when the event
// cannot be mapped (e.g. the channel is unknown).
func (h *DiscordEventsHandler) mapToMessageEvent(
	kind models.MessageEventKind,
	guildID, messageID, channelID string,
	author *discordgo.User,
	content string,
) (models.MessageEvent, bool) {
	maybeChannel, err := h.discordClient.GetChannelByID(channelID)
	if err != nil {
		log.Printf("❌ Failed to get channel info for %s: %v", channelID, err)
		return models.MessageEvent{}, false
	}
	if !maybeChannel.IsPresent() {
		log.Printf("🔍 Channel %s not found - ignoring %s event", channelID, kind)
		return models.MessageEvent{}, false
	}

	displayName := author.Username
	if author.GlobalName != "" {
		displayName = author.GlobalName
	}

	return models.MessageEvent{
		Kind:              kind,
		GuildID:           guildID,
		MessageID:         messageID,
		AuthorID:          author.ID,
		AuthorDisplayName: displayName,
		AuthorAvatarURL:   author.AvatarURL(""),
		Content:           content,
		Channel:           maybeChannel.MustGet(),
	}, true
}

func (h *DiscordEventsHandler) respondEphemeral(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	content string,
) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Failed to respond to interaction: %v", err)
	}
}

func (h *DiscordEventsHandler) respondEphemeralEmbed(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	notification *models.Notification,
) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{discordclient.NotificationEmbed(notification)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Failed to respond to interaction: %v", err)
	}
}
