package mirror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renraku/models"
)

func TestBuildNotification_Created(t *testing.T) {
	useCase := &MirrorUseCase{}
	event := createTestEvent(models.MessageEventCreated, createTestTextChannel(), "hello world")

	notification := useCase.buildNotification(event)

	assert.Equal(t, colorCreated, notification.Color)
	assert.Equal(t, testUserName, notification.AuthorName)
	assert.True(t, strings.HasSuffix(notification.Description, "\nhello world"))
	require.Len(t, notification.Fields, 1)
	assert.Equal(t, "元の投稿", notification.Fields[0].Name)
	assert.Equal(t,
		"[#general](https://discord.com/channels/guild-789/channel-456/msg-123)",
		notification.Fields[0].Value)
}

func TestBuildNotification_Edited(t *testing.T) {
	useCase := &MirrorUseCase{}
	event := createTestEvent(models.MessageEventEdited, createTestTextChannel(), "revised text")

	notification := useCase.buildNotification(event)

	assert.Equal(t, colorEdited, notification.Color)
	assert.True(t, strings.HasSuffix(notification.Description, "\nメッセージが編集されました"))
	require.Len(t, notification.Fields, 2)
	assert.Equal(t, "編集後のメッセージ", notification.Fields[0].Name)
	assert.Equal(t, "revised text", notification.Fields[0].Value)
	assert.Equal(t, "元の投稿", notification.Fields[1].Name)
}

func TestBuildNotification_Deleted(t *testing.T) {
	useCase := &MirrorUseCase{}
	event := createTestEvent(models.MessageEventDeleted, createTestTextChannel(), "gone text")

	notification := useCase.buildNotification(event)

	assert.Equal(t, colorDeleted, notification.Color)
	assert.True(t, strings.HasSuffix(notification.Description, "\nメッセージが削除されました"))
	require.Len(t, notification.Fields, 2)
	assert.Equal(t, "削除されたメッセージ", notification.Fields[0].Name)
	assert.Equal(t, "gone text", notification.Fields[0].Value)
	// The message no longer exists, so the origin is named without a link
	assert.Equal(t, "元のチャンネル", notification.Fields[1].Name)
	assert.Equal(t, "#general", notification.Fields[1].Value)
}

func TestBuildNotification_EscapesMarkdown(t *testing.T) {
	useCase := &MirrorUseCase{}
	event := createTestEvent(models.MessageEventCreated, createTestTextChannel(), "*bold* _text_")

	notification := useCase.buildNotification(event)

	assert.True(t, strings.HasSuffix(notification.Description, "\n\\*bold\\* \\_text\\_"))
}

func TestTruncateContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "short content unchanged",
			content:  strings.Repeat("a", 150),
			expected: strings.Repeat("a", 150),
		},
		{
			name:     "exactly at limit unchanged",
			content:  strings.Repeat("a", 200),
			expected: strings.Repeat("a", 200),
		},
		{
			name:     "long content truncated with marker",
			content:  strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200) + "...",
		},
		{
			name:     "multibyte content counted in runes",
			content:  strings.Repeat("あ", 250),
			expected: strings.Repeat("あ", 200) + "...",
		},
		{
			name:     "empty content unchanged",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateContent(tt.content))
		})
	}
}

func TestOriginName(t *testing.T) {
	t.Run("text channel", func(t *testing.T) {
		assert.Equal(t, "#general", originName(createTestTextChannel()))
	})

	t.Run("thread under forum parent", func(t *testing.T) {
		assert.Equal(t, "announcements > weekly-report", originName(createTestForumThread()))
	})

	t.Run("thread under text parent", func(t *testing.T) {
		thread := createTestForumThread()
		thread.Parent.Kind = models.ChannelKindText
		assert.Equal(t, "#weekly-report", originName(thread))
	})
}

func TestMessageJumpURL(t *testing.T) {
	assert.Equal(t,
		"https://discord.com/channels/guild-789/channel-456/msg-123",
		messageJumpURL(testGuildID, testChannelID, testMessageID))
}
