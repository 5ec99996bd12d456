package mirror

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveChannel(t *testing.T) {
	t.Run("thread resolves to its parent", func(t *testing.T) {
		thread := createTestForumThread()
		assert.Equal(t, thread.Parent, EffectiveChannel(thread))
	})

	t.Run("text channel is a fixed point", func(t *testing.T) {
		channel := createTestTextChannel()
		assert.Equal(t, channel, EffectiveChannel(channel))
	})

	t.Run("idempotent", func(t *testing.T) {
		thread := createTestForumThread()
		once := EffectiveChannel(thread)
		assert.Equal(t, once, EffectiveChannel(once))
	})

	t.Run("thread without parent is a fixed point", func(t *testing.T) {
		thread := createTestForumThread()
		thread.Parent = nil
		assert.Equal(t, thread, EffectiveChannel(thread))
	})

	t.Run("nil channel", func(t *testing.T) {
		assert.Nil(t, EffectiveChannel(nil))
	})
}

func TestDestinationChannel(t *testing.T) {
	t.Run("unmonitored channel yields none", func(t *testing.T) {
		fixture := setupMirrorUseCaseTest(t)
		config := createTestGuildConfig([]string{testOtherChannelID}, testDestinationID)

		result := fixture.useCase.destinationChannel(fixture.ctx, config, createTestTextChannel())

		assert.False(t, result.IsPresent())
		fixture.mocks.discordClient.AssertNotCalled(t, "GetChannelByID", testDestinationID)
	})

	t.Run("unset destination yields none", func(t *testing.T) {
		fixture := setupMirrorUseCaseTest(t)
		config := createTestGuildConfig([]string{testChannelID}, "")

		result := fixture.useCase.destinationChannel(fixture.ctx, config, createTestTextChannel())

		assert.False(t, result.IsPresent())
	})

	t.Run("unmonitored and unset combined yields none", func(t *testing.T) {
		fixture := setupMirrorUseCaseTest(t)
		config := createTestGuildConfig(nil, "")

		result := fixture.useCase.destinationChannel(fixture.ctx, config, createTestTextChannel())

		assert.False(t, result.IsPresent())
		fixture.mocks.discordClient.AssertNotCalled(t, "GetChannelByID", testDestinationID)
	})

	t.Run("all conditions satisfied yields the destination", func(t *testing.T) {
		fixture := setupMirrorUseCaseTest(t)
		config := createTestGuildConfig([]string{testChannelID}, testDestinationID)
		destination := createTestDestinationChannel()
		fixture.mocks.discordClient.On("GetChannelByID", testDestinationID).
			Return(mo.Some(destination), nil)

		result := fixture.useCase.destinationChannel(fixture.ctx, config, createTestTextChannel())

		assert.True(t, result.IsPresent())
		assert.Equal(t, destination, result.MustGet())
		fixture.assertAllExpectations(t)
	})

	t.Run("nil effective channel yields none", func(t *testing.T) {
		fixture := setupMirrorUseCaseTest(t)
		config := createTestGuildConfig([]string{testChannelID}, testDestinationID)

		result := fixture.useCase.destinationChannel(fixture.ctx, config, nil)

		assert.False(t, result.IsPresent())
	})
}
