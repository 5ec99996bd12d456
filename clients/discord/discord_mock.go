package discord

import (
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"renraku/clients"
	"renraku/models"
)

type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

func (m *MockDiscordClient) GetChannelByID(channelID string) (mo.Option[*models.Channel], error) {
	args := m.Called(channelID)
	return args.Get(0).(mo.Option[*models.Channel]), args.Error(1)
}

func (m *MockDiscordClient) SendNotification(channelID string, notification *models.Notification) error {
	args := m.Called(channelID, notification)
	return args.Error(0)
}
