package clients

import (
	"context"
	"go-botadmin/internal/domain/types/slacktypes"

	"github.com/stretchr/testify/mock"
)

type MockSlackAdminClient struct {
	mock.Mock
}

func (m *MockSlackAdminClient) GetBot(ctx context.Context, botID int) (*slacktypes.SlackBot, error) {
	args := m.Called(ctx, botID)

	bot, _ := args.Get(0).(*slacktypes.SlackBot)

	return bot, args.Error(1)
}

func (m *MockSlackAdminClient) GetChannelConfigsByBot(ctx context.Context, botID int) ([]slacktypes.SlackChannelConfig, error) {
	args := m.Called(ctx, botID)

	configs, _ := args.Get(0).([]slacktypes.SlackChannelConfig)

	return configs, args.Error(1)
}

func (m *MockSlackAdminClient) UpdateBot(ctx context.Context, botID int, request slacktypes.UpdateSlackBotRequest) error {
	args := m.Called(ctx, botID, request)

	return args.Error(0)
}

func (m *MockSlackAdminClient) DeleteChannelConfig(ctx context.Context, configID int) error {
	args := m.Called(ctx, configID)

	return args.Error(0)
}

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *MockAuthClient) ResetPassword(ctx context.Context, token, password string) error {
	args := m.Called(ctx, token, password)

	return args.Error(0)
}
