package botpage_test

import (
	"context"
	"go-botadmin/internal/application/botpage"
	"go-botadmin/internal/application/clients"
	"go-botadmin/internal/domain/types/apitypes"
	"go-botadmin/internal/domain/types/slacktypes"
	"go-botadmin/pkg/e"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func plainDetail(text string) apitypes.Detail {
	return apitypes.Detail{Kind: apitypes.DetailPlain, Text: text}
}

func TestPage_LoadingUntilBothFetchesFinish(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)
	mockClient.On("GetBot", mock.Anything, 7).Return(&slacktypes.SlackBot{ID: 7, Name: "support"}, nil)

	page := botpage.NewPage(mockClient, "7")
	assert.Equal(t, botpage.StateLoading, page.View().State)

	page.RefreshBot(context.Background())
	assert.Equal(t, botpage.StateLoading, page.View().State)

	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "GetChannelConfigsByBot", mock.Anything, mock.Anything)
}

func TestPage_Content(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)
	mockClient.On("GetBot", mock.Anything, 7).Return(&slacktypes.SlackBot{ID: 7, Name: "support"}, nil)
	mockClient.On("GetChannelConfigsByBot", mock.Anything, 7).
		Return([]slacktypes.SlackChannelConfig{{ID: 1, SlackBotID: 7, IsDefault: true}}, nil)

	page := botpage.NewPage(mockClient, "7")
	page.Refresh(context.Background())

	view := page.View()
	require.Equal(t, botpage.StateContent, view.State)
	assert.Equal(t, "support", view.Bot.Name)
	assert.Len(t, view.ChannelConfigs, 1)
	assert.Equal(t, 7, page.BotID())

	mockClient.AssertExpectations(t)
}

func TestPage_EmptyConfigListIsContent(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)
	mockClient.On("GetBot", mock.Anything, 2).Return(&slacktypes.SlackBot{ID: 2}, nil)
	mockClient.On("GetChannelConfigsByBot", mock.Anything, 2).Return([]slacktypes.SlackChannelConfig{}, nil)

	page := botpage.NewPage(mockClient, "2")
	page.Refresh(context.Background())

	assert.Equal(t, botpage.StateContent, page.View().State)
}

func TestPage_ErrorStates(t *testing.T) {
	t.Parallel()

	type TestCase struct {
		name        string
		bot         *slacktypes.SlackBot
		botErr      error
		configs     []slacktypes.SlackChannelConfig
		configsErr  error
		expectedMsg string
	}

	bot := &slacktypes.SlackBot{ID: 4}
	configs := []slacktypes.SlackChannelConfig{}

	testCases := []TestCase{
		{
			name:        "bot error uses info message first",
			botErr:      &clients.FetchError{Status: 403, Info: slacktypes.FetchErrorInfo{Message: "forbidden", Detail: plainDetail("nope")}},
			configs:     configs,
			expectedMsg: "Failed to fetch Slack Bot 4: forbidden",
		},
		{
			name:        "bot error falls back to detail",
			botErr:      &clients.FetchError{Status: 404, Info: slacktypes.FetchErrorInfo{Detail: plainDetail("Slack bot not found")}},
			configs:     configs,
			expectedMsg: "Failed to fetch Slack Bot 4: Slack bot not found",
		},
		{
			name:        "bot error without info uses generic text",
			botErr:      &clients.FetchError{Status: 500},
			configs:     configs,
			expectedMsg: "Failed to fetch Slack Bot 4: An unknown error occurred",
		},
		{
			name:        "transport error uses generic text",
			botErr:      e.ErrDoRequest,
			configs:     configs,
			expectedMsg: "Failed to fetch Slack Bot 4: An unknown error occurred",
		},
		{
			name:        "missing bot data",
			configs:     configs,
			expectedMsg: "Failed to fetch Slack Bot 4: An unknown error occurred",
		},
		{
			name:        "bot error is reported before configs error",
			botErr:      &clients.FetchError{Info: slacktypes.FetchErrorInfo{Message: "bot broke"}},
			configsErr:  &clients.FetchError{Info: slacktypes.FetchErrorInfo{Message: "configs broke"}},
			expectedMsg: "Failed to fetch Slack Bot 4: bot broke",
		},
		{
			name:        "configs error",
			bot:         bot,
			configsErr:  &clients.FetchError{Info: slacktypes.FetchErrorInfo{Detail: plainDetail("no access")}},
			expectedMsg: "Failed to fetch Slack Bot 4: no access",
		},
		{
			name:        "missing configs data",
			bot:         bot,
			expectedMsg: "Failed to fetch Slack Bot 4: An unknown error occurred",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(tt *testing.T) {
			tt.Parallel()

			mockClient := new(clients.MockSlackAdminClient)
			mockClient.On("GetBot", mock.Anything, 4).Return(testCase.bot, testCase.botErr)
			mockClient.On("GetChannelConfigsByBot", mock.Anything, 4).Return(testCase.configs, testCase.configsErr)

			page := botpage.NewPage(mockClient, "4")
			page.Refresh(context.Background())

			view := page.View()
			assert.Equal(tt, botpage.StateError, view.State)
			assert.Equal(tt, botpage.ErrorTitle, view.ErrorTitle)
			assert.Equal(tt, testCase.expectedMsg, view.ErrorMsg)
		})
	}
}

func TestPage_InvalidRouteID(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)

	page := botpage.NewPage(mockClient, "abc")
	page.Refresh(context.Background())

	view := page.View()
	assert.Equal(t, botpage.StateError, view.State)
	assert.Equal(t, "Failed to fetch Slack Bot abc: An unknown error occurred", view.ErrorMsg)

	assert.ErrorIs(t, page.SetBotEnabled(context.Background(), true), e.ErrInvalidBotID)
	mockClient.AssertNotCalled(t, "GetBot", mock.Anything, mock.Anything)
}

func TestPage_SetBotEnabledRefreshesBot(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)

	enabled := false
	mockClient.On("UpdateBot", mock.Anything, 9, slacktypes.UpdateSlackBotRequest{Enabled: &enabled}).Return(nil)
	mockClient.On("GetBot", mock.Anything, 9).Return(&slacktypes.SlackBot{ID: 9, Enabled: false}, nil).Once()

	page := botpage.NewPage(mockClient, "9")

	require.NoError(t, page.SetBotEnabled(context.Background(), false))

	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "GetChannelConfigsByBot", mock.Anything, mock.Anything)
}

func TestPage_SetBotEnabledFailureSkipsRefresh(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)

	enabled := true
	mockClient.On("UpdateBot", mock.Anything, 9, slacktypes.UpdateSlackBotRequest{Enabled: &enabled}).
		Return(&clients.FetchError{Status: http.StatusForbidden})

	page := botpage.NewPage(mockClient, "9")

	err := page.SetBotEnabled(context.Background(), true)
	assert.ErrorIs(t, err, e.ErrAPI)
	mockClient.AssertNotCalled(t, "GetBot", mock.Anything, mock.Anything)
}

func TestPage_DeleteChannelConfigRefreshesConfigs(t *testing.T) {
	mockClient := new(clients.MockSlackAdminClient)
	mockClient.On("DeleteChannelConfig", mock.Anything, 33).Return(nil)
	mockClient.On("GetChannelConfigsByBot", mock.Anything, 9).Return([]slacktypes.SlackChannelConfig{}, nil).Once()

	page := botpage.NewPage(mockClient, "9")

	require.NoError(t, page.DeleteChannelConfig(context.Background(), 33))

	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "GetBot", mock.Anything, mock.Anything)
}
