package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"go-botadmin/internal/domain/types/slacktypes"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"net/http"
)

const slackAppPath = "/api/manage/admin/slack-app"

type HTTPSlackAdminClient interface {
	GetBot(ctx context.Context, botID int) (*slacktypes.SlackBot, error)
	GetChannelConfigsByBot(ctx context.Context, botID int) ([]slacktypes.SlackChannelConfig, error)
	UpdateBot(ctx context.Context, botID int, request slacktypes.UpdateSlackBotRequest) error
	DeleteChannelConfig(ctx context.Context, configID int) error
}

// FetchError is a non-2xx answer from the admin API. Info holds whatever
// of the JSON error body could be decoded.
type FetchError struct {
	Status int
	Info   slacktypes.FetchErrorInfo
}

func (f *FetchError) Error() string {
	switch {
	case f.Info.Message != "":
		return f.Info.Message
	case f.Info.Detail.String() != "":
		return f.Info.Detail.String()
	default:
		return fmt.Sprintf("request failed with status %d", f.Status)
	}
}

func (f *FetchError) Unwrap() error {
	return e.ErrAPI
}

type SlackAdminClient struct {
	client   *http.Client
	endpoint Endpoint
	header   http.Header
}

// NewSlackAdminClient builds a client for the Slack bot admin endpoints.
// An empty apiKey sends no Authorization header.
func NewSlackAdminClient(client *http.Client, scheme, host, apiKey string) *SlackAdminClient {
	if client == nil {
		client = &http.Client{}
	}

	header := http.Header{}
	if apiKey != "" {
		header.Set("Authorization", "Bearer "+apiKey)
	}

	return &SlackAdminClient{
		client:   client,
		endpoint: Endpoint{Scheme: scheme, Host: host},
		header:   header,
	}
}

func (c *SlackAdminClient) GetBot(ctx context.Context, botID int) (*slacktypes.SlackBot, error) {
	var bot *slacktypes.SlackBot

	path := fmt.Sprintf("%s/bots/%d", slackAppPath, botID)
	if err := c.do(ctx, http.MethodGet, path, nil, &bot); err != nil {
		return nil, err
	}

	return bot, nil
}

// GetChannelConfigsByBot returns nil without error when the server answers
// with a JSON null.
func (c *SlackAdminClient) GetChannelConfigsByBot(ctx context.Context, botID int) ([]slacktypes.SlackChannelConfig, error) {
	var configs []slacktypes.SlackChannelConfig

	path := fmt.Sprintf("%s/bots/%d/config", slackAppPath, botID)
	if err := c.do(ctx, http.MethodGet, path, nil, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func (c *SlackAdminClient) UpdateBot(ctx context.Context, botID int, request slacktypes.UpdateSlackBotRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		slog.Error(
			e.ErrMarshalJSON.Error(),
			slog.String("error", err.Error()))

		return e.With(e.ErrMarshalJSON, err)
	}

	path := fmt.Sprintf("%s/bots/%d", slackAppPath, botID)

	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *SlackAdminClient) DeleteChannelConfig(ctx context.Context, configID int) error {
	path := fmt.Sprintf("%s/channel/%d", slackAppPath, configID)

	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do sends the request and decodes a 2xx body into out when out is not nil.
func (c *SlackAdminClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	response, err := DoRequest(ctx, c.client, method, c.endpoint, path, nil, body, c.header)
	if err != nil {
		slog.Error(
			e.ErrDoRequest.Error(),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))

		return err
	}
	defer closeBody(response)

	if !isSuccess(response.StatusCode) {
		fetchErr := &FetchError{Status: response.StatusCode}

		data, errRead := io.ReadAll(response.Body)
		if errRead == nil {
			if errDecode := json.Unmarshal(data, &fetchErr.Info); errDecode != nil {
				fetchErr.Info = slacktypes.FetchErrorInfo{}
			}
		}

		slog.Error(
			e.ErrAPI.Error(),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status code", response.StatusCode),
			slog.String("error", fetchErr.Error()))

		return fetchErr
	}

	if out == nil {
		return nil
	}

	if errDecode := json.NewDecoder(response.Body).Decode(out); errDecode != nil {
		slog.Error(
			e.ErrDecodeJSONBody.Error(),
			slog.String("path", path),
			slog.String("error", errDecode.Error()))

		return e.With(e.ErrDecodeJSONBody, errDecode)
	}

	return nil
}
