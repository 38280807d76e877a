package botpage

import (
	"context"
	"errors"
	"fmt"
	"go-botadmin/internal/application/clients"
	"go-botadmin/internal/domain/types/slacktypes"
	"go-botadmin/pkg/e"
	"log/slog"
	"strconv"
	"sync"
)

const (
	ErrorTitle      = "Something went wrong :("
	MsgUnknownError = "An unknown error occurred"
	BackRoute       = "/admin/bots"
)

type State uint8

const (
	StateLoading State = iota
	StateError
	StateContent
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateContent:
		return "content"
	default:
		return "unknown"
	}
}

// View is a snapshot of what the page shows.
type View struct {
	State          State
	RouteID        string
	Bot            *slacktypes.SlackBot
	ChannelConfigs []slacktypes.SlackChannelConfig
	ErrorTitle     string
	ErrorMsg       string
}

type fetchResult[T any] struct {
	loaded bool
	data   T
	err    error
}

// Page holds the two independent fetches behind the bot edit page: the bot
// itself and its channel configs. Each can be refreshed on its own.
type Page struct {
	client  clients.HTTPSlackAdminClient
	routeID string
	botID   int
	idErr   error

	mu      sync.Mutex
	bot     fetchResult[*slacktypes.SlackBot]
	configs fetchResult[[]slacktypes.SlackChannelConfig]
}

// NewPage builds a page for the bot id taken from the route. Nothing is
// fetched until Refresh is called.
func NewPage(client clients.HTTPSlackAdminClient, routeID string) *Page {
	page := &Page{
		client:  client,
		routeID: routeID,
	}

	id, err := strconv.Atoi(routeID)
	if err != nil {
		page.idErr = fmt.Errorf("%w: %q", e.ErrInvalidBotID, routeID)
	} else {
		page.botID = id
	}

	return page
}

func (p *Page) BotID() int {
	return p.botID
}

// Refresh re-runs both fetches.
func (p *Page) Refresh(ctx context.Context) {
	p.RefreshBot(ctx)
	p.RefreshChannelConfigs(ctx)
}

func (p *Page) RefreshBot(ctx context.Context) {
	result := fetchResult[*slacktypes.SlackBot]{loaded: true}

	if p.idErr != nil {
		result.err = p.idErr
	} else {
		result.data, result.err = p.client.GetBot(ctx, p.botID)
	}

	if result.err != nil {
		slog.Error("Failed to fetch Slack bot",
			slog.String("bot id", p.routeID),
			slog.String("error", result.err.Error()))
	}

	p.mu.Lock()
	p.bot = result
	p.mu.Unlock()
}

func (p *Page) RefreshChannelConfigs(ctx context.Context) {
	result := fetchResult[[]slacktypes.SlackChannelConfig]{loaded: true}

	if p.idErr != nil {
		result.err = p.idErr
	} else {
		result.data, result.err = p.client.GetChannelConfigsByBot(ctx, p.botID)
	}

	if result.err != nil {
		slog.Error("Failed to fetch Slack channel configs",
			slog.String("bot id", p.routeID),
			slog.String("error", result.err.Error()))
	}

	p.mu.Lock()
	p.configs = result
	p.mu.Unlock()
}

func (p *Page) View() View {
	p.mu.Lock()
	bot, configs := p.bot, p.configs
	p.mu.Unlock()

	view := View{RouteID: p.routeID}

	if !bot.loaded || !configs.loaded {
		view.State = StateLoading

		return view
	}

	if bot.err != nil || bot.data == nil {
		return p.errorView(view, bot.err)
	}

	if configs.err != nil || configs.data == nil {
		return p.errorView(view, configs.err)
	}

	botCopy := *bot.data

	view.State = StateContent
	view.Bot = &botCopy
	view.ChannelConfigs = append([]slacktypes.SlackChannelConfig(nil), configs.data...)

	return view
}

func (p *Page) errorView(view View, err error) View {
	view.State = StateError
	view.ErrorTitle = ErrorTitle
	view.ErrorMsg = fmt.Sprintf("Failed to fetch Slack Bot %s: %s", p.routeID, ErrorMessage(err))

	return view
}

// SetBotEnabled turns the bot on or off and re-fetches it.
func (p *Page) SetBotEnabled(ctx context.Context, enabled bool) error {
	if p.idErr != nil {
		return p.idErr
	}

	request := slacktypes.UpdateSlackBotRequest{Enabled: &enabled}
	if err := p.client.UpdateBot(ctx, p.botID, request); err != nil {
		return e.Wrap("can't update bot", err)
	}

	p.RefreshBot(ctx)

	return nil
}

// DeleteChannelConfig removes one channel config and re-fetches the list.
func (p *Page) DeleteChannelConfig(ctx context.Context, configID int) error {
	if err := p.client.DeleteChannelConfig(ctx, configID); err != nil {
		return e.Wrap("can't delete channel config", err)
	}

	p.RefreshChannelConfigs(ctx)

	return nil
}

// ErrorMessage picks the text shown for a failed fetch: the server's
// message, then its detail, then a generic fallback.
func ErrorMessage(err error) string {
	var fetchErr *clients.FetchError
	if !errors.As(err, &fetchErr) {
		return MsgUnknownError
	}

	if fetchErr.Info.Message != "" {
		return fetchErr.Info.Message
	}

	if detail := fetchErr.Info.Detail.String(); detail != "" {
		return detail
	}

	return MsgUnknownError
}
