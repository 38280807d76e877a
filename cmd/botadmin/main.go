package main

import (
	"context"
	"errors"
	"fmt"
	"go-botadmin/internal/application/botpage"
	"go-botadmin/internal/application/clients"
	"go-botadmin/pkg"
	"go-botadmin/pkg/config"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const usage = `usage: botadmin <command> [args]

commands:
  show <bot-id>                               print the bot and its channel configs
  watch <bot-id>                              print them again every refresh interval
  enable <bot-id>                             enable the bot
  disable <bot-id>                            disable the bot
  delete-channel-config <bot-id> <config-id>  delete one channel config
  forgot-password <email>                     request a password reset mail
  reset-password <token> <password>           set a new password
`

const requestTimeout = 30 * time.Second

type app struct {
	cfg   config.Config
	out   io.Writer
	slack clients.HTTPSlackAdminClient
	auth  clients.HTTPAuthClient
}

func newApp(cfg config.Config, out io.Writer) *app {
	httpClient := &http.Client{Timeout: requestTimeout}

	return &app{
		cfg:   cfg,
		out:   out,
		slack: clients.NewSlackAdminClient(httpClient, cfg.APIScheme, cfg.APIHost, cfg.APIKey),
		auth:  clients.NewAuthClient(httpClient, cfg.APIScheme, cfg.APIHost),
	}
}

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	pkg.SetNewStderrLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg, os.Stdout).run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, e.ErrUnknownCmd) {
			fmt.Fprint(os.Stderr, usage)
		}

		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return e.ErrUnknownCmd
	}

	command, rest := args[0], args[1:]

	switch command {
	case "show":
		if err := needArgs(command, rest, 1); err != nil {
			return err
		}

		return a.show(ctx, rest[0])
	case "watch":
		if err := needArgs(command, rest, 1); err != nil {
			return err
		}

		return a.watch(ctx, rest[0])
	case "enable", "disable":
		if err := needArgs(command, rest, 1); err != nil {
			return err
		}

		return a.setEnabled(ctx, rest[0], command == "enable")
	case "delete-channel-config":
		if err := needArgs(command, rest, 2); err != nil {
			return err
		}

		return a.deleteChannelConfig(ctx, rest[0], rest[1])
	case "forgot-password":
		if err := needArgs(command, rest, 1); err != nil {
			return err
		}

		if err := a.auth.ForgotPassword(ctx, rest[0]); err != nil {
			return err
		}

		return a.printLine("If the address is registered, a reset link has been sent.")
	case "reset-password":
		if err := needArgs(command, rest, 2); err != nil {
			return err
		}

		if err := a.auth.ResetPassword(ctx, rest[0], rest[1]); err != nil {
			return err
		}

		return a.printLine("Password has been reset.")
	default:
		return fmt.Errorf("%w: %s", e.ErrUnknownCmd, command)
	}
}

func needArgs(command string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", e.ErrUnknownCmd, command, n, len(args))
	}

	return nil
}

func (a *app) show(ctx context.Context, routeID string) error {
	page := botpage.NewPage(a.slack, routeID)
	page.Refresh(ctx)

	view := page.View()
	if err := botpage.Render(a.out, view); err != nil {
		return e.With(e.ErrWrite, err)
	}

	if view.State == botpage.StateError {
		return errors.New(view.ErrorMsg)
	}

	return nil
}

func (a *app) watch(ctx context.Context, routeID string) error {
	watcher := botpage.NewWatcher(botpage.NewPage(a.slack, routeID), a.out, a.cfg.RefreshInterval)
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	watcher.Stop()

	slog.Info("Stopped watching")

	return nil
}

func (a *app) setEnabled(ctx context.Context, routeID string, enabled bool) error {
	page := botpage.NewPage(a.slack, routeID)
	if err := page.SetBotEnabled(ctx, enabled); err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}

	return a.printLine(fmt.Sprintf("Slack Bot %s %s.", routeID, state))
}

func (a *app) deleteChannelConfig(ctx context.Context, routeID, configIDStr string) error {
	configID, err := strconv.Atoi(configIDStr)
	if err != nil {
		return fmt.Errorf("invalid channel config id %q", configIDStr)
	}

	page := botpage.NewPage(a.slack, routeID)
	if err := page.DeleteChannelConfig(ctx, configID); err != nil {
		return err
	}

	page.RefreshBot(ctx)

	return botpage.Render(a.out, page.View())
}

func (a *app) printLine(msg string) error {
	if _, err := fmt.Fprintln(a.out, msg); err != nil {
		return e.With(e.ErrWrite, err)
	}

	return nil
}
