package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/service"
	"github.com/avoskresensky/sealnote/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run routes the command line to a flow and blocks until it finishes. With no
// arguments a new note is created; "view <link-or-locator>" opens an existing
// one. An interrupt cancels the in-flight network call and exits cleanly.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := "create"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "create":
		return a.runFlow(a.tui.CreateFlow(ctx))
	case "view":
		if len(args) < 2 {
			return errors.New("usage: view <link-or-locator>")
		}
		locator := service.ExtractLocator(args[1])
		if locator == "" {
			return fmt.Errorf("invalid note link: %s", args[1])
		}
		return a.runFlow(a.tui.ViewFlow(ctx, locator))
	default:
		return fmt.Errorf("unknown command %q (expected \"create\" or \"view\")", command)
	}
}

func (a *App) runFlow(err error) error {
	if err == nil || errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
