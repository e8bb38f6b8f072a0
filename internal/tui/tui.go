// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

// Package tui renders the terminal front end for sealnote: one Bubble Tea
// program per flow. The programs are thin — every state transition and every
// user-facing message comes from the service flows; the models only translate
// key presses into flow calls and flow state into screens.
package tui

import (
	"context"
	"errors"

	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// CreateFlow runs the note-creation program: credential gate, compose form,
// submission, share screen.
func (t *TUI) CreateFlow(ctx context.Context) error {
	flow := t.services.NewCreationFlow()
	flow.Start(ctx)

	model := newCreateModel(ctx, flow)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(createModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return result.err
}

// ViewFlow runs the note-retrieval program for the given locator: fetch,
// passphrase prompt, plaintext screen.
func (t *TUI) ViewFlow(ctx context.Context, locator string) error {
	flow := t.services.NewRetrievalFlow()

	model := newViewModel(ctx, flow, locator)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(viewModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return result.err
}
