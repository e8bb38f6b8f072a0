// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/avoskresensky/sealnote/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewScreen int

const (
	screenLoading viewScreen = iota
	screenPassphrase
	screenDecrypted
	screenLoadFailed
)

type viewModel struct {
	ctx     context.Context
	flow    service.NoteRetrievalFlow
	locator string

	screen    viewScreen
	passInput textinput.Model
	spin      spinner.Model

	errMsg     string
	status     string
	plaintext  string
	quitByUser bool
	err        error
}

func newViewModel(ctx context.Context, flow service.NoteRetrievalFlow, locator string) viewModel {
	passInput := textinput.New()
	passInput.Placeholder = "Password"
	passInput.CharLimit = 256
	passInput.Width = 40
	passInput.EchoMode = textinput.EchoPassword
	passInput.EchoCharacter = '*'
	passInput.Focus()

	return viewModel{
		ctx:       ctx,
		flow:      flow,
		locator:   locator,
		passInput: passInput,
		spin:      spinner.New(),
	}
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoad())
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				m.err = msg.err
				return m, tea.Quit
			}
			m.errMsg = m.flow.Message()
			m.screen = screenLoadFailed
			return m, nil
		}
		m.screen = screenPassphrase
		return m, textinput.Blink

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.screen == screenLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.screen {
	case screenPassphrase:
		return m.updatePassphrase(msg)
	case screenDecrypted:
		return m.updateDecrypted(msg)
	}
	return m, nil
}

func (m viewModel) updatePassphrase(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		// Decryption is local and fast; no need for an async command.
		plaintext, err := m.flow.Decrypt(m.passInput.Value())
		if err != nil {
			m.errMsg = m.flow.Message()
			m.passInput.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.plaintext = plaintext
		m.screen = screenDecrypted
		return m, nil
	}

	var cmd tea.Cmd
	m.passInput, cmd = m.passInput.Update(msg)
	return m, cmd
}

func (m viewModel) updateDecrypted(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.copy) {
		return m, cmdCopyToClipboard(m.plaintext)
	}
	return m, nil
}

func (m viewModel) View() string {
	var body string
	switch m.screen {
	case screenLoading:
		body = renderPage("SEALNOTE · VIEW NOTE", m.spin.View()+" Retrieving note...", "")
	case screenPassphrase:
		body = m.viewPassphrase()
	case screenDecrypted:
		body = m.viewDecrypted()
	case screenLoadFailed:
		body = renderPage("SEALNOTE · VIEW NOTE", errorStyle.Render(m.errMsg), "")
	}
	return appStyle.Render(body)
}

func (m viewModel) viewPassphrase() string {
	var b strings.Builder
	b.WriteString("This note is encrypted.\n\n")
	b.WriteString("Password │ [")
	b.WriteString(m.passInput.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SEALNOTE · VIEW NOTE", strings.TrimRight(b.String(), "\n"), "enter: decrypt")
}

func (m viewModel) viewDecrypted() string {
	var b strings.Builder
	b.WriteString(m.plaintext)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SEALNOTE · NOTE", strings.TrimRight(b.String(), "\n"), "c: copy note")
}

func (m viewModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	locator := m.locator
	return func() tea.Msg {
		return loadDoneMsg{err: flow.Load(ctx, locator)}
	}
}
