// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avoskresensky/sealnote/internal/service"
	"github.com/avoskresensky/sealnote/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type createScreen int

const (
	screenCredential createScreen = iota
	screenCompose
	screenSubmitting
	screenShare
)

const (
	focusContent = iota
	focusPassphrase
	focusTTL
)

type createModel struct {
	ctx  context.Context
	flow service.NoteCreationFlow

	screen createScreen

	apiKeyInput  textinput.Model
	contentInput textarea.Model
	passInput    textinput.Model
	focus        int
	ttlIdx       int

	spin       spinner.Model
	errMsg     string
	status     string
	shareURL   string
	quitByUser bool
	err        error
}

func newCreateModel(ctx context.Context, flow service.NoteCreationFlow) createModel {
	apiKeyInput := textinput.New()
	apiKeyInput.Placeholder = "API key"
	apiKeyInput.CharLimit = 256
	apiKeyInput.Width = 40
	apiKeyInput.EchoMode = textinput.EchoPassword
	apiKeyInput.EchoCharacter = '*'
	apiKeyInput.Focus()

	contentInput := textarea.New()
	contentInput.Placeholder = "Your secret note"
	contentInput.SetWidth(60)
	contentInput.SetHeight(6)
	contentInput.Focus()

	passInput := textinput.New()
	passInput.Placeholder = "Password for the recipient"
	passInput.CharLimit = 256
	passInput.Width = 40
	passInput.EchoMode = textinput.EchoPassword
	passInput.EchoCharacter = '*'

	m := createModel{
		ctx:          ctx,
		flow:         flow,
		apiKeyInput:  apiKeyInput,
		contentInput: contentInput,
		passInput:    passInput,
		ttlIdx:       defaultTTLIndex(),
		spin:         spinner.New(),
	}

	if flow.State() == service.CreationComposing {
		m.screen = screenCompose
	}
	return m
}

func defaultTTLIndex() int {
	for i, ttl := range models.AllowedTTLs {
		if ttl == models.DefaultTTLSeconds {
			return i
		}
	}
	return 0
}

func ttlLabel(seconds int) string {
	return fmt.Sprintf("%d minutes", seconds/60)
}

func (m createModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialSavedMsg:
		if msg.err != nil {
			m.errMsg = m.flow.Message()
			return m, nil
		}
		m.errMsg = ""
		m.screen = screenCompose
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				m.err = msg.err
				return m, tea.Quit
			}
			m.errMsg = m.flow.Message()
			if m.flow.State() == service.CreationAwaitingCredential {
				m.apiKeyInput.SetValue("")
				m.screen = screenCredential
			} else {
				m.screen = screenCompose
			}
			return m, nil
		}
		m.errMsg = ""
		m.shareURL = msg.shareURL
		m.screen = screenShare
		return m, nil

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
		if m.screen == screenSubmitting {
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
	case screenCredential:
		return m.updateCredential(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenShare:
		return m.updateShare(msg)
	}
	return m, nil
}

func (m createModel) updateCredential(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		value := m.apiKeyInput.Value()
		return m, m.cmdSaveCredential(value)
	}

	var cmd tea.Cmd
	m.apiKeyInput, cmd = m.apiKeyInput.Update(msg)
	return m, cmd
}

func (m createModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusField((m.focus + 1) % 3)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusField((m.focus + 2) % 3)
			return m, nil
		case keyMsg.String() == "ctrl+s":
			m.screen = screenSubmitting
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, m.cmdSubmit())
		case m.focus == focusTTL && key.Matches(keyMsg, keys.up):
			if m.ttlIdx > 0 {
				m.ttlIdx--
			}
			return m, nil
		case m.focus == focusTTL && key.Matches(keyMsg, keys.down):
			if m.ttlIdx < len(models.AllowedTTLs)-1 {
				m.ttlIdx++
			}
			return m, nil
		case m.focus == focusPassphrase && key.Matches(keyMsg, keys.enter):
			m.screen = screenSubmitting
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, m.cmdSubmit())
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case focusPassphrase:
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m createModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.shareURL)
	case key.Matches(keyMsg, keys.newNote):
		m.flow.Reset()
		m.contentInput.SetValue("")
		m.passInput.SetValue("")
		m.ttlIdx = defaultTTLIndex()
		m.shareURL = ""
		m.status = ""
		m.focusField(focusContent)
		m.screen = screenCompose
		return m, nil
	}
	return m, nil
}

func (m *createModel) focusField(focus int) {
	m.focus = focus
	m.contentInput.Blur()
	m.passInput.Blur()

	switch focus {
	case focusContent:
		m.contentInput.Focus()
	case focusPassphrase:
		m.passInput.Focus()
	}
}

func (m createModel) View() string {
	var body string
	switch m.screen {
	case screenCredential:
		body = m.viewCredential()
	case screenCompose:
		body = m.viewCompose()
	case screenSubmitting:
		body = renderPage("SEALNOTE · NEW NOTE", m.spin.View()+" Creating note...", "")
	case screenShare:
		body = m.viewShare()
	}
	return appStyle.Render(body)
}

func (m createModel) viewCredential() string {
	var b strings.Builder
	b.WriteString("API key │ [")
	b.WriteString(m.apiKeyInput.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SEALNOTE · API KEY", strings.TrimRight(b.String(), "\n"), "enter: save")
}

func (m createModel) viewCompose() string {
	var b strings.Builder
	b.WriteString("Note\n")
	b.WriteString(m.contentInput.View())
	b.WriteString("\n\n")
	b.WriteString("Password │ [")
	b.WriteString(m.passInput.View())
	b.WriteString("]\n")

	cursor := " "
	if m.focus == focusTTL {
		cursor = ">"
	}
	b.WriteString(fmt.Sprintf("Lifetime │ %s < %s >\n", cursor, ttlLabel(models.AllowedTTLs[m.ttlIdx])))

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SEALNOTE · NEW NOTE", strings.TrimRight(b.String(), "\n"), "tab: next field │ up/down: lifetime │ ctrl+s: create")
}

func (m createModel) viewShare() string {
	var b strings.Builder
	b.WriteString("Your note is ready. Share this link:\n\n")
	b.WriteString(linkStyle.Render(m.shareURL))
	b.WriteString("\n\n")
	b.WriteString("Share the password through a different channel.\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SEALNOTE · NOTE CREATED", strings.TrimRight(b.String(), "\n"), "c: copy link │ n: new note")
}

func (m createModel) cmdSaveCredential(value string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	return func() tea.Msg {
		return credentialSavedMsg{err: flow.ProvideCredential(ctx, value)}
	}
}

func (m createModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	plaintext := m.contentInput.Value()
	passphrase := m.passInput.Value()
	ttlSeconds := models.AllowedTTLs[m.ttlIdx]

	return func() tea.Msg {
		shareURL, err := flow.Submit(ctx, plaintext, passphrase, ttlSeconds)
		return submitDoneMsg{shareURL: shareURL, err: err}
	}
}
