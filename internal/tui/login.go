// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillscope/internal/service"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email or username, and password) and dispatches an async login command on form
// submission. On success a [LoginResult] message is produced and handled by
// [RootModel] to finish the signed-out flow.
//
// Validation and the error line come from [service.AuthFlow]; the model only
// collects input and shows [service.AuthFlow.Message].
type LoginModel struct {
	ctx  context.Context
	flow *service.AuthFlow
	st   styles

	inputs     []textinput.Model
	focus      int
	submitting bool
}

// NewLoginModel creates a [LoginModel]. The identifier field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, flow *service.AuthFlow, st styles) *LoginModel {
	identifier := newInput("email or username", 256)
	identifier.Focus()

	return &LoginModel{
		ctx:    ctx,
		flow:   flow,
		st:     st,
		inputs: []textinput.Model{identifier, newPasswordInput("password")},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] clears submitting state and the password on failure.
//   - ctrl+n switches to signup, ctrl+r to password recovery.
//   - tab and shift+tab move focus.
//   - enter dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.signup):
			m.flow.ShowSignup()
			return m, navigate(pageSignup)
		case key.Matches(keyMsg, keys.forgot):
			m.flow.ShowForgot()
			return m, navigate(pageForgot)
		case key.Matches(keyMsg, keys.tab):
			m.focus = focusShift(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = focusShift(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdLogin(m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	m.st.renderRow(&b, "Email / username", 16, "["+m.inputs[0].View()+"]")
	m.st.renderRow(&b, "Password", 16, "["+m.inputs[1].View()+"]")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	b.WriteString(m.st.renderMessage(m.flow.Message()))

	return m.st.renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: sign in │ ctrl+n: create account │ ctrl+r: forgot password")
}

func (m *LoginModel) cmdLogin(identifier, password string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		user, err := flow.Login(ctx, identifier, password)
		return LoginResult{User: user, Err: err}
	}
}
