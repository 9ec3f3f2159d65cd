package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/models"
)

// ForgotModel renders the three password recovery steps. It has no step of
// its own: the inputs are rebuilt whenever [service.AuthFlow.State] moves.
type ForgotModel struct {
	ctx  context.Context
	flow *service.AuthFlow
	st   styles

	step       service.FlowState
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func NewForgotModel(ctx context.Context, flow *service.AuthFlow, st styles) *ForgotModel {
	m := &ForgotModel{
		ctx:  ctx,
		flow: flow,
		st:   st,
	}
	m.syncStep()
	return m
}

// Init starts the current step with empty inputs.
func (m *ForgotModel) Init() tea.Cmd {
	m.inputs = nil
	m.syncStep()
	return textinput.Blink
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(ForgotResult); ok {
		m.submitting = false
		if m.flow.State() == service.StateLogin {
			return m, navigate(pageLogin)
		}
		m.syncStep()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.flow.ShowLogin()
			return m, navigate(pageLogin)
		case key.Matches(keyMsg, keys.forgot) && m.step != service.StateForgotIdentify:
			if m.submitting {
				return m, nil
			}
			// start over with another email
			m.flow.ShowForgot()
			m.inputs = nil
			m.syncStep()
			return m, textinput.Blink
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
			return m, m.cmdSubmit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ForgotModel) View() string {
	var (
		b     strings.Builder
		title string
	)

	switch m.step {
	case service.StateForgotVerify:
		title = "PASSWORD RECOVERY · 2/3"
		question := ""
		if target, ok := m.flow.ResetTarget(); ok {
			question = target.SecurityQuestion
		}
		m.st.renderRow(&b, "Question", 12, question)
		m.st.renderRow(&b, "Answer", 12, "["+m.inputs[0].View()+"]")
	case service.StateForgotReset:
		title = "PASSWORD RECOVERY · 3/3"
		m.st.renderRow(&b, "New password", 12, "["+m.inputs[0].View()+"]")
		m.st.renderRow(&b, "Confirm", 12, "["+m.inputs[1].View()+"]")
	default:
		title = "PASSWORD RECOVERY · 1/3"
		m.st.renderRow(&b, "Email", 12, "["+m.inputs[0].View()+"]")
	}

	if m.submitting {
		b.WriteString("\n[Checking...]\n")
	} else {
		b.WriteString("\n[Continue]\n")
	}
	b.WriteString(m.st.renderMessage(m.flow.Message()))

	hotkeys := "esc: back to sign in │ tab: next field │ enter: continue"
	if m.step != service.StateForgotIdentify {
		hotkeys = "esc: back to sign in │ ctrl+r: other email │ enter: continue"
	}
	return m.st.renderPage(title, strings.TrimRight(b.String(), "\n"), hotkeys)
}

// syncStep rebuilds the inputs if the flow moved to another step.
func (m *ForgotModel) syncStep() {
	state := m.flow.State()
	if state == m.step && m.inputs != nil {
		return
	}

	m.step = state
	m.focus = 0
	switch state {
	case service.StateForgotVerify:
		m.inputs = []textinput.Model{newInput("answer", 100)}
	case service.StateForgotReset:
		m.inputs = []textinput.Model{newPasswordInput("new password"), newPasswordInput("repeat password")}
	default:
		m.inputs = []textinput.Model{newInput("jane@example.com", 254)}
	}
	m.inputs[0].Focus()
}

func (m *ForgotModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = m.inputs[i].Value()
	}

	switch m.step {
	case service.StateForgotVerify:
		return func() tea.Msg {
			return ForgotResult{Err: flow.ForgotVerify(ctx, values[0])}
		}
	case service.StateForgotReset:
		return func() tea.Msg {
			return ForgotResult{Err: flow.ForgotReset(ctx, models.PasswordResetForm{
				Password:        values[0],
				ConfirmPassword: values[1],
			})}
		}
	default:
		return func() tea.Msg {
			return ForgotResult{Err: flow.ForgotIdentify(ctx, values[0])}
		}
	}
}
