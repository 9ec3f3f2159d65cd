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

const (
	signupFullName = iota
	signupEmail
	signupPhone
	signupDegree
	signupLocation
	signupUsername
	signupPassword
	signupConfirm
	signupQuestion
	signupAnswer
	signupFieldCount
)

var signupLabels = [signupFieldCount]string{
	"Full name",
	"Email",
	"Phone",
	"Degree",
	"Location",
	"Username",
	"Password",
	"Confirm password",
	"Security question",
	"Answer",
}

// SignupModel is the Bubble Tea model for the account creation screen.
// The security question slot is a selector cycled with left/right; every
// other slot is a text input. On success the flow is back on the login
// screen and the model navigates there.
type SignupModel struct {
	ctx  context.Context
	flow *service.AuthFlow
	st   styles

	inputs     []textinput.Model
	question   int
	focus      int
	submitting bool
}

func NewSignupModel(ctx context.Context, flow *service.AuthFlow, st styles) *SignupModel {
	inputs := make([]textinput.Model, signupFieldCount)
	inputs[signupFullName] = newInput("Jane Doe", 100)
	inputs[signupEmail] = newInput("jane@example.com", 254)
	inputs[signupPhone] = newInput("+91 98765 43210", 20)
	inputs[signupDegree] = newInput("B.Tech", 50)
	inputs[signupDegree].ShowSuggestions = true
	inputs[signupDegree].SetSuggestions(models.Degrees)
	inputs[signupDegree].KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+y"))
	inputs[signupLocation] = newInput("Pune", 100)
	inputs[signupUsername] = newInput("jane", 50)
	inputs[signupPassword] = newPasswordInput("password")
	inputs[signupConfirm] = newPasswordInput("repeat password")
	inputs[signupQuestion] = newInput("", 0)
	inputs[signupAnswer] = newInput("answer", 100)
	inputs[signupFullName].Focus()

	return &SignupModel{
		ctx:    ctx,
		flow:   flow,
		st:     st,
		inputs: inputs,
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignupResult); ok {
		m.submitting = false
		if result.Err != nil {
			return m, nil
		}
		m.resetForm()
		return m, navigate(pageFor(m.flow.State()))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.flow.ShowLogin()
			return m, navigate(pageLogin)
		case key.Matches(keyMsg, keys.tab):
			m.focus = focusShift(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = focusShift(m.inputs, m.focus, -1)
			return m, nil
		case m.focus == signupQuestion && key.Matches(keyMsg, keys.right):
			m.question = (m.question + 1) % len(models.SecurityQuestions)
			return m, nil
		case m.focus == signupQuestion && key.Matches(keyMsg, keys.left):
			m.question = (m.question - 1 + len(models.SecurityQuestions)) % len(models.SecurityQuestions)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdSignup(m.form())
		}

		if m.focus == signupQuestion {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder
	for i, label := range signupLabels {
		if i == signupQuestion {
			marker := "  "
			if m.focus == signupQuestion {
				marker = "> "
			}
			m.st.renderRow(&b, label, 17, marker+"‹ "+models.SecurityQuestions[m.question]+" ›")
			continue
		}
		m.st.renderRow(&b, label, 17, "["+m.inputs[i].View()+"]")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	b.WriteString(m.st.renderMessage(m.flow.Message()))

	return m.st.renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+y: accept degree │ ←/→: change question │ enter: submit")
}

func (m *SignupModel) form() models.SignupForm {
	return models.SignupForm{
		FullName:         m.inputs[signupFullName].Value(),
		Email:            m.inputs[signupEmail].Value(),
		Phone:            m.inputs[signupPhone].Value(),
		Degree:           m.inputs[signupDegree].Value(),
		Location:         m.inputs[signupLocation].Value(),
		Username:         m.inputs[signupUsername].Value(),
		Password:         m.inputs[signupPassword].Value(),
		ConfirmPassword:  m.inputs[signupConfirm].Value(),
		SecurityQuestion: models.SecurityQuestions[m.question],
		SecurityAnswer:   m.inputs[signupAnswer].Value(),
	}
}

func (m *SignupModel) cmdSignup(form models.SignupForm) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		return SignupResult{Err: flow.Signup(ctx, form)}
	}
}

func (m *SignupModel) resetForm() {
	resetInputs(m.inputs)
	m.focus = 0
	m.question = 0
}
