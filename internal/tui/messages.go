package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/models"
)

const (
	pageLogin  = "login"
	pageSignup = "signup"
	pageForgot = "forgot"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the signed-out flow when Err is nil.
type LoginResult struct {
	User models.UserRecord
	Err  error
}

type SignupResult struct {
	Err error
}

type ForgotResult struct {
	Err error
}

type profileSavedMsg struct {
	record models.UserRecord
	err    error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type languageChangedMsg struct {
	language string
	err      error
}

type copiedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct{}

// pageFor maps a flow state to the page that renders it.
func pageFor(state service.FlowState) string {
	switch state {
	case service.StateSignup:
		return pageSignup
	case service.StateForgotIdentify, service.StateForgotVerify, service.StateForgotReset:
		return pageForgot
	default:
		return pageLogin
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
