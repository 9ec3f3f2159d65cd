package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillscope/internal/config"
	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/models"
)

var errNoServices = errors.New("tui: services are required")

// TUI runs the terminal screens on top of the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
	inline   bool
}

func New(services *service.ClientServices, cfg config.ClientUI, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthFlow == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, logger: logger, inline: cfg.Inline}, nil
}

// LoginFlow shows the signed-out screens until someone signs in.
// Returns [ErrUserQuit] if the user closes the program instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserRecord, error) {
	flow := t.services.AuthFlow
	st := newStyles(t.services.PreferenceService.Theme(ctx))

	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, flow, st),
		pageSignup: NewSignupModel(ctx, flow, st),
		pageForgot: NewForgotModel(ctx, flow, st),
	}

	root := NewRootModel(pages, pageFor(flow.State()), st, t.services.AppInfoService.About(ctx))
	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return models.UserRecord{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserRecord{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user == nil {
		return models.UserRecord{}, ErrUserQuit
	}

	t.logger.Debug().Str("username", result.user.Username).Msg("signed-out flow finished")
	return *result.user, nil
}

// Dashboard shows the signed-in screen for user. It reports whether the user
// signed out (as opposed to quitting with the session kept).
func (t *TUI) Dashboard(ctx context.Context, user models.UserRecord) (logout bool, err error) {
	model := NewDashboardModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*DashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !t.inline {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}
