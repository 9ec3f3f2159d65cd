package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/internal/tui"
	"github.com/MKhiriev/skillscope/models"
)

var errMissingDependency = errors.New("client: services and ui are required")

var _ Client = (*App)(nil)

type App struct {
	accounts service.AccountService
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errMissingDependency
	}
	return &App{accounts: services.AccountService, ui: ui, logger: logger}, nil
}

// Run restores the session or signs someone in, then shows the dashboard.
// Signing out starts over; quitting from any screen returns nil.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	for {
		user, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.Dashboard(ctx, user)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			a.logger.Info().Str("username", user.Username).Msg("quit with session kept")
			return nil
		}
		a.logger.Info().Str("username", user.Username).Msg("signed out")
	}
}

func (a *App) signIn(ctx context.Context) (models.UserRecord, error) {
	if user := a.accounts.RestoreSession(ctx); user != nil {
		a.logger.Info().Str("username", user.Username).Msg("session restored")
		return *user, nil
	}

	user, err := a.ui.LoginFlow(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return models.UserRecord{}, fmt.Errorf("login flow: %w", err)
	}
	return user, err
}
