package service

import (
	"context"

	"github.com/MKhiriev/skillscope/models"
)

// AccountService is the local account core: signup, login, password
// recovery, profile edits and the session lifecycle.
type AccountService interface {
	// RestoreSession returns the account signed in by a previous run, or nil.
	RestoreSession(ctx context.Context) *models.UserRecord

	// Login signs in the first account whose email or username equals
	// identifier (ignoring case) if password matches. Unknown identifiers and
	// wrong passwords both give [ErrInvalidCredentials].
	Login(ctx context.Context, identifier, password string) (models.UserRecord, error)

	// Signup validates form and appends a new account. It does not sign in.
	Signup(ctx context.Context, form models.SignupForm) error

	// FindByEmail returns the account registered with email (ignoring case),
	// or [ErrNoAccount].
	FindByEmail(ctx context.Context, email string) (models.UserRecord, error)

	// VerifySecurityAnswer checks answer against record's security answer,
	// ignoring case.
	VerifySecurityAnswer(record models.UserRecord, answer string) error

	// ResetPassword replaces the password of the account registered with
	// exactly email.
	ResetPassword(ctx context.Context, email string, form models.PasswordResetForm) error

	// UpdateProfile replaces the signed-in account with record.
	UpdateProfile(ctx context.Context, record models.UserRecord) error

	// Logout ends the session.
	Logout(ctx context.Context) error

	// CurrentUser returns the signed-in account, or nil.
	CurrentUser() *models.UserRecord
}

// PreferenceService manages per-device display settings.
type PreferenceService interface {
	Language(ctx context.Context) string
	NextLanguage(ctx context.Context) (string, error)
	Theme(ctx context.Context) models.Theme
	ToggleTheme(ctx context.Context) (models.Theme, error)
}

// AppInfoService describes the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	About(ctx context.Context) string
}
