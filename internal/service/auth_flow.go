// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/skillscope/internal/app"
	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
)

// FlowState is the screen the auth flow is on.
type FlowState string

const (
	StateLogin          FlowState = "login"
	StateSignup         FlowState = "signup"
	StateForgotIdentify FlowState = "forgot_identify"
	StateForgotVerify   FlowState = "forgot_verify"
	StateForgotReset    FlowState = "forgot_reset"
)

// Message is the single line the current screen shows under its form.
type Message struct {
	Text    string
	IsError bool
}

// AuthFlow drives the signed-out screens: login, signup and the three
// password recovery steps. It starts in [StateLogin] and has no final state;
// successful signup and reset return to login.
//
// Every action reports failure twice: as the returned error and as the
// user-facing [Message]. A failed action never changes the state.
type AuthFlow struct {
	accounts AccountService
	logger   *logger.Logger

	mu      sync.Mutex
	state   FlowState
	target  *models.UserRecord
	message Message
}

// NewAuthFlow returns a flow in [StateLogin].
func NewAuthFlow(accounts AccountService, logger *logger.Logger) *AuthFlow {
	return &AuthFlow{
		accounts: accounts,
		logger:   logger,
		state:    StateLogin,
	}
}

// State returns the current screen.
func (f *AuthFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the line to show on the current screen.
func (f *AuthFlow) Message() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// ResetTarget returns the account being recovered, without its secrets.
func (f *AuthFlow) ResetTarget() (models.UserRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.target == nil {
		return models.UserRecord{}, false
	}
	return f.target.Public(), true
}

func (f *AuthFlow) ShowLogin()  { f.navigate(StateLogin) }
func (f *AuthFlow) ShowSignup() { f.navigate(StateSignup) }
func (f *AuthFlow) ShowForgot() { f.navigate(StateForgotIdentify) }

func (f *AuthFlow) navigate(state FlowState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = state
	f.target = nil
	f.message = Message{}
}

// Login signs in. On success the flow is reset to a clean login screen so it
// is ready after the next logout.
func (f *AuthFlow) Login(ctx context.Context, identifier, password string) (models.UserRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, err := f.accounts.Login(ctx, identifier, password)
	if err != nil {
		f.fail(ctx, err)
		return models.UserRecord{}, err
	}

	f.state = StateLogin
	f.target = nil
	f.message = Message{}
	return record, nil
}

// Signup creates an account and returns to the login screen.
func (f *AuthFlow) Signup(ctx context.Context, form models.SignupForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.accounts.Signup(ctx, form); err != nil {
		f.fail(ctx, err)
		return err
	}

	f.state = StateLogin
	f.message = Message{Text: app.MsgSignupSuccess}
	return nil
}

// ForgotIdentify starts recovery for the account registered with email.
func (f *AuthFlow) ForgotIdentify(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, err := f.accounts.FindByEmail(ctx, email)
	if err != nil {
		f.fail(ctx, err)
		return err
	}

	f.target = &record
	f.state = StateForgotVerify
	f.message = Message{}
	return nil
}

// ForgotVerify checks the security answer of the account found by
// [AuthFlow.ForgotIdentify].
func (f *AuthFlow) ForgotVerify(ctx context.Context, answer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateForgotVerify || f.target == nil {
		f.fail(ctx, ErrWrongStep)
		return ErrWrongStep
	}

	if err := f.accounts.VerifySecurityAnswer(*f.target, answer); err != nil {
		f.fail(ctx, err)
		return err
	}

	f.state = StateForgotReset
	f.message = Message{}
	return nil
}

// ForgotReset sets the new password and returns to the login screen.
func (f *AuthFlow) ForgotReset(ctx context.Context, form models.PasswordResetForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateForgotReset || f.target == nil {
		f.fail(ctx, ErrWrongStep)
		return ErrWrongStep
	}

	if err := f.accounts.ResetPassword(ctx, f.target.Email, form); err != nil {
		f.fail(ctx, err)
		return err
	}

	f.state = StateLogin
	f.target = nil
	f.message = Message{Text: app.MsgResetSuccess}
	return nil
}

func (f *AuthFlow) fail(ctx context.Context, err error) {
	logger.FromContext(ctx).Debug().Err(err).Str("state", string(f.state)).Msg("auth flow action failed")
	f.message = Message{Text: UserMessage(err), IsError: true}
}
