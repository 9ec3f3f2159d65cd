// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/app"
)

// Kind returns the error kind err wraps: one of ErrValidation, ErrConflict,
// ErrNotFound, ErrAuthentication or ErrInternal. Any other non-nil error is
// reported as ErrInternal; nil gives nil.
func Kind(err error) error {
	if err == nil {
		return nil
	}

	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrAuthentication, ErrInternal} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}

// UserMessage translates err into the single line shown to the user.
// Errors outside the service taxonomy become [app.MsgUnexpected].
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var tooShort *PasswordTooShortError
	if errors.As(err, &tooShort) {
		return fmt.Sprintf(app.MsgPasswordLength, tooShort.Min)
	}

	switch {
	case errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrEmptyFields):
		return app.MsgAllFields
	case errors.Is(err, ErrPasswordMismatch):
		return app.MsgPasswordMismatch
	case errors.Is(err, ErrPasswordTooLong):
		return app.MsgPasswordTooLong
	case errors.Is(err, ErrUnknownSecurityQuestion):
		return app.MsgUnknownSecurityQuestion
	case errors.Is(err, ErrIncorrectAnswer):
		return app.MsgIncorrectAnswer
	case errors.Is(err, ErrWrongStep):
		return app.MsgWrongStep
	case errors.Is(err, ErrInvalidPicture):
		return app.MsgPicture
	case errors.Is(err, ErrEmailTaken):
		return app.MsgEmailTaken
	case errors.Is(err, ErrUsernameTaken):
		return app.MsgUsernameTaken
	case errors.Is(err, ErrPhoneTaken):
		return app.MsgPhoneTaken
	case errors.Is(err, ErrNoAccount):
		return app.MsgNoAccount
	case errors.Is(err, ErrNotSignedIn):
		return app.MsgNotSignedIn
	}

	return app.MsgUnexpected
}
