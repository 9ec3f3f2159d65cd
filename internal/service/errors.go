package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the account services wraps exactly
// one of them; use [Kind] or [errors.Is] to classify.
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication failed")
	ErrInternal       = errors.New("internal error")
)

var (
	// ErrEmptyFields means a required input was blank.
	ErrEmptyFields = fmt.Errorf("%w: required field is empty", ErrValidation)
	// ErrMissingCredentials means the login identifier or password was blank.
	ErrMissingCredentials = fmt.Errorf("%w: identifier and password are required", ErrValidation)
	// ErrPasswordMismatch means a password and its confirmation differ.
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	// ErrPasswordTooShort is matched by every [*PasswordTooShortError].
	ErrPasswordTooShort = fmt.Errorf("%w: password is too short", ErrValidation)
	// ErrPasswordTooLong means the password exceeds what the hasher accepts.
	ErrPasswordTooLong = fmt.Errorf("%w: password is too long", ErrValidation)
	// ErrUnknownSecurityQuestion means the question is not one of the offered ones.
	ErrUnknownSecurityQuestion = fmt.Errorf("%w: unknown security question", ErrValidation)
	// ErrIncorrectAnswer means the security answer did not match.
	ErrIncorrectAnswer = fmt.Errorf("%w: incorrect security answer", ErrValidation)
	// ErrWrongStep means a recovery step was submitted in the wrong state.
	ErrWrongStep = fmt.Errorf("%w: action not allowed in current step", ErrValidation)
	// ErrInvalidPicture means the profile picture is not an image or too big.
	ErrInvalidPicture = fmt.Errorf("%w: invalid profile picture", ErrValidation)

	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrPhoneTaken    = fmt.Errorf("%w: phone already registered", ErrConflict)

	// ErrNoAccount means password recovery found no account for the email.
	ErrNoAccount = fmt.Errorf("%w: no account with this email", ErrNotFound)

	// ErrInvalidCredentials is returned for an unknown identifier and for a
	// wrong password alike.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	// ErrNotSignedIn means an operation needed a session and there is none.
	ErrNotSignedIn = fmt.Errorf("%w: not signed in", ErrAuthentication)

	// ErrRecordVanished means the account being recovered disappeared from
	// the store between steps.
	ErrRecordVanished = fmt.Errorf("%w: account disappeared from store", ErrInternal)
)

// PasswordTooShortError reports the minimum length a rejected password missed.
type PasswordTooShortError struct {
	Min int
}

func (e *PasswordTooShortError) Error() string {
	return fmt.Sprintf("%s: minimum is %d characters", ErrPasswordTooShort, e.Min)
}

func (e *PasswordTooShortError) Is(target error) bool {
	return target == ErrPasswordTooShort || target == ErrValidation
}

// internalError wraps an unexpected failure (usually storage) as ErrInternal.
func internalError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
