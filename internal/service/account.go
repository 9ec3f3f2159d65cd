// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/store"
	"github.com/MKhiriev/skillscope/internal/utils"
	"github.com/MKhiriev/skillscope/models"
)

const defaultMinPasswordLength = 6

// accountService is the default [AccountService]. All mutations of the
// account list go through [store.UserRecords.Update], so they run under the
// store lock.
type accountService struct {
	users   store.UserRecords
	session store.Session
	hasher  PasswordHasher

	minPasswordLength int

	logger *logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewAccountService constructs an [AccountService] on top of the account
// list and session stores.
// A minPasswordLength below 6 is raised to 6.
func NewAccountService(users store.UserRecords, session store.Session, hasher PasswordHasher, minPasswordLength int, logger *logger.Logger) AccountService {
	minPasswordLength = max(minPasswordLength, defaultMinPasswordLength)

	return &accountService{
		users:             users,
		session:           session,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
		now:               time.Now,
		newID:             utils.NewUUIDGenerator().Generate,
	}
}

func (s *accountService) RestoreSession(ctx context.Context) *models.UserRecord {
	return s.session.Restore(ctx)
}

func (s *accountService) Login(ctx context.Context, identifier, password string) (models.UserRecord, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(identifier) == "" || password == "" {
		return models.UserRecord{}, ErrMissingCredentials
	}

	key := fold(identifier)
	var (
		found models.UserRecord
		ok    bool
	)
	for _, record := range s.users.LoadAll(ctx) {
		if fold(record.Email) == key || fold(record.Username) == key {
			found, ok = record, true
			break
		}
	}

	if !ok || !s.hasher.Verify(found.Password, password) {
		log.Debug().Str("func", "*accountService.Login").Msg("login rejected")
		return models.UserRecord{}, ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(found.Password) {
		found = s.rehash(ctx, found, password)
	}

	if err := s.session.Establish(ctx, found); err != nil {
		log.Err(err).Str("func", "*accountService.Login").Msg("error establishing session")
		return models.UserRecord{}, internalError("establish session", err)
	}

	log.Info().Str("username", found.Username).Msg("signed in")
	return found, nil
}

// rehash upgrades a password written by another scheme. Failures only cost
// the upgrade, never the login.
func (s *accountService) rehash(ctx context.Context, record models.UserRecord, password string) models.UserRecord {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", record.Username).Msg("cannot upgrade stored password")
		return record
	}

	err = s.users.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		for i := range records {
			if records[i].Email == record.Email && records[i].Password == record.Password {
				records[i].Password = hash
				return records, nil
			}
		}
		return records, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("username", record.Username).Msg("cannot upgrade stored password")
		return record
	}

	record.Password = hash
	return record
}

func (s *accountService) Signup(ctx context.Context, form models.SignupForm) error {
	log := logger.FromContext(ctx)

	form.Degree = strings.TrimSpace(form.Degree)
	if form.SecurityQuestion == "" {
		form.SecurityQuestion = models.SecurityQuestions[0]
	}

	if anyBlank(form.FullName, form.Email, form.Phone, form.Degree, form.Location, form.Username, form.SecurityAnswer) ||
		form.Password == "" || form.ConfirmPassword == "" {
		return ErrEmptyFields
	}
	if err := s.checkPassword(form.Password, form.ConfirmPassword); err != nil {
		return err
	}
	if !models.IsSecurityQuestion(form.SecurityQuestion) {
		return ErrUnknownSecurityQuestion
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return err
		}
		return internalError("hash password", err)
	}

	record := form.Record()
	record.ID = s.newID()
	record.Password = hash
	createdAt := s.now().UTC()
	record.CreatedAt = &createdAt

	err = s.users.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		if err := checkUnique(records, record); err != nil {
			return nil, err
		}
		return append(records, record), nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return err
		}
		log.Err(err).Str("func", "*accountService.Signup").Msg("error saving account")
		return internalError("save account", err)
	}

	log.Info().Str("username", record.Username).Msg("account created")
	return nil
}

// checkUnique enforces unique email, username and phone, reporting the first
// conflict in that order. Email and username ignore case, phone ignores
// surrounding spaces.
func checkUnique(records []models.UserRecord, candidate models.UserRecord) error {
	email, username, phone := fold(candidate.Email), fold(candidate.Username), strings.TrimSpace(candidate.Phone)

	checks := []struct {
		taken func(models.UserRecord) bool
		err   error
	}{
		{func(r models.UserRecord) bool { return fold(r.Email) == email }, ErrEmailTaken},
		{func(r models.UserRecord) bool { return fold(r.Username) == username }, ErrUsernameTaken},
		{func(r models.UserRecord) bool { return strings.TrimSpace(r.Phone) == phone }, ErrPhoneTaken},
	}

	for _, check := range checks {
		for _, r := range records {
			if check.taken(r) {
				return check.err
			}
		}
	}
	return nil
}

func (s *accountService) FindByEmail(ctx context.Context, email string) (models.UserRecord, error) {
	if strings.TrimSpace(email) == "" {
		return models.UserRecord{}, ErrEmptyFields
	}

	key := fold(email)
	for _, record := range s.users.LoadAll(ctx) {
		if fold(record.Email) == key {
			return record, nil
		}
	}
	return models.UserRecord{}, ErrNoAccount
}

func (s *accountService) VerifySecurityAnswer(record models.UserRecord, answer string) error {
	if answer == "" {
		return ErrEmptyFields
	}

	if subtle.ConstantTimeCompare([]byte(fold(record.SecurityAnswer)), []byte(fold(answer))) != 1 {
		return ErrIncorrectAnswer
	}
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, email string, form models.PasswordResetForm) error {
	log := logger.FromContext(ctx)

	if form.Password == "" || form.ConfirmPassword == "" {
		return ErrEmptyFields
	}
	if err := s.checkPassword(form.Password, form.ConfirmPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return err
		}
		return internalError("hash password", err)
	}

	updatedAt := s.now().UTC()
	err = s.users.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		for i := range records {
			if records[i].Email == email {
				records[i].Password = hash
				records[i].UpdatedAt = &updatedAt
				return records, nil
			}
		}
		return nil, ErrRecordVanished
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.ResetPassword").Msg("error resetting password")
		if errors.Is(err, ErrInternal) {
			return err
		}
		return internalError("save password", err)
	}

	log.Info().Msg("password reset")
	return nil
}

func (s *accountService) UpdateProfile(ctx context.Context, record models.UserRecord) error {
	previous := s.session.Current()
	if previous == nil {
		return ErrNotSignedIn
	}

	if err := models.CheckProfilePicture(record.ProfilePicture); err != nil {
		return errors.Join(ErrInvalidPicture, err)
	}

	updatedAt := s.now().UTC()
	record.UpdatedAt = &updatedAt

	if err := s.session.Establish(ctx, record); err != nil {
		return internalError("save session", err)
	}

	oldEmail := previous.Email
	err := s.users.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		for i := range records {
			if records[i].Email == oldEmail {
				records[i] = record
				return records, nil
			}
		}
		return nil, ErrRecordVanished
	})
	if err != nil {
		// the session already holds the new record
		s.logger.Warn().Err(err).
			Str("old_email", oldEmail).
			Str("func", "*accountService.UpdateProfile").
			Msg("profile saved to session only; stored account not updated")
	}

	return nil
}

func (s *accountService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return internalError("clear session", err)
	}
	return nil
}

func (s *accountService) CurrentUser() *models.UserRecord {
	return s.session.Current()
}

func (s *accountService) checkPassword(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return &PasswordTooShortError{Min: s.minPasswordLength}
	}
	return nil
}

// fold normalises an identifier for comparison.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
