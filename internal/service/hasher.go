// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/skillscope/internal/config"
)

// PasswordHasher turns passwords into the value stored in
// [models.UserRecord.Password] and checks login attempts against it.
type PasswordHasher interface {
	// Hash returns the value to store for password.
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored value.
	Verify(stored, password string) bool
	// NeedsRehash reports whether stored was written by another scheme (or
	// cost) and should be replaced after the next successful login.
	NeedsRehash(stored string) bool
}

// NewPasswordHasher returns the hasher for the configured mode.
func NewPasswordHasher(cfg config.ClientApp) (PasswordHasher, error) {
	switch cfg.PasswordHashing {
	case config.HashingBcrypt, "":
		cost := cfg.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		return &bcryptHasher{cost: cost}, nil
	case config.HashingPlain:
		return plainHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", cfg.PasswordHashing)
	}
}

type bcryptHasher struct {
	cost int
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify also accepts plaintext records, which NeedsRehash then upgrades.
func (h *bcryptHasher) Verify(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func (h *bcryptHasher) NeedsRehash(stored string) bool {
	if !isBcryptHash(stored) {
		return true
	}
	cost, err := bcrypt.Cost([]byte(stored))
	return err != nil || cost != h.cost
}

// plainHasher stores passwords as entered, the way accounts created by the
// web dashboard are stored.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares exactly, so a password that happens to look like a bcrypt
// hash is still matched as entered.
func (plainHasher) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func (plainHasher) NeedsRehash(string) bool {
	return false
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
