// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UserRecord represents one registered local account.
//
// JSON field names follow the layout the web dashboard wrote into browser
// storage, so exported stores can be loaded without migration.
//
// Email, Username and Phone are intended to be unique across the store. The
// uniqueness is checked only at signup time; nothing re-checks it after a
// profile edit.
type UserRecord struct {
	// ID is assigned at signup. Records written by the web dashboard have none.
	ID string `json:"id,omitempty"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Degree   string `json:"degree"`
	Location string `json:"location"`
	Username string `json:"username"`

	// Password holds either a bcrypt hash or, for records created in plain
	// mode or by the web dashboard, the password itself.
	Password string `json:"password"`

	// SecurityQuestion is one of [SecurityQuestions].
	SecurityQuestion string `json:"securityQuestion"`

	// SecurityAnswer is compared case-insensitively during password recovery.
	SecurityAnswer string `json:"securityAnswer"`

	// ProfilePicture is an optional base64 data URL (see [EncodeProfilePicture]).
	ProfilePicture string `json:"profilePicture,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ParseUserRecord decodes a single stored record and checks that the fields
// every lookup depends on are present.
//
// Returns [ErrMalformedRecord] (wrapped) if raw is not a JSON object or if
// email, username or password is empty.
func ParseUserRecord(raw json.RawMessage) (UserRecord, error) {
	var record UserRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return UserRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	switch {
	case strings.TrimSpace(record.Email) == "":
		return UserRecord{}, fmt.Errorf("%w: email is empty", ErrMalformedRecord)
	case strings.TrimSpace(record.Username) == "":
		return UserRecord{}, fmt.Errorf("%w: username is empty", ErrMalformedRecord)
	case record.Password == "":
		return UserRecord{}, fmt.Errorf("%w: password is empty", ErrMalformedRecord)
	}

	return record, nil
}

// Public returns a copy of the record safe to log: credentials and the
// security answer are blanked and the picture is dropped.
func (u UserRecord) Public() UserRecord {
	u.Password = ""
	u.SecurityAnswer = ""
	u.ProfilePicture = ""
	return u
}
