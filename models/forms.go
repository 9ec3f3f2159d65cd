// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupForm carries every field of the sign-up screen.
type SignupForm struct {
	FullName         string
	Email            string
	Phone            string
	Degree           string
	Location         string
	Username         string
	Password         string
	ConfirmPassword  string
	SecurityQuestion string
	SecurityAnswer   string
}

// Record builds the [UserRecord] the form describes. The password is copied
// as entered; hashing is the caller's job.
func (f SignupForm) Record() UserRecord {
	return UserRecord{
		FullName:         f.FullName,
		Email:            f.Email,
		Phone:            f.Phone,
		Degree:           f.Degree,
		Location:         f.Location,
		Username:         f.Username,
		Password:         f.Password,
		SecurityQuestion: f.SecurityQuestion,
		SecurityAnswer:   f.SecurityAnswer,
	}
}

// PasswordResetForm is the last step of password recovery.
type PasswordResetForm struct {
	Password        string
	ConfirmPassword string
}
