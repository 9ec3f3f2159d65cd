// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// skillscope services and terminal screens.
//
// Every failure of the account flows is shown to the user as exactly one of
// these lines. Keeping them in one place keeps the wording consistent between
// the service layer and the UI.
package app

const (
	// MsgAllFields is shown when a required field was left empty.
	MsgAllFields = "Please fill in all fields."

	// MsgInvalidCredentials is shown for every failed login, whether the
	// account does not exist or the password is wrong.
	MsgInvalidCredentials = "Invalid email/username or password."

	// MsgPasswordMismatch is shown when a password and its confirmation differ.
	MsgPasswordMismatch = "Passwords do not match."

	// MsgPasswordLength is shown when a password is shorter than the minimum.
	MsgPasswordLength = "Password must be at least %d characters long."

	// MsgPasswordTooLong is shown when a password is longer than can be hashed.
	MsgPasswordTooLong = "Password must be at most 72 bytes long."

	// MsgUnknownSecurityQuestion is shown when the chosen security question
	// is not one of the offered ones.
	MsgUnknownSecurityQuestion = "Please choose one of the listed security questions."

	// MsgEmailTaken is shown when signing up with an email already in use.
	MsgEmailTaken = "An account with this email already exists."

	// MsgUsernameTaken is shown when signing up with a username already in use.
	MsgUsernameTaken = "This username is already taken."

	// MsgPhoneTaken is shown when signing up with a phone number already in use.
	MsgPhoneTaken = "An account with this phone number already exists."

	// MsgNoAccount is shown when password recovery finds no account for the
	// email.
	MsgNoAccount = "No account found with that email address."

	// MsgIncorrectAnswer is shown when the security answer does not match.
	MsgIncorrectAnswer = "Incorrect answer. Please try again."

	// MsgWrongStep is shown when a recovery step is submitted out of order.
	MsgWrongStep = "Please start password recovery again."

	// MsgNotSignedIn is shown when a profile change is made with nobody
	// signed in.
	MsgNotSignedIn = "Please sign in first."

	// MsgPicture is shown when a profile picture is rejected.
	MsgPicture = "Please select an image under 2MB."

	// MsgUnexpected is shown for storage failures the user cannot fix.
	MsgUnexpected = "An unexpected error occurred. Please try again."

	// MsgSignupSuccess is shown after a successful signup.
	MsgSignupSuccess = "Account created successfully! Please sign in."

	// MsgResetSuccess is shown after a successful password reset.
	MsgResetSuccess = "Password reset successfully! Please sign in."

	// MsgProfileSaved is shown after the profile was saved.
	MsgProfileSaved = "Profile updated successfully!"
)
