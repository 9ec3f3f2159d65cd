// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrMalformedRecord is returned by [ParseUserRecord] when a stored record
	// cannot be decoded or lacks a required field.
	ErrMalformedRecord = errors.New("malformed user record")

	// ErrPictureTooLarge is returned by [EncodeProfilePicture] when the image
	// exceeds [MaxProfilePictureBytes].
	ErrPictureTooLarge = errors.New("profile picture is too large")

	// ErrPictureType is returned by [EncodeProfilePicture] when the content is
	// not a recognised image.
	ErrPictureType = errors.New("profile picture is not an image")
)
