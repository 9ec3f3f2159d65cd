// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// MaxProfilePictureBytes is the largest accepted profile picture (2 MiB).
const MaxProfilePictureBytes = 2 * 1024 * 1024

// EncodeProfilePicture turns raw image bytes into the base64 data URL stored
// in [UserRecord.ProfilePicture].
func EncodeProfilePicture(data []byte) (string, error) {
	if len(data) > MaxProfilePictureBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPictureTooLarge, len(data), MaxProfilePictureBytes)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrPictureType, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// CheckProfilePicture validates a stored data URL: it must be a base64 image
// whose decoded size is within [MaxProfilePictureBytes]. An empty string
// (no picture) is valid.
func CheckProfilePicture(dataURL string) error {
	if dataURL == "" {
		return nil
	}

	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return fmt.Errorf("%w: not a base64 image data URL", ErrPictureType)
	}

	if size := base64.StdEncoding.DecodedLen(len(payload)); size > MaxProfilePictureBytes+2 {
		return fmt.Errorf("%w: about %d bytes, limit %d", ErrPictureTooLarge, size, MaxProfilePictureBytes)
	}

	return nil
}
