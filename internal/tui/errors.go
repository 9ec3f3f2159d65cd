// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/skillscope/internal/service"
)

// ErrUserQuit is returned when the user closes the signed-out screens.
var ErrUserQuit = errors.New("user quit")

var errBlankIdentity = errors.Join(service.ErrEmptyFields, errors.New("email and username are required"))

// humanizeError turns a dashboard action error into its status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "Picture file not found."
	}
	return service.UserMessage(err)
}
