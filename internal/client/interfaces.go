// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/skillscope/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal interface the lifecycle drives.
type UI interface {
	// LoginFlow blocks until someone signs in.
	LoginFlow(ctx context.Context) (models.UserRecord, error)
	// Dashboard blocks until the user quits or signs out.
	Dashboard(ctx context.Context, user models.UserRecord) (logout bool, err error)
}
