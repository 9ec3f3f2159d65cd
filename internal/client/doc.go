// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the previous session, runs the signed-out screens when there
// is none, and loops back to them after every logout.
package client
