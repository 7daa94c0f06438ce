// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// API and web handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout both services.
package app

const (
	// MsgUnauthorized is the "error" field of every 401 response.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidAPIToken is the "message" field of every 401 response. It is
	// the same for a missing, malformed and wrong token.
	MsgInvalidAPIToken = "Invalid or missing API token"

	// MsgAPIRunning is reported by the health check.
	MsgAPIRunning = "API is running"

	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "User not found"

	// MsgItemNotFound is returned when no item has the requested id.
	MsgItemNotFound = "Item not found"

	// MsgFailedToHashPassword is returned when a password could not be
	// hashed, e.g. because the system randomness source failed.
	MsgFailedToHashPassword = "Failed to hash password"

	// MsgInvalidPasswordHash is returned when a stored hash record cannot be
	// parsed.
	MsgInvalidPasswordHash = "Invalid password hash"

	// MsgNotFound is returned for unknown API routes.
	MsgNotFound = "Not found"

	// MsgPageNotFound is the plain-text body of unknown web routes.
	MsgPageNotFound = "404 Not Found"

	// MsgTemplateError is returned when a page template fails to render.
	MsgTemplateError = "Template error"
)
