// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync backend handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a sync
	// envelope.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError replaces the text of every server-side failure
	// so that storage details never reach the client.
	MsgInternalServerError = "internal server error"

	// MsgEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	MsgEmptyAuthorizationHeader = "empty `Authorization` header"

	// MsgInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "invalid `Authorization` header"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID was given"

	// MsgUserMismatch is returned when the envelope names another user than
	// the bearer token.
	MsgUserMismatch = "user_id does not match the token"
)
