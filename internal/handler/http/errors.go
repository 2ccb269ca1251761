// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-study-sync/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New(app.MsgEmptyAuthorizationHeader)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New(app.MsgInvalidAuthorizationHeader)
)

// Errors returned by the sync endpoint before a service is called.
var (
	// ErrInvalidJSON is reported for a body that is not a sync envelope.
	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrNoUserInContext means the auth middleware did not run.
	ErrNoUserInContext = errors.New(app.MsgNoUserIDProvided)

	// ErrUserMismatch is reported when the envelope names another user than
	// the bearer token.
	ErrUserMismatch = errors.New(app.MsgUserMismatch)
)
