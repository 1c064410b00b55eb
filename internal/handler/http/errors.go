// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into two space-separated parts
	// (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Client-facing error messages. Their wording is part of the API contract;
// clients match on these strings.
const (
	msgUserAlreadyExists   = "User already exists"
	msgUserNotFound        = "User not found"
	msgInvalidPassword     = "Invalid password"
	msgNoTokenProvided     = "No token provided"
	msgUnauthorized        = "Unauthorized"
	msgInvalidJSON         = "Invalid JSON was passed"
	msgFailedToAdd         = "Failed to add transaction"
	msgFailedToFetch       = "Failed to fetch"
	msgUserRegistered      = "User registered successfully"
	msgTransactionAdded    = "Transaction added"
	msgInternalServerError = "Internal server error"
)
