package shared

import "errors"

// Sentinel errors surfaced by the core. Handlers never branch on message
// text, only on these values; the HTTP mapping lives in platform/httpx.
var (
	// ErrInvalidInput indicates a missing or malformed required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials covers both unknown username and wrong password.
	// The two cases are deliberately indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive indicates the account exists but may not log in.
	ErrAccountInactive = errors.New("account inactive")
	// ErrTokenMissing occurs when no bearer token accompanies the request.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid occurs on a malformed token or bad signature.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired occurs when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrForbidden indicates a role or ownership mismatch.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrNoChanges occurs when an update supplies no fields.
	ErrNoChanges = errors.New("no changes")
)
