package models

import "errors"

// Application-wide standard errors
var (
	// Story Errors. ErrNotFound also covers stories owned by someone else,
	// so a caller cannot distinguish "missing" from "not yours".
	ErrNotFound = errors.New("travel story not found")

	// User & Authentication Errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)
