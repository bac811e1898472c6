package models

// Machine-readable error codes returned alongside HTTP statuses.
const (
	ErrCodeValidation       = "validation_error"
	ErrCodeBadRequest       = "bad_request"
	ErrCodeWrongCredentials = "wrong_credentials"
	ErrCodeDuplicateEmail   = "duplicate_email"
	ErrCodeUserNotFound     = "user_not_found"
	ErrCodeStoryNotFound    = "story_not_found"
	ErrCodeTokenExpired     = "token_expired"
	ErrCodeTokenInvalid     = "token_invalid"
	ErrCodeInternal         = "internal_error"
)

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
