package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Listing errors
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingUnavailable = errors.New("listing is not available")
	ErrTooManyImages      = errors.New("too many images")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSelfConversation     = errors.New("cannot start a conversation with your own listing")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrEmptyMessage         = errors.New("message content is empty")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
