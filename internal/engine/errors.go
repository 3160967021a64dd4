package engine

import "errors"

// Registry errors
var (
	ErrEmptyInput         = errors.New("input is empty")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUser        = errors.New("user not found")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// Friend errors
var (
	ErrSelfReference    = errors.New("cannot befriend yourself")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrAlreadyRequested = errors.New("request already sent")
)

// Feed errors
var (
	ErrPostNotFound       = errors.New("post not found")
	ErrMissingDescription = errors.New("description is required")
	ErrMissingImage       = errors.New("image is required")
)
