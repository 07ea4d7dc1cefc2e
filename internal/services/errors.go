package services

import "errors"

// Domain errors mapped to HTTP statuses in the handlers layer
var (
	// ErrAccountNotFound is returned when no account with the given login exists
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when registering an already taken login
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidLogin is returned when a login contains characters outside [A-Za-z0-9]
	ErrInvalidLogin = errors.New("login must contain only letters and digits")
	// ErrInvalidRole is returned when a role name is outside the closed role set
	ErrInvalidRole = errors.New("unknown role")
	// ErrPostNotFound is returned when no post with the given id exists
	ErrPostNotFound = errors.New("post not found")
)
