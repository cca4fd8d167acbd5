package admin

import "errors"

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrInvalidTransition  = errors.New("venue status transition not allowed")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrInvalidLevel       = errors.New("unknown access level")
)
