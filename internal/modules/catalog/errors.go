package catalog

import "errors"

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrCountryRequired    = errors.New("country is required")
	ErrInvalidCategory    = errors.New("invalid venue category")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
