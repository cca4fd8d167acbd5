package reservation

import "errors"

var (
	ErrNotFound            = errors.New("reservation not found")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrVenueNotApproved    = errors.New("venue is not approved")
	ErrInvalidPartySize    = errors.New("party size out of range")
	ErrInvalidTransition   = errors.New("reservation status transition not allowed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrNotReservationOwner = errors.New("reservation does not belong to caller")
	ErrNotVenueOwner       = errors.New("reservation does not belong to caller's venue")
)
