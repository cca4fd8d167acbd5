package membership

import "errors"

var (
	ErrCardRejected     = errors.New("card rejected")
	ErrCardUnrecognized = errors.New("card not recognized")
	ErrTierNotEligible  = errors.New("tier not eligible for card category")
	ErrActivationFailed = errors.New("activation failed")
	ErrNotFound         = errors.New("user not found")
	ErrNotSubscribed    = errors.New("user has no active subscription")
	ErrInvalidStatus    = errors.New("invalid subscription status")
)
