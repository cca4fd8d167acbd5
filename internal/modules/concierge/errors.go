package concierge

import "errors"

var (
	ErrExternalService = errors.New("generative service failed")
	ErrEmptyQuery      = errors.New("query is empty")
)
