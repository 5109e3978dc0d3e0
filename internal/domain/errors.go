package domain

import "errors"

var (
	ErrFetchFailure   = errors.New("fetch shared state")
	ErrMalformedState = errors.New("malformed shared state")
	ErrProfileInvalid = errors.New("invalid local profile")
)
