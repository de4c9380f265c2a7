package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrMissingEmail     = errors.New("primary email address missing")
	ErrUnauthorized     = errors.New("unauthorized")
)
