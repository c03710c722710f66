package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid inputs passed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotPlaceOwner      = errors.New("requester is not the owner of the place")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
