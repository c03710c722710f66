package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrShortDescription = errors.New("description must be at least 5 characters long")
	ErrEmptyAddress     = errors.New("address is required")
	ErrEmptyImage       = errors.New("image is required")
	ErrEmptyPlaceID     = errors.New("place id is required")
	ErrEmptyRequesterID = errors.New("requester id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrShortPassword    = errors.New("password must be at least 6 characters long")
	ErrLongPassword     = errors.New("password must be at most 72 bytes long")
	ErrEmptyPassword    = errors.New("password is required")
)
