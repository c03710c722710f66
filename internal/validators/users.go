// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-places/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MinPasswordLength is the minimal number of characters in a password.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash, in bytes.
const MaxPasswordBytes = 72

// UserValidator implements the Validator interface for SignupRequest and
// LoginRequest.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup checks a new account.
//
// Default validated fields: name, email, password, image.
func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(req.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !IsEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len([]rune(req.Password)) < MinPasswordLength {
				return ErrShortPassword
			}
			if len(req.Password) > MaxPasswordBytes {
				return ErrLongPassword
			}
		case FieldImage:
			if isBlank(req.Image) {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only requires both credentials to be present; wrong ones
// are reported by the authentication itself.
func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsEmail reports whether s is a bare e-mail address such as "a@b.co",
// without a display name or angle brackets.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
