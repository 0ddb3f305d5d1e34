// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserName requires a non-blank user name.
	FieldUserName = "user_name"

	// FieldRealName requires a non-blank real name.
	FieldRealName = "real_name"

	// FieldUserID requires an already stored account.
	FieldUserID = "user_id"

	// FieldPasswordsMatch requires both password fields to be equal.
	FieldPasswordsMatch = "passwords_match"

	// FieldPasswordLength requires the first password field to hold at least
	// app.MinPasswordLength characters.
	FieldPasswordLength = "password_length"
)

// UserFormValidator implements the Validator interface for submitted user
// edit forms.
type UserFormValidator struct {
}

// NewUserFormValidator constructs a new UserFormValidator and returns it as
// the Validator interface.
func NewUserFormValidator() Validator {
	return &UserFormValidator{}
}

// Validate checks a models.UserForm or *models.UserForm.
//
// Fields are checked in the order given and the first failure is returned.
// When no fields are given, user name, real name and password matching are
// checked.
func (v *UserFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserForm:
		return v.validateUserForm(ctx, value, fields...)
	case *models.UserForm:
		return v.validateUserForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserFormValidator) validateUserForm(_ context.Context, form models.UserForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldRealName, FieldPasswordsMatch}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if strings.TrimSpace(form.UserName) == "" {
				return ErrMissingUserName
			}
		case FieldRealName:
			if strings.TrimSpace(form.RealName) == "" {
				return ErrMissingRealName
			}
		case FieldUserID:
			if form.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPasswordsMatch:
			if form.Pass1 != form.Pass2 {
				return ErrPasswordsDoNotMatch
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(form.Pass1) < app.MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
